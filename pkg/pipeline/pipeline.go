package pipeline

import (
	"fmt"

	"github.com/Oussama-KIASSI/NASA-Turbofan-Engine-Predictive-Maintenance/pkg/data"
)

// Step is one frame-to-frame transform. Steps must not modify their input.
type Step func(*data.Frame) (*data.Frame, error)

// Pipeline chains multiple steps.
type Pipeline struct {
	steps []Step
}

func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Then appends steps and returns the pipeline.
func (p *Pipeline) Then(steps ...Step) *Pipeline {
	p.steps = append(p.steps, steps...)
	return p
}

// Run feeds the frame through every step in order.
func (p *Pipeline) Run(f *data.Frame) (*data.Frame, error) {
	var err error
	for _, step := range p.steps {
		if f, err = step(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Apply runs the pipeline on the named datasets, or on every dataset when no
// name is given, replacing each with its result. Datasets processed before a
// failing one stay replaced.
func (p *Pipeline) Apply(c *data.Collection, names ...string) error {
	if len(names) == 0 {
		names = c.Names()
	}
	for _, name := range names {
		f, err := c.Get(name)
		if err != nil {
			return err
		}
		out, err := p.Run(f)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		c.Put(name, out)
	}
	return nil
}
