package data

import (
	"errors"
	"fmt"
	"sort"
)

var ErrDatasetNotFound = errors.New("data: dataset not found")

// Collection owns a set of named frames. It is not safe for concurrent use.
type Collection struct {
	frames map[string]*Frame
}

func NewCollection() *Collection {
	return &Collection{frames: make(map[string]*Frame)}
}

// Put inserts or replaces a dataset.
func (c *Collection) Put(name string, f *Frame) { c.frames[name] = f }

// Get looks up a dataset by name.
func (c *Collection) Get(name string) (*Frame, error) {
	f, ok := c.frames[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	return f, nil
}

// Remove deletes a dataset.
func (c *Collection) Remove(name string) error {
	if _, ok := c.frames[name]; !ok {
		return fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	delete(c.frames, name)
	return nil
}

func (c *Collection) Has(name string) bool {
	_, ok := c.frames[name]
	return ok
}

// Names returns the dataset names in sorted order.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.frames))
	for n := range c.frames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (c *Collection) Len() int { return len(c.frames) }
