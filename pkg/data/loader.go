package data

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var ErrMalformedRow = errors.New("data: malformed row")

// LoadOptions controls how a directory of raw files is read.
type LoadOptions struct {
	// Dir is scanned non-recursively.
	Dir string
	// Ext selects files by suffix and is stripped to form the dataset name.
	Ext string
	// Sep is the field separator. Blank separators split on whitespace runs.
	Sep string
	// Prefix selects PrefixSchema for files whose name starts with it;
	// every other file is read with DefaultSchema.
	Prefix        string
	PrefixSchema  Schema
	DefaultSchema Schema

	// Out receives a human-readable summary per dataset when set.
	Out    io.Writer
	Logger *zap.Logger
}

// Load reads every matching file in opts.Dir into a collection. The first
// file that fails to parse aborts the load.
func Load(opts LoadOptions) (*Collection, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	entries, err := os.ReadDir(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", opts.Dir, err)
	}

	c := NewCollection()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), opts.Ext) {
			continue
		}
		schema := opts.DefaultSchema
		if opts.Prefix != "" && strings.HasPrefix(e.Name(), opts.Prefix) {
			schema = opts.PrefixSchema
		}
		name := strings.TrimSuffix(e.Name(), opts.Ext)

		f, err := readFile(filepath.Join(opts.Dir, e.Name()), opts.Sep, schema)
		if err != nil {
			return nil, err
		}
		c.Put(name, f)

		logger.Info("dataset loaded",
			zap.String("name", name),
			zap.String("schema", schema.Name),
			zap.Int("rows", f.Len()),
			zap.Int("columns", f.Width()))
		if opts.Out != nil {
			writeSummary(opts.Out, name, f)
		}
	}
	return c, nil
}

func readFile(path, sep string, schema Schema) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := ReadDelimited(fh, sep, schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return f, nil
}

// ReadDelimited parses headerless delimited rows using the leading
// len(schema.Columns) fields of every line.
func ReadDelimited(r io.Reader, sep string, schema Schema) (*Frame, error) {
	split := splitter(sep)
	width := len(schema.Columns)
	values := make([][]float64, width)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := split(text)
		if len(fields) < width {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrMalformedRow, line, len(fields), width)
		}
		for j := 0; j < width; j++ {
			v, err := parseValue(fields[j])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %q", ErrMalformedRow, line, schema.Columns[j], fields[j])
			}
			values[j] = append(values[j], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for j := range values {
		if values[j] == nil {
			values[j] = []float64{}
		}
	}
	return NewFrame(schema.Columns, values)
}

func splitter(sep string) func(string) []string {
	switch sep {
	case "", " ", "\t", `\s+`:
		return strings.Fields
	}
	return func(s string) []string {
		fields := strings.Split(s, sep)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		return fields
	}
}

// parseValue treats the usual missing markers as NaN.
func parseValue(s string) (float64, error) {
	switch s {
	case "", "NA", "NaN", "nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func writeSummary(w io.Writer, name string, f *Frame) {
	rule := strings.Repeat("-", 30)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, center(name, 30, '-'), rule)
	fmt.Fprintf(w, "Number of rows : %d\n", f.Len())
	fmt.Fprintf(w, "Number of columns : %d\n", f.Width())
	fmt.Fprintln(w, rule)
	for _, c := range f.Columns() {
		fmt.Fprintf(w, "%-12s float64\n", c)
	}
}

func center(s string, width int, pad rune) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), right)
}
