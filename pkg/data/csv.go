package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const csvExt = ".csv"

// WriteCSV writes the frame with a header row. NaN is written as an empty field.
func WriteCSV(w io.Writer, f *Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Columns()); err != nil {
		return err
	}
	record := make([]string, f.Width())
	for i := 0; i < f.Len(); i++ {
		for j, col := range f.values {
			v := col[i]
			if math.IsNaN(v) {
				record[j] = ""
				continue
			}
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes one <name>.csv file per dataset into dir.
func SaveCSV(c *Collection, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, name := range c.Names() {
		f, _ := c.Get(name)
		if err := saveOne(filepath.Join(dir, name+csvExt), f); err != nil {
			return fmt.Errorf("saving %s: %w", name, err)
		}
	}
	return nil
}

func saveOne(path string, f *Frame) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(fh, f); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// ReadCSV reads a frame written by WriteCSV; the first record is the header.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedRow)
	}
	if err != nil {
		return nil, err
	}
	values := make([][]float64, len(header))
	for j := range values {
		values[j] = []float64{}
	}
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		for j, s := range rec {
			v, err := parseValue(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %q", ErrMalformedRow, line, header[j], s)
			}
			values[j] = append(values[j], v)
		}
	}
	return NewFrame(header, values)
}

// LoadCSV reads every .csv file in dir, keyed by file name without extension.
func LoadCSV(dir string) (*Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	c := NewCollection()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), csvExt) {
			continue
		}
		f, err := ReadCSVFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		c.Put(strings.TrimSuffix(e.Name(), csvExt), f)
	}
	return c, nil
}

// ReadCSVFile opens and parses a single CSV file.
func ReadCSVFile(path string) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	f, err := ReadCSV(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return f, nil
}
