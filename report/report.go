// Package report prints the runs found by a scan.
package report

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/signadot/floatrun/scan"
)

var ErrFormat = errors.New("unknown report format")

// Format names.
const (
	Text  = "text"
	YAML  = "yaml"
	JSONL = "jsonl"
)

// Formats lists the supported format names.
func Formats() []string {
	return []string{Text, YAML, JSONL}
}

// Header describes an input before its runs are written.
type Header struct {
	Source    string `json:"source" yaml:"source"`
	Bytes     int    `json:"bytes" yaml:"bytes"`
	Generated bool   `json:"generated,omitempty" yaml:"generated,omitempty"`
	Type      string `json:"type" yaml:"type"`
}

// Entry is one run, with values formatted for printing.
type Entry struct {
	Source string `json:"source" yaml:"source"`
	Offset int    `json:"offset" yaml:"offset"`
	Count  int    `json:"count" yaml:"count"`
	Values Values `json:"values" yaml:"values,flow"`
}

// Summary follows the runs of one input.
type Summary struct {
	Source     string `json:"source" yaml:"source"`
	Runs       int    `json:"runs" yaml:"runs"`
	Bytes      int    `json:"bytes" yaml:"bytes"`
	Unconsumed int    `json:"unconsumed" yaml:"unconsumed"`
	Discarded  int    `json:"discarded" yaml:"discarded"`
}

// FromRun converts a run found in source.
func FromRun[V scan.Number](source string, r *scan.Run[V]) Entry {
	vs := make(Values, len(r.Values))
	for i, v := range r.Values {
		vs[i] = FormatValue(v)
	}
	return Entry{
		Source: source,
		Offset: r.Offset,
		Count:  len(r.Values),
		Values: vs,
	}
}

// FromStats builds the summary of a finished scan.
func FromStats(source string, size int, st scan.Stats) Summary {
	return Summary{
		Source:     source,
		Runs:       st.Runs,
		Bytes:      size,
		Unconsumed: st.Unconsumed,
		Discarded:  st.Discarded,
	}
}

// Writer writes one or more inputs' worth of runs, each bracketed by
// Begin and End.
type Writer interface {
	Begin(Header) error
	Write(Entry) error
	End(Summary) error
}

type writerOpts struct {
	colors   *Colors
	bodyOnly bool
}

// WriterOpt configures a Writer.
type WriterOpt func(*writerOpts)

// WithColors colors text output. It has no effect on other formats.
func WithColors(c *Colors) WriterOpt {
	return func(o *writerOpts) {
		o.colors = c
	}
}

// BodyOnly drops the lines text output prints at Begin, leaving only runs
// and the closing count. Reports of different inputs then compare equal
// when their runs do.
func BodyOnly() WriterOpt {
	return func(o *writerOpts) {
		o.bodyOnly = true
	}
}

// NewWriter returns a Writer for the named format.
func NewWriter(format string, w io.Writer, opts ...WriterOpt) (Writer, error) {
	opt := &writerOpts{}
	for _, o := range opts {
		o(opt)
	}
	switch format {
	case Text, "":
		return newTextWriter(w, opt.colors, opt.bodyOnly), nil
	case YAML:
		return newYAMLWriter(w), nil
	case JSONL:
		return newJSONLWriter(w), nil
	}
	return nil, fmt.Errorf("%w %q (want one of %v)", ErrFormat, format, Formats())
}

// ValidFormat reports whether name is a supported format.
func ValidFormat(name string) bool {
	return slices.Contains(Formats(), name)
}
