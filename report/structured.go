package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// record is one document of structured output.
type record struct {
	Input   *Header  `json:"input,omitempty" yaml:"input,omitempty"`
	Run     *Entry   `json:"run,omitempty" yaml:"run,omitempty"`
	Summary *Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// yamlWriter starts every document with a separator, so that the output
// of several writers can be concatenated into one stream.
type yamlWriter struct {
	w io.Writer
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	return &yamlWriter{w: w}
}

func (y *yamlWriter) put(r record) error {
	d, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	if _, err := io.WriteString(y.w, "---\n"); err != nil {
		return err
	}
	_, err = y.w.Write(d)
	return err
}

func (y *yamlWriter) Begin(h Header) error { return y.put(record{Input: &h}) }
func (y *yamlWriter) Write(e Entry) error { return y.put(record{Run: &e}) }
func (y *yamlWriter) End(s Summary) error { return y.put(record{Summary: &s}) }

type jsonlWriter struct {
	enc *json.Encoder
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	return &jsonlWriter{enc: json.NewEncoder(w)}
}

func (j *jsonlWriter) Begin(h Header) error { return j.enc.Encode(record{Input: &h}) }
func (j *jsonlWriter) Write(e Entry) error { return j.enc.Encode(record{Run: &e}) }
func (j *jsonlWriter) End(s Summary) error { return j.enc.Encode(record{Summary: &s}) }
