package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

type textWriter struct {
	w        io.Writer
	colors   *Colors
	bodyOnly bool
}

func newTextWriter(w io.Writer, c *Colors, bodyOnly bool) *textWriter {
	if c == nil {
		c = NoColors()
	}
	return &textWriter{w: w, colors: c, bodyOnly: bodyOnly}
}

func (t *textWriter) Begin(h Header) error {
	if t.bodyOnly {
		return nil
	}
	var err error
	if h.Generated {
		_, err = fmt.Fprintf(t.w, "No input provided. Generating %d bytes of sample data.\n", h.Bytes)
	} else {
		_, err = fmt.Fprintf(t.w, "Loading %s\n", h.Source)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(t.w, "Searching in %s of data.\n", t.colors.Summary(Size(h.Bytes)))
	return err
}

func (t *textWriter) Write(e Entry) error {
	_, err := fmt.Fprintln(t.w, FormatEntry(e, t.colors))
	return err
}

func (t *textWriter) End(s Summary) error {
	_, err := fmt.Fprintf(t.w, "Found %s ranges.\n", t.colors.Summary(strconv.Itoa(s.Runs)))
	return err
}

// FormatEntry renders e on one line:
//
//	3 values at 0x00000000000010: [-1 -2.5 -3]
func FormatEntry(e Entry, c *Colors) string {
	if c == nil {
		c = NoColors()
	}
	var b strings.Builder
	b.WriteString(c.Count(strconv.Itoa(e.Count)))
	b.WriteString(" values at ")
	b.WriteString(c.Offset(fmt.Sprintf("0x%014x", e.Offset)))
	b.WriteString(": [")
	for i, v := range e.Values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Value(string(v)))
	}
	b.WriteByte(']')
	return b.String()
}

// Size renders a byte count for people, e.g. "4.2 MB (4194304 bytes)".
func Size(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d bytes", n)
	}
	return fmt.Sprintf("%s (%d bytes)", humanize.Bytes(uint64(n)), n)
}
