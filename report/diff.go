package report

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares two text reports line by line. Lines only in a are
// prefixed with "- ", lines only in b with "+ ", and common lines with two
// spaces. The second result reports whether the reports differ.
func Diff(a, b string, c *Colors) (string, bool) {
	if c == nil {
		c = NoColors()
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var (
		out     strings.Builder
		changed bool
	)
	for _, d := range diffs {
		prefix, paint := "  ", c.Summary
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, paint, changed = "+ ", c.Insert, true
		case diffpatch.DiffDelete:
			prefix, paint, changed = "- ", c.Delete, true
		case diffpatch.DiffEqual:
			paint = plain
		}
		for _, ln := range splitLines(d.Text) {
			out.WriteString(paint("%s", prefix+ln))
			out.WriteByte('\n')
		}
	}
	return out.String(), changed
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
