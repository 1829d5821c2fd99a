package report

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors holds the functions used to decorate text output.
type Colors struct {
	Count   func(string, ...any) string
	Offset  func(string, ...any) string
	Value   func(string, ...any) string
	Summary func(string, ...any) string
	Insert  func(string, ...any) string
	Delete  func(string, ...any) string
}

func plain(format string, a ...any) string {
	if len(a) == 0 {
		return format
	}
	return fmt.Sprintf(format, a...)
}

// NoColors returns Colors that leave text unchanged.
func NoColors() *Colors {
	return &Colors{
		Count:   plain,
		Offset:  plain,
		Value:   plain,
		Summary: plain,
		Insert:  plain,
		Delete:  plain,
	}
}

// NewColors returns terminal colors. If force is set, colors are emitted
// even when fatih/color has detected that stdout is not a terminal.
func NewColors(force bool) *Colors {
	mk := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		if force {
			c.EnableColor()
		}
		return c.SprintfFunc()
	}
	return &Colors{
		Count:   mk(color.FgCyan, color.Bold),
		Offset:  mk(color.FgYellow),
		Value:   mk(color.FgGreen),
		Summary: mk(color.FgMagenta),
		Insert:  mk(color.FgGreen),
		Delete:  mk(color.FgRed),
	}
}
