package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	symCheck = "✔"
	symCross = "✖"
)

// Out and Err are where OK and Fail write. Tests swap them.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// SetNoColor turns color off when disable is set. Otherwise fatih/color's
// own tty and NO_COLOR detection stands.
func SetNoColor(disable bool) {
	if disable {
		color.NoColor = true
	}
}

// C paints s with c, or returns s unchanged when c is nil.
func C(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func OK(msg string)   { fmt.Fprintln(Out, C(Current().Success, symCheck+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Err, C(Current().Error, symCross+" "+msg)) }

// Warn is for recoverable problems: the command went through, something else did not.
func Warn(msg string) { fmt.Fprintln(Err, C(Current().Pending, "! "+msg)) }
