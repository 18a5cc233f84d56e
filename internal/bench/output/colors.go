package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for the elements of a summary.
type ColorScheme struct {
	Header     *color.Color
	Title      *color.Color
	Label      *color.Color
	Variant    *color.Color
	Complexity *color.Color
	Timing     *color.Color
	Fastest    *color.Color
	Agree      *color.Color
	Disagree   *color.Color
	Muted      *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:     color.New(color.FgCyan),
		Title:      color.New(color.Bold),
		Label:      color.New(color.FgYellow),
		Variant:    color.New(color.FgWhite, color.Bold),
		Complexity: color.New(color.FgMagenta),
		Timing:     color.New(color.FgBlue),
		Fastest:    color.New(color.FgGreen, color.Bold),
		Agree:      color.New(color.FgGreen),
		Disagree:   color.New(color.FgRed, color.Bold),
		Muted:      color.New(color.Faint),
	}
}

func (s *ColorScheme) all() []*color.Color {
	return []*color.Color{
		s.Header, s.Title, s.Label, s.Variant, s.Complexity,
		s.Timing, s.Fastest, s.Agree, s.Disagree, s.Muted,
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range scheme.all() {
		c.DisableColor()
	}
	return scheme
}

// ForcedColorScheme returns a color scheme that emits escape codes even when
// the process is not attached to a terminal.
func ForcedColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range scheme.all() {
		c.EnableColor()
	}
	return scheme
}
