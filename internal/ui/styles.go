package ui

import "fmt"

// ANSI256 color codes.
const (
	colorAccent = 74  // blue, ids and labels
	colorValue  = 250 // light gray, values
	colorMuted  = 245 // medium gray, secondary text
	colorWarn   = 178 // amber, change-insert prompts
	colorError  = 167 // red
)

var noColor bool

func render(code int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, s)
}

// RenderAccent returns s in the accent (blue) color.
func RenderAccent(s string) string { return render(colorAccent, s) }

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string { return render(colorMuted, s) }

// RenderValue returns s styled as a field value (light gray).
func RenderValue(s string) string { return render(colorValue, s) }

// RenderWarn returns s in the warning (amber) color.
func RenderWarn(s string) string { return render(colorWarn, s) }

// RenderError returns s in the error (red) color.
func RenderError(s string) string { return render(colorError, s) }

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
