//go:build ntrace_nocolor

package formatter

// ColorEnabled reports whether decorations carry ANSI colour escapes
const ColorEnabled = false
