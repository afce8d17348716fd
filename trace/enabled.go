//go:build !ntrace_disable

package trace

// Enabled reports whether emission is compiled in
const Enabled = true
