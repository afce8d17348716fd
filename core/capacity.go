//go:build !ntrace_small

package core

// Capacity is the number of bytes a TraceBuffer can hold
const Capacity = 1024
