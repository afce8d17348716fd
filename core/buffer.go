package core

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
	"unsafe"
)

// TraceBuffer is a fixed-capacity text buffer. Anything written past
// Capacity bytes is cut off.
//
// The zero value is an empty buffer ready to use.
type TraceBuffer struct {
	length int
	sealed bool
	buffer [Capacity]byte
}

// Format renders format and args into a new TraceBuffer, truncating the
// output to Capacity bytes.
func Format(format string, args ...any) TraceBuffer {
	var b TraceBuffer
	b.Appendf(format, args...)
	return b
}

// Write appends p, truncating it if the buffer is full. It always
// reports len(p) bytes written and a nil error: truncation is not a
// failure.
// Each call is validated on its own, so a code point split across two
// calls is replaced with U+FFFD.
func (b *TraceBuffer) Write(p []byte) (int, error) {
	b.writeString(unsafe.String(unsafe.SliceData(p), len(p)))
	return len(p), nil
}

// WriteString is like Write, but for strings.
func (b *TraceBuffer) WriteString(s string) (int, error) {
	b.writeString(s)
	return len(s), nil
}

// Appendf formats according to format and appends the result, truncating
// it if the buffer is full.
func (b *TraceBuffer) Appendf(format string, args ...any) {
	if b.sealed {
		return
	}
	avail := Capacity - b.length
	// Output that fits lands directly in the free tail of the array.
	out := fmt.Appendf(b.buffer[b.length:b.length:Capacity], format, args...)
	if len(out) <= avail && utf8.Valid(out) {
		b.length += len(out)
		return
	}
	// fmt grew a new array, or the output needs repair; writeString copies
	// what fits.
	b.writeString(unsafe.String(unsafe.SliceData(out), len(out)))
}

// writeString appends s, replacing invalid UTF-8 with U+FFFD so the held
// text is always valid.
func (b *TraceBuffer) writeString(s string) {
	if b.sealed || len(s) == 0 {
		return
	}
	if !utf8.ValidString(s) {
		// Allocates a repaired copy; s may alias the free tail.
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	avail := Capacity - b.length
	if len(s) <= avail {
		b.length += copy(b.buffer[b.length:], s)
		return
	}
	cut := runeBoundary(s, avail)
	b.length += copy(b.buffer[b.length:], s[:cut])
	b.sealed = true
}

// runeBoundary returns the largest i <= n such that s[:i] does not end in
// a partial UTF-8 sequence. s must be valid UTF-8 and n less than len(s).
func runeBoundary(s string, n int) int {
	for i := n; i > 0; i-- {
		if utf8.RuneStart(s[i]) {
			return i
		}
	}
	return 0
}

// Len returns the number of bytes held.
func (b *TraceBuffer) Len() int { return b.length }

// Cap returns Capacity.
func (b *TraceBuffer) Cap() int { return Capacity }

// Truncated reports whether any write has been cut short.
func (b *TraceBuffer) Truncated() bool { return b.sealed }

// Bytes returns the held bytes. The slice aliases the buffer.
func (b *TraceBuffer) Bytes() []byte { return b.buffer[:b.length] }

// View returns the held text without copying. The string aliases the
// buffer and is only valid until the buffer is written to, reset, or
// returned to the pool.
func (b *TraceBuffer) View() string {
	if b.length == 0 {
		return ""
	}
	return unsafe.String(&b.buffer[0], b.length)
}

// String returns a copy of the held text.
func (b *TraceBuffer) String() string {
	return string(b.buffer[:b.length])
}

// Reset empties the buffer and clears the truncated state.
func (b *TraceBuffer) Reset() {
	b.length = 0
	b.sealed = false
}

// traceBufferPool is a pool of TraceBuffer objects to avoid a heap
// allocation per emitted message
var traceBufferPool = sync.Pool{
	New: func() interface{} {
		return new(TraceBuffer)
	},
}

// GetTraceBuffer retrieves an empty TraceBuffer from the pool
func GetTraceBuffer() *TraceBuffer {
	b := traceBufferPool.Get().(*TraceBuffer)
	b.Reset()
	return b
}

// PutTraceBuffer returns a TraceBuffer to the pool. Any View taken from
// it is invalid afterwards.
func PutTraceBuffer(b *TraceBuffer) {
	if b == nil {
		return
	}
	traceBufferPool.Put(b)
}
