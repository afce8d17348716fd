package core

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestTraceBuffer_ZeroValue(t *testing.T) {
	var b TraceBuffer
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.Cap() != Capacity {
		t.Errorf("Cap() = %d, want %d", b.Cap(), Capacity)
	}
	if b.View() != "" {
		t.Errorf("View() = %q, want empty", b.View())
	}
	for i, c := range b.buffer {
		if c != 0 {
			t.Fatalf("buffer[%d] = %d, want 0", i, c)
		}
	}
}

func TestFormat(t *testing.T) {
	b := Format("Hello %s!", "World")
	const want = "Hello World!"

	if b.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", b.Len(), len(want))
	}
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
	if b.Truncated() {
		t.Error("short message must not be truncated")
	}
}

func TestFormat_Lengths(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"one", 1},
		{"below capacity", Capacity - 1},
		{"at capacity", Capacity},
		{"above capacity", Capacity + 1},
		{"far above capacity", 3 * Capacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Repeat("x", tt.n)
			b := Format("%s", input)

			want := input
			if len(want) > Capacity {
				want = want[:Capacity]
			}
			if b.Len() != len(want) {
				t.Errorf("Len() = %d, want %d", b.Len(), len(want))
			}
			if b.View() != want {
				t.Errorf("content is not the %d byte prefix of the input", len(want))
			}
			if got := b.Truncated(); got != (tt.n > Capacity) {
				t.Errorf("Truncated() = %v for %d bytes", got, tt.n)
			}
		})
	}
}

func TestTraceBuffer_FragmentWrites(t *testing.T) {
	var b TraceBuffer
	chunk := strings.Repeat("ab", 100)
	var full strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString(chunk)
		full.WriteString(chunk)
	}

	if b.Len() != Capacity {
		t.Fatalf("Len() = %d, want %d", b.Len(), Capacity)
	}
	if b.View() != full.String()[:Capacity] {
		t.Error("fragmented writes did not produce the capacity prefix")
	}

	// Further writes are dropped without error.
	n, err := b.Write([]byte("more"))
	if n != 4 || err != nil {
		t.Errorf("Write() = %d, %v; want 4, nil", n, err)
	}
	if b.Len() != Capacity {
		t.Errorf("Len() changed after overflow: %d", b.Len())
	}
}

func TestTraceBuffer_TruncatesOnRuneBoundary(t *testing.T) {
	// Fill to one byte short of capacity, then write a 3-byte rune.
	var b TraceBuffer
	b.WriteString(strings.Repeat("a", Capacity-1))
	b.WriteString("€")

	if b.Len() != Capacity-1 {
		t.Errorf("Len() = %d, want %d", b.Len(), Capacity-1)
	}
	if !utf8.Valid(b.Bytes()) {
		t.Error("truncated content is not valid UTF-8")
	}
	if !b.Truncated() {
		t.Error("expected buffer to be sealed after cutting a rune")
	}

	// A byte that would still fit must not be appended after the cut.
	b.WriteString("z")
	if b.Len() != Capacity-1 {
		t.Errorf("write after truncation was not dropped, Len() = %d", b.Len())
	}
}

func TestTraceBuffer_RepairsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		write func(b *TraceBuffer)
		want  string
	}{
		{"Appendf bytes", func(b *TraceBuffer) { b.Appendf("bad %s byte", []byte{0xff}) }, "bad \uFFFD byte"},
		{"WriteString", func(b *TraceBuffer) { b.WriteString("x\xc3") }, "x\uFFFD"},
		{"Write", func(b *TraceBuffer) { b.Write([]byte{'a', 0x80, 0x80, 'b'}) }, "a\uFFFDb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b TraceBuffer
			tt.write(&b)
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Errorf("content mismatch (-want +got):\n%s", diff)
			}
			if b.Truncated() {
				t.Error("repair must not seal the buffer")
			}
		})
	}
}

func TestTraceBuffer_RepairsInvalidUTF8OnOverflow(t *testing.T) {
	b := Format("%s\xff", strings.Repeat("a", Capacity))
	if !utf8.Valid(b.Bytes()) {
		t.Fatal("result is not valid UTF-8")
	}
	if b.View() != strings.Repeat("a", Capacity) {
		t.Errorf("unexpected content of length %d", b.Len())
	}
}

func TestFormat_MultiByteOverflow(t *testing.T) {
	input := strings.Repeat("日本語", Capacity)
	b := Format("%s", input)

	if !utf8.Valid(b.Bytes()) {
		t.Fatal("result is not valid UTF-8")
	}
	if !strings.HasPrefix(input, b.View()) {
		t.Fatal("result is not a prefix of the input")
	}
	if Capacity-b.Len() >= utf8.UTFMax {
		t.Errorf("prefix is not the longest code-point-aligned one: %d of %d", b.Len(), Capacity)
	}
}

func TestTraceBuffer_AppendfAfterPrefix(t *testing.T) {
	var b TraceBuffer
	b.WriteString("DEBUG: ")
	b.Appendf("%d + %d = %d", 1, 2, 3)
	b.WriteString("\r\n")

	if diff := cmp.Diff("DEBUG: 1 + 2 = 3\r\n", b.String()); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestTraceBuffer_Reset(t *testing.T) {
	b := Format("%s", strings.Repeat("x", Capacity+10))
	b.Reset()
	if b.Len() != 0 || b.Truncated() {
		t.Errorf("Reset() left Len()=%d Truncated()=%v", b.Len(), b.Truncated())
	}
	b.WriteString("again")
	if b.String() != "again" {
		t.Errorf("String() = %q after reset", b.String())
	}
}

func TestTraceBufferPool(t *testing.T) {
	b1 := GetTraceBuffer()
	if b1 == nil {
		t.Fatal("GetTraceBuffer() returned nil")
	}
	b1.WriteString(strings.Repeat("x", Capacity+1))
	PutTraceBuffer(b1)

	b2 := GetTraceBuffer()
	if b2.Len() != 0 || b2.Truncated() {
		t.Errorf("pooled buffer not reset: Len()=%d Truncated()=%v", b2.Len(), b2.Truncated())
	}
	PutTraceBuffer(b2)
	PutTraceBuffer(nil)
}

func BenchmarkFormat(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tb := GetTraceBuffer()
		tb.Appendf("Hello, %s! %d", "World", i)
		PutTraceBuffer(tb)
	}
}

func BenchmarkFormatOverflow(b *testing.B) {
	long := strings.Repeat("x", 2*Capacity)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tb := GetTraceBuffer()
		tb.WriteString(long)
		PutTraceBuffer(tb)
	}
}
