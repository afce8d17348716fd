package formatter

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/philipp01105/ntrace/core"
)

func pick(color, plain string) string {
	if ColorEnabled {
		return color
	}
	return plain
}

func TestRender_Levels(t *testing.T) {
	tests := []struct {
		level core.Level
		want  string
	}{
		{core.DebugLevel, pick("\x1b[35mDEBUG: Hello, World!\x1b[0m\r\n", "DEBUG: Hello, World!\r\n")},
		{core.InfoLevel, pick("\x1b[32mINFO: Hello, World!\x1b[0m\r\n", "INFO: Hello, World!\r\n")},
		{core.WarningLevel, pick("\x1b[33mWARNING: Hello, World!\x1b[0m\r\n", "WARNING: Hello, World!\r\n")},
		{core.ErrorLevel, pick("\x1b[31mERROR: Hello, World!\x1b[0m\r\n", "ERROR: Hello, World!\r\n")},
		{core.PanicLevel, pick("\x1b[31mPANIC: Hello, World!\x1b[0m\r\n", "PANIC: Hello, World!\r\n")},
		{core.NoLevel, "Hello, World!"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf core.TraceBuffer
			Render(&buf, ForLevel(tt.level), "Hello, %s!", "World")
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_Newline(t *testing.T) {
	var buf core.TraceBuffer
	Render(&buf, Newline(), "Hello, World!")
	want := pick("\x1b[0mHello, World!\r\n", "Hello, World!\r\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_DecorationCountsAgainstCapacity(t *testing.T) {
	var buf core.TraceBuffer
	dec := ForLevel(core.ErrorLevel)
	body := strings.Repeat("x", core.Capacity)
	Render(&buf, dec, "%s", body)

	if buf.Len() != core.Capacity {
		t.Fatalf("Len() = %d, want %d", buf.Len(), core.Capacity)
	}
	if !strings.HasPrefix(buf.View(), dec.Prefix) {
		t.Error("prefix missing from truncated output")
	}
	if strings.HasSuffix(buf.View(), "\r\n") {
		t.Error("suffix should have been truncated away")
	}
}

func TestForLevel_Unknown(t *testing.T) {
	if d := ForLevel(core.Level(99)); d.Len() != 0 {
		t.Errorf("unknown level got decoration %+v", d)
	}
}

func TestUndecorate(t *testing.T) {
	for _, level := range []core.Level{core.DebugLevel, core.InfoLevel, core.WarningLevel, core.ErrorLevel, core.PanicLevel} {
		var buf core.TraceBuffer
		Render(&buf, ForLevel(level), "disk %d%% full", 93)
		if got := Undecorate(level, buf.View()); got != "disk 93% full" {
			t.Errorf("Undecorate(%v) = %q", level, got)
		}
	}

	var buf core.TraceBuffer
	Render(&buf, Newline(), "plain line")
	if got := Undecorate(core.NoLevel, buf.View()); got != "plain line" {
		t.Errorf("Undecorate(newline) = %q", got)
	}
	if got := Undecorate(core.NoLevel, "raw"); got != "raw" {
		t.Errorf("Undecorate(raw) = %q", got)
	}
}

func TestUndecorate_TruncatedSuffix(t *testing.T) {
	dec := ForLevel(core.InfoLevel)
	// Leave room for all but the last byte of the suffix.
	body := strings.Repeat("b", core.Capacity-dec.Len()+1)

	var buf core.TraceBuffer
	Render(&buf, dec, "%s", body)
	if !buf.Truncated() {
		t.Fatal("expected the suffix to be truncated")
	}
	if got := Undecorate(core.InfoLevel, buf.View()); got != body {
		t.Errorf("Undecorate() kept %d bytes, want %d", len(got), len(body))
	}
}

func TestUndecorate_KeepsShortTrailingBytes(t *testing.T) {
	tests := []struct {
		level core.Level
		msg   string
		want  string
	}{
		{core.NoLevel, "x\r", "x\r"},
		{core.InfoLevel, ForLevel(core.InfoLevel).Prefix + "x\r", "x\r"},
	}
	for _, tt := range tests {
		if got := Undecorate(tt.level, tt.msg); got != tt.want {
			t.Errorf("Undecorate(%v, %q) = %q, want %q", tt.level, tt.msg, got, tt.want)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	dec := ForLevel(core.InfoLevel)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := core.GetTraceBuffer()
		Render(buf, dec, "request %d handled", i)
		core.PutTraceBuffer(buf)
	}
}
