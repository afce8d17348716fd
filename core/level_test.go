package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{NoLevel, "NONE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{PanicLevel, "PANIC"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	order := []Level{NoLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, PanicLevel}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("expected %v < %v", order[i-1], order[i])
		}
	}
}

func TestLevel_Valid(t *testing.T) {
	if !ErrorLevel.Valid() || !NoLevel.Valid() {
		t.Error("defined levels must be valid")
	}
	if Level(-2).Valid() || Level(PanicLevel+1).Valid() {
		t.Error("undefined levels must not be valid")
	}
}
