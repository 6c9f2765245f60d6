package shared

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestFormatRange(t *testing.T) {
	tc := []struct {
		name       string
		start, end uint
		want       string
	}{
		{name: "full song", start: 99, end: 0, want: "99..0"},
		{name: "single verse", start: 7, end: 7, want: "7..7"},
		{name: "zero", start: 0, end: 0, want: "0..0"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRange(tt.start, tt.end); got != tt.want {
				t.Errorf("FormatRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Error("expected unique IDs")
	}
	if len(a) != 36 {
		t.Errorf("expected UUID string, got %q", a)
	}
}

func TestLoggers(t *testing.T) {
	t.Run("NewLogger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		logger.Info("hello")
		if buf.Len() == 0 {
			t.Error("expected log output")
		}
	})

	t.Run("NewFileLogger creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "test.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("failed to create file logger: %v", err)
		}
		logger.Info("hello")

		if _, err := NewFileLogger(path); err != nil {
			t.Errorf("reopening existing log file should succeed: %v", err)
		}
	})
}
