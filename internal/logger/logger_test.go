package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level     Level
		wantDebug bool
		wantInfo  bool
	}{
		{LevelOff, false, false},
		{LevelNormal, false, true},
		{LevelVerbose, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)

			log.Debug("debug %d", 1)
			if got := strings.Contains(buf.String(), "debug 1"); got != tt.wantDebug {
				t.Fatalf("debug visible=%v, want %v (out=%q)", got, tt.wantDebug, buf.String())
			}

			log.Info("info %s", "two")
			if got := strings.Contains(buf.String(), "info two"); got != tt.wantInfo {
				t.Fatalf("info visible=%v, want %v (out=%q)", got, tt.wantInfo, buf.String())
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelOff, &buf)

	log.Error("hidden")
	log.SetLevel(LevelNormal)
	if log.GetLevel() != LevelNormal {
		t.Fatalf("expected normal level, got %s", log.GetLevel())
	}
	log.Error("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("message logged while off: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "ERROR") {
		t.Fatalf("expected ERROR line, got %q", out)
	}
}
