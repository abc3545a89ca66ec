package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetLevel_FiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetLevel(Notice)

	logger := New("test")

	tests := []struct {
		name    string
		level   Level
		log     func()
		visible bool
	}{
		{"debug hidden at info", Info, func() { logger.Debug("debug record") }, false},
		{"info shown at info", Info, func() { logger.Info("info record") }, true},
		{"info hidden at notice", Notice, func() { logger.Info("info record") }, false},
		{"notice shown at notice", Notice, func() { logger.Notice("notice record") }, true},
		{"debug shown at debug", Debug, func() { logger.Debugf("%s record", "debug") }, true},
		{"warning hidden at error", Error, func() { logger.Warning("warning record") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			SetLevel(tt.level)
			tt.log()
			if got := buf.Len() > 0; got != tt.visible {
				t.Errorf("Expected visible=%v, got output %q", tt.visible, buf.String())
			}
		})
	}
}

func TestNewPrintfLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLevel(Info)
	SetSink(&buf)
	defer SetLevel(Notice)

	NewPrintfLogger("render").Printf("Rendered %d%%\n", 50)

	out := buf.String()
	if !strings.Contains(out, "[render]") || !strings.Contains(out, "Rendered 50%") {
		t.Errorf("Expected module and message in output, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected exactly one line, got %q", out)
	}
}

func TestSetSink_KeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLevel(Warning)
	SetSink(&buf)
	defer SetLevel(Notice)

	logger := New("sink")
	logger.Notice("notice record")
	if buf.Len() != 0 {
		t.Errorf("Expected notice to stay hidden at warning, got %q", buf.String())
	}
	logger.Error("error record")
	if !strings.Contains(buf.String(), "error record") {
		t.Errorf("Expected error record in output, got %q", buf.String())
	}
}

func TestSetLevel_IgnoresUnknown(t *testing.T) {
	var buf bytes.Buffer
	SetLevel(Info)
	SetSink(&buf)
	defer SetLevel(Notice)

	SetLevel(Level(42))
	New("unknown").Info("info record")
	if !strings.Contains(buf.String(), "info record") {
		t.Errorf("Expected the Info level to survive an unknown level, got %q", buf.String())
	}
}
