package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewConsoleLoggerNormalizesLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel string
	}{
		{name: "valid level kept", level: "debug", wantLevel: "debug"},
		{name: "mixed case normalized", level: "WaRn", wantLevel: "warn"},
		{name: "surrounding spaces trimmed", level: " error ", wantLevel: "error"},
		{name: "empty defaults to info", level: "", wantLevel: "info"},
		{name: "unknown defaults to info", level: "verbose", wantLevel: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cl := NewConsoleLogger(&buf, tt.level)
			if cl.logLevel != tt.wantLevel {
				t.Errorf("logLevel = %q, want %q", cl.logLevel, tt.wantLevel)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		log        func(cl *ConsoleLogger)
		wantOutput bool
	}{
		{
			name:       "debug suppressed at info",
			configured: "info",
			log:        func(cl *ConsoleLogger) { cl.Debugf("hidden") },
			wantOutput: false,
		},
		{
			name:       "info emitted at info",
			configured: "info",
			log:        func(cl *ConsoleLogger) { cl.Infof("visible") },
			wantOutput: true,
		},
		{
			name:       "warn emitted at info",
			configured: "info",
			log:        func(cl *ConsoleLogger) { cl.Warnf("visible") },
			wantOutput: true,
		},
		{
			name:       "info suppressed at error",
			configured: "error",
			log:        func(cl *ConsoleLogger) { cl.Infof("hidden") },
			wantOutput: false,
		},
		{
			name:       "error always emitted",
			configured: "error",
			log:        func(cl *ConsoleLogger) { cl.Errorf("visible") },
			wantOutput: true,
		},
		{
			name:       "debug emitted at debug",
			configured: "debug",
			log:        func(cl *ConsoleLogger) { cl.Debugf("visible") },
			wantOutput: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cl := NewConsoleLogger(&buf, tt.configured)
			tt.log(cl)

			if got := buf.Len() > 0; got != tt.wantOutput {
				t.Errorf("output present = %v, want %v (output %q)", got, tt.wantOutput, buf.String())
			}
		})
	}
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")
	cl.Infof("rendered %d of %d", 3, 10)

	got := buf.String()
	if !strings.Contains(got, "[INFO] rendered 3 of 10") {
		t.Errorf("output = %q, want level tag and formatted message", got)
	}
	if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "\n") {
		t.Errorf("output = %q, want timestamp prefix and trailing newline", got)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	cl := NewConsoleLogger(nil, "debug")

	// Must not panic.
	cl.Debugf("dropped")
	cl.Errorf("dropped")
}

func TestBufferWriterHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")
	cl.Warnf("plain")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("output = %q, want no ANSI sequences for a non-terminal writer", buf.String())
	}
}
