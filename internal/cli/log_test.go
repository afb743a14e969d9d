package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("generated panel", "holes", 10)

	out := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(out) {
		t.Errorf("output %q does not start with an HH:MM:SS.ms timestamp", out)
	}
	if !strings.Contains(out, "holes=10") {
		t.Errorf("output %q is missing the structured field", out)
	}
}

func TestProgressLogsAtDebug(t *testing.T) {
	tests := []struct {
		level log.Level
		want  bool
	}{
		{log.InfoLevel, false},
		{log.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			newProgress(newLogger(&buf, tt.level)).done("Generated 10 holes")

			out := buf.String()
			if got := strings.Contains(out, "Generated 10 holes ("); got != tt.want {
				t.Errorf("progress line logged = %v, want %v (output %q)", got, tt.want, out)
			}
			if tt.want && !regexp.MustCompile(`\(\d+(\.\d+)?[µnm]?s\)`).MatchString(out) {
				t.Errorf("output %q does not end with the elapsed time", out)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext() did not return the attached logger")
	}
}

func TestGenerateLogging(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		wantDetails bool
	}{
		{"default", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateCache(t)
			var buf bytes.Buffer
			c := New(&buf, LogInfo)
			if tt.verbose {
				c.SetLogLevel(LogDebug)
			}

			root := c.RootCommand()
			root.SetArgs([]string{"generate", "--no-cache", "--shuffle=false",
				"-o", filepath.Join(t.TempDir(), "panel.svg")})
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("generate error: %v", err)
			}

			out := buf.String()
			if !strings.Contains(out, "generated panel") {
				t.Errorf("log %q is missing the generated panel entry", out)
			}
			if got := strings.Contains(out, "Generated 10 holes ("); got != tt.wantDetails {
				t.Errorf("progress line logged = %v, want %v", got, tt.wantDetails)
			}
		})
	}
}
