// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantError bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"INFO", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, true},
		{"none", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger, f, err := New(tt.level, "", &buf)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if f != nil {
				t.Errorf("New() file = %v, want nil", f)
			}

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Error("error message")

			out := buf.String()
			for msg, want := range map[string]bool{
				"debug message": tt.wantDebug,
				"info message":  tt.wantInfo,
				"error message": tt.wantError,
			} {
				if got := strings.Contains(out, msg); got != want {
					t.Errorf("output contains %q = %v, want %v", msg, got, want)
				}
			}
		})
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	t.Parallel()

	if _, _, err := New("verbose", "", &bytes.Buffer{}); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("New() error = %v, want %v", err, ErrUnknownLevel)
	}
}

func TestNew_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pcmsink.log")
	var console bytes.Buffer

	logger, f, err := New("info", path, &console)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if f == nil {
		t.Fatal("New() file = nil, want the opened log file")
	}

	logger.Info("encoded", "bytes", 42)
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if console.Len() != 0 {
		t.Errorf("console received %q, want nothing", console.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, data)
	}
	if rec["msg"] != "encoded" || rec["bytes"] != float64(42) {
		t.Errorf("record = %v", rec)
	}
}

func TestNew_BadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "pcmsink.log")
	if _, _, err := New("info", path, &bytes.Buffer{}); err == nil {
		t.Error("New() error = nil for a file in a missing directory")
	}
}
