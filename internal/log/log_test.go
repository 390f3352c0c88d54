package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    cblog.Level
		wantErr bool
	}{
		{input: "debug", want: cblog.DebugLevel},
		{input: "INFO", want: cblog.InfoLevel},
		{input: " warn ", want: cblog.WarnLevel},
		{input: "error", want: cblog.ErrorLevel},
		{input: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLevel(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dankmotion.log")

	if err := ToFile(path); err != nil {
		t.Fatal(err)
	}
	Info("written to file")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file = %q, want message", string(data))
	}
}
