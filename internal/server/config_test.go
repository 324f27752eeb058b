package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/forex-sim/pkg/constants"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{"Plain bytes", "1024", 1024, false},
		{"Bytes suffix", "512B", 512, false},
		{"Kilobytes", "64K", 64 * 1024, false},
		{"Kilobytes long", "64KB", 64 * 1024, false},
		{"Megabytes", "10M", 10 * 1024 * 1024, false},
		{"Megabytes long", "10MB", 10 * 1024 * 1024, false},
		{"Lowercase", "64k", 64 * 1024, false},
		{"Whitespace", "  2M  ", 2 * 1024 * 1024, false},
		{"Empty defaults", "", constants.DefaultMaxBodySizeBytes, false},
		{"Unit only", "KB", 0, true},
		{"Bad unit", "10X", 0, true},
		{"Unsupported unit", "1G", 0, true},
		{"Negative", "-5K", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSize(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() returned error for missing file: %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("address = %q, expected %q", cfg.Address, constants.DefaultServerAddress)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Errorf("body size = %d, expected %d", cfg.BodySizeBytes(), constants.DefaultMaxBodySizeBytes)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	content := "address: \":9090\"\nmaxBodySize: 128K\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.Address != ":9090" {
		t.Errorf("address = %q, expected :9090", cfg.Address)
	}
	if cfg.BodySizeBytes() != 128*1024 {
		t.Errorf("body size = %d, expected %d", cfg.BodySizeBytes(), 128*1024)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q, expected debug", cfg.Logging.Level)
	}
}
