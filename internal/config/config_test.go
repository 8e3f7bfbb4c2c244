package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/f3rmion/lipi/internal/session"
	"github.com/f3rmion/lipi/internal/translit"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Endpoint != translit.DefaultEndpoint {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.InputTool != "ne-t-i0-und" {
		t.Errorf("InputTool = %q", cfg.InputTool)
	}
	if cfg.Candidates != 1 || cfg.Timeout != 0 || cfg.Debounce != 0 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Policy() != session.ApplyInOrder {
		t.Errorf("Policy() = %q", cfg.Policy())
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := "debounce: 150ms\nstale_policy: discard\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Debounce != 150*time.Millisecond {
		t.Errorf("Debounce = %s", cfg.Debounce)
	}
	if cfg.Policy() != session.DiscardStale {
		t.Errorf("Policy() = %q", cfg.Policy())
	}
	if cfg.Endpoint != translit.DefaultEndpoint {
		t.Errorf("Endpoint = %q, want default", cfg.Endpoint)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":     "endpoint: [",
		"bad endpoint": "endpoint: not-a-url\n",
		"bad policy":   "stale_policy: newest\n",
		"zero num":     "candidates: 0\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Timeout = 5 * time.Second
	cfg.LogFile = "/tmp/lipi-test.log"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "input_tool: ne-t-i0-und") {
		t.Errorf("saved YAML missing input_tool:\n%s", data)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestClientOptions(t *testing.T) {
	cfg := Default()
	cfg.Timeout = time.Second
	opts := cfg.ClientOptions()
	if opts.Endpoint != cfg.Endpoint || opts.InputTool != cfg.InputTool || opts.Candidates != 1 || opts.Timeout != time.Second {
		t.Errorf("ClientOptions() = %+v", opts)
	}
}

func TestLogPath(t *testing.T) {
	cfg := Default()
	if got := cfg.LogPath("/cfg"); got != filepath.Join("/cfg", "lipi.log") {
		t.Errorf("LogPath() = %q", got)
	}
	cfg.LogFile = "/var/log/lipi.log"
	if got := cfg.LogPath("/cfg"); got != "/var/log/lipi.log" {
		t.Errorf("LogPath() = %q", got)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureConfigDir(dir); err != nil {
		t.Fatalf("EnsureConfigDir() error: %v", err)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
}
