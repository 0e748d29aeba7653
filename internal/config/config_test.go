package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Source != "." {
		t.Errorf("expected default source %q, got %q", ".", cfg.Source)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Timeout() != 15*time.Second {
		t.Errorf("expected default timeout 15s, got %s", cfg.Timeout())
	}
	if len(cfg.Assets) != len(DefaultAssets) {
		t.Errorf("expected default assets, got %v", cfg.Assets)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.scholarsite.yml")

	original := DefaultConfig()
	original.Source = "https://ada.example.edu"
	original.SiteDir = "site"
	original.Shell = "shell.html"
	original.OutputDir = "out"
	original.Assets = []string{"cv/**", "*.pdf"}
	original.Port = 9000
	original.AllowAllOrigins = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Source != original.Source {
		t.Errorf("source: got %q, want %q", loaded.Source, original.Source)
	}
	if loaded.SiteDir != original.SiteDir {
		t.Errorf("site_dir: got %q, want %q", loaded.SiteDir, original.SiteDir)
	}
	if loaded.Shell != original.Shell {
		t.Errorf("shell: got %q, want %q", loaded.Shell, original.Shell)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if !loaded.AllowAllOrigins {
		t.Error("allow_all_origins: got false, want true")
	}
	if len(loaded.Assets) != len(original.Assets) {
		t.Fatalf("assets length: got %d, want %d", len(loaded.Assets), len(original.Assets))
	}
	for i, v := range loaded.Assets {
		if v != original.Assets[i] {
			t.Errorf("assets[%d]: got %q, want %q", i, v, original.Assets[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("port: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SCHOLARSITE_PORT", "9191")
	t.Setenv("SCHOLARSITE_OUTPUT_DIR", "dist")
	t.Setenv("SCHOLARSITE_ASSETS", "pdfs/**, img/*.png")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9191 {
		t.Errorf("env override failed: got port %d, want 9191", loaded.Port)
	}
	if loaded.OutputDir != "dist" {
		t.Errorf("env override failed: got output_dir %q, want %q", loaded.OutputDir, "dist")
	}
	if len(loaded.Assets) != 2 || loaded.Assets[0] != "pdfs/**" || loaded.Assets[1] != "img/*.png" {
		t.Errorf("env override failed: got assets %v", loaded.Assets)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}

	cfg.Source = "https://ada.example.edu/site"
	if err := cfg.Validate(); err != nil {
		t.Errorf("https source should be valid, got: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty source", func(c *Config) { c.Source = "  " }},
		{"unsupported scheme", func(c *Config) { c.Source = "ftp://example.com" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"bad asset pattern", func(c *Config) { c.Assets = []string{"[abc"} }},
		{"negative port", func(c *Config) { c.Port = -1 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"negative timeout", func(c *Config) { c.TimeoutSeconds = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestRemoteSource(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.RemoteSource() {
		t.Error("default source should be local")
	}
	cfg.Source = "http://localhost:8000"
	if !cfg.RemoteSource() {
		t.Error("http source should be remote")
	}
}

func TestReadShell(t *testing.T) {
	cfg := DefaultConfig()
	data, err := cfg.ReadShell()
	if err != nil || data != nil {
		t.Errorf("no shell configured: got %q, %v", data, err)
	}

	path := filepath.Join(t.TempDir(), "shell.html")
	if err := os.WriteFile(path, []byte("<main id=main></main>"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Shell = path
	data, err = cfg.ReadShell()
	if err != nil {
		t.Fatalf("ReadShell: %v", err)
	}
	if string(data) != "<main id=main></main>" {
		t.Errorf("ReadShell = %q", data)
	}

	cfg.Shell = filepath.Join(t.TempDir(), "missing.html")
	if _, err := cfg.ReadShell(); err == nil {
		t.Error("expected error for missing shell")
	}
}

func TestDetectSiteData(t *testing.T) {
	dir := t.TempDir()
	if found := detectSiteData(dir); len(found) != 0 {
		t.Errorf("empty dir: got %v", found)
	}
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data", "publications.json"), []byte(`{"items":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	found := detectSiteData(dir)
	if len(found) != 1 || found[0] != "data/publications.json" {
		t.Errorf("got %v, want [data/publications.json]", found)
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"0", "8080", "65535"} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "http", "-1", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.pdf", []string{"**/*.pdf"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
