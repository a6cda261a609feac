package config

import (
	"os"
	"path/filepath"
	"testing"

	"compat-matrix/internal/table"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigWithDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	if !filepath.IsAbs(cfg.Source.Path) {
		t.Errorf("Expected absolute source path, got %s", cfg.Source.Path)
	}
	if cfg.Source.HeaderRow != 16 || cfg.Source.Columns != "B:Q" || cfg.Source.RowCount != 54 {
		t.Errorf("Unexpected default layout: %+v", cfg.Source)
	}
	if len(cfg.Catalog) != 15 || cfg.Catalog[0] != "SafetyNet" {
		t.Errorf("Unexpected default catalog: %v", cfg.Catalog)
	}
	if len(cfg.Footnotes) != 26 {
		t.Errorf("Expected 26 default footnotes, got %d", len(cfg.Footnotes))
	}
	if cfg.Output.FileName == "" {
		t.Error("Expected Output.FileName to be set")
	}

	cfg.Print()
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
source:
  path: "./matrix.csv"
  header_row: 2
  columns: "A:D"
  row_count: 5

catalog: ["SafetyNet", "MICT", "Sketch"]

footnotes:
  "[1]": "Requires minimum SafetyNet V4400"
  "[25]": "Requires minimum Trace V3025"

output:
  dir: "./out"
  file_name: "lookup"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if filepath.Base(cfg.Source.Path) != "matrix.csv" {
		t.Errorf("Source.Path = %s", cfg.Source.Path)
	}
	if len(cfg.Catalog) != 3 || cfg.Catalog[2] != "Sketch" {
		t.Errorf("Catalog = %v", cfg.Catalog)
	}

	// A file-supplied footnote table replaces the defaults entirely
	if len(cfg.Footnotes) != 2 {
		t.Errorf("Expected 2 footnotes, got %d: %v", len(cfg.Footnotes), cfg.Footnotes)
	}
	if _, ok := cfg.Footnotes["[26]"]; ok {
		t.Error("Default marker [26] leaked into a file-supplied table")
	}
	if cfg.FootnoteTable()["[25]"] != "Requires minimum Trace V3025" {
		t.Errorf("FootnoteTable()[\"[25]\"] = %q", cfg.FootnoteTable()["[25]"])
	}

	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("Layout() failed: %v", err)
	}
	expected := table.Layout{HeaderRow: 2, FirstColumn: 1, LastColumn: 4, RowCount: 5}
	if layout != expected {
		t.Errorf("Layout() = %+v, expected %+v", layout, expected)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, `
source:
  path: "./matrix.xlsx"
  row_count: 5
`)
	t.Setenv("COMPAT_SOURCE_ROW_COUNT", "7")
	t.Setenv("COMPAT_OUTPUT_FILE_NAME", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Source.RowCount != 7 {
		t.Errorf("Source.RowCount = %d, expected env value 7", cfg.Source.RowCount)
	}
	if cfg.Output.FileName != "from-env" {
		t.Errorf("Output.FileName = %q", cfg.Output.FileName)
	}
	if filepath.Base(cfg.Source.Path) != "matrix.xlsx" {
		t.Errorf("Source.Path = %s", cfg.Source.Path)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "source: [unterminated")

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name      string
		source    SourceConfig
		shouldErr bool
	}{
		{"Default span", SourceConfig{HeaderRow: 16, Columns: "B:Q", RowCount: 54}, false},
		{"Bad range", SourceConfig{HeaderRow: 16, Columns: "Q-B", RowCount: 54}, true},
		{"Single column", SourceConfig{HeaderRow: 16, Columns: "B:B", RowCount: 54}, true},
		{"No rows", SourceConfig{HeaderRow: 16, Columns: "B:Q", RowCount: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Source: tt.source}
			_, err := cfg.Layout()
			if tt.shouldErr && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestGetOutputPath(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{
			Dir:      "/tmp/output",
			FileName: "test-report",
		},
	}

	expected := filepath.Join("/tmp/output", "test-report.html")
	if result := cfg.GetOutputPath(".html"); result != expected {
		t.Errorf("GetOutputPath() = %s, expected %s", result, expected)
	}
}

func TestValidate(t *testing.T) {
	tmpDir := t.TempDir()
	sourcePath := filepath.Join(tmpDir, "matrix.xlsx")
	if err := os.WriteFile(sourcePath, []byte("stub"), 0644); err != nil {
		t.Fatalf("Failed to create source file: %v", err)
	}

	valid := func() *Config {
		return &Config{
			Source:    SourceConfig{Path: sourcePath, HeaderRow: 16, Columns: "B:Q", RowCount: 54},
			Catalog:   []string{"SafetyNet"},
			Footnotes: map[string]string{"[1]": "note"},
			Output:    OutputConfig{FileName: "report"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		shouldErr bool
	}{
		{"Valid config", func(c *Config) {}, false},
		{"Missing source", func(c *Config) { c.Source.Path = filepath.Join(tmpDir, "missing.xlsx") }, true},
		{"Bad columns", func(c *Config) { c.Source.Columns = "nope" }, true},
		{"Empty catalog", func(c *Config) { c.Catalog = nil }, true},
		{"Bad footnote key", func(c *Config) { c.Footnotes["4"] = "note" }, true},
		{"Empty output filename", func(c *Config) { c.Output.FileName = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.shouldErr && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	cfg := &Config{Output: OutputConfig{Dir: dir}}

	if err := cfg.EnsureOutputDir(); err != nil {
		t.Fatalf("EnsureOutputDir() failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Output directory not created: %v", err)
	}
}
