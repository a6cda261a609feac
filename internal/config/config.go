package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"compat-matrix/internal/compat"
	"compat-matrix/internal/footnote"
	"compat-matrix/internal/table"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Source    SourceConfig      `mapstructure:"source"`
	Catalog   []string          `mapstructure:"catalog"`   // Tracked devices/software in sheet column order
	Footnotes map[string]string `mapstructure:"footnotes"` // Marker ("[4]") -> explanation
	Output    OutputConfig      `mapstructure:"output"`
}

// SourceConfig locates the compatibility table
type SourceConfig struct {
	Path      string `mapstructure:"path"`       // .xlsx or .csv
	Sheet     string `mapstructure:"sheet"`      // Empty means the first sheet
	HeaderRow int    `mapstructure:"header_row"` // Rows above the table header
	Columns   string `mapstructure:"columns"`    // Column span, e.g. "B:Q"
	RowCount  int    `mapstructure:"row_count"`  // Exact number of version rows
}

// OutputConfig holds report settings
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`       // Output directory
	FileName string `mapstructure:"file_name"` // Report file name (without extension)
	Title    string `mapstructure:"title"`     // Report heading
}

// EnvPrefix namespaces environment overrides, e.g. COMPAT_SOURCE_PATH
const EnvPrefix = "COMPAT"

// Load reads the configuration from a file or uses defaults.
// A missing file is not an error. Environment variables override scalar
// settings from either.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Source: ./Compatibility_Matrix_LST-1592.xlsx")
			fmt.Println("  Output: ./output")
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyTableDefaults()

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures default values.
// Catalog and footnotes are not set here: viper merges map defaults key by
// key, which would leak default markers into a file that defines its own table.
func setDefaults(v *viper.Viper) {
	v.SetDefault("source.path", "./Compatibility_Matrix_LST-1592.xlsx")
	v.SetDefault("source.sheet", "")
	v.SetDefault("source.header_row", 16)
	v.SetDefault("source.columns", "B:Q")
	v.SetDefault("source.row_count", 54)

	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "compatibility-report")
	v.SetDefault("output.title", "Eagle Compatibility Master")
}

// applyTableDefaults fills catalog and footnotes when the file gives none
func (c *Config) applyTableDefaults() {
	if len(c.Catalog) == 0 {
		c.Catalog = compat.DefaultCatalog()
	}
	if len(c.Footnotes) == 0 {
		c.Footnotes = map[string]string(footnote.DefaultTable())
	}
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absSource, err := filepath.Abs(c.Source.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve source.path: %w", err)
	}
	c.Source.Path = absSource

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Layout converts the source settings into a table layout
func (c *Config) Layout() (table.Layout, error) {
	first, last, err := table.ParseColumnRange(c.Source.Columns)
	if err != nil {
		return table.Layout{}, fmt.Errorf("source.columns: %w", err)
	}

	layout := table.Layout{
		HeaderRow:   c.Source.HeaderRow,
		FirstColumn: first,
		LastColumn:  last,
		RowCount:    c.Source.RowCount,
	}
	if err := layout.Validate(); err != nil {
		return table.Layout{}, fmt.Errorf("source layout: %w", err)
	}
	return layout, nil
}

// FootnoteTable returns the configured footnotes as a resolver table
func (c *Config) FootnoteTable() footnote.Table {
	return footnote.Table(c.Footnotes)
}

// GetOutputPath returns the report path for the given extension (".xlsx", ".html", ...)
func (c *Config) GetOutputPath(ext string) string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+ext)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Source.Path); os.IsNotExist(err) {
		return fmt.Errorf("source.path does not exist: %s", c.Source.Path)
	}

	if _, err := c.Layout(); err != nil {
		return err
	}

	if len(c.Catalog) == 0 {
		return fmt.Errorf("catalog must contain at least one column")
	}

	for marker := range c.Footnotes {
		if !strings.HasPrefix(marker, "[") || !strings.HasSuffix(marker, "]") {
			return fmt.Errorf("footnote key %q must look like [N]", marker)
		}
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Compatibility Matrix Configuration ===")
	fmt.Printf("Source:           %s\n", c.Source.Path)
	fmt.Printf("Sheet:            %s\n", c.Source.Sheet)
	fmt.Printf("Header Row:       %d\n", c.Source.HeaderRow)
	fmt.Printf("Columns:          %s\n", c.Source.Columns)
	fmt.Printf("Row Count:        %d\n", c.Source.RowCount)
	fmt.Printf("Catalog:          %v\n", c.Catalog)
	fmt.Printf("Footnotes:        %d\n", len(c.Footnotes))
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output File:      %s\n", c.Output.FileName)
	fmt.Println("==========================================")
}
