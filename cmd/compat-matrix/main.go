package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"compat-matrix/internal/compat"
	"compat-matrix/internal/config"
	"compat-matrix/internal/exporter"
	"compat-matrix/internal/logger"
	"compat-matrix/internal/matrix"
	"compat-matrix/internal/table"
	"compat-matrix/internal/ui"

	"github.com/joho/godotenv"
)

const (
	appName    = "Compatibility Matrix"
	appVersion = "1.0.0"
	appDesc    = "Device/software compatibility lookup against a spreadsheet matrix"
)

var (
	configPath     string
	verbose        bool
	showVersion    bool
	outputDir      string
	formats        string
	productVersion string
	device         string
	listKeys       bool
	reverseOrder   bool
	audit          bool
	interactive    bool
	pause          bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "", "Comma-separated report formats (excel,html,word,json)")
	flag.StringVar(&productVersion, "product", "", "Version key to look up, e.g. V1593")
	flag.StringVar(&productVersion, "p", "", "Version key to look up (shorthand)")
	flag.StringVar(&device, "device", "", "Device or software to check, e.g. SafetyNet")
	flag.StringVar(&device, "d", "", "Device or software to check (shorthand)")
	flag.BoolVar(&listKeys, "list", false, "List known versions and devices")
	flag.BoolVar(&reverseOrder, "reverse", false, "Show newest versions first")
	flag.BoolVar(&audit, "audit", false, "Report cells and footnotes that look inconsistent")
	flag.BoolVar(&interactive, "interactive", false, "Choose version and device from menus")
	flag.BoolVar(&interactive, "i", false, "Choose version and device from menus (shorthand)")
	flag.BoolVar(&pause, "pause", false, "Wait for Enter before exiting")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		if pause {
			waitForEnter()
		}
	}()

	exitCode := run()
	if pause {
		waitForEnter()
	}
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	// .env is optional; real environment variables win
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}
	if outputDir != "" {
		abs, err := filepath.Abs(outputDir)
		if err != nil {
			fmt.Printf("❌ Invalid output directory: %v\n", err)
			return 1
		}
		cfg.Output.Dir = abs
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Output.Dir, "compat_matrix.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration: %v", err)
		return 1
	}

	session, err := loadSession(cfg)
	if err != nil {
		logger.Error("Failed to load compatibility matrix: %v", err)
		return 1
	}

	if err := dispatch(session, cfg); err != nil {
		logger.Error("%v", err)
		return 1
	}
	return 0
}

// loadSession reads and indexes the configured source
func loadSession(cfg *config.Config) (*compat.Session, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}

	session, err := compat.NewSession(cfg.Catalog, cfg.FootnoteTable())
	if err != nil {
		return nil, err
	}

	src, err := table.Open(cfg.Source.Path, cfg.Source.Sheet)
	if err != nil {
		return nil, err
	}

	// Bars only for batch runs; lookups keep the console clean
	quiet := formats == "" && !audit
	pipeline := ui.NewPipeline([]ui.Phase{ui.PhaseLoading, ui.PhaseIndexing}, quiet)

	loadBar := pipeline.NextPhase(layout.RowCount)
	loadBar.Describe(filepath.Base(cfg.Source.Path))
	tbl, err := table.Load(src, layout)
	if err != nil {
		pipeline.Finish()
		logger.LogLoadError(src.Name(), err, "table")
		return nil, err
	}
	loadBar.Set(len(tbl.Rows))

	pipeline.NextPhase(1)
	if err := session.LoadTable(tbl); err != nil {
		pipeline.Finish()
		return nil, err
	}
	pipeline.Finish()

	logger.Info("Loaded %d versions x %d devices from %s",
		len(session.ListVersions()), len(session.ListColumns()), filepath.Base(cfg.Source.Path))
	return session, nil
}

// dispatch runs the actions selected on the command line. With none
// selected it falls back to the interactive menus.
func dispatch(session *compat.Session, cfg *config.Config) error {
	acted := false

	if listKeys {
		acted = true
		printList(session)
	}

	if productVersion != "" || device != "" {
		acted = true
		if productVersion == "" || device == "" {
			return fmt.Errorf("-product and -device must be given together")
		}
		if err := printLookup(session, productVersion, device); err != nil {
			return err
		}
	}

	if audit {
		acted = true
		if err := runAudit(session); err != nil {
			return err
		}
	}

	if formats != "" {
		acted = true
		if err := runExport(session, cfg); err != nil {
			return err
		}
	}

	if interactive || !acted {
		return runInteractive(session)
	}
	return nil
}

func orderedVersions(session *compat.Session) []string {
	versions := session.ListVersions()
	if reverseOrder {
		return matrix.Reverse(versions)
	}
	return versions
}

func printList(session *compat.Session) {
	logger.InfoClean("Versions:")
	for _, v := range orderedVersions(session) {
		logger.InfoClean("  %s", v)
	}
	logger.InfoClean("Devices/Software:")
	for _, c := range session.ListColumns() {
		logger.InfoClean("  %s", c)
	}
}

func printLookup(session *compat.Session, version, column string) error {
	answer, err := session.Lookup(version, column)
	if err != nil {
		var notFound *matrix.KeyNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("%v (run with -list to see valid values)", err)
		}
		return err
	}

	logger.Debug("Lookup %s / %s -> %q", version, column, answer.Raw)
	logger.InfoClean("%s", answer.Sentence())
	for _, note := range answer.Notes() {
		logger.InfoClean("  %s", note)
	}
	return nil
}

func runAudit(session *compat.Session) error {
	pipeline := ui.NewPipeline([]ui.Phase{ui.PhaseAuditing}, false)
	bar := pipeline.NextPhase(1)
	findings, err := session.Audit()
	bar.Increment()
	pipeline.Finish()
	if err != nil {
		return err
	}
	for _, f := range findings {
		logger.Warn("%s", f)
	}
	logger.Info("Audit finished: %d finding(s)", len(findings))
	return nil
}

func runExport(session *compat.Session, cfg *config.Config) error {
	report, err := session.Report(cfg.Output.Title, orderedVersions(session))
	if err != nil {
		return err
	}

	exporters := exporter.GetExporters(strings.Split(formats, ","))
	if len(exporters) == 0 {
		return fmt.Errorf("no known report format in %q", formats)
	}

	pipeline := ui.NewPipeline([]ui.Phase{ui.PhaseExporting}, false)
	bar := pipeline.NextPhase(len(exporters))

	var exportErrors []error
	for _, exp := range exporters {
		if err := exp.Export(report, cfg); err != nil {
			logger.Error("Export failed: %v", err)
			exportErrors = append(exportErrors, err)
		}
		bar.Increment()
	}
	pipeline.Finish()

	if len(exportErrors) > 0 {
		return fmt.Errorf("one or more exports failed: %w", errors.Join(exportErrors...))
	}

	logger.Info("✅ Reports written to [%s]", cfg.Output.Dir)
	return nil
}

func runInteractive(session *compat.Session) error {
	printBanner()
	prompter := ui.NewPrompter(os.Stdin, os.Stdout)

	for {
		version, err := prompter.Choose("Select version", orderedVersions(session), true)
		if errors.Is(err, ui.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		column, err := prompter.Choose("Select device/software", session.ListColumns(), false)
		if errors.Is(err, ui.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		prompter.Println()
		if err := printLookup(session, version, column); err != nil {
			return err
		}
	}
}

// waitForEnter keeps a double-clicked console window open
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                 COMPATIBILITY MATRIX v1.0.0               ║
║         Version / Device Compatibility Lookup             ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
