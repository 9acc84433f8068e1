// i18nscan audits React Native sources for translation coverage.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eatsense-app/i18nscan/internal/area"
	"github.com/eatsense-app/i18nscan/internal/config"
	"github.com/eatsense-app/i18nscan/internal/i18n"
	"github.com/eatsense-app/i18nscan/internal/inject"
	"github.com/eatsense-app/i18nscan/internal/locale"
	"github.com/eatsense-app/i18nscan/internal/report"
	"github.com/eatsense-app/i18nscan/internal/scan"
	"github.com/eatsense-app/i18nscan/internal/scanlog"
	"github.com/eatsense-app/i18nscan/internal/version"
	"github.com/eatsense-app/i18nscan/internal/watch"
)

// Global flags
var (
	rootDir    string
	localesDir string
	languages  []string
	configPath string
	noColor    bool
	verbose    bool
	logPath    string
	logFile    *os.File // held open while a command runs
)

// Fill command flags
var (
	fillDryRun bool
)

// errIssuesFound signals a clean run that surfaced findings; it maps
// to a nonzero exit code without an error message.
var errIssuesFound = errors.New("issues found")

var rootCmd = &cobra.Command{
	Use:   "i18nscan",
	Short: "Translation coverage scanner for React Native projects",
	Long: `i18nscan statically audits a React Native codebase for
internationalization gaps.

Commands:
  scan    Scan the whole source tree for missing keys and hardcoded strings
  audit   Deep audit of configured release-critical areas
  fill    Bulk-insert curated missing keys into locale files
  watch   Rescan automatically when sources or locales change

Examples:
  i18nscan scan                     # Scan ./src against ./app/i18n/locales
  i18nscan audit --root ~/app       # Audit another checkout
  i18nscan fill --dry-run           # Preview what fill would add
  i18nscan scan --lang ru --lang en # Check a subset of languages

Exit code is 1 when any missing key, hardcoded string, or warning is
reported, so the scanner slots into CI pipelines.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		i18n.Init(i18n.ResolveLocale())

		logW := io.Writer(os.Stderr)
		if logPath != "" {
			f, err := os.Create(logPath)
			if err != nil {
				return fmt.Errorf("create log file: %w", err)
			}
			logFile = f
			logW = f
		}
		scanlog.Init(logW, verbose)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the source tree for missing keys and hardcoded strings",
	Long: `Walk every source file under the configured src directory, extract
translation key references, and report per-language keys that do not
resolve in the locale files. Also flags literal strings in markup and
UI props that look like untranslated copy.

Files in release-critical areas (onboarding, nutrition) are marked in
the listing; hardcoded strings outside those areas are capped.`,
	RunE: runScan,
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit configured release-critical areas in depth",
	Long: `Scan only the files belonging to the configured target areas and
report missing keys grouped per area and per language, with file and
key counts per area. Keys referenced from unclaimed files are grouped
by key prefix where possible, otherwise under Other.

The audit uses a wider hardcoded-string net than scan (more UI props,
more code tokens filtered).`,
	RunE: runAudit,
}

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Bulk-insert curated missing keys into locale files",
	Long: `Apply the built-in table of curated translations to the locale
files. A key is only added when it is absent or empty, so repeated
runs are no-ops. Locale files that fail to load are skipped rather
than overwritten.`,
	RunE: runFill,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rescan automatically when sources or locales change",
	Long: `Run an initial scan, then monitor the source tree and the locales
directory. Changes are debounced and trigger a fresh scan report.
Stop with Ctrl-C.`,
	RunE: runWatch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version.String("i18nscan"))
		return nil
	},
}

// env is the resolved per-run environment shared by the commands.
type env struct {
	cfg    config.Config
	root   string
	store  *locale.Store
	render *report.Renderer
}

// loadEnv resolves config, flag overrides, and output styling.
func loadEnv() (*env, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	var cfg config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadProject(root)
	}
	if err != nil {
		return nil, err
	}

	if localesDir != "" {
		cfg.Locales = localesDir
	}
	if len(languages) > 0 {
		cfg.Languages = languages
	}

	dir := cfg.Locales
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	colored := !noColor && term.IsTerminal(int(os.Stdout.Fd()))

	return &env{
		cfg:    cfg,
		root:   root,
		store:  locale.NewStore(dir, cfg.Languages),
		render: report.NewRenderer(os.Stdout, report.DefaultStyles(colored)),
	}, nil
}

// scanTree runs the whole-tree scan and renders the report, returning
// the number of issues found.
func scanTree(e *env) (int, error) {
	cls, err := area.NewClassifier(area.ScanAreas())
	if err != nil {
		return 0, err
	}

	fmt.Println(i18n.T("report.loading_locales", "Loading locales..."))
	locales := e.store.LoadAll()

	fmt.Println(i18n.Tf("report.scanning", "Scanning source files in %s...", e.cfg.Src))
	files, err := scan.Walk(e.root, e.cfg.Src)
	if err != nil {
		return 0, err
	}

	res := scan.NewScanner(e.root, scan.NewDetector()).ScanFiles(files)
	data := report.BuildScan(res, locales, e.cfg.Languages, cls)
	e.render.RenderScan(data)
	return data.TotalIssues(), nil
}

func finish(issues int) error {
	if issues > 0 || scanlog.Log.Warnings() > 0 {
		return errIssuesFound
	}
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	issues, err := scanTree(e)
	if err != nil {
		return err
	}
	return finish(issues)
}

func runAudit(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	cls, err := area.NewClassifier(area.AuditAreas())
	if err != nil {
		return err
	}

	fmt.Println(i18n.T("report.loading_locales", "Loading locales..."))
	locales := e.store.LoadAll()

	fmt.Println(i18n.Tf("report.scanning", "Scanning source files in %s...", e.cfg.Src))
	files, err := scan.Walk(e.root, e.cfg.Src)
	if err != nil {
		return err
	}
	files = cls.SelectFiles(files)

	res := scan.NewScanner(e.root, scan.NewExtendedDetector()).ScanFiles(files)
	data := report.BuildAudit(res, locales, e.cfg.Languages, cls)
	e.render.RenderAudit(data)
	return finish(data.TotalIssues())
}

func runFill(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	fmt.Println(i18n.T("fill.adding", "Adding missing translation keys..."))
	inj := inject.NewInjector(e.store, inject.DefaultPatch(), fillDryRun)
	if _, err := inj.Run(os.Stdout); err != nil {
		return err
	}

	fmt.Println(i18n.T("fill.done", "Done!"))
	return finish(0)
}

func runWatch(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	if _, err := scanTree(e); err != nil {
		return err
	}

	srcRoot := filepath.Join(e.root, e.cfg.Src)
	w, err := watch.NewWatcher(srcRoot, e.store.Dir, e.cfg.Watch.DebounceDuration(), func() {
		fmt.Println(i18n.T("watch.rescan", "Change detected, rescanning..."))
		if _, err := scanTree(e); err != nil {
			scanlog.Log.Error("rescan failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Println(i18n.Tf("watch.started", "Watching %s for changes (Ctrl-C to stop)", srcRoot))
	<-ctx.Done()
	return nil
}

func main() {
	// Global flags on root
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", ".", "project root directory")
	rootCmd.PersistentFlags().StringVar(&localesDir, "locales", "", "locales directory (overrides config)")
	rootCmd.PersistentFlags().StringSliceVar(&languages, "lang", nil, "language to check (repeatable, overrides config)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: <root>/.i18nscan.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write the warning log to file instead of stderr")

	fillCmd.Flags().BoolVarP(&fillDryRun, "dry-run", "n", false, "report additions without writing files")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
