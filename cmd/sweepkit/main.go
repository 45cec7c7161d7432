package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sweepkit/agent/internal/config"
	"github.com/sweepkit/agent/internal/detect"
	"github.com/sweepkit/agent/internal/engine"
	"github.com/sweepkit/agent/internal/logging"
	"github.com/sweepkit/agent/internal/privilege"
	"github.com/sweepkit/agent/internal/remove"
	"github.com/sweepkit/agent/internal/signature"
	"github.com/sweepkit/agent/internal/verify"
)

var (
	version = "0.1.0"

	cfgFile         string
	logLevel        string
	jsonOut         bool
	dryRun          bool
	removeAll       bool
	forceUnelevated bool
)

var rootCmd = &cobra.Command{
	Use:   "sweepkit",
	Short: "Sweepkit bloatware removal",
	Long:  `Sweepkit detects and removes preinstalled bloatware, adware and trial software from Windows machines.`,
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Scan the system for unwanted applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetect()
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [application name]...",
	Short: "Remove detected applications",
	Long: `Remove walks each named application (or every detection with --all)
through uninstall, cleanup, verification and escalation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemove(args)
	},
}

var signaturesCmd = &cobra.Command{
	Use:   "signatures",
	Short: "List the signature catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSignatures()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sweepkit v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is sweepkit.yaml in the program data directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")

	removeCmd.Flags().BoolVar(&removeAll, "all", false, "remove every detected application")
	removeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log what would be removed without touching the system")
	removeCmd.Flags().BoolVar(&forceUnelevated, "force-unelevated", false, "attempt removal without administrator rights")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(signaturesCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads config, initializes logging and builds the engine pieces
// shared by detect and remove.
func setup() (*config.Config, *engine.Engine, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if dryRun {
		cfg.DryRun = true
	}

	sink, closeSink, err := logging.OpenFileSink(os.Stderr)
	if err != nil {
		sink = os.Stderr
		closeSink = func() error { return nil }
	}
	logging.Init(cfg.LogFormat, cfg.LogLevel, sink)

	catalog, err := signature.Load(cfg.SignatureFiles)
	if err != nil {
		closeSink()
		return nil, nil, nil, fmt.Errorf("load signatures: %w", err)
	}

	remover := remove.New(remove.Options{
		Catalog:              catalog,
		UninstallTimeout:     time.Duration(cfg.UninstallTimeoutSeconds) * time.Second,
		ServiceStopTimeout:   time.Duration(cfg.ServiceStopTimeoutSeconds) * time.Second,
		ServiceDeleteTimeout: time.Duration(cfg.ServiceDeleteTimeoutSeconds) * time.Second,
		TakeownTimeout:       time.Duration(cfg.TakeownTimeoutSeconds) * time.Second,
		KillGrace:            time.Duration(cfg.ProcessKillGraceSeconds) * time.Second,
		DryRun:               cfg.DryRun,
	})

	eng := engine.New(engine.Options{
		Catalog:       catalog,
		Remover:       remover,
		Verifier:      &verify.Verifier{Catalog: catalog},
		ExtraScanDirs: cfg.ExtraScanDirs,
		Progress:      printProgress,
	})

	cleanup := func() { _ = closeSink() }
	return cfg, eng, cleanup, nil
}

func printProgress(percent int, message string) {
	if jsonOut {
		return
	}
	fmt.Printf("[%3d%%] %s\n", percent, message)
}

// signalContext cancels on interrupt so a half-finished removal still
// reports what it did.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func runDetect() error {
	_, eng, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := signalContext()
	defer cancel()

	found, err := eng.Detect(ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(found)
	}
	if len(found) == 0 {
		fmt.Println("No unwanted applications found.")
		return nil
	}
	fmt.Printf("\n%-40s %-12s %-15s %s\n", "NAME", "METHOD", "CATEGORY", "REASON")
	for _, d := range found {
		name := d.Name
		if d.Heuristic {
			name += " *"
		}
		fmt.Printf("%-40s %-12s %-15s %s\n", name, d.Method, d.Category, d.Reason)
	}
	fmt.Println("\n* matched by name only; verify before removing")
	return nil
}

func runRemove(names []string) error {
	if !removeAll && len(names) == 0 {
		return fmt.Errorf("name at least one application or pass --all")
	}

	cfg, eng, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	if !privilege.IsElevated() && !cfg.DryRun {
		if !forceUnelevated {
			return fmt.Errorf("administrator rights required; rerun elevated or pass --force-unelevated")
		}
		fmt.Fprintln(os.Stderr, "warning: running without administrator rights, most removal methods will fail")
	}

	ctx, cancel := signalContext()
	defer cancel()

	found, err := eng.Detect(ctx)
	if err != nil {
		return err
	}

	targets, err := selectTargets(found, names)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Println("Nothing to remove.")
		return nil
	}

	reports, err := eng.Remove(ctx, targets)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(reports)
	}
	failures := 0
	for _, rep := range reports {
		verdict := "verified clean"
		if !rep.Verified() {
			verdict = "residue remains"
			failures++
		}
		fmt.Printf("%-40s %-35s %s\n", rep.Removal.Name, rep.Removal.FinalStatus, verdict)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d applications left residue", failures, len(reports))
	}
	return nil
}

// selectTargets filters detections by the requested names, or returns all
// of them with --all. Unknown names are an error rather than a silent
// no-op.
func selectTargets(found []detect.Detection, names []string) ([]detect.Detection, error) {
	if removeAll {
		return found, nil
	}
	byName := make(map[string]detect.Detection, len(found))
	for _, d := range found {
		byName[strings.ToLower(d.Name)] = d
	}
	targets := make([]detect.Detection, 0, len(names))
	for _, name := range names {
		d, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("application %q was not detected", name)
		}
		targets = append(targets, d)
	}
	return targets, nil
}

func runSignatures() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Init(cfg.LogFormat, "warn", os.Stderr)

	catalog, err := signature.Load(cfg.SignatureFiles)
	if err != nil {
		return fmt.Errorf("load signatures: %w", err)
	}

	entries := catalog.Entries()
	if jsonOut {
		return printJSON(entries)
	}
	fmt.Printf("%-35s %-18s %s\n", "NAME", "CATEGORY", "TERMS")
	for _, e := range entries {
		fmt.Printf("%-35s %-18s %s\n", e.Name, e.Category, strings.Join(e.Detection, ", "))
	}
	fmt.Printf("\n%d signatures\n", len(entries))
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
