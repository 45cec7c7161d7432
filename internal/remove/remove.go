package remove

import (
	"context"
	"fmt"
	"time"

	"github.com/sweepkit/agent/internal/detect"
	"github.com/sweepkit/agent/internal/logging"
	"github.com/sweepkit/agent/internal/signature"
)

var log = logging.L("remove")

// Options configures a Remover. Zero timeouts fall back to the defaults
// below.
type Options struct {
	Catalog *signature.Catalog
	Exec    CommandFunc
	// LeftoverDirs overrides the directories swept for residue.
	LeftoverDirs []string
	// StartupDir overrides where boot-time deletion scripts are written.
	StartupDir           string
	UninstallTimeout     time.Duration
	ServiceStopTimeout   time.Duration
	ServiceDeleteTimeout time.Duration
	TakeownTimeout       time.Duration
	KillGrace            time.Duration
	DryRun               bool
}

const (
	defaultUninstallTimeout     = 300 * time.Second
	defaultServiceStopTimeout   = 60 * time.Second
	defaultServiceDeleteTimeout = 30 * time.Second
	defaultTakeownTimeout       = 120 * time.Second
	defaultKillGrace            = 2 * time.Second
)

// Remover walks one application through the removal method ladder.
type Remover struct {
	catalog              *signature.Catalog
	exec                 CommandFunc
	leftoverDirs         []string
	startupDir           string
	uninstallTimeout     time.Duration
	serviceStopTimeout   time.Duration
	serviceDeleteTimeout time.Duration
	takeownTimeout       time.Duration
	killGrace            time.Duration
	dryRun               bool
}

func New(opts Options) *Remover {
	r := &Remover{
		catalog:              opts.Catalog,
		exec:                 opts.Exec,
		leftoverDirs:         opts.LeftoverDirs,
		startupDir:           opts.StartupDir,
		uninstallTimeout:     opts.UninstallTimeout,
		serviceStopTimeout:   opts.ServiceStopTimeout,
		serviceDeleteTimeout: opts.ServiceDeleteTimeout,
		takeownTimeout:       opts.TakeownTimeout,
		killGrace:            opts.KillGrace,
		dryRun:               opts.DryRun,
	}
	if r.exec == nil {
		r.exec = runCommand
	}
	if r.uninstallTimeout <= 0 {
		r.uninstallTimeout = defaultUninstallTimeout
	}
	if r.serviceStopTimeout <= 0 {
		r.serviceStopTimeout = defaultServiceStopTimeout
	}
	if r.serviceDeleteTimeout <= 0 {
		r.serviceDeleteTimeout = defaultServiceDeleteTimeout
	}
	if r.takeownTimeout <= 0 {
		r.takeownTimeout = defaultTakeownTimeout
	}
	if r.killGrace <= 0 {
		r.killGrace = defaultKillGrace
	}
	return r
}

// Run attempts the clean uninstall chain (M1..M3) and then the aggressive
// cleanup chain (M4..M7) for one detected application. Every method failure
// is recorded and the next method attempted; the aggregate verdict lands in
// Result.FinalStatus.
func (r *Remover) Run(ctx context.Context, d detect.Detection) Result {
	res := Result{Name: d.Name}
	alog := logging.WithApp(log, d.Name)
	alog.Info("starting removal", "method", d.Method)

	if d.UninstallCommand != "" && !d.IsPackage() {
		r.runUninstallString(ctx, d, &res)
	}
	// msiexec runs whenever a product code exists, regardless of the
	// uninstall string's outcome; the MSI database gets the final word.
	if d.ProductCode != "" {
		r.runMsiexec(ctx, d, &res)
	}
	if d.IsPackage() {
		r.removePackage(ctx, d, &res)
	}

	// Aggressive cleanup always runs: even a clean uninstall routinely
	// leaves processes, folders, registry keys and services behind.
	r.killProcesses(ctx, d, &res)
	r.deleteFiles(ctx, d, &res)
	r.cleanRegistry(ctx, d, &res)
	r.removeServices(ctx, d, &res)

	res.finalize()
	alog.Info("removal finished", "status", res.FinalStatus, "steps", len(res.Steps))
	return res
}

// terms returns the detection terms behind a candidate, falling back to
// the display name when the catalog entry is gone.
func (r *Remover) terms(d detect.Detection) []string {
	if r.catalog != nil {
		if sig, ok := r.catalog.Get(d.DetectionTerm); ok {
			return sig.Detection
		}
	}
	return []string{d.Name}
}

func (r *Remover) runUninstallString(ctx context.Context, d detect.Detection, res *Result) {
	exe, args, err := BuildUninstallCommand(d.UninstallCommand)
	if err != nil {
		res.record(StepUninstallString, false, err.Error())
		return
	}
	if r.dryRun {
		res.record(StepUninstallString, true, fmt.Sprintf("dry run: %s %v", exe, args))
		return
	}

	cctx, cancel := context.WithTimeout(ctx, r.uninstallTimeout)
	defer cancel()
	out, code, err := r.exec(cctx, exe, args...)
	res.record(StepUninstallString, uninstallSucceeded(code, err, isMsiexec(exe)), commandDetail(code, out, err))
}

func (r *Remover) runMsiexec(ctx context.Context, d detect.Detection, res *Result) {
	if r.dryRun {
		res.record(StepMsiexec, true, "dry run: msiexec.exe /x "+d.ProductCode)
		return
	}

	cctx, cancel := context.WithTimeout(ctx, r.uninstallTimeout)
	defer cancel()
	out, code, err := r.exec(cctx, "msiexec.exe", "/x", d.ProductCode, "/qn", "/norestart")
	res.record(StepMsiexec, uninstallSucceeded(code, err, true), commandDetail(code, out, err))
}

// uninstallSucceeded treats exit 0 as success for any uninstaller. The
// extended codes 3010 (done, reboot required) and 1605 (product already
// absent) only mean success when the command was Windows Installer.
func uninstallSucceeded(code int, err error, msi bool) bool {
	if err != nil {
		return false
	}
	if code == 0 {
		return true
	}
	return msi && (code == 3010 || code == 1605)
}

func commandDetail(code int, out string, err error) string {
	if err != nil {
		return err.Error()
	}
	if code == 0 {
		return ""
	}
	if out == "" {
		return fmt.Sprintf("exit code %d", code)
	}
	return fmt.Sprintf("exit code %d: %s", code, truncate(out, 400))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
