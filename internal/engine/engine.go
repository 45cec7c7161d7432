// Package engine drives the scan-remove-verify-escalate pipeline and
// guarantees that only one operation runs at a time.
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/sweepkit/agent/internal/detect"
	"github.com/sweepkit/agent/internal/logging"
	"github.com/sweepkit/agent/internal/remove"
	"github.com/sweepkit/agent/internal/signature"
	"github.com/sweepkit/agent/internal/verify"
)

var log = logging.L("engine")

// ErrBusy is returned when a scan or removal is already in flight.
var ErrBusy = errors.New("engine: operation already in progress")

// ProgressFunc receives coarse progress updates. percent is 0..100.
type ProgressFunc func(percent int, message string)

// Report is the full per-application outcome: the removal steps, the
// verification that followed, and the re-verification after escalation
// when escalation ran.
type Report struct {
	Removal           remove.Result  `json:"removal"`
	Verification      verify.Result  `json:"verification"`
	FinalVerification *verify.Result `json:"final_verification,omitempty"`
}

// Verified reports whether the most recent verification came back clean.
func (r Report) Verified() bool {
	if r.FinalVerification != nil {
		return r.FinalVerification.Clean()
	}
	return r.Verification.Clean()
}

// Options wires an Engine. Detectors overrides the platform detector set,
// used by tests.
type Options struct {
	Catalog       *signature.Catalog
	Remover       *remove.Remover
	Verifier      *verify.Verifier
	Detectors     []detect.Detector
	ExtraScanDirs []string
	Progress      ProgressFunc
}

type Engine struct {
	catalog   *signature.Catalog
	remover   *remove.Remover
	verifier  *verify.Verifier
	detectors []detect.Detector
	progress  ProgressFunc
	busy      atomic.Bool
}

func New(opts Options) *Engine {
	detectors := opts.Detectors
	if detectors == nil {
		detectors = detect.Detectors(opts.ExtraScanDirs)
	}
	progress := opts.Progress
	if progress == nil {
		progress = func(int, string) {}
	}
	verifier := opts.Verifier
	if verifier == nil {
		verifier = &verify.Verifier{Catalog: opts.Catalog}
	}
	remover := opts.Remover
	if remover == nil {
		remover = remove.New(remove.Options{Catalog: opts.Catalog})
	}
	return &Engine{
		catalog:   opts.Catalog,
		remover:   remover,
		verifier:  verifier,
		detectors: detectors,
		progress:  progress,
	}
}

// Busy reports whether an operation is in flight.
func (e *Engine) Busy() bool {
	return e.busy.Load()
}

// Detect runs every detector and returns the deduplicated candidate set.
// A failing or panicking detector is logged and skipped; the remaining
// surfaces still contribute.
func (e *Engine) Detect(ctx context.Context) ([]detect.Detection, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.busy.Store(false)

	if len(e.detectors) == 0 {
		return nil, errors.New("engine: no detectors available on this platform")
	}

	acc := detect.NewAccumulator()
	e.progress(0, "starting scan")
	for i, det := range e.detectors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.progress(i*100/len(e.detectors), "scanning "+det.Name())
		if err := e.runDetector(ctx, det, acc); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			log.Warn("detector failed", "detector", det.Name(), "error", err)
		}
	}

	found := acc.Detections()
	e.progress(100, fmt.Sprintf("scan complete, %d candidates", len(found)))
	log.Info("scan complete", "candidates", len(found))
	return found, nil
}

func (e *Engine) runDetector(ctx context.Context, det detect.Detector, acc *detect.Accumulator) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic in detector", "detector", det.Name(), "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("engine: detector %s panicked: %v", det.Name(), r)
		}
	}()
	return det.Scan(ctx, e.catalog, acc)
}

// Remove walks every target through removal, verification and, when
// residue survives, ownership escalation and boot-time deletion. One
// panicking target does not stop the rest.
func (e *Engine) Remove(ctx context.Context, targets []detect.Detection) ([]Report, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.busy.Store(false)

	reports := make([]Report, 0, len(targets))
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		e.progress(i*100/max(len(targets), 1), "removing "+target.Name)
		reports = append(reports, e.removeOne(ctx, target))
	}
	e.progress(100, fmt.Sprintf("removal complete, %d applications", len(reports)))
	return reports, nil
}

func (e *Engine) removeOne(ctx context.Context, target detect.Detection) (report Report) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic during removal", logging.KeyApp, target.Name, "panic", r, "stack", string(debug.Stack()))
			report.Removal.Name = target.Name
			report.Removal.FinalStatus = remove.StatusFailure
		}
	}()

	report.Removal = e.remover.Run(ctx, target)
	report.Verification = e.verifier.Verify(ctx, target)
	if report.Verification.Clean() {
		return report
	}

	// Escalation only helps against filesystem residue; registry and
	// package residue have nothing for takeown to seize.
	if report.Verification.FilesystemClean || target.InstallLocation == "" {
		return report
	}

	log.Info("escalating removal", logging.KeyApp, target.Name)
	if !e.remover.TakeOwnership(ctx, target.InstallLocation, &report.Removal) {
		e.remover.ScheduleBootDelete(target.Name, target.InstallLocation, &report.Removal)
	}

	final := e.verifier.Verify(ctx, target)
	report.FinalVerification = &final
	return report
}
