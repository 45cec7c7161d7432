package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sweepkit/agent/internal/detect"
	"github.com/sweepkit/agent/internal/remove"
	"github.com/sweepkit/agent/internal/signature"
	"github.com/sweepkit/agent/internal/verify"
)

type fakeDetector struct {
	name string
	scan func(ctx context.Context, catalog *signature.Catalog, acc *detect.Accumulator) error
}

func (d fakeDetector) Name() string { return d.name }
func (d fakeDetector) Scan(ctx context.Context, catalog *signature.Catalog, acc *detect.Accumulator) error {
	return d.scan(ctx, catalog, acc)
}

func testEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Catalog == nil {
		opts.Catalog = signature.NewCatalog([]signature.Entry{
			{Name: "Sample", Detection: []string{"sample"}},
		})
	}
	if opts.Remover == nil {
		opts.Remover = remove.New(remove.Options{
			Catalog:      opts.Catalog,
			LeftoverDirs: []string{t.TempDir()},
			Exec: func(ctx context.Context, name string, args ...string) (string, int, error) {
				return "", 0, nil
			},
		})
	}
	if opts.Verifier == nil {
		opts.Verifier = &verify.Verifier{Catalog: opts.Catalog}
	}
	return New(opts)
}

func TestDetectSurvivesFailingDetectors(t *testing.T) {
	e := testEngine(t, Options{
		Detectors: []detect.Detector{
			fakeDetector{name: "broken", scan: func(ctx context.Context, catalog *signature.Catalog, acc *detect.Accumulator) error {
				return errors.New("surface unavailable")
			}},
			fakeDetector{name: "panicky", scan: func(ctx context.Context, catalog *signature.Catalog, acc *detect.Accumulator) error {
				panic("boom")
			}},
			fakeDetector{name: "working", scan: func(ctx context.Context, catalog *signature.Catalog, acc *detect.Accumulator) error {
				acc.Add(detect.Detection{Name: "Sample App", Method: detect.MethodRegistry})
				return nil
			}},
		},
	})

	found, err := e.Detect(context.Background())
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Sample App" {
		t.Fatalf("detections = %+v", found)
	}
	if e.Busy() {
		t.Error("engine must be idle after the scan")
	}
}

func TestDetectSingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	e := testEngine(t, Options{
		Detectors: []detect.Detector{
			fakeDetector{name: "slow", scan: func(ctx context.Context, catalog *signature.Catalog, acc *detect.Accumulator) error {
				close(started)
				<-release
				return nil
			}},
		},
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := e.Detect(context.Background()); err != nil {
			t.Errorf("first detect: %v", err)
		}
	}()

	<-started
	if _, err := e.Detect(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent detect must return ErrBusy, got %v", err)
	}
	if _, err := e.Remove(context.Background(), nil); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent remove must return ErrBusy, got %v", err)
	}
	close(release)
	<-done
}

func TestRemoveVerifiedClean(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Sample App")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	e := testEngine(t, Options{Detectors: []detect.Detector{}})
	reports, err := e.Remove(context.Background(), []detect.Detection{{
		Name:            "Sample App",
		Method:          detect.MethodFilesystem,
		InstallLocation: target,
	}})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("reports = %+v", reports)
	}

	rep := reports[0]
	if rep.Removal.FinalStatus != remove.StatusAggressive {
		t.Errorf("status = %q", rep.Removal.FinalStatus)
	}
	if !rep.Verified() {
		t.Errorf("deleted target must verify clean: %+v", rep.Verification)
	}
	if rep.FinalVerification != nil {
		t.Error("clean verification must not trigger escalation")
	}
}

func TestRemoveEscalatesOnFilesystemResidue(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Stubborn App")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	// Dry run leaves the directory in place, so verification stays dirty
	// and the escalation path runs.
	remover := remove.New(remove.Options{
		DryRun:       true,
		LeftoverDirs: []string{t.TempDir()},
		Exec: func(ctx context.Context, name string, args ...string) (string, int, error) {
			return "", 0, nil
		},
	})
	e := testEngine(t, Options{Detectors: []detect.Detector{}, Remover: remover})

	reports, err := e.Remove(context.Background(), []detect.Detection{{
		Name:            "Stubborn App",
		Method:          detect.MethodFilesystem,
		InstallLocation: target,
	}})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}

	rep := reports[0]
	if rep.FinalVerification == nil {
		t.Fatal("filesystem residue must trigger escalation and re-verification")
	}
	if rep.Verified() {
		t.Error("a surviving directory must not verify clean")
	}
	found := false
	for _, s := range rep.Removal.Steps {
		if s.Step == remove.StepTakeOwnership {
			found = true
		}
	}
	if !found {
		t.Errorf("take-ownership step missing from %+v", rep.Removal.Steps)
	}
}
