package verify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sweepkit/agent/internal/detect"
)

func TestResultClean(t *testing.T) {
	all := Result{RegistryClean: true, FilesystemClean: true, ProcessesClean: true, PackageClean: true}
	if !all.Clean() {
		t.Error("all surfaces clean must report clean")
	}
	dirty := all
	dirty.FilesystemClean = false
	if dirty.Clean() {
		t.Error("one dirty surface must fail the whole verification")
	}
}

func TestFilesystemClean(t *testing.T) {
	v := &Verifier{}
	dir := t.TempDir()
	target := filepath.Join(dir, "leftover")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	if v.filesystemClean(detect.Detection{InstallLocation: target}) {
		t.Error("existing install location must not be clean")
	}
	if !v.filesystemClean(detect.Detection{InstallLocation: filepath.Join(dir, "gone")}) {
		t.Error("missing install location must be clean")
	}
	if !v.filesystemClean(detect.Detection{}) {
		t.Error("no install location means nothing to check")
	}
}

func TestPackageClean(t *testing.T) {
	d := detect.Detection{
		Name:            "Candy Crush",
		Method:          detect.MethodPackage,
		PackageFullName: "king.com.CandyCrushSaga_1.2.3.0_x64__kgqvnymyfvs32",
	}

	v := &Verifier{PackageCount: func(ctx context.Context, fullName string) (int, error) {
		if fullName != d.PackageFullName {
			t.Errorf("queried %q", fullName)
		}
		return 0, nil
	}}
	if !v.packageClean(context.Background(), d) {
		t.Error("zero remaining packages must be clean")
	}

	v.PackageCount = func(ctx context.Context, fullName string) (int, error) { return 1, nil }
	if v.packageClean(context.Background(), d) {
		t.Error("a surviving package must not be clean")
	}

	v.PackageCount = func(ctx context.Context, fullName string) (int, error) {
		return 0, errors.New("powershell missing")
	}
	if v.packageClean(context.Background(), d) {
		t.Error("a failed inventory query must not report clean")
	}
}

func TestPackageCleanNonPackage(t *testing.T) {
	v := &Verifier{PackageCount: func(ctx context.Context, fullName string) (int, error) {
		t.Fatal("non-package candidates must not query the inventory")
		return 0, nil
	}}
	if !v.packageClean(context.Background(), detect.Detection{Name: "X", Method: detect.MethodRegistry}) {
		t.Error("non-package candidate is vacuously clean")
	}
}

func TestTermsFallBackToName(t *testing.T) {
	v := &Verifier{}
	got := v.terms(detect.Detection{Name: "McAfee LiveSafe"})
	if len(got) != 1 || got[0] != "mcafee livesafe" {
		t.Errorf("terms = %v", got)
	}
	if got := v.terms(detect.Detection{Name: "HP"}); len(got) != 0 {
		t.Errorf("short names must be dropped, got %v", got)
	}
}
