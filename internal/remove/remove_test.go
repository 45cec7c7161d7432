package remove

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sweepkit/agent/internal/detect"
)

func TestFinalizeStatus(t *testing.T) {
	cases := []struct {
		name  string
		steps []StepOutcome
		want  string
	}{
		{
			name: "clean uninstall",
			steps: []StepOutcome{
				{Step: StepUninstallString, Success: true},
				{Step: StepFileDelete, Success: false},
			},
			want: StatusSuccess,
		},
		{
			name: "package removal counts as clean",
			steps: []StepOutcome{
				{Step: StepAppxRemove, Success: true},
			},
			want: StatusSuccess,
		},
		{
			name: "aggressive cleanup only",
			steps: []StepOutcome{
				{Step: StepUninstallString, Success: false},
				{Step: StepFileDelete, Success: true},
			},
			want: StatusAggressive,
		},
		{
			name: "process kill alone is not a removal",
			steps: []StepOutcome{
				{Step: StepProcessKill, Success: true},
			},
			want: StatusFailure,
		},
		{
			name:  "nothing attempted",
			steps: nil,
			want:  StatusFailure,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Result{Steps: c.steps}
			res.finalize()
			if res.FinalStatus != c.want {
				t.Errorf("status = %q, want %q", res.FinalStatus, c.want)
			}
		})
	}
}

func TestRunUninstallString(t *testing.T) {
	var gotName string
	var gotArgs []string
	r := New(Options{Exec: func(ctx context.Context, name string, args ...string) (string, int, error) {
		gotName = name
		gotArgs = args
		return "", 0, nil
	}})

	d := detect.Detection{
		Name:             "Sample Toolbar",
		Method:           detect.MethodRegistry,
		UninstallCommand: `"C:\Sample\uninstall.exe"`,
	}
	res := Result{Name: d.Name}
	r.runUninstallString(context.Background(), d, &res)

	if gotName != `C:\Sample\uninstall.exe` {
		t.Errorf("exe = %q", gotName)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "/S" {
		t.Errorf("args = %v, want [/S]", gotArgs)
	}
	if !res.succeeded(StepUninstallString) {
		t.Error("exit 0 must record success")
	}
}

func TestRunMsiexecRebootRequired(t *testing.T) {
	r := New(Options{Exec: func(ctx context.Context, name string, args ...string) (string, int, error) {
		if name != "msiexec.exe" {
			t.Errorf("exe = %q", name)
		}
		return "", 3010, nil
	}})

	d := detect.Detection{Name: "Sample", ProductCode: "{GUID}"}
	res := Result{Name: d.Name}
	r.runMsiexec(context.Background(), d, &res)

	if !res.succeeded(StepMsiexec) {
		t.Error("exit 3010 (reboot required) must count as success")
	}
}

func TestUninstallSucceededCodes(t *testing.T) {
	for _, code := range []int{0, 3010, 1605} {
		if !uninstallSucceeded(code, nil, true) {
			t.Errorf("msiexec exit %d must count as success", code)
		}
	}
	if !uninstallSucceeded(0, nil, false) {
		t.Error("exit 0 must count as success for any uninstaller")
	}
	for _, code := range []int{3010, 1605} {
		if uninstallSucceeded(code, nil, false) {
			t.Errorf("exit %d from a non-MSI uninstaller must count as failure", code)
		}
	}
	if uninstallSucceeded(1603, nil, true) {
		t.Error("exit 1603 must count as failure")
	}
	if uninstallSucceeded(0, context.DeadlineExceeded, true) {
		t.Error("a timed-out command must count as failure")
	}
}

func TestIsMsiexec(t *testing.T) {
	for _, exe := range []string{"msiexec.exe", "MsiExec.exe", `C:\Windows\System32\msiexec.exe`, `"msiexec"`} {
		if !isMsiexec(exe) {
			t.Errorf("%q must be recognized as Windows Installer", exe)
		}
	}
	if isMsiexec(`C:\Sample\uninstall.exe`) {
		t.Error("a vendor uninstaller must not pass as Windows Installer")
	}
}

func TestRunAlwaysAttemptsMsiexecWithProductCode(t *testing.T) {
	var commands []string
	r := New(Options{
		LeftoverDirs: []string{t.TempDir()},
		Exec: func(ctx context.Context, name string, args ...string) (string, int, error) {
			commands = append(commands, name)
			return "", 0, nil
		},
	})

	d := detect.Detection{
		Name:             "Sample App",
		Method:           detect.MethodRegistry,
		UninstallCommand: `"C:\Sample\uninstall.exe"`,
		ProductCode:      "{23170F69-40C1-2702-1900-000001000000}",
	}
	res := r.Run(context.Background(), d)

	if !res.succeeded(StepUninstallString) {
		t.Fatalf("uninstall string must succeed first: %+v", res.Steps)
	}
	if !res.succeeded(StepMsiexec) {
		t.Fatalf("msiexec must run even after a successful uninstall string: %+v", res.Steps)
	}
	found := false
	for _, c := range commands {
		if c == "msiexec.exe" {
			found = true
		}
	}
	if !found {
		t.Errorf("msiexec.exe was never invoked: %v", commands)
	}
}

func TestDeleteFilesInstallLocation(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Sample App")
	if err := os.MkdirAll(filepath.Join(target, "bin"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := New(Options{Exec: noExec(t), LeftoverDirs: []string{t.TempDir()}})
	d := detect.Detection{Name: "Sample App", InstallLocation: target}
	res := Result{Name: d.Name}
	r.deleteFiles(context.Background(), d, &res)

	if !res.succeeded(StepFileDelete) {
		t.Fatalf("file delete must succeed: %+v", res.Steps)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("install location must be gone")
	}
}

func TestDeleteFilesDryRun(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Sample App")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	r := New(Options{Exec: noExec(t), DryRun: true, LeftoverDirs: []string{t.TempDir()}})
	res := Result{}
	r.deleteFiles(context.Background(), detect.Detection{Name: "Sample App", InstallLocation: target}, &res)

	if !res.succeeded(StepFileDelete) {
		t.Fatal("dry run must report what it would do as success")
	}
	if _, err := os.Stat(target); err != nil {
		t.Error("dry run must not delete anything")
	}
}

func TestDeleteFilesAbsentLocationIsNotAChange(t *testing.T) {
	r := New(Options{Exec: noExec(t), LeftoverDirs: []string{t.TempDir()}})
	res := Result{}
	d := detect.Detection{Name: "Ghost App", InstallLocation: filepath.Join(t.TempDir(), "gone")}
	r.deleteFiles(context.Background(), d, &res)

	if res.succeeded(StepFileDelete) {
		t.Fatalf("an already-absent install location deletes nothing and must not count as a change: %+v", res.Steps)
	}
}

func TestRunNoChangeIsNotAggressiveSuccess(t *testing.T) {
	r := New(Options{
		LeftoverDirs: []string{t.TempDir()},
		Exec: func(ctx context.Context, name string, args ...string) (string, int, error) {
			return "", 1, nil
		},
	})

	d := detect.Detection{
		Name:             "Ghost App",
		Method:           detect.MethodRegistry,
		UninstallCommand: `"C:\Ghost\uninstall.exe"`,
		InstallLocation:  filepath.Join(t.TempDir(), "gone"),
	}
	res := r.Run(context.Background(), d)

	if res.FinalStatus != StatusFailure {
		t.Errorf("status = %q, want %q when every method changed nothing: %+v",
			res.FinalStatus, StatusFailure, res.Steps)
	}
}

func TestTakeOwnershipRetriesDelete(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "stubborn")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	var commands []string
	r := New(Options{Exec: func(ctx context.Context, name string, args ...string) (string, int, error) {
		commands = append(commands, name+" "+strings.Join(args, " "))
		return "", 0, nil
	}})

	res := Result{}
	if !r.TakeOwnership(context.Background(), target, &res) {
		t.Fatalf("take ownership must succeed: %+v", res.Steps)
	}
	if len(commands) != 2 {
		t.Fatalf("expected takeown and icacls, got %v", commands)
	}
	if !strings.HasPrefix(commands[0], "takeown /F "+target) || !strings.Contains(commands[0], "/R /D Y") {
		t.Errorf("takeown command = %q", commands[0])
	}
	if !strings.HasPrefix(commands[1], "icacls "+target) || !strings.Contains(commands[1], "/grant") {
		t.Errorf("icacls command = %q", commands[1])
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("target must be gone after the retry delete")
	}
}

func TestTakeOwnershipAlreadyGone(t *testing.T) {
	r := New(Options{Exec: noExec(t)})
	res := Result{}
	if !r.TakeOwnership(context.Background(), filepath.Join(t.TempDir(), "missing"), &res) {
		t.Error("a vanished path needs no escalation")
	}
}

func noExec(t *testing.T) CommandFunc {
	t.Helper()
	return func(ctx context.Context, name string, args ...string) (string, int, error) {
		t.Fatalf("unexpected command execution: %s %v", name, args)
		return "", -1, nil
	}
}
