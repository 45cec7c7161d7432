package detect

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sweepkit/agent/internal/signature"
)

func TestFilesystemDetectorScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"McAfee Security", "Notepad++", "WildTangent Games"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	catalog := testCatalog(t,
		signature.Entry{Name: "McAfee", Category: "Trial AV", Detection: []string{"mcafee"}},
		signature.Entry{Name: "WildTangent", Category: "Game Pack", Detection: []string{"wildtangent"}},
	)

	det := FilesystemDetector{Dirs: []string{dir}}
	acc := NewAccumulator()
	if err := det.Scan(context.Background(), catalog, acc); err != nil {
		t.Fatalf("scan: %v", err)
	}

	got := acc.Detections()
	if len(got) != 2 {
		t.Fatalf("expected 2 detections, got %d: %+v", len(got), got)
	}
	for _, d := range got {
		if !d.Heuristic {
			t.Errorf("%s: filesystem hits must be heuristic", d.Name)
		}
		if d.Method != MethodFilesystem {
			t.Errorf("%s: method = %v", d.Name, d.Method)
		}
		if d.InstallLocation != filepath.Join(dir, d.Name) {
			t.Errorf("%s: install location = %q", d.Name, d.InstallLocation)
		}
	}
}

func TestFilesystemDetectorSkipsUnreadableDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "McAfee Security"), 0o755); err != nil {
		t.Fatal(err)
	}

	catalog := testCatalog(t, signature.Entry{Name: "McAfee", Detection: []string{"mcafee"}})

	det := FilesystemDetector{Dirs: []string{filepath.Join(dir, "does-not-exist"), dir}}
	acc := NewAccumulator()
	if err := det.Scan(context.Background(), catalog, acc); err != nil {
		t.Fatalf("scan must continue past unreadable directories: %v", err)
	}
	if len(acc.Detections()) != 1 {
		t.Fatalf("expected 1 detection, got %+v", acc.Detections())
	}
}

func TestStartMenuDetectorScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"McAfee LiveSafe.lnk", "Calculator.lnk", "WildTangent Games"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	catalog := testCatalog(t,
		signature.Entry{Name: "McAfee", Detection: []string{"mcafee"}},
		signature.Entry{Name: "WildTangent", Detection: []string{"wildtangent"}},
	)

	det := StartMenuDetector{Dirs: []string{dir}}
	acc := NewAccumulator()
	if err := det.Scan(context.Background(), catalog, acc); err != nil {
		t.Fatalf("scan: %v", err)
	}

	got := acc.Detections()
	if len(got) != 2 {
		t.Fatalf("expected 2 detections, got %+v", got)
	}
	names := map[string]bool{}
	for _, d := range got {
		names[d.Name] = true
		if d.InstallLocation != "" {
			t.Errorf("%s: shortcut hits carry no install location", d.Name)
		}
	}
	if !names["McAfee LiveSafe"] {
		t.Error("shortcut extension must be stripped from the recorded name")
	}
	if !names["WildTangent Games"] {
		t.Error("folder names must be matched as-is")
	}
}

func TestShortcutStem(t *testing.T) {
	cases := []struct{ in, want string }{
		{"McAfee LiveSafe.lnk", "McAfee LiveSafe"},
		{"McAfee LiveSafe.LNK", "McAfee LiveSafe"},
		{"Setup.exe", "Setup.exe"},
		{"Plain Folder", "Plain Folder"},
	}
	for _, c := range cases {
		if got := shortcutStem(c.in); got != c.want {
			t.Errorf("shortcutStem(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
