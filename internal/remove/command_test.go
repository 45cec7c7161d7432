package remove

import (
	"reflect"
	"testing"
)

func TestBuildUninstallCommandMsiexec(t *testing.T) {
	exe, args, err := BuildUninstallCommand(`MsiExec.exe /I{23170F69-40C1-2702-1900-000001000000}`)
	if err != nil {
		t.Fatal(err)
	}
	if exe != "MsiExec.exe" {
		t.Errorf("exe = %q", exe)
	}
	want := []string{"/x{23170F69-40C1-2702-1900-000001000000}", "/qn"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildUninstallCommandMsiexecSeparateVerb(t *testing.T) {
	_, args, err := BuildUninstallCommand(`msiexec.exe /i {GUID} /norestart`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/x", "{GUID}", "/norestart", "/qn"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildUninstallCommandMsiexecAlreadyQuiet(t *testing.T) {
	_, args, err := BuildUninstallCommand(`msiexec.exe /x {GUID} /quiet`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/x", "{GUID}", "/quiet"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildUninstallCommandNativeInstaller(t *testing.T) {
	exe, args, err := BuildUninstallCommand(`"C:\Program Files\McAfee\uninstall.exe" /flag`)
	if err != nil {
		t.Fatal(err)
	}
	if exe != `C:\Program Files\McAfee\uninstall.exe` {
		t.Errorf("exe = %q", exe)
	}
	want := []string{"/flag", "/S"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildUninstallCommandNativeAlreadySilent(t *testing.T) {
	_, args, err := BuildUninstallCommand(`"C:\Tools\remove.exe" /VERYSILENT`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/VERYSILENT"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}

func TestBuildUninstallCommandErrors(t *testing.T) {
	if _, _, err := BuildUninstallCommand("   "); err == nil {
		t.Error("empty command must fail")
	}
	if _, _, err := BuildUninstallCommand(`"C:\broken path`); err == nil {
		t.Error("unbalanced quotes must fail")
	}
}

func TestBuildUninstallCommandDoesNotMangleOtherVerbs(t *testing.T) {
	_, args, err := BuildUninstallCommand(`msiexec.exe /x {GUID} /instance 2 /qn`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"/x", "{GUID}", "/instance", "2", "/qn"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
}
