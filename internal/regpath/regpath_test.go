package regpath

import "testing"

func TestSplitQualified(t *testing.T) {
	hive, sub, err := SplitQualified(`HKEY_LOCAL_MACHINE\SOFTWARE\Vendor\App`)
	if err != nil {
		t.Fatal(err)
	}
	if hive != HiveLocalMachine || sub != `SOFTWARE\Vendor\App` {
		t.Errorf("got %q %q", hive, sub)
	}
}

func TestSplitQualifiedShortHive(t *testing.T) {
	hive, _, err := SplitQualified(`hklm\SOFTWARE\X`)
	if err != nil || hive != HiveLocalMachine {
		t.Errorf("short hive should resolve, got %q err=%v", hive, err)
	}
}

func TestSplitQualifiedRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "HKEY_LOCAL_MACHINE", `HKEY_CLASSES_ROOT\X`, `HKEY_LOCAL_MACHINE\`} {
		if _, _, err := SplitQualified(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestJoinRoundTrip(t *testing.T) {
	path := Join(HiveCurrentUser, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\App`)
	hive, sub, err := SplitQualified(path)
	if err != nil {
		t.Fatal(err)
	}
	if Join(hive, sub) != path {
		t.Errorf("round trip mismatch: %q", Join(hive, sub))
	}
}
