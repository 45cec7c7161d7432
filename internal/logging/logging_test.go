package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComponentLoggerPicksUpInit(t *testing.T) {
	// Logger created before Init must write through the configured handler.
	log := L("testcomp")

	var buf bytes.Buffer
	Init("text", "info", &buf)

	log.Info("hello", "k", "v")

	out := buf.String()
	if !strings.Contains(out, "component=testcomp") {
		t.Errorf("missing component field: %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("missing message: %q", out)
	}
}

func TestInitJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init("json", "debug", &buf)

	L("jsoncomp").Debug("structured")

	if !strings.Contains(buf.String(), `"component":"jsoncomp"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init("text", "warn", &buf)

	L("lvl").Info("dropped")
	L("lvl").Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn record should pass")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRotatingWriterRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")

	rw, err := NewRotatingWriter(path, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer rw.Close()

	// Force a rotation by pretending the limit is tiny.
	rw.maxSize = 10
	if _, err := rw.Write([]byte("0123456789")); err != nil {
		t.Fatal(err)
	}
	if _, err := rw.Write([]byte("next")); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("expected backup file after rotation: %v", err)
	}
}

func TestWithApp(t *testing.T) {
	var buf bytes.Buffer
	Init("text", "info", &buf)

	WithApp(L("remover"), "Sample Toolbar").Info("method attempt")

	if !strings.Contains(buf.String(), `app="Sample Toolbar"`) {
		t.Errorf("missing app field: %q", buf.String())
	}
}
