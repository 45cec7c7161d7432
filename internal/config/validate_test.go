package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRejectsZeroTimeouts(t *testing.T) {
	cfg := Default()
	cfg.UninstallTimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero uninstall timeout")
	}

	cfg = Default()
	cfg.ServiceStopTimeoutSeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative service stop timeout")
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}
}

func TestValidateRejectsEmptySignaturePath(t *testing.T) {
	cfg := Default()
	cfg.SignatureFiles = []string{"overlay.yaml", ""}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty signature file path")
	}
}
