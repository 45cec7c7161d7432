package config

import "fmt"

// Validate rejects configs that would hang or skip the removal pipeline.
func (c *Config) Validate() error {
	if c.UninstallTimeoutSeconds <= 0 {
		return fmt.Errorf("config: uninstall_timeout_seconds must be positive, got %d", c.UninstallTimeoutSeconds)
	}
	if c.ServiceStopTimeoutSeconds <= 0 {
		return fmt.Errorf("config: service_stop_timeout_seconds must be positive, got %d", c.ServiceStopTimeoutSeconds)
	}
	if c.ServiceDeleteTimeoutSeconds <= 0 {
		return fmt.Errorf("config: service_delete_timeout_seconds must be positive, got %d", c.ServiceDeleteTimeoutSeconds)
	}
	if c.TakeownTimeoutSeconds <= 0 {
		return fmt.Errorf("config: takeown_timeout_seconds must be positive, got %d", c.TakeownTimeoutSeconds)
	}
	if c.ProcessKillGraceSeconds <= 0 {
		return fmt.Errorf("config: process_kill_grace_seconds must be positive, got %d", c.ProcessKillGraceSeconds)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: log_format must be \"text\" or \"json\", got %q", c.LogFormat)
	}
	for _, f := range c.SignatureFiles {
		if f == "" {
			return fmt.Errorf("config: signature_files contains an empty path")
		}
	}
	return nil
}
