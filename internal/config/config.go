package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds the tunables of the detection and removal pipeline.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Timeouts, in seconds.
	UninstallTimeoutSeconds     int `mapstructure:"uninstall_timeout_seconds"`
	ServiceStopTimeoutSeconds   int `mapstructure:"service_stop_timeout_seconds"`
	ServiceDeleteTimeoutSeconds int `mapstructure:"service_delete_timeout_seconds"`
	TakeownTimeoutSeconds       int `mapstructure:"takeown_timeout_seconds"`
	ProcessKillGraceSeconds     int `mapstructure:"process_kill_grace_seconds"`

	// SignatureFiles are YAML overlays merged over the built-in catalog,
	// in order, last write wins.
	SignatureFiles []string `mapstructure:"signature_files"`

	// ExtraScanDirs are additional directories for the filesystem detector
	// and the leftover sweep, on top of the standard Windows set.
	ExtraScanDirs []string `mapstructure:"extra_scan_dirs"`

	// DryRun makes the remover log what every method would do without
	// touching the system.
	DryRun bool `mapstructure:"dry_run"`
}

func Default() *Config {
	return &Config{
		LogLevel:                    "info",
		LogFormat:                   "text",
		UninstallTimeoutSeconds:     300,
		ServiceStopTimeoutSeconds:   60,
		ServiceDeleteTimeoutSeconds: 30,
		TakeownTimeoutSeconds:       120,
		ProcessKillGraceSeconds:     2,
	}
}

func Load(cfgFile string) (*Config, error) {
	cfg := Default()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sweepkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(configDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SWEEPKIT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func configDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "Sweepkit")
	case "darwin":
		return "/Library/Application Support/Sweepkit"
	default:
		return "/etc/sweepkit"
	}
}
