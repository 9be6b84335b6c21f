package config

import (
	"testing"
	"time"

	"github.com/wizzzeystore/wizzzey-api/pkg/uploads"
)

func TestApplyDefaults_Logging(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default log format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default log output 'stdout', got %q", cfg.Logging.Output)
	}
}

func TestApplyDefaults_ShutdownTimeout(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected default shutdown timeout 30s, got %v", cfg.ShutdownTimeout)
	}
}

func TestApplyDefaults_API(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.API.Port != 8080 {
		t.Errorf("Expected default API port 8080, got %d", cfg.API.Port)
	}
	if cfg.API.ReadTimeout != 10*time.Second {
		t.Errorf("Expected default read timeout 10s, got %v", cfg.API.ReadTimeout)
	}
	if cfg.API.WriteTimeout != 10*time.Second {
		t.Errorf("Expected default write timeout 10s, got %v", cfg.API.WriteTimeout)
	}
	if cfg.API.IdleTimeout != 60*time.Second {
		t.Errorf("Expected default idle timeout 60s, got %v", cfg.API.IdleTimeout)
	}
	if cfg.API.JWT.AccessTokenDuration != 15*time.Minute {
		t.Errorf("Expected default access token duration 15m, got %v", cfg.API.JWT.AccessTokenDuration)
	}
}

func TestApplyDefaults_Uploads(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Uploads.Backend != uploads.BackendFilesystem {
		t.Errorf("Expected default backend 'filesystem', got %q", cfg.Uploads.Backend)
	}
	if cfg.Uploads.Directory != "uploads" {
		t.Errorf("Expected default uploads directory 'uploads', got %q", cfg.Uploads.Directory)
	}
}

func TestApplyDefaults_Cleanup(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Cleanup.SentinelFile != ".gitkeep" {
		t.Errorf("Expected default sentinel '.gitkeep', got %q", cfg.Cleanup.SentinelFile)
	}
	if cfg.Cleanup.Schedule != "30 18 * * *" {
		t.Errorf("Expected default schedule '30 18 * * *', got %q", cfg.Cleanup.Schedule)
	}
	if cfg.Cleanup.SchedulerEnabled == nil || !*cfg.Cleanup.SchedulerEnabled {
		t.Error("Expected scheduler enabled by default")
	}
	if cfg.Cleanup.RunTimeout != 10*time.Minute {
		t.Errorf("Expected default run timeout 10m, got %v", cfg.Cleanup.RunTimeout)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	disabled := false
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  "DEBUG",
			Format: "json",
			Output: "/var/log/wizzzey.log",
		},
		ShutdownTimeout: 60 * time.Second,
		Cleanup: CleanupConfig{
			SentinelFile:     ".keep",
			Schedule:         "0 3 * * *",
			SchedulerEnabled: &disabled,
		},
	}

	ApplyDefaults(cfg)

	// Verify explicit values were preserved
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected explicit level 'DEBUG' to be preserved, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected explicit format 'json' to be preserved, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "/var/log/wizzzey.log" {
		t.Errorf("Expected explicit output to be preserved, got %q", cfg.Logging.Output)
	}
	if cfg.ShutdownTimeout != 60*time.Second {
		t.Errorf("Expected explicit timeout 60s to be preserved, got %v", cfg.ShutdownTimeout)
	}
	if cfg.Cleanup.SentinelFile != ".keep" {
		t.Errorf("Expected explicit sentinel '.keep' to be preserved, got %q", cfg.Cleanup.SentinelFile)
	}
	if cfg.Cleanup.Schedule != "0 3 * * *" {
		t.Errorf("Expected explicit schedule to be preserved, got %q", cfg.Cleanup.Schedule)
	}
	if cfg.Cleanup.SchedulerAutostart() {
		t.Error("Expected explicit scheduler_enabled=false to be preserved")
	}
}

func TestGetDefaultConfig_IsValid(t *testing.T) {
	cfg := GetDefaultConfig()

	// The default config should pass validation
	err := Validate(cfg)
	if err != nil {
		t.Errorf("Default config should be valid, got error: %v", err)
	}
}

func TestGetDefaultConfig_HasRequiredFields(t *testing.T) {
	cfg := GetDefaultConfig()

	// Check all required sections are present
	if cfg.Logging.Level == "" {
		t.Error("Default config missing logging level")
	}
	if cfg.API.Port == 0 {
		t.Error("Default config missing API port")
	}
	if cfg.Database.SQLite.Path == "" {
		t.Error("Default config missing database path")
	}
	if cfg.Uploads.Directory == "" {
		t.Error("Default config missing uploads directory")
	}
	if cfg.Cleanup.Schedule == "" {
		t.Error("Default config missing cleanup schedule")
	}
}
