package config

import (
	"testing"
)

func TestNewServerConfigDefaults(t *testing.T) {
	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("NewServerConfig() failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Port)
	}
	if cfg.DBPath != "./bloglist.db" {
		t.Errorf("Expected default db path, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected default log level debug, got %q", cfg.LogLevel)
	}
}

func TestNewServerConfigRejectsBadValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	if _, err := NewServerConfig(); err == nil {
		t.Error("Expected an error for an invalid LOG_LEVEL")
	}

	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("PORT", "70000")
	if _, err := NewServerConfig(); err == nil {
		t.Error("Expected an error for an out-of-range PORT")
	}
}
