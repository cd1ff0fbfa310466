package config

import (
	"errors"
	"os"
	"testing"

	"github.com/ardanlabs/conf/v3"
)

func TestParse_HelpWanted(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = []string{"unisovet-console", "--help"}

	_, help, err := parse()
	if !errors.Is(err, conf.ErrHelpWanted) {
		t.Fatalf("expected ErrHelpWanted, got %v", err)
	}
	if help == "" {
		t.Fatal("expected usage text for --help")
	}
}

func TestParse_EnvOverridesAndDefaults(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()
	os.Args = []string{"unisovet-console"}

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	cfg, _, err := parse()
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected env override for port, got %q", cfg.HTTPPort)
	}
	if cfg.GeminiModel != "gemini-2.5-pro" {
		t.Fatalf("expected env override for model, got %q", cfg.GeminiModel)
	}
	if cfg.LogLevel != "info" && os.Getenv("LOG_LEVEL") == "" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
}
