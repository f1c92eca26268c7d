package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"llm-translator/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "translator:\n  api_key: abc\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Translator.Provider != "gemini" {
		t.Errorf("Provider: got %s, want gemini", cfg.Translator.Provider)
	}
	if cfg.Translator.Model != "gemini-1.5-flash" {
		t.Errorf("Model: got %s, want gemini-1.5-flash", cfg.Translator.Model)
	}
	if cfg.Speech.Cloud != "translate" {
		t.Errorf("Speech.Cloud: got %s, want translate", cfg.Speech.Cloud)
	}
	if cfg.Speech.SourceLabel != "Eng" {
		t.Errorf("SourceLabel: got %s, want Eng", cfg.Speech.SourceLabel)
	}
	if cfg.Storage.InputDir != "./Files_To_Upload" || cfg.Storage.OutputDir != "./Downloaded_Speech" {
		t.Errorf("Storage: got %+v", cfg.Storage)
	}
	if cfg.HTTP.RateLimit != 30 {
		t.Errorf("RateLimit: got %d, want 30", cfg.HTTP.RateLimit)
	}
	if cfg.Pushover.Enabled || cfg.Pushover.MinLevel != "warning" {
		t.Errorf("Pushover: got %+v", cfg.Pushover)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_TRANSLATOR_KEY", "secret-from-env")
	path := writeConfig(t, "translator:\n  provider: anthropic\n  api_key: ${TEST_TRANSLATOR_KEY}\nstorage:\n  output_dir: /tmp/speech\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Translator.APIKey != "secret-from-env" {
		t.Errorf("APIKey: got %q, want secret-from-env", cfg.Translator.APIKey)
	}
	if cfg.Translator.Model != "claude-sonnet-4-20250514" {
		t.Errorf("Model: got %s, want anthropic default", cfg.Translator.Model)
	}
	if cfg.Storage.OutputDir != "/tmp/speech" {
		t.Errorf("OutputDir: got %s, want /tmp/speech", cfg.Storage.OutputDir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
