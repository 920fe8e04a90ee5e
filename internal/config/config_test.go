package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("expected default addr %q, got %q", ":8080", cfg.Serve.Addr)
	}
	if cfg.Deck != "" {
		t.Errorf("expected built-in deck by default, got %q", cfg.Deck)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("addr: got %q", cfg.Serve.Addr)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slidedeck.yml")
	content := `
deck: talks/ldap.yaml
language: en
labels:
  next: Onward
serve:
  addr: ":9000"
telemetry:
  endpoint: localhost:4318
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SLIDEDECK_SERVE__ADDR", ":9100")
	t.Setenv("SLIDEDECK_LOG_FILE", "/tmp/deck.log")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Deck != "talks/ldap.yaml" {
		t.Errorf("deck: got %q", cfg.Deck)
	}
	if cfg.Serve.Addr != ":9100" {
		t.Errorf("env should override file addr, got %q", cfg.Serve.Addr)
	}
	if cfg.LogFile != "/tmp/deck.log" {
		t.Errorf("log_file: got %q", cfg.LogFile)
	}
	if cfg.Telemetry.Endpoint != "localhost:4318" {
		t.Errorf("telemetry.endpoint: got %q", cfg.Telemetry.Endpoint)
	}
	if cfg.Telemetry.ServiceName != "slidedeck" {
		t.Errorf("service_name default lost: got %q", cfg.Telemetry.ServiceName)
	}

	labels := cfg.ChromeLabels("de")
	if labels.Next != "Onward" {
		t.Errorf("next label override: got %q", labels.Next)
	}
	if labels.Previous != "Previous" {
		t.Errorf("configured language should beat deck language, got %q", labels.Previous)
	}
}

func TestLoad_EnvAllowedOriginsList(t *testing.T) {
	t.Setenv("SLIDEDECK_SERVE__ALLOWED_ORIGINS", "http://a.example:8080, https://b.example,")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"http://a.example:8080", "https://b.example"}
	if !reflect.DeepEqual(cfg.Serve.AllowedOrigins, want) {
		t.Errorf("allowed_origins: got %q, want %q", cfg.Serve.AllowedOrigins, want)
	}
}

func TestEnvValue(t *testing.T) {
	key, val := envValue("SLIDEDECK_LABELS__NEXT", "Weiter, bitte")
	if key != "labels.next" || val != "Weiter, bitte" {
		t.Errorf("scalar: got %q=%v", key, val)
	}
	key, val = envValue("SLIDEDECK_SERVE__ALLOWED_ORIGINS", "*")
	if key != "serve.allowed_origins" || !reflect.DeepEqual(val, []string{"*"}) {
		t.Errorf("list: got %q=%v", key, val)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("serve: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Labels.Counter = "Slide %d"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for counter with one verb")
	}

	cfg = DefaultConfig()
	cfg.Serve.Addr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty addr")
	}
}

func TestLanguageFor(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.LanguageFor(""); got != "de" {
		t.Errorf("fallback language: got %q", got)
	}
	if got := cfg.LanguageFor("en"); got != "en" {
		t.Errorf("deck language: got %q", got)
	}
	cfg.Language = "de"
	if got := cfg.LanguageFor("en"); got != "de" {
		t.Errorf("configured language: got %q", got)
	}
}
