package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("SARVAM_API_KEY", "")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Audio.SampleRate != 16000 || cfg.Audio.ChunkSize != 1024 {
		t.Errorf("audio = %+v; want 16000/1024", cfg.Audio)
	}
	if cfg.Audio.TempName != "temp.wav" {
		t.Errorf("temp name = %q; want temp.wav", cfg.Audio.TempName)
	}
	if cfg.Services.Speech.APIKey != "" {
		t.Errorf("api key should be empty by default, got %q", cfg.Services.Speech.APIKey)
	}
}

func TestLoad_FileAndEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
pipeline:
  log_level: debug
services:
  speech:
    url: http://stt.local
http:
  timeout: 10
paths:
  outputs: /tmp/out
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SARVAM_API_KEY", "sk_test")
	t.Setenv("GESTURE_HTTP_TIMEOUT", "5")

	cfg, err := Load(path, viper.New())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pipeline.LogLvl != "debug" {
		t.Errorf("log level = %q; want debug", cfg.Pipeline.LogLvl)
	}
	if cfg.Services.Speech.URL != "http://stt.local" {
		t.Errorf("speech url = %q", cfg.Services.Speech.URL)
	}
	if cfg.Services.Speech.APIKey != "sk_test" {
		t.Errorf("api key = %q; want sk_test", cfg.Services.Speech.APIKey)
	}
	if cfg.HTTP.Timeout != 5 {
		t.Errorf("timeout = %d; want env override 5", cfg.HTTP.Timeout)
	}
	if cfg.Paths.Outputs != "/tmp/out" {
		t.Errorf("outputs = %q", cfg.Paths.Outputs)
	}
	// untouched keys keep their defaults
	if cfg.Camera.Window != "Gesture Project: Facial Expressions" {
		t.Errorf("window = %q", cfg.Camera.Window)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}
