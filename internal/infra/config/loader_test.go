package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/dayoff/internal/domain"
)

func TestLoad_AppliesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dayoff.yaml")

	// Partial config (no holidays_file/encoding)
	content := []byte("dayoff:\n  timezone: Asia/Tokyo\n")
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Timezone != "Asia/Tokyo" {
		t.Fatalf("expected timezone=Asia/Tokyo, got=%s", cfg.Timezone)
	}
	if cfg.HolidaysFile != domain.DefaultHolidaysFile {
		t.Fatalf("expected default holidays file, got=%s", cfg.HolidaysFile)
	}
	if cfg.Encoding != "utf-8" {
		t.Fatalf("expected encoding=utf-8, got=%s", cfg.Encoding)
	}
	if cfg.MetricsFile != "" || cfg.LogFile != "" {
		t.Fatalf("expected metrics/log disabled, got=%+v", cfg)
	}
}

func TestLoad_AllFields(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dayoff.yaml")
	content := []byte(`dayoff:
  holidays_file: /etc/dayoff/holidays.yml
  encoding: shift_jis
  timezone: UTC
  metrics_file: /var/lib/node_exporter/dayoff.prom
  log_file: /var/log/dayoff.log
`)
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := domain.Config{
		HolidaysFile: "/etc/dayoff/holidays.yml",
		Encoding:     "shift_jis",
		Timezone:     "UTC",
		MetricsFile:  "/var/lib/node_exporter/dayoff.prom",
		LogFile:      "/var/log/dayoff.log",
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "dayoff.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dayoff.yaml")
	if err := os.WriteFile(p, []byte("dayoff: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(p)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}

func TestLoadOptional_MissingGivesDefaults(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "dayoff.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOptional_InvalidStillFails(t *testing.T) {
	p := filepath.Join(t.TempDir(), "dayoff.yaml")
	if err := os.WriteFile(p, []byte("dayoff: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadOptional(p); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}
