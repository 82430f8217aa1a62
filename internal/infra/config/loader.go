package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/dayoff/internal/domain"
)

// DefaultFile is looked up in the working directory when --config is not given.
const DefaultFile = "dayoff.yaml"

// Load reads a dayoff.yaml file and applies it on top of the defaults.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Dayoff.HolidaysFile != "" {
		cfg.HolidaysFile = y.Dayoff.HolidaysFile
	}
	if y.Dayoff.Encoding != "" {
		cfg.Encoding = y.Dayoff.Encoding
	}
	if y.Dayoff.Timezone != "" {
		cfg.Timezone = y.Dayoff.Timezone
	}
	if y.Dayoff.MetricsFile != "" {
		cfg.MetricsFile = y.Dayoff.MetricsFile
	}
	if y.Dayoff.LogFile != "" {
		cfg.LogFile = y.Dayoff.LogFile
	}

	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (domain.Config, error) {
	cfg, err := Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

type yamlConfig struct {
	Dayoff struct {
		HolidaysFile string `yaml:"holidays_file"`
		Encoding     string `yaml:"encoding"`
		Timezone     string `yaml:"timezone"`
		MetricsFile  string `yaml:"metrics_file"`
		LogFile      string `yaml:"log_file"`
	} `yaml:"dayoff"`
}
