package config

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/dayoff/internal/domain"
)

// Render encodes cfg in the dayoff.yaml layout read by Load.
func Render(cfg domain.Config) ([]byte, error) {
	var y yamlConfig
	y.Dayoff.HolidaysFile = cfg.HolidaysFile
	y.Dayoff.Encoding = cfg.Encoding
	y.Dayoff.Timezone = cfg.Timezone
	y.Dayoff.MetricsFile = cfg.MetricsFile
	y.Dayoff.LogFile = cfg.LogFile

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(y); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
