package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents an optional txlog.yaml configuration file.
type Config struct {
	// Versions lists the MPS7 header versions this installation accepts.
	// Plain ints: a []uint8 would round-trip through YAML as !!binary.
	Versions []int        `yaml:"versions"`
	Report   ReportConfig `yaml:"report"`
}

// AcceptedVersions converts Versions to the byte set the decoder takes.
func (c *Config) AcceptedVersions() []uint8 {
	out := make([]uint8, 0, len(c.Versions))
	for _, v := range c.Versions {
		if v >= 0 && v <= 255 {
			out = append(out, uint8(v))
		}
	}
	return out
}

// ReportConfig controls report rendering.
type ReportConfig struct {
	Currency  string `yaml:"currency"`   // symbol prefixed to amounts in the summary
	CSVHeader bool   `yaml:"csv_header"` // write a header row in CSV output
}

// Load reads a txlog.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no txlog.yaml exists.
func Default() *Config {
	return &Config{
		Versions: []int{1},
		Report: ReportConfig{
			Currency:  "$",
			CSVHeader: true,
		},
	}
}
