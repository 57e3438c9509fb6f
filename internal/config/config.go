package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Categories map[string]CategoryConfig `yaml:"categories"`
	Simulation SimulationConfig          `yaml:"simulation"`
}

// CategoryConfig overrides a single limit-analysis category
type CategoryConfig struct {
	Disabled      bool `yaml:"disabled"`
	WarnThreshold *int `yaml:"warn_threshold"`
	InfoThreshold *int `yaml:"info_threshold"`
}

// SimulationConfig controls how the simulate command invokes the platform CLI
type SimulationConfig struct {
	// InjectTarget defaults to true; when false the wrapper never adds a
	// --target flag on its own.
	InjectTarget  *bool  `yaml:"inject_target"`
	DefaultTarget string `yaml:"default_target"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{Categories: make(map[string]CategoryConfig)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Categories == nil {
		config.Categories = make(map[string]CategoryConfig)
	}

	return &config, nil
}

// InjectTarget reports whether the simulate wrapper should add a default
// --target flag when the caller did not pass one.
func (c *Config) InjectTarget() bool {
	if c.Simulation.InjectTarget == nil {
		return true
	}
	return *c.Simulation.InjectTarget
}
