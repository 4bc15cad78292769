// Package config loads optional defaults for the command line from a YAML
// file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when no --config flag is
// given.
const EnvVar = "MYGREP_CONFIG"

type Config struct {
	Color        string   `yaml:"color"`
	LogLevel     string   `yaml:"log_level"`
	OnlyMatching bool     `yaml:"only_matching"`
	Include      []string `yaml:"include"`
}

func Default() Config {
	return Config{
		Color:    "auto",
		LogLevel: "warn",
	}
}

// Load reads path, or the file named by EnvVar when path is empty. With
// neither set it returns Default. Keys missing from the file keep their
// defaults; unknown keys are an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over cfg.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
