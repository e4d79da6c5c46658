package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads Flappy configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep default values.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parseFlappy(customPath, data)
	}

	candidates := []string{"configs/flappy.yaml"}
	if p := userConfigPath("flappy.yaml"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		return parseFlappy(path, data)
	}

	cfg, err := parseFlappy("embedded default", defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil
	}
	return cfg, nil
}

// parseFlappy decodes YAML over the built-in defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func parseFlappy(source string, data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return FlappyConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
