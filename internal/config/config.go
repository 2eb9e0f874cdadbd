// Package config loads bmpconv settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/erinpentecost/bmpenc/internal/bmp"
)

const DefaultPath = "bmpconv.yaml"

type Config struct {
	// Threshold is the BMP alpha cutoff, clamped to [0, 255] by the encoder.
	Threshold int `yaml:"threshold"`
	// Threads limits how many files convert at once.
	Threads int `yaml:"threads"`
	// OutDir receives converted files. Empty means next to the input.
	OutDir string `yaml:"outDir"`
	// Format is the output extension, "bmp" or "dds".
	Format string `yaml:"format"`
	// MaxEdge downscales inputs whose longest edge is larger. 0 disables.
	MaxEdge int  `yaml:"maxEdge"`
	Debug   bool `yaml:"debug"`
}

func Default() Config {
	return Config{
		Threshold: bmp.DefaultThreshold,
		Threads:   runtime.NumCPU(),
		Format:    bmp.Extension,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	return cfg, nil
}
