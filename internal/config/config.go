// Package config holds the tool's settings: where the two files go,
// which extensions they carry and how chatty the logger is. Values are
// layered defaults -> yaml file -> environment; command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory
// when --config is not given.
const DefaultFile = ".classgen.yaml"

type Config struct {
	IncludeDir string `yaml:"include_dir" env:"CLASSGEN_INCLUDE_DIR"`
	SourceDir  string `yaml:"source_dir" env:"CLASSGEN_SOURCE_DIR"`
	HeaderExt  string `yaml:"header_ext" env:"CLASSGEN_HEADER_EXT"`
	SourceExt  string `yaml:"source_ext" env:"CLASSGEN_SOURCE_EXT"`
	LogLevel   string `yaml:"log_level" env:"CLASSGEN_LOG_LEVEL"`
}

func Default() *Config {
	return &Config{
		IncludeDir: "include",
		SourceDir:  "src",
		HeaderExt:  ".hpp",
		SourceExt:  ".cpp",
		LogLevel:   "info",
	}
}

// Load builds the config from defaults, the yaml file and the
// environment, in that order. A missing DefaultFile is fine; a missing
// explicitly-given path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// no config file, defaults apply
	default:
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Normalize ensures directories are set and extensions carry a leading
// dot. Called once after all layers are applied.
func (c *Config) Normalize() error {
	if c.IncludeDir == "" || c.SourceDir == "" {
		return errors.New("output directories must not be empty")
	}
	c.HeaderExt = normalizeExt(c.HeaderExt)
	c.SourceExt = normalizeExt(c.SourceExt)
	if c.HeaderExt == "." || c.SourceExt == "." {
		return errors.New("file extensions must not be empty")
	}
	return nil
}

func (c *Config) HeaderPath(className string) string {
	return filepath.Join(c.IncludeDir, className+c.HeaderExt)
}

func (c *Config) SourcePath(className string) string {
	return filepath.Join(c.SourceDir, className+c.SourceExt)
}

func normalizeExt(ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
