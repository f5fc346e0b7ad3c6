// Package config provides centralized configuration defaults for the
// transliterator.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFile represents the structure of config.toml
type ConfigFile struct {
	Defaults           Defaults `toml:"defaults"`
	AvailableLanguages []string `toml:"available_languages"`
}

// Defaults holds all default values
type Defaults struct {
	Language          string `toml:"language"`
	DataDir           string `toml:"data_dir"`
	OutputDir         string `toml:"output_dir"`
	FallbackDelimiter string `toml:"fallback_delimiter"`
	Workers           int    `toml:"workers"`
	SSML              bool   `toml:"ssml"`
	Quiet             bool   `toml:"quiet"`
	Verbose           bool   `toml:"verbose"`
	Metrics           bool   `toml:"metrics"`
}

// Hardcoded fallback defaults (used if config.toml not found)
var fallbackDefaults = Defaults{
	Language:          "en",
	DataDir:           "data",
	OutputDir:         "output",
	FallbackDelimiter: "#",
	Workers:           0,
	SSML:              false,
	Quiet:             false,
	Verbose:           false,
	Metrics:           true,
}

var fallbackLanguages = []string{"en", "fr", "de", "es", "it", "pt", "nl", "tr"}

// loaded holds the parsed config (nil if not loaded yet)
var loaded *ConfigFile

// Load reads config.toml from the project root
func Load() *ConfigFile {
	if loaded != nil {
		return loaded
	}

	// Try to find config.toml by walking up from executable or cwd
	paths := []string{
		"config.toml",
		"../config.toml",
		"../../config.toml",
	}

	// Also try from executable location
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, "config.toml"),
			filepath.Join(dir, "..", "config.toml"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			var cfg ConfigFile
			if _, err := toml.DecodeFile(path, &cfg); err == nil {
				applyFallbacks(&cfg)
				loaded = &cfg
				return loaded
			}
		}
	}

	// Return fallback if config.toml not found
	loaded = &ConfigFile{
		Defaults:           fallbackDefaults,
		AvailableLanguages: fallbackLanguages,
	}
	return loaded
}

// applyFallbacks fills fields a partial config.toml left empty.
func applyFallbacks(cfg *ConfigFile) {
	if cfg.Defaults.Language == "" {
		cfg.Defaults.Language = fallbackDefaults.Language
	}
	if cfg.Defaults.DataDir == "" {
		cfg.Defaults.DataDir = fallbackDefaults.DataDir
	}
	if cfg.Defaults.OutputDir == "" {
		cfg.Defaults.OutputDir = fallbackDefaults.OutputDir
	}
	if cfg.Defaults.FallbackDelimiter == "" {
		cfg.Defaults.FallbackDelimiter = fallbackDefaults.FallbackDelimiter
	}
	if len(cfg.AvailableLanguages) == 0 {
		cfg.AvailableLanguages = fallbackLanguages
	}
}

// Convenience accessors that load config on first access
var (
	DefaultLanguage  = func() string { return Load().Defaults.Language }
	DefaultDataDir   = func() string { return Load().Defaults.DataDir }
	DefaultOutputDir = func() string { return Load().Defaults.OutputDir }
	DefaultDelimiter = func() string { return Load().Defaults.FallbackDelimiter }
	DefaultWorkers   = func() int { return Load().Defaults.Workers }
	DefaultSSML      = func() bool { return Load().Defaults.SSML }
	DefaultQuiet     = func() bool { return Load().Defaults.Quiet }
	DefaultVerbose   = func() bool { return Load().Defaults.Verbose }
	DefaultMetrics   = func() bool { return Load().Defaults.Metrics }
)

// MaxWorkers is the cap for parallel resource loading
const MaxWorkers = 8

// AvailableLanguagesStr returns available languages as comma-separated string.
func AvailableLanguagesStr() string {
	return strings.Join(Load().AvailableLanguages, ", ")
}
