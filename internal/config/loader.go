package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".confreport"

// xdgConfigFile is the file name looked up inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile reads a .confreport file.
// A missing file yields ErrConfigNotFound; whether that is fatal depends on
// whether the user named the file. Unknown keys are rejected so that a typo
// such as "recursiv" does not silently fall back to a default.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid configuration file: %w", err)
	}

	if cf.Projects == nil {
		cf.Projects = make(map[string]ProjectConfig)
	}
	return &cf, nil
}

// FindConfigFile returns the configuration file to use, or "" if there is none.
//
// An explicit configPath is returned only if it exists. Otherwise the first
// existing file of .confreport in the working directory, .confreport in the
// home directory, and config.yaml in XDGConfigDir wins.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if fileExists(configPath) {
			return configPath
		}
		return ""
	}

	for _, candidate := range searchPath() {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// searchPath lists the implicit config file locations in lookup order.
func searchPath() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, DefaultConfigFile))
	}
	return append(paths, filepath.Join(XDGConfigDir(), xdgConfigFile))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
