// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

// Package config handles xabin project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Helios-vmg/Xabin/internal/translate"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Defaults applied by Resolve.
const (
	DefaultTarget    = "go"
	DefaultErrorMode = "exceptions"
	DefaultOutput    = "xabin_gen"
)

// Config represents the xabin.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`
	// Sources are schema files, compiled in order into one output.
	Sources []string `yaml:"sources"`
	// Target names the generator, e.g. "go" or "cpp".
	Target    string `yaml:"target,omitempty"`
	ErrorMode string `yaml:"error_mode,omitempty"`
	// Output is the generated file path without extension.
	Output         string `yaml:"output,omitempty"`
	Package        string `yaml:"package,omitempty"`
	NamespaceClose string `yaml:"namespace_close,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Resolve fills unset fields with their defaults.
func (c *Config) Resolve() {
	if c.Target == "" {
		c.Target = DefaultTarget
	}
	if c.ErrorMode == "" {
		c.ErrorMode = DefaultErrorMode
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.NamespaceClose == "" {
		c.NamespaceClose = translate.InnermostFirst.String()
	}
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if len(c.Sources) == 0 {
		return errors.New("no sources configured")
	}
	if c.ErrorMode != "" {
		if _, err := translate.ParseErrorMode(c.ErrorMode); err != nil {
			return err
		}
	}
	if c.NamespaceClose != "" {
		if _, err := translate.ParseNamespaceClose(c.NamespaceClose); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the error mode and namespace settings into generator options.
func (c *Config) Options() (translate.Options, error) {
	opts := translate.Options{Package: c.Package, Sources: c.Sources}
	var err error
	if c.ErrorMode != "" {
		if opts.Mode, err = translate.ParseErrorMode(c.ErrorMode); err != nil {
			return opts, fmt.Errorf("error_mode: %w", err)
		}
	}
	if c.NamespaceClose != "" {
		if opts.NamespaceClose, err = translate.ParseNamespaceClose(c.NamespaceClose); err != nil {
			return opts, fmt.Errorf("namespace_close: %w", err)
		}
	}
	return opts, nil
}
