/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for stratum.
package config

import (
	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/stratum/compare"
	"bennypowers.dev/stratum/emit"
	"bennypowers.dev/stratum/parser"
)

// Default values.
const (
	DefaultInput         = "tokens.json"
	DefaultOutputDir     = "src/app/tokens"
	DefaultSupernovaDir  = "/tmp/supernova-export-v4/"
	DefaultExternalLabel = compare.DefaultExternalLabel
)

// Config represents the stratum configuration.
type Config struct {
	Build   BuildConfig   `yaml:"build" json:"build"`
	Compare CompareConfig `yaml:"compare" json:"compare"`
}

// BuildConfig configures the build command.
type BuildConfig struct {
	// Input is the design-tool JSON export.
	Input string `yaml:"input" json:"input"`

	// OutputDir receives the four layered CSS files.
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// ColorFormat is one of source, oklch, hex.
	ColorFormat string `yaml:"colorFormat" json:"colorFormat"`

	// ExcludePalettes are palette words dropped from the output.
	ExcludePalettes []string `yaml:"excludePalettes" json:"excludePalettes"`
}

// CompareConfig configures the compare command.
type CompareConfig struct {
	Build         string   `yaml:"build" json:"build"`
	Supernova     string   `yaml:"supernova" json:"supernova"`
	Output        string   `yaml:"output" json:"output"`
	ExternalLabel string   `yaml:"externalLabel" json:"externalLabel"`
	Exclude       []string `yaml:"exclude" json:"exclude"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Input:           DefaultInput,
			OutputDir:       DefaultOutputDir,
			ColorFormat:     string(emit.ColorSource),
			ExcludePalettes: append([]string(nil), parser.DefaultExcludePalettes...),
		},
		Compare: CompareConfig{
			Build:         DefaultOutputDir,
			Supernova:     DefaultSupernovaDir,
			ExternalLabel: DefaultExternalLabel,
		},
	}
}

// Validate checks enumerated values and glob syntax.
func (c *Config) Validate() error {
	if _, err := emit.ParseColorFormat(c.Build.ColorFormat); err != nil {
		return err
	}
	for _, pattern := range c.Compare.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return &InvalidGlobError{Pattern: pattern}
		}
	}
	return nil
}

// BuildOptions returns emit options with configuration applied.
func (c *Config) BuildOptions() (emit.BuildOptions, error) {
	format, err := emit.ParseColorFormat(c.Build.ColorFormat)
	if err != nil {
		return emit.BuildOptions{}, err
	}
	return emit.BuildOptions{
		Options: emit.Options{ColorFormat: format},
		Parse:   parser.Options{ExcludePalettes: c.Build.ExcludePalettes},
	}, nil
}

// CompareOptions returns comparator options with configuration applied.
func (c *Config) CompareOptions() compare.Options {
	return compare.Options{
		BuildDir:      c.Compare.Build,
		ExternalDir:   c.Compare.Supernova,
		ExternalLabel: c.Compare.ExternalLabel,
		Exclude:       c.Compare.Exclude,
	}
}
