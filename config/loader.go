/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	stratumfs "bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/internal/logger"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "stratum"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// InvalidGlobError reports a malformed exclude pattern.
type InvalidGlobError struct {
	Pattern string
}

func (e *InvalidGlobError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q", e.Pattern)
}

// Load searches for .config/stratum.{yaml,yml,json} from rootDir. JSON
// files may carry comments and trailing commas.
// Values absent from the file keep their defaults.
// Returns nil if no config found (not an error).
func Load(filesystem stratumfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}

		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found. A config file that
// fails to load is reported and ignored.
func LoadOrDefault(filesystem stratumfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
	}
	if cfg == nil {
		return Default()
	}
	return cfg
}
