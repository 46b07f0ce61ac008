/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyBuildInput           = "build.input"
	KeyBuildOutputDir       = "build.outputDir"
	KeyBuildColorFormat     = "build.colorFormat"
	KeyBuildExcludePalettes = "build.excludePalettes"
	KeyCompareBuild         = "compare.build"
	KeyCompareSupernova     = "compare.supernova"
	KeyCompareOutput        = "compare.output"
	KeyCompareExternalLabel = "compare.externalLabel"
	KeyCompareExclude       = "compare.exclude"
)

// NewViper returns a viper instance whose defaults are the values of cfg.
func NewViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBuildInput, cfg.Build.Input)
	v.SetDefault(KeyBuildOutputDir, cfg.Build.OutputDir)
	v.SetDefault(KeyBuildColorFormat, cfg.Build.ColorFormat)
	v.SetDefault(KeyBuildExcludePalettes, cfg.Build.ExcludePalettes)
	v.SetDefault(KeyCompareBuild, cfg.Compare.Build)
	v.SetDefault(KeyCompareSupernova, cfg.Compare.Supernova)
	v.SetDefault(KeyCompareOutput, cfg.Compare.Output)
	v.SetDefault(KeyCompareExternalLabel, cfg.Compare.ExternalLabel)
	v.SetDefault(KeyCompareExclude, cfg.Compare.Exclude)
	return v
}

// BindFlags binds flags to setting keys. A flag overrides the config
// value only when set on the command line.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, bindings map[string]string) error {
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("no flag %q to bind to %s", name, key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// FromViper reads the effective configuration back out of v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Build: BuildConfig{
			Input:           v.GetString(KeyBuildInput),
			OutputDir:       v.GetString(KeyBuildOutputDir),
			ColorFormat:     v.GetString(KeyBuildColorFormat),
			ExcludePalettes: v.GetStringSlice(KeyBuildExcludePalettes),
		},
		Compare: CompareConfig{
			Build:         v.GetString(KeyCompareBuild),
			Supernova:     v.GetString(KeyCompareSupernova),
			Output:        v.GetString(KeyCompareOutput),
			ExternalLabel: v.GetString(KeyCompareExternalLabel),
			Exclude:       v.GetStringSlice(KeyCompareExclude),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
