/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/stratum/emit"
	"bennypowers.dev/stratum/internal/mapfs"
	"bennypowers.dev/stratum/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.Build.Input != "design/figma-variables.json" {
		t.Errorf("expected input 'design/figma-variables.json', got %q", cfg.Build.Input)
	}
	if cfg.Build.OutputDir != "dist/tokens" {
		t.Errorf("expected outputDir 'dist/tokens', got %q", cfg.Build.OutputDir)
	}
	if cfg.Compare.Supernova != "exports/supernova" {
		t.Errorf("expected supernova 'exports/supernova', got %q", cfg.Compare.Supernova)
	}
	if len(cfg.Compare.Exclude) != 2 {
		t.Fatalf("expected 2 exclude globs, got %d", len(cfg.Compare.Exclude))
	}

	// unset values keep their defaults
	if cfg.Compare.Build != DefaultOutputDir {
		t.Errorf("expected default compare.build %q, got %q", DefaultOutputDir, cfg.Compare.Build)
	}
	if !slices.Equal(cfg.Build.ExcludePalettes, []string{"gray"}) {
		t.Errorf("expected default excluded palettes, got %v", cfg.Build.ExcludePalettes)
	}

	opts, err := cfg.BuildOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.ColorFormat != emit.ColorOKLCH {
		t.Errorf("expected oklch color format, got %q", opts.ColorFormat)
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	opts := cfg.CompareOptions()
	if opts.BuildDir != "out/css" {
		t.Errorf("expected build dir 'out/css', got %q", opts.BuildDir)
	}
	if opts.ExternalDir != DefaultSupernovaDir {
		t.Errorf("expected default supernova dir, got %q", opts.ExternalDir)
	}
	if opts.ExternalLabel != "Vendor" {
		t.Errorf("expected label 'Vendor', got %q", opts.ExternalLabel)
	}
	if cfg.Compare.Output != "reports/compare.md" {
		t.Errorf("expected output 'reports/compare.md', got %q", cfg.Compare.Output)
	}

	buildOpts, err := cfg.BuildOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(buildOpts.Parse.ExcludePalettes, []string{"gray", "slate"}) {
		t.Errorf("expected palettes [gray slate], got %v", buildOpts.Parse.ExcludePalettes)
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/project", 0755)

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}

	if got := LoadOrDefault(mfs, "/project"); got.Build.Input != DefaultInput {
		t.Errorf("expected default input, got %q", got.Build.Input)
	}
}

func TestLoad_InvalidGlob(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid-glob", "/project")

	_, err := Load(mfs, "/project")
	var globErr *InvalidGlobError
	if !errors.As(err, &globErr) {
		t.Fatalf("expected InvalidGlobError, got %v", err)
	}
	if globErr.Pattern != "[unterminated" {
		t.Errorf("expected pattern '[unterminated', got %q", globErr.Pattern)
	}
}

func TestLoad_InvalidColorFormat(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/bad-format", "/project")

	if _, err := Load(mfs, "/project"); err == nil {
		t.Fatal("expected error for unknown color format")
	}
	if cfg := LoadOrDefault(mfs, "/project"); cfg.Build.ColorFormat != string(emit.ColorSource) {
		t.Errorf("expected fallback to defaults, got %q", cfg.Build.ColorFormat)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Compare.Supernova != "/tmp/supernova-export-v4/" {
		t.Errorf("unexpected supernova default %q", cfg.Compare.Supernova)
	}
	if cfg.Compare.ExternalLabel != "Supernova" {
		t.Errorf("unexpected label default %q", cfg.Compare.ExternalLabel)
	}

	// Default returns an independent copy
	cfg.Build.ExcludePalettes[0] = "blue"
	if Default().Build.ExcludePalettes[0] != "gray" {
		t.Error("Default shares its palette slice")
	}
}
