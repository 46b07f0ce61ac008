/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compare provides the compare command for stratum.
package compare

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	comparelib "bennypowers.dev/stratum/compare"
	"bennypowers.dev/stratum/config"
	"bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/internal/logger"
)

// Cmd is the compare cobra command.
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare compiled tokens against an external CSS export",
	Long: `Compare the CSS custom properties of two directories and report
matched tokens, name mappings across naming conventions, value differences,
names present on one side only, selector structure and dark-mode duplicates.

Examples:
  stratum compare --build src/app/tokens --supernova /tmp/supernova-export-v4/
  stratum compare --output report.md --exclude "**/legacy/**"`,
	Args: cobra.NoArgs,
	RunE: run,
}

var bindings = map[string]string{
	config.KeyCompareBuild:         "build",
	config.KeyCompareSupernova:     "supernova",
	config.KeyCompareOutput:        "output",
	config.KeyCompareExternalLabel: "external-label",
	config.KeyCompareExclude:       "exclude",
}

func init() {
	Cmd.Flags().String("build", config.DefaultOutputDir, "Directory of compiled build tokens")
	Cmd.Flags().String("supernova", config.DefaultSupernovaDir, "Directory of the external export")
	Cmd.Flags().StringP("output", "o", "", "Report file (default: stdout)")
	Cmd.Flags().String("external-label", config.DefaultExternalLabel, "Name of the external pipeline in the report")
	Cmd.Flags().StringSlice("exclude", nil, "Globs of files to skip, relative to each directory")
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg, err := config.Load(filesystem, ".")
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	v := config.NewViper(cfg)
	if err := config.BindFlags(v, cmd.Flags(), bindings); err != nil {
		return err
	}
	if cfg, err = config.FromViper(v); err != nil {
		return err
	}
	return Execute(cmd.Context(), filesystem, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Execute compares the configured directories and writes the report to
// cfg.Compare.Output, or to stdout when no output is configured.
func Execute(ctx context.Context, filesystem fs.FileSystem, cfg *config.Config, stdout, stderr io.Writer) error {
	result, err := comparelib.NewComparator(filesystem, logger.L()).Compare(ctx, cfg.CompareOptions())
	if err != nil {
		return err
	}
	report := result.Markdown()

	output := cfg.Compare.Output
	if output == "" {
		_, err := io.WriteString(stdout, report)
		return err
	}
	if err := filesystem.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(output), err)
	}
	if err := filesystem.WriteFile(output, []byte(report), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(stderr, "Report written to %s\n", output)
	return nil
}
