/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for stratum.
package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bennypowers.dev/stratum/config"
	"bennypowers.dev/stratum/emit"
	"bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/internal/logger"
	"bennypowers.dev/stratum/verify"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Compile a design-tool token export into layered CSS",
	Long: `Compile a design-tool JSON export into four cascading CSS files:

  primitives.css       literal palette, dimension and type values
  aliases.css          references into primitives
  semantic.css         role names referencing aliases, with dark overrides
  semantic-inline.css  fully resolved light and dark values

Examples:
  stratum build --input tokens.json --output-dir src/app/tokens
  stratum build --color-format oklch --verify
  stratum build --watch`,
	Args: cobra.NoArgs,
	RunE: run,
}

var bindings = map[string]string{
	config.KeyBuildInput:           "input",
	config.KeyBuildOutputDir:       "output-dir",
	config.KeyBuildColorFormat:     "color-format",
	config.KeyBuildExcludePalettes: "exclude-palette",
}

func init() {
	Cmd.Flags().StringP("input", "i", config.DefaultInput, "JSON token export")
	Cmd.Flags().StringP("output-dir", "o", config.DefaultOutputDir, "Directory receiving the CSS files")
	Cmd.Flags().String("color-format", string(emit.ColorSource), "Primitive color format: source, oklch, hex")
	Cmd.Flags().StringSlice("exclude-palette", nil, "Palette words to drop from the output (default gray)")
	Cmd.Flags().BoolP("watch", "w", false, "Rebuild when the input changes")
	Cmd.Flags().Bool("verify", false, "Check the emitted files after building")
}

func run(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")
	check, _ := cmd.Flags().GetBool("verify")

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

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx, filesystem, cfg, check, cmd.OutOrStdout()); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	opts, err := cfg.BuildOptions()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return emit.NewBuilder(filesystem, logger.L()).Watch(ctx, cfg.Build.Input, cfg.Build.OutputDir, opts, emit.DefaultDebounce,
		func(_ *emit.Output, err error) {
			if err != nil || !check {
				return
			}
			if err := report(filesystem, cfg.Build.OutputDir, out); err != nil {
				logger.Warn("%v", err)
			}
		})
}

// Execute builds once and, when check is set, verifies the written files.
func Execute(ctx context.Context, filesystem fs.FileSystem, cfg *config.Config, check bool, out io.Writer) error {
	opts, err := cfg.BuildOptions()
	if err != nil {
		return err
	}
	if _, err := emit.NewBuilder(filesystem, logger.L()).Build(ctx, cfg.Build.Input, cfg.Build.OutputDir, opts); err != nil {
		return err
	}
	if !check {
		return nil
	}
	return report(filesystem, cfg.Build.OutputDir, out)
}

func report(filesystem fs.FileSystem, dir string, out io.Writer) error {
	outputs, err := verify.ReadOutputs(filesystem, dir)
	if err != nil {
		return err
	}
	results := verify.Check(outputs)
	for _, r := range results {
		fmt.Fprintln(out, r.String())
	}
	return verify.Err(results)
}
