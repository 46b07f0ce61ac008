/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package verify provides the verify command for stratum.
package verify

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/stratum/config"
	"bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/internal/logger"
	verifylib "bennypowers.dev/stratum/verify"
)

// Cmd is the verify cobra command.
var Cmd = &cobra.Command{
	Use:   "verify",
	Short: "Check emitted CSS files for build invariants",
	Long: `Check an emitted token directory: primitive colors parse, references
stay within their tier, dark overrides cover the inline file, width and
container tokens live in their own namespaces, text tokens carry their
companions, and no excluded palette leaks.

With --input, the export is built into a temporary directory first, built
twice more to check that output is byte-identical, and rebuilt from its
legacy-shaped conversion.

Examples:
  stratum verify --dir src/app/tokens
  stratum verify --input tokens.json`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("dir", "d", config.DefaultOutputDir, "Directory of emitted CSS files")
	Cmd.Flags().StringP("input", "i", "", "Build this JSON export in a temporary directory and verify it")
}

func run(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	input, _ := cmd.Flags().GetString("input")

	filesystem := fs.NewOSFileSystem()
	out := cmd.OutOrStdout()
	if input == "" {
		return Dir(filesystem, dir, out)
	}

	cfg := config.LoadOrDefault(filesystem, ".")
	workDir, err := filesystem.MkdirTemp("", "stratum-verify-")
	if err != nil {
		return err
	}
	defer func() { _ = filesystem.RemoveAll(workDir) }()
	return Input(cmd.Context(), filesystem, cfg, input, workDir, out)
}

// Dir verifies an emitted directory and prints a line per check.
func Dir(filesystem fs.FileSystem, dir string, out io.Writer) error {
	outputs, err := verifylib.ReadOutputs(filesystem, dir)
	if err != nil {
		return err
	}
	return printResults(out, verifylib.Check(outputs))
}

// Input builds input under workDir and verifies every build.
func Input(ctx context.Context, filesystem fs.FileSystem, cfg *config.Config, input, workDir string, out io.Writer) error {
	opts, err := cfg.BuildOptions()
	if err != nil {
		return err
	}
	results, err := verifylib.NewRunner(filesystem, logger.L()).Run(ctx, input, workDir, opts)
	if err != nil {
		results = append(results, verifylib.Result{Name: "build", Message: fmt.Sprintf("Unexpected build error: %v", err)})
	}
	return printResults(out, results)
}

func printResults(out io.Writer, results []verifylib.Result) error {
	for _, r := range results {
		fmt.Fprintln(out, r.String())
	}
	return verifylib.Err(results)
}
