/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for stratum.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"bennypowers.dev/stratum/config"
	"bennypowers.dev/stratum/emit"
	"bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/internal/logger"
	"bennypowers.dev/stratum/parser"
	"bennypowers.dev/stratum/schema"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design-tool token exports",
	Long: `Validate token exports without writing any CSS: the collection shape is
recognized, every reference resolves, no reference chain is circular and no
token reaches across its tier.

--shape requires every file to have the given shape (current, legacy or
mixed), for example to check that no legacy exports remain.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("shape", "", "Require this export shape: current, legacy, mixed")
}

func run(cmd *cobra.Command, args []string) error {
	// --quiet is the root's persistent flag
	quiet, _ := cmd.Flags().GetBool("quiet")
	shapeName, _ := cmd.Flags().GetString("shape")

	want := schema.Unknown
	if shapeName != "" {
		var err error
		if want, err = schema.FromString(shapeName); err != nil {
			return err
		}
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
	if len(files) == 0 {
		files = []string{cfg.Build.Input}
	}
	return validateFiles(filesystem, files, parser.Options{ExcludePalettes: cfg.Build.ExcludePalettes},
		want, quiet, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// validateFiles reports every problem in files. A want of schema.Unknown
// accepts any shape.
func validateFiles(filesystem fs.FileSystem, files []string, opts parser.Options, want schema.Shape, quiet bool, out, errOut io.Writer) error {
	exportParser := parser.NewExportParser(logger.L())
	renderer := emit.NewRenderer(logger.L())
	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", file)
		}

		graph, err := exportParser.ParseFile(filesystem, file, opts)
		if err != nil {
			fmt.Fprintf(errOut, "Error parsing %s: %v\n", file, err)
			hasErrors = true
			continue
		}
		if want != schema.Unknown && graph.Shape != want {
			fmt.Fprintf(errOut, "%s: shape is %s, expected %s\n", file, graph.Shape, want)
			hasErrors = true
		}

		output, err := renderer.Render(graph, emit.Options{})
		if err != nil {
			for _, e := range multierr.Errors(err) {
				fmt.Fprintf(errOut, "%s: %v\n", file, e)
			}
			hasErrors = true
			continue
		}

		if !quiet {
			total := 0
			for _, name := range emit.Files {
				total += output.Count(name)
			}
			fmt.Fprintf(out, "  %d tokens, shape: %s\n", total, graph.Shape)
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}
	if !quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return nil
}
