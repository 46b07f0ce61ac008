/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for stratum.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"bennypowers.dev/stratum/cmd/build"
	"bennypowers.dev/stratum/cmd/compare"
	"bennypowers.dev/stratum/cmd/list"
	"bennypowers.dev/stratum/cmd/validate"
	"bennypowers.dev/stratum/cmd/verify"
	"bennypowers.dev/stratum/cmd/version"
	"bennypowers.dev/stratum/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "stratum",
	Short: "Build layered CSS design tokens and reconcile them with other pipelines",
	Long: `stratum compiles a design-tool token export into layered CSS custom
properties and compares the result against CSS exported by another pipeline.

Settings are read from .config/stratum.{yaml,yml,json}; flags override them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetLevel(level(quiet, verbose))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func level(quiet, verbose bool) zapcore.Level {
	switch {
	case quiet:
		return zapcore.ErrorLevel
	case verbose:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details")
	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(compare.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(verify.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
