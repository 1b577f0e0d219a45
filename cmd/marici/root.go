/*
 * root.go, part of marici.
 *
 * Copyright 2024 The MARICI authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/RyotaroKoshoji/MARICI-sub002/nmljson"
)

// Version of the command, set at build time.
var Version = "0.1.0"

// app is the state the subcommands share, filled in before any of them runs.
type app struct {
	cfg *Config
	log *zap.Logger
}

// newRootCmd creates the root command with all the subcommands.
func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:   "marici",
		Short: "marici - input file tools for the marici structure generator",
		Long: `marici reads the block-structured input files of the marici crystal
structure generator. It can list the blocks of a file, pull single typed
fields out of them, and check a whole file against the generator's rules.

Files can be plain text, gzip (.gz) or zstandard (.zst).`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			a.cfg, err = LoadConfig(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if a.cfg.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			a.log, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|json)")
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{OutputText, OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(a.newBlocksCommand())
	rootCmd.AddCommand(a.newGetCommand())
	rootCmd.AddCommand(a.newRowsCommand())
	rootCmd.AddCommand(a.newCheckCommand())
	return rootCmd
}

// jsonOut is true if the output has to be JSON.
func (a *app) jsonOut() bool {
	return a.cfg != nil && a.cfg.Output == OutputJSON
}

// fail reports err. In JSON mode the error is also written, serialized, to the
// command's error stream, so a program on the other side of a pipe can read it.
func (a *app) fail(cmd *cobra.Command, where, function string, err error) error {
	if a.jsonOut() {
		jerr := nmljson.NewError(where, function, err)
		fmt.Fprintln(cmd.ErrOrStderr(), string(jerr.Marshal()))
	}
	return err
}
