// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/docpatch/cmd/docpatch/commands"
	"github.com/walteh/docpatch/cmd/docpatch/opts"
	"github.com/walteh/docpatch/pkg/config"
	"github.com/walteh/docpatch/pkg/log"
	"github.com/walteh/docpatch/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// Exit codes
const (
	exitOK      = 0
	exitNoMatch = 1
	exitFailure = 2
)

// newRootCmd builds the command tree around o
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docpatch",
		Short: "Apply an anchored block replacement to a single document",
		Long: `docpatch replaces a block of a text document located by an anchor pattern.
When the anchor no longer matches it reports where the block was expected
instead of silently leaving the file alone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), o)
			cmd.SetContext(ctx)

			if !needsConfig(cmd) {
				return nil
			}

			cfg, err := config.LoadConfig(ctx, o.ConfigPath)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}
			o.Config = cfg

			return nil
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewApplyCmd(o),
		commands.NewDiagnoseCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", config.DefaultPath, "patch job file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging wires zerolog and the console logger into ctx
func setupLogging(ctx context.Context, o *opts.RootOpts) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	level := zerolog.Disabled
	if o.Debug {
		level = zerolog.DebugLevel
	}

	console := o.Console
	if console == nil {
		console = os.Stdout
	}

	return log.NewContext(ctx, log.New(console, level))
}

func needsConfig(cmd *cobra.Command) bool {
	return cmd.Name() != "version" && cmd.Name() != "help"
}

// exitCode maps a command error onto the process exit code
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, commands.ErrNoMatch):
		return exitNoMatch
	default:
		return exitFailure
	}
}

// isIOFailure reports whether err came from reading or writing the document
func isIOFailure(err error) bool {
	return errors.Is(err, patch.ErrIO)
}
