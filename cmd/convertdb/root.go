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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/convertdb/cmd/convertdb/commands"
	"github.com/walteh/convertdb/cmd/convertdb/opts"
	"github.com/walteh/convertdb/pkg/config"
	"github.com/walteh/convertdb/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	rootDir    string
	debugLogs  bool
)

// newRootCmd builds the command tree. Running the root command without a
// subcommand converts the modules under the working directory.
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "convertdb",
		Short: "Rewrite mssql database access in backend modules to mysql2",
		Long: `convertdb rewrites src/modules/*/routes.js and src/modules/*/service.js
in place, replacing the mssql poolPromise import with a mysql2 pool import and
dropping "const pool = await poolPromise;" lines. Modules whose path contains
"auth" or "users" are left alone.

Query builder calls (pool.request().input(...).query(...)) are not rewritten.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return newRootOpts(cmd, o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunConvert(cmd.Context(), o)
		},
	}

	addRootFlags(cmd)
	commands.AddConvertFlags(cmd, o)

	cmd.AddCommand(
		commands.NewConvertCmd(o),
		commands.NewCheckCmd(o),
		commands.NewRulesCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// newRootOpts loads config and wires loggers for whichever command runs
func newRootOpts(cmd *cobra.Command, o *opts.RootOpts) error {
	zlog := setupLogging(debugLogs)
	ctx := zlog.WithContext(cmd.Context())

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.LoadConfig(ctx, configFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if rootDir != "" {
		cfg.Root = rootDir
	}

	o.Config = cfg

	cmd.SetContext(log.NewContext(ctx, log.New(cmd.OutOrStdout(), zlog)))
	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (.yaml, .yml, .hcl or .json)")
	cmd.PersistentFlags().StringVar(&rootDir, "root", "", "directory to scan instead of the working directory")
	cmd.PersistentFlags().BoolVarP(&debugLogs, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
