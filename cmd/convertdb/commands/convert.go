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

package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/convertdb/cmd/convertdb/opts"
	"github.com/walteh/convertdb/pkg/log"
	"github.com/walteh/convertdb/pkg/operation"
	"github.com/walteh/convertdb/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewConvertCmd creates the convert command
func NewConvertCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert module files in place (default command)",
		Long: `Convert rewrites every matching module file in place.
It will:
1. Expand the module globs under the root
2. Skip modules that were already converted by hand
3. Apply the rules in order and overwrite each file
4. Stop at the first file that cannot be read or written`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunConvert(cmd.Context(), o)
		},
	}

	AddConvertFlags(cmd, o)
	return cmd
}

// AddConvertFlags registers the flags shared by the root and convert commands
func AddConvertFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.Flags().BoolVar(&o.Summary, "summary", false, "print a tally of the run when finished")
}

// RunConvert converts the configured modules
func RunConvert(ctx context.Context, o *opts.RootOpts) error {
	logger := log.FromContext(ctx)

	conv, err := newConverter(o, logger)
	if err != nil {
		return err
	}

	summary, err := conv.Convert(ctx)
	if o.Summary && summary != nil {
		logger.Info(status.RenderCounts(summary))
	}
	if err != nil {
		return errors.Errorf("converting: %w", err)
	}

	return nil
}

func newConverter(o *opts.RootOpts, logger *log.Logger) (*operation.Converter, error) {
	skipper, err := o.Config.Skipper()
	if err != nil {
		return nil, errors.Errorf("building skip policy: %w", err)
	}

	conv, err := operation.NewConverter(operation.Options{
		Root:     o.Config.Root,
		Patterns: o.Config.Patterns,
		Skipper:  skipper,
		Rules:    o.Config.TextRules(),
		Logger:   logger,

		CheckConcurrency: o.CheckConcurrency,
	})
	if err != nil {
		return nil, errors.Errorf("creating converter: %w", err)
	}
	return conv, nil
}
