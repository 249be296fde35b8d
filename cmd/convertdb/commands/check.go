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
	"github.com/spf13/cobra"
	"github.com/walteh/convertdb/cmd/convertdb/opts"
	"github.com/walteh/convertdb/pkg/log"
	"github.com/walteh/convertdb/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates the check command
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which module files would change, without writing",
		Long: `Check runs discovery, the skip policy and the rules without touching any file.
It prints one row per discovered file and exits non-zero when at least one
file still needs converting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.FromContext(cmd.Context())

			conv, err := newConverter(o, logger)
			if err != nil {
				return err
			}

			summary, err := conv.Check(cmd.Context())
			if err != nil {
				return errors.Errorf("checking: %w", err)
			}

			table, err := status.RenderTable(summary)
			if err != nil {
				return errors.Errorf("rendering summary: %w", err)
			}
			logger.Plain(table)
			logger.Info(status.RenderCounts(summary))

			if pending := summary.Count(status.StatusPending); pending > 0 {
				return errors.Errorf("%d files need converting", pending)
			}

			logger.Success("nothing to convert")
			return nil
		},
	}

	cmd.Flags().IntVar(&o.CheckConcurrency, "concurrency", 0, "maximum files read at once (default 8)")

	return cmd
}
