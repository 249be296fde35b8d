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

package operation

import (
	"bytes"
	"context"

	"github.com/walteh/convertdb/pkg/discover"
	"github.com/walteh/convertdb/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔍 Check runs discovery, skipping and the rules without writing anything.
// Files whose content would change are reported as pending. Reads run
// concurrently; the summary is in discovery order.
func (c *Converter) Check(ctx context.Context) (*status.Summary, error) {
	reporter := status.NewManager(c.root, nil)

	files, err := discover.Discover(ctx, c.root, c.patterns)
	if err != nil {
		return reporter.Summary(), errors.Errorf("discovering files: %w", err)
	}

	entries := make([]status.Entry, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, path := range files {
		if skip, marker := c.skipper.ShouldSkip(path); skip {
			entries[i] = status.Entry{Path: path, Status: status.StatusSkipped, Reason: marker}
			continue
		}

		g.Go(func() error {
			entry, err := c.checkFile(gctx, path)
			if err != nil {
				entries[i] = status.Entry{Path: path, Status: status.StatusFailed, Reason: err.Error()}
				return errors.Errorf("checking %s: %w", path, err)
			}
			entries[i] = entry
			return nil
		})
	}

	waitErr := g.Wait()

	reporter.StartOperation(ctx, len(files))
	for i, entry := range entries {
		if entry.Status == status.StatusUnknown {
			// cancelled before it ran
			continue
		}
		reporter.Track(ctx, entry)
		reporter.UpdateProgress(ctx, i+1)
	}
	reporter.FinishOperation(ctx)

	return reporter.Summary(), waitErr
}

func (c *Converter) checkFile(ctx context.Context, path string) (status.Entry, error) {
	content, err := c.readText(ctx, path)
	if err != nil {
		return status.Entry{}, err
	}

	result, err := c.replacer.ReplaceText(ctx, bytes.NewReader(content), c.rules)
	if err != nil {
		return status.Entry{}, errors.Errorf("applying rules: %w", err)
	}

	st := status.StatusUnchanged
	if result.WasModified {
		st = status.StatusPending
	}

	return status.Entry{
		Path:         path,
		Status:       st,
		Replacements: result.ReplacementCount,
		Checksum:     status.Checksum(content),
	}, nil
}
