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
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/convertdb/pkg/discover"
	"github.com/walteh/convertdb/pkg/log"
	"github.com/walteh/convertdb/pkg/status"
	"github.com/walteh/convertdb/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultCheckConcurrency bounds concurrent reads during Check.
const DefaultCheckConcurrency = 8

// ErrInvalidEncoding is returned for files that are not UTF-8 text; like any
// other read failure it aborts the run.
var ErrInvalidEncoding = errors.Base("invalid UTF-8")

// 🔧 Options contains configuration for the converter
type Options struct {
	// Root is the directory the patterns are expanded under
	Root string
	// Patterns are the doublestar globs selecting candidate files
	Patterns []string
	// Skipper decides which candidates are left alone
	Skipper *discover.Skipper
	// Rules are applied in order to every converted file
	Rules []text.Rule
	// Replacer applies Rules; defaults to a RegexpReplacer
	Replacer text.TextReplacer
	// Files reads and rewrites files; defaults to a status.Manager on Root
	Files status.FileManager
	// Logger prints per-file progress lines
	Logger *log.Logger
	// CheckConcurrency bounds concurrent reads during Check
	CheckConcurrency int
}

// 🎮 Converter rewrites discovered files with a fixed rule sequence
type Converter struct {
	root        string
	patterns    []string
	skipper     *discover.Skipper
	rules       []text.Rule
	replacer    text.TextReplacer
	files       status.FileManager
	logger      *log.Logger
	concurrency int
}

// 🏭 NewConverter creates a converter with the given options
func NewConverter(opts Options) (*Converter, error) {
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	if len(opts.Patterns) == 0 {
		return nil, errors.Errorf("at least one pattern is required")
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	replacer := opts.Replacer
	if replacer == nil {
		replacer = text.NewRegexpReplacer()
	}
	if err := replacer.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	files := opts.Files
	if files == nil {
		files = status.NewManager(root, nil)
	}

	concurrency := opts.CheckConcurrency
	if concurrency <= 0 {
		concurrency = DefaultCheckConcurrency
	}

	return &Converter{
		root:        root,
		patterns:    opts.Patterns,
		skipper:     opts.Skipper,
		rules:       opts.Rules,
		replacer:    replacer,
		files:       files,
		logger:      opts.Logger,
		concurrency: concurrency,
	}, nil
}

// 🏃 Convert rewrites every discovered, non-skipped file in discovery order.
// The first error aborts the run; the returned summary covers the files
// visited up to and including the failing one.
func (c *Converter) Convert(ctx context.Context) (*status.Summary, error) {
	reporter := status.NewManager(c.root, nil)

	files, err := discover.Discover(ctx, c.root, c.patterns)
	if err != nil {
		return reporter.Summary(), errors.Errorf("discovering files: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("root", c.root).Int("files", len(files)).Msg("starting conversion")

	reporter.StartOperation(ctx, len(files))
	defer reporter.FinishOperation(ctx)

	for i, path := range files {
		if err := c.convertFile(ctx, reporter, path); err != nil {
			reporter.Track(ctx, status.Entry{Path: path, Status: status.StatusFailed, Reason: err.Error()})
			return reporter.Summary(), errors.Errorf("converting %s: %w", path, err)
		}
		reporter.UpdateProgress(ctx, i+1)
	}

	return reporter.Summary(), nil
}

// 📄 convertFile handles a single path
func (c *Converter) convertFile(ctx context.Context, reporter status.StatusReporter, path string) error {
	if skip, marker := c.skipper.ShouldSkip(path); skip {
		c.logger.Skipping(ctx, path, marker)
		reporter.Track(ctx, status.Entry{Path: path, Status: status.StatusSkipped, Reason: marker})
		return nil
	}

	c.logger.Converting(ctx, path)

	content, err := c.readText(ctx, path)
	if err != nil {
		return err
	}

	result, err := c.replacer.ReplaceText(ctx, bytes.NewReader(content), c.rules)
	if err != nil {
		return errors.Errorf("applying rules: %w", err)
	}

	// identity results are written back too
	if err := c.files.WriteFile(ctx, path, result.ModifiedContent); err != nil {
		return err
	}

	c.logger.Converted(ctx, path, result.ReplacementCount)

	st := status.StatusUnchanged
	if result.WasModified {
		st = status.StatusConverted
	}
	reporter.Track(ctx, status.Entry{
		Path:         path,
		Status:       st,
		Replacements: result.ReplacementCount,
		Checksum:     status.Checksum(result.ModifiedContent),
	})

	return nil
}

// readText reads path and rejects content that is not UTF-8 text
func (c *Converter) readText(ctx context.Context, path string) ([]byte, error) {
	content, err := c.files.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, errors.Errorf("decoding content: %w", ErrInvalidEncoding)
	}
	return content, nil
}
