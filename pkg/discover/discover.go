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

// Package discover finds the files a conversion run should visit and decides
// which of them to leave alone.
package discover

import (
	"context"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultPatterns are the backend module files that carry database access code.
var DefaultPatterns = []string{
	"src/modules/*/routes.js",
	"src/modules/*/service.js",
}

// 🔍 Discover expands each pattern under root and concatenates the matches in
// pattern order. Matches are slash-separated paths relative to root and are
// not de-duplicated across patterns. Wildcards do not match dot-prefixed
// files or directories; a pattern has to name them explicitly.
func Discover(ctx context.Context, root string, patterns []string) ([]string, error) {
	return DiscoverFS(ctx, os.DirFS(root), patterns)
}

// 🔍 DiscoverFS is Discover over an arbitrary filesystem.
func DiscoverFS(ctx context.Context, fsys fs.FS, patterns []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("discovering files: %w", err)
		}

		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid glob pattern %q", pattern)
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding %q: %w", pattern, err)
		}

		visible := slices.DeleteFunc(matches, func(match string) bool {
			return hidden(pattern, match)
		})

		logger.Debug().Str("pattern", pattern).Int("matches", len(visible)).Msg("expanded glob pattern")
		files = append(files, visible...)
	}

	return files, nil
}

// hidden reports whether match passes through a dot-prefixed segment that the
// pattern did not spell out with a leading dot.
func hidden(pattern, match string) bool {
	pat := strings.Split(pattern, "/")
	segs := strings.Split(match, "/")

	if len(pat) == len(segs) && !slices.Contains(pat, "**") {
		for i, seg := range segs {
			if strings.HasPrefix(seg, ".") && !strings.HasPrefix(pat[i], ".") {
				return true
			}
		}
		return false
	}

	// ** spans a variable number of segments; a hidden one has to appear
	// literally somewhere in the pattern
	for _, seg := range segs {
		if strings.HasPrefix(seg, ".") && !slices.Contains(pat, seg) {
			return true
		}
	}
	return false
}
