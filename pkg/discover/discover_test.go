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

package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestDiscoverFS(t *testing.T) {
	fsys := fstest.MapFS{
		"src/modules/orders/routes.js":      {Data: []byte("a")},
		"src/modules/orders/service.js":     {Data: []byte("b")},
		"src/modules/tags/service.js":       {Data: []byte("c")},
		"src/modules/auth/routes.js":        {Data: []byte("d")},
		"src/modules/orders/helpers.js":     {Data: []byte("e")},
		"src/modules/deep/nested/routes.js": {Data: []byte("f")},
		"src/db.js":                         {Data: []byte("g")},
	}

	tests := []struct {
		name      string
		patterns  []string
		want      []string
		unordered bool
		wantError string
	}{
		{
			name:     "default_patterns_concatenate_in_order",
			patterns: DefaultPatterns,
			want: []string{
				"src/modules/auth/routes.js",
				"src/modules/orders/routes.js",
				"src/modules/orders/service.js",
				"src/modules/tags/service.js",
			},
		},
		{
			name:     "overlapping_patterns_are_not_deduplicated",
			patterns: []string{"src/modules/orders/*.js", "src/modules/*/routes.js"},
			want: []string{
				"src/modules/orders/helpers.js",
				"src/modules/orders/routes.js",
				"src/modules/orders/service.js",
				"src/modules/auth/routes.js",
				"src/modules/orders/routes.js",
			},
		},
		{
			name:      "doublestar",
			patterns:  []string{"src/**/routes.js"},
			unordered: true,
			want: []string{
				"src/modules/auth/routes.js",
				"src/modules/deep/nested/routes.js",
				"src/modules/orders/routes.js",
			},
		},
		{
			name:     "no_matches",
			patterns: []string{"lib/*.js"},
			want:     nil,
		},
		{
			name:      "invalid_pattern",
			patterns:  []string{"src/[modules"},
			wantError: `invalid glob pattern "src/[modules"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiscoverFS(testContext(t), fsys, tt.patterns)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			if tt.unordered {
				assert.ElementsMatch(t, tt.want, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscoverFS_DotDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"src/modules/orders/routes.js":      {Data: []byte("a")},
		"src/modules/.orders/routes.js":     {Data: []byte("b")},
		"src/modules/.git/x/routes.js":      {Data: []byte("c")},
		"src/modules/tags/.routes.js":       {Data: []byte("d")},
		"src/modules/tags/nested/routes.js": {Data: []byte("e")},
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "wildcard_skips_dot_directory",
			patterns: []string{"src/modules/*/routes.js"},
			want:     []string{"src/modules/orders/routes.js"},
		},
		{
			name:     "wildcard_skips_dot_file",
			patterns: []string{"src/modules/tags/*.js"},
			want:     nil,
		},
		{
			name:     "explicit_dot_prefix_matches",
			patterns: []string{"src/modules/.*/routes.js"},
			want:     []string{"src/modules/.orders/routes.js"},
		},
		{
			name:     "doublestar_skips_dot_directories",
			patterns: []string{"src/**/routes.js"},
			want: []string{
				"src/modules/orders/routes.js",
				"src/modules/tags/nested/routes.js",
			},
		},
		{
			name:     "doublestar_with_named_dot_directory",
			patterns: []string{"src/modules/.git/**/routes.js"},
			want:     []string{"src/modules/.git/x/routes.js"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiscoverFS(testContext(t), fsys, tt.patterns)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestDiscover_Directory(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"src/modules/orders/routes.js",
		"src/modules/stories/service.js",
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	// a directory named like a target file is not a match
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src/modules/odd/routes.js"), 0o755))

	got, err := Discover(testContext(t), root, DefaultPatterns)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/modules/orders/routes.js", "src/modules/stories/service.js"}, got)
}

func TestDiscover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	_, err := DiscoverFS(ctx, fstest.MapFS{}, DefaultPatterns)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
