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

package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.TraceLevel)
	return logger.WithContext(context.Background())
}

func TestManager_ReadWrite(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "src", "routes.js")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("a much longer original body"), 0o600))

	m := NewManager(dir, nil)

	content, err := m.ReadFile(ctx, "src/routes.js")
	require.NoError(t, err)
	assert.Equal(t, "a much longer original body", string(content))

	require.NoError(t, m.WriteFile(ctx, "src/routes.js", []byte("short")))

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(content), "write should truncate the original")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "permissions should be kept")
}

func TestManager_Errors(t *testing.T) {
	ctx := testContext(t)
	m := NewManager(t.TempDir(), nil)

	_, err := m.ReadFile(ctx, "missing.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = m.WriteFile(ctx, "missing.js", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file for write")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManager_Track(t *testing.T) {
	ctx := testContext(t)
	m := NewManager(t.TempDir(), NewDefaultFileFormatter())

	m.StartOperation(ctx, 3)
	m.Track(ctx, Entry{Path: "a.js", Status: StatusSkipped, Reason: "auth"})
	m.UpdateProgress(ctx, 1)
	m.Track(ctx, Entry{Path: "b.js", Status: StatusConverted, Replacements: 2})
	m.UpdateProgress(ctx, 2)
	m.Track(ctx, Entry{Path: "c.js", Status: StatusUnchanged})
	m.UpdateProgress(ctx, 3)
	m.FinishOperation(ctx)

	s := m.Summary()
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a.js"}, s.Paths(StatusSkipped))
	assert.Equal(t, []string{"b.js"}, s.Paths(StatusConverted))
	assert.Equal(t, 1, s.Count(StatusUnchanged))
	assert.Equal(t, 0, s.Count(StatusFailed))

	entries := s.Entries()
	assert.Equal(t, "a.js", entries[0].Path)
	assert.Equal(t, "c.js", entries[2].Path)
}

func TestFileStatus_String(t *testing.T) {
	tests := map[FileStatus]string{
		StatusUnknown:   "unknown",
		StatusSkipped:   "skipped",
		StatusConverted: "converted",
		StatusUnchanged: "unchanged",
		StatusPending:   "pending",
		StatusFailed:    "failed",
	}
	for st, want := range tests {
		assert.Equal(t, want, st.String())
	}
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Checksum(nil))
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}
