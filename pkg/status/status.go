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
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of visiting a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusSkipped              // Path matched a skip marker, never opened
	StatusConverted            // Rules changed the content and it was written back
	StatusUnchanged            // No rule matched, content written back as-is
	StatusPending              // Dry run: conversion would change the content
	StatusFailed               // Reading, transforming or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusConverted:
		return "converted"
	case StatusUnchanged:
		return "unchanged"
	case StatusPending:
		return "pending"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Entry records what happened to a single file
type Entry struct {
	Path         string     // Path relative to the base directory
	Status       FileStatus // Outcome
	Reason       string     // Skip marker or failure message
	Replacements int        // Number of matches replaced
	Checksum     string     // Content hash after processing
}

// 💾 FileManager reads and overwrites files below a base directory
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 📈 StatusReporter tracks file outcomes and reports progress
type StatusReporter interface {
	Track(ctx context.Context, entry Entry)
	Summary() *Summary

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	baseDir   string
	formatter FileFormatter

	mu      sync.Mutex
	summary *Summary

	total     int
	processed int
}

var (
	_ FileManager    = (*Manager)(nil)
	_ StatusReporter = (*Manager)(nil)
)

// 🏭 NewManager creates a new status manager rooted at baseDir
func NewManager(baseDir string, formatter FileFormatter) *Manager {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		formatter: formatter,
		summary:   NewSummary(),
	}
}

// 🔒 getAbsPath returns the absolute path for a slash-separated relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

// 🔍 Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile truncates and rewrites an existing file in place. The file keeps
// its inode and permissions; there is no backup copy.
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	f, err := os.OpenFile(m.getAbsPath(path), os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening file for write: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Errorf("writing file: %w", err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing file: %w", err)
	}
	return nil
}

func (m *Manager) Track(ctx context.Context, entry Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.summary.Add(entry)
	zerolog.Ctx(ctx).Debug().
		Str("file", entry.Path).
		Str("status", entry.Status.String()).
		Int("replacements", entry.Replacements).
		Str("checksum", entry.Checksum).
		Msg(m.formatter.FormatEntry(entry))
}

func (m *Manager) Summary() *Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summary
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	zerolog.Ctx(ctx).Debug().Int("total", total).Msg(m.formatter.FormatProgress(0, total))
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	zerolog.Ctx(ctx).Trace().Int("processed", processed).Msg(m.formatter.FormatProgress(processed, m.total))
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(m.processed, m.total))
}
