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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 FileOperation represents a visited file for logging
type FileOperation struct {
	Path         string // File path relative to the root
	Status       string // skipped, converting, converted
	Reason       string // Skip marker that matched
	Replacements int    // Number of replacements made
}

// 🎯 Logger prints progress lines to the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 Skipping logs that a file is left untouched
func (l *Logger) Skipping(ctx context.Context, path, marker string) {
	l.logFileOperation(ctx,
		fmt.Sprintf("⏭️  Skipping %s (already converted)", color.New(color.FgYellow).Sprint(path)),
		FileOperation{Path: path, Status: "skipped", Reason: marker})
}

// 📝 Converting logs that a file is about to be rewritten
func (l *Logger) Converting(ctx context.Context, path string) {
	l.logFileOperation(ctx,
		fmt.Sprintf("📝 Converting %s...", color.New(color.FgCyan).Sprint(path)),
		FileOperation{Path: path, Status: "converting"})
}

// 📝 Converted logs that a file was written back
func (l *Logger) Converted(ctx context.Context, path string, replacements int) {
	l.logFileOperation(ctx,
		fmt.Sprintf("✅ Converted %s", color.New(color.FgGreen).Sprint(path)),
		FileOperation{Path: path, Status: "converted", Replacements: replacements})
}

func (l *Logger) logFileOperation(ctx context.Context, line string, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, line)

	ev := l.zlog.Debug()
	if op.Status == "skipped" {
		ev = ev.Str("reason", op.Reason)
	}
	ev.Str("file", op.Path).
		Str("status", op.Status).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Plain writes msg to the console without a marker
func (l *Logger) Plain(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, msg)
}
