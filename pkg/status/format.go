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
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
)

// FileFormatter defines how file outcomes and progress are rendered
type FileFormatter interface {
	// FormatEntry formats a single file outcome
	FormatEntry(entry Entry) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatEntry formats a file outcome with emojis
func (f *DefaultFileFormatter) FormatEntry(entry Entry) string {
	switch entry.Status {
	case StatusSkipped:
		return fmt.Sprintf("⏭️  Skipped %s (%s)", entry.Path, entry.Reason)
	case StatusConverted:
		return fmt.Sprintf("✅ Converted %s (%d replacements)", entry.Path, entry.Replacements)
	case StatusPending:
		return fmt.Sprintf("📝 Pending %s (%d replacements)", entry.Path, entry.Replacements)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s: %s", entry.Path, entry.Reason)
	default:
		return fmt.Sprintf("👍 Unchanged %s", entry.Path)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// 📋 RenderTable renders the summary as a table, one row per file.
func RenderTable(s *Summary) (string, error) {
	data := pterm.TableData{{"File", "Status", "Replacements", "Reason"}}
	for _, e := range s.Entries() {
		data = append(data, []string{e.Path, e.Status.String(), strconv.Itoa(e.Replacements), e.Reason})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// 🧮 RenderCounts renders a one-line tally of the summary.
func RenderCounts(s *Summary) string {
	return fmt.Sprintf("%d files: %d converted, %d unchanged, %d pending, %d skipped, %d failed",
		s.Len(),
		s.Count(StatusConverted),
		s.Count(StatusUnchanged),
		s.Count(StatusPending),
		s.Count(StatusSkipped),
		s.Count(StatusFailed),
	)
}
