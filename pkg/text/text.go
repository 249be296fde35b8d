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

package text

import (
	"context"
	"io"
)

// Rule is a single ordered text substitution. Pattern is a Go regular
// expression; Replacement may reference capture groups with $1 / ${name}.
type Rule struct {
	// Name identifies the rule in logs and summaries
	Name string

	// Pattern is the regular expression to match
	Pattern string

	// Replacement is the text each match is replaced with
	Replacement string
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of matches replaced across all rules
	ReplacementCount int

	// Applied maps rule names to the number of matches each replaced
	Applied map[string]int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content in order
	ReplaceText(ctx context.Context, content io.Reader, rules []Rule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []Rule) error
}
