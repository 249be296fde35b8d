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
	"regexp"
	"sync"

	"gitlab.com/tozd/go/errors"
)

// RegexpReplacer implements TextReplacer using regular expression substitution.
// Compiled patterns are cached so a replacer can be reused across files.
type RegexpReplacer struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

var _ TextReplacer = (*RegexpReplacer)(nil)

// NewRegexpReplacer creates a new RegexpReplacer
func NewRegexpReplacer() *RegexpReplacer {
	return &RegexpReplacer{
		cache: make(map[string]*regexp.Regexp),
	}
}

func (r *RegexpReplacer) compile(pattern string) (*regexp.Regexp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if re, ok := r.cache[pattern]; ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	r.cache[pattern] = re
	return re, nil
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *RegexpReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []Rule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
		Applied:         make(map[string]int, len(rules)),
	}

	current := string(originalContent)
	for i, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("replacing text: %w", err)
		}

		if rule.Pattern == "" {
			return nil, errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}

		re, err := r.compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("rule %d (%s): compiling pattern: %w", i, rule.Name, err)
		}

		matches := len(re.FindAllStringIndex(current, -1))
		if matches == 0 {
			continue
		}

		next := re.ReplaceAllString(current, rule.Replacement)
		result.Applied[rule.Name] += matches
		result.ReplacementCount += matches
		if next != current {
			result.WasModified = true
		}
		current = next
	}

	result.ModifiedContent = []byte(current)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *RegexpReplacer) ValidateRules(rules []Rule) error {
	seen := make(map[string]struct{}, len(rules))
	for i, rule := range rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if _, ok := seen[rule.Name]; ok {
			return errors.Errorf("rule %d: duplicate name %q", i, rule.Name)
		}
		seen[rule.Name] = struct{}{}

		if rule.Pattern == "" {
			return errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}
		if _, err := r.compile(rule.Pattern); err != nil {
			return errors.Errorf("rule %d (%s): invalid pattern: %w", i, rule.Name, err)
		}
	}
	return nil
}
