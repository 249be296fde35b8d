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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Mode selects how skip markers are compared against a path.
type Mode string

const (
	// ModeSubstring skips a path when any marker appears anywhere in it.
	ModeSubstring Mode = "substring"
	// ModeSegment skips a path only when one of its segments equals a marker.
	ModeSegment Mode = "segment"
)

// DefaultMarkers name the modules that were already converted by hand.
var DefaultMarkers = []string{"auth", "users"}

// ParseMode converts a configured mode name, defaulting to ModeSubstring.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModeSegment:
		return ModeSegment, nil
	default:
		return "", errors.Errorf("unknown skip mode %q", s)
	}
}

// ⏭️ Skipper decides which discovered files are left untouched
type Skipper struct {
	Markers []string
	Mode    Mode
}

// NewDefaultSkipper returns the substring skipper for auth and users.
func NewDefaultSkipper() *Skipper {
	return &Skipper{
		Markers: append([]string(nil), DefaultMarkers...),
		Mode:    ModeSubstring,
	}
}

// ShouldSkip reports whether path must be skipped and which marker matched.
// In substring mode unrelated paths such as src/modules/authors/routes.js are
// skipped as well.
func (s *Skipper) ShouldSkip(path string) (bool, string) {
	if s == nil {
		return false, ""
	}

	switch s.Mode {
	case ModeSegment:
		segments := strings.Split(strings.ReplaceAll(path, "\\", "/"), "/")
		for _, marker := range s.Markers {
			for _, seg := range segments {
				if marker != "" && seg == marker {
					return true, marker
				}
			}
		}
	default:
		for _, marker := range s.Markers {
			if marker != "" && strings.Contains(path, marker) {
				return true, marker
			}
		}
	}

	return false, ""
}
