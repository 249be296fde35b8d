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

// Summary keeps entries in the order files were processed.
type Summary struct {
	entries []Entry
}

func NewSummary() *Summary {
	return &Summary{}
}

func (s *Summary) Add(entry Entry) {
	s.entries = append(s.entries, entry)
}

// Entries returns a copy of the recorded entries.
func (s *Summary) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

func (s *Summary) Count(st FileStatus) int {
	n := 0
	for _, e := range s.entries {
		if e.Status == st {
			n++
		}
	}
	return n
}

func (s *Summary) Len() int {
	return len(s.entries)
}

// Paths returns the paths with the given status, in processing order.
func (s *Summary) Paths(st FileStatus) []string {
	var paths []string
	for _, e := range s.entries {
		if e.Status == st {
			paths = append(paths, e.Path)
		}
	}
	return paths
}
