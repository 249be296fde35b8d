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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convert(t *testing.T, content string) *ReplacementResult {
	t.Helper()
	result, err := NewRegexpReplacer().ReplaceText(context.Background(), strings.NewReader(content), DefaultRules())
	require.NoError(t, err)
	return result
}

func TestDefaultRules(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        string
		wantApplied map[string]int
	}{
		{
			name:        "import_only",
			content:     "const { sql, poolPromise } = require('../../db')",
			want:        "const pool = require('../../db')",
			wantApplied: map[string]int{RuleImport: 1},
		},
		{
			name:        "import_with_trailing_code",
			content:     "const express = require('express')\nconst { sql, poolPromise } = require('../../db');\nconst router = express.Router()\n",
			want:        "const express = require('express')\nconst pool = require('../../db');\nconst router = express.Router()\n",
			wantApplied: map[string]int{RuleImport: 1},
		},
		{
			name:        "import_tolerates_whitespace_and_double_quotes",
			content:     "const  {sql,   poolPromise}  =  require(\"../../db\")",
			want:        "const pool = require('../../db')",
			wantApplied: map[string]int{RuleImport: 1},
		},
		{
			name:        "import_other_module_untouched",
			content:     "const { sql, poolPromise } = require('../db')",
			want:        "const { sql, poolPromise } = require('../db')",
			wantApplied: map[string]int{},
		},
		{
			name:        "indented_await_line_removed",
			content:     "const { sql, poolPromise } = require('../../db')\n  const pool = await poolPromise;\nrouter.get('/', handler)",
			want:        "const pool = require('../../db')\nrouter.get('/', handler)",
			wantApplied: map[string]int{RuleImport: 1, RuleAwaitPool: 1},
		},
		{
			name:        "await_line_without_semicolon",
			content:     "async function list() {\n    const pool = await poolPromise\n    return pool.request().query('SELECT 1')\n}\n",
			want:        "async function list() {\n    return pool.request().query('SELECT 1')\n}\n",
			wantApplied: map[string]int{RuleAwaitPool: 1},
		},
		{
			name:        "await_line_crlf",
			content:     "a\r\n\tconst pool = await poolPromise;\r\nb\r\n",
			want:        "a\r\nb\r\n",
			wantApplied: map[string]int{RuleAwaitPool: 1},
		},
		{
			name:        "every_await_line_removed",
			content:     "f() {\n  const pool = await poolPromise;\n}\ng() {\n  const pool = await poolPromise;\n}\n",
			want:        "f() {\n}\ng() {\n}\n",
			wantApplied: map[string]int{RuleAwaitPool: 2},
		},
		{
			name:        "await_at_eof_without_newline_kept",
			content:     "const pool = await poolPromise;",
			want:        "const pool = await poolPromise;",
			wantApplied: map[string]int{},
		},
		{
			name:        "request_builder_untouched",
			content:     "const result = await pool.request().input('id', sql.Int, id).query('SELECT * FROM stories WHERE id = @id')\n",
			want:        "const result = await pool.request().input('id', sql.Int, id).query('SELECT * FROM stories WHERE id = @id')\n",
			wantApplied: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convert(t, tt.content)
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantApplied, result.Applied)
			assert.Equal(t, tt.content != tt.want, result.WasModified)
		})
	}
}

func TestDefaultRules_Idempotent(t *testing.T) {
	inputs := []string{
		"const { sql, poolPromise } = require('../../db')\nconst pool = await poolPromise;\nrouter.get('/', ...)",
		"const { sql, poolPromise } = require('../../db')\n\nasync function get(id) {\n  const pool = await poolPromise;\n  return pool.request().input('id', sql.Int, id).query('SELECT 1')\n}\n",
		"module.exports = router\n",
	}

	for _, input := range inputs {
		once := convert(t, input)
		twice := convert(t, string(once.ModifiedContent))
		assert.Equal(t, string(once.ModifiedContent), string(twice.ModifiedContent))
		assert.False(t, twice.WasModified, "second pass should not modify %q", input)
	}
}
