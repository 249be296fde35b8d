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

const (
	// RuleImport rewrites the mssql destructuring import into a mysql2 pool import.
	RuleImport = "import"

	// RuleAwaitPool drops the `const pool = await poolPromise;` line.
	RuleAwaitPool = "await-pool"
)

const (
	importPattern     = `const\s+\{\s*sql,\s*poolPromise\s*\}\s*=\s*require\(['"]\.\./\.\./db['"]\)`
	importReplacement = `const pool = require('../../db')`

	// whole line only: indentation, statement, optional semicolon, line ending
	awaitPoolPattern = `(?m)^[ \t]*const\s+pool\s*=\s*await\s+poolPromise;?[ \t]*\r?\n`
)

// DefaultRules returns the mssql to mysql2 rules in the order they are applied.
// Calls through pool.request().input(...).query(...) are not rewritten.
//
// TODO: rewrite single-line request().input(...).query('... @id') chains into
// pool.query('... ?', [id]).
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:        RuleImport,
			Pattern:     importPattern,
			Replacement: importReplacement,
		},
		{
			Name:        RuleAwaitPool,
			Pattern:     awaitPoolPattern,
			Replacement: "",
		},
	}
}
