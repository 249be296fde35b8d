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

/*
Package status owns the file I/O of a conversion run and records what happened
to every file it visits.

	+-------------+
	|   Manager   |
	+------+------+
	       |
	+------+------+-----------+
	|                         |
	+-----+-----+       +-----+-----+
	|  Files    |       |  Summary  |
	| (read/    |       | (ordered  |
	|  rewrite) |       |  entries) |
	+-----------+       +-----------+

🎯 Purpose:
- Reads source files and rewrites them in place
- Tracks one Entry per visited file, in processing order
- Renders per-file lines, progress and the final table

⚡ Key Responsibilities:
- No backups and no temp files: a write truncates the original
- Skipped files are tracked without being opened
- Summaries are rendered with pterm for the check command
*/
package status
