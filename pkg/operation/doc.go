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
Package operation converts the discovered backend modules in place.

	+-------------+
	|  discover   |
	| (globs/skip)|
	+------+------+
	       |
	+------+------+
	|  Converter  |
	| (text rules)|
	+------+------+
	       |
	+------+------+
	|   status    |
	| (read/write)|
	+-------------+

🔄 Flow:
1. Expand the configured globs under the root, in order
2. Skip paths matching a skip marker without opening them
3. Read each remaining file, apply the rules, overwrite it
4. Stop at the first error; files already converted stay converted

Convert is strictly sequential. Check runs the same pipeline without writing
and may read several files at once; its report keeps discovery order.
*/
package operation
