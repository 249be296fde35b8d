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

// Package config loads the optional convertdb configuration file.
//
// Without a file the tool runs with Default: it scans src/modules/*/routes.js
// and src/modules/*/service.js under the working directory, skips any path
// containing "auth" or "users" and applies the mssql to mysql2 rules.
//
// A file may override any of these. The format follows the extension:
//
//	.yaml / .yml   gopkg.in/yaml.v3, unknown fields rejected
//	.hcl           hashicorp/hcl, with `rule "<name>" {}` blocks
//	.json          encoding/json, unknown fields rejected
//
// Rules in a file replace the default rules entirely; they are applied in the
// order they are written.
package config
