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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL
//
//	root     = "."
//	patterns = ["src/modules/*/routes.js"]
//
//	skip {
//	  markers = ["auth", "users"]
//	  mode    = "segment"
//	}
//
//	rule "import" {
//	  pattern = "..."
//	  replace = "..."
//	}
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "convertdb.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// module_dir lets patterns refer to the conventional module layout
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"module_dir": cty.StringVal("src/modules/*"),
		},
	}

	type hclConfig struct {
		Root     string   `hcl:"root,optional"`
		Patterns []string `hcl:"patterns,optional"`
		Skip     *struct {
			Markers []string `hcl:"markers,optional"`
			Mode    string   `hcl:"mode,optional"`
		} `hcl:"skip,block"`
		Rules []struct {
			Name    string `hcl:"name,label"`
			Pattern string `hcl:"pattern"`
			Replace string `hcl:"replace,optional"`
		} `hcl:"rule,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Root:     hclCfg.Root,
		Patterns: hclCfg.Patterns,
	}

	if hclCfg.Skip != nil {
		cfg.Skip = &SkipConfig{
			Markers: hclCfg.Skip.Markers,
			Mode:    hclCfg.Skip.Mode,
		}
	}

	for _, r := range hclCfg.Rules {
		cfg.Rules = append(cfg.Rules, RuleConfig{
			Name:    r.Name,
			Pattern: r.Pattern,
			Replace: r.Replace,
		})
	}

	return cfg, nil
}
