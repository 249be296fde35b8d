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
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/convertdb/pkg/discover"
	"github.com/walteh/convertdb/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 RuleConfig is a configured substitution
type RuleConfig struct {
	Name    string `json:"name" yaml:"name"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Replace string `json:"replace" yaml:"replace"`
}

// ⏭️ SkipConfig selects which discovered files are left alone
type SkipConfig struct {
	Markers []string `json:"markers" yaml:"markers"`
	Mode    string   `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Root     string       `json:"root,omitempty" yaml:"root,omitempty"`
	Patterns []string     `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	Skip     *SkipConfig  `json:"skip,omitempty" yaml:"skip,omitempty"`
	Rules    []RuleConfig `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// 🏭 Default returns the built-in behaviour: the two module globs under the
// working directory, auth/users skipped by substring, mssql to mysql2 rules.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = append([]string(nil), discover.DefaultPatterns...)
	}
	if cfg.Skip == nil {
		cfg.Skip = &SkipConfig{}
	}
	if cfg.Skip.Markers == nil {
		cfg.Skip.Markers = append([]string(nil), discover.DefaultMarkers...)
	}
	if cfg.Skip.Mode == "" {
		cfg.Skip.Mode = string(discover.ModeSubstring)
	}
	if len(cfg.Rules) == 0 {
		for _, r := range text.DefaultRules() {
			cfg.Rules = append(cfg.Rules, RuleConfig{Name: r.Name, Pattern: r.Pattern, Replace: r.Replacement})
		}
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	for _, p := range cfg.Patterns {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("patterns: invalid glob %q", p)
		}
	}

	if cfg.Skip != nil {
		if _, err := discover.ParseMode(cfg.Skip.Mode); err != nil {
			return errors.Errorf("skip.mode: %w", err)
		}
	}

	if err := text.NewRegexpReplacer().ValidateRules(cfg.TextRules()); err != nil {
		return errors.Errorf("rules: %w", err)
	}

	return nil
}

// TextRules converts the configured rules for the replacer
func (cfg *Config) TextRules() []text.Rule {
	rules := make([]text.Rule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, text.Rule{Name: r.Name, Pattern: r.Pattern, Replacement: r.Replace})
	}
	return rules
}

// Skipper builds the skip policy
func (cfg *Config) Skipper() (*discover.Skipper, error) {
	if cfg.Skip == nil {
		return discover.NewDefaultSkipper(), nil
	}
	mode, err := discover.ParseMode(cfg.Skip.Mode)
	if err != nil {
		return nil, err
	}
	return &discover.Skipper{
		Markers: append([]string(nil), cfg.Skip.Markers...),
		Mode:    mode,
	}, nil
}

// 🎯 LoadConfig loads a configuration file. The format is chosen by extension
// (.yaml/.yml, .hcl, .json). Omitted settings fall back to Default and a
// relative root is resolved against the directory holding the file.
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
