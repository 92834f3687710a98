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
	"fmt"
	"time"

	"github.com/walteh/docpatch/pkg/patch"
	"gitlab.com/tozd/go/errors"
)

// ⚓ AnchorArgs describes the block to replace
type AnchorArgs struct {
	Pattern string `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Literal bool   `json:"literal,omitempty" yaml:"literal,omitempty" hcl:"literal,optional"`
}

// 🔖 MarkerArgs describes the fallback locator used when the anchor misses
type MarkerArgs struct {
	Text       string `json:"text" yaml:"text" hcl:"text"`
	BlockStart string `json:"block_start,omitempty" yaml:"block_start,omitempty" hcl:"block_start,optional"`
	BlockEnd   string `json:"block_end,omitempty" yaml:"block_end,omitempty" hcl:"block_end,optional"`
}

// 📚 Config is one patch job
type Config struct {
	Target          string      `json:"target" yaml:"target" hcl:"target"`
	Anchor          AnchorArgs  `json:"anchor" yaml:"anchor" hcl:"anchor,block"`
	Replacement     *string     `json:"replacement,omitempty" yaml:"replacement,omitempty" hcl:"replacement,optional"`
	ReplacementFile string      `json:"replacement_file,omitempty" yaml:"replacement_file,omitempty" hcl:"replacement_file,optional"`
	Marker          *MarkerArgs `json:"marker,omitempty" yaml:"marker,omitempty" hcl:"marker,block"`
	Scope           string      `json:"scope,omitempty" yaml:"scope,omitempty" hcl:"scope,optional"`
	Timeout         string      `json:"timeout,omitempty" yaml:"timeout,omitempty" hcl:"timeout,optional"`

	location    string
	replacement string
	timeout     time.Duration
}

// 🔍 Validate checks the job and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Target == "" {
		return errors.Errorf("target is required")
	}
	if cfg.Anchor.Pattern == "" {
		return errors.Errorf("anchor.pattern is required")
	}
	if cfg.Replacement == nil && cfg.ReplacementFile == "" {
		return errors.Errorf("one of replacement or replacement_file is required")
	}
	if cfg.Replacement != nil && cfg.ReplacementFile != "" {
		return errors.Errorf("replacement and replacement_file are mutually exclusive")
	}
	if cfg.Marker != nil && cfg.Marker.Text == "" {
		return errors.Errorf("marker.text is required when marker is set")
	}

	switch patch.Scope(cfg.Scope) {
	case "":
		cfg.Scope = string(patch.ScopeDocument)
	case patch.ScopeDocument, patch.ScopeFenced:
	default:
		return errors.Errorf("scope must be %q or %q, got %q", patch.ScopeDocument, patch.ScopeFenced, cfg.Scope)
	}

	cfg.timeout = patch.DefaultMatchTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return errors.Errorf("parsing timeout: %w", err)
		}
		if d <= 0 {
			return errors.Errorf("timeout must be positive, got %s", cfg.Timeout)
		}
		cfg.timeout = d
	}

	if cfg.Replacement != nil {
		cfg.replacement = *cfg.Replacement
	}

	return nil
}

// Location is the path the config was loaded from
func (cfg *Config) Location() string {
	return cfg.location
}

// 📋 Request turns the job into a patch request
func (cfg *Config) Request(dryRun bool) patch.Request {
	req := patch.Request{
		Path: cfg.Target,
		Anchor: patch.Anchor{
			Pattern: cfg.Anchor.Pattern,
			Literal: cfg.Anchor.Literal,
			Timeout: cfg.timeout,
		},
		Replacement: cfg.replacement,
		Scope:       patch.Scope(cfg.Scope),
		DryRun:      dryRun,
	}
	if cfg.Marker != nil {
		req.Marker = patch.Marker{
			Text:       cfg.Marker.Text,
			BlockStart: cfg.Marker.BlockStart,
			BlockEnd:   cfg.Marker.BlockEnd,
		}
	}
	return req
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	kind := "regex"
	if cfg.Anchor.Literal {
		kind = "literal"
	}
	scope := cfg.Scope
	if scope == "" {
		scope = string(patch.ScopeDocument)
	}
	return fmt.Sprintf("%s [%s anchor, %s scope]", cfg.Target, kind, scope)
}
