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

package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/docpatch/pkg/config"
)

func ExampleLoadConfig_yaml() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "docpatch-config")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	job := `
target: executor.md
anchor:
  pattern: "# TODO (Phase 3)"
  literal: true
replacement: "# DONE"
marker:
  text: "TODO"
`
	configPath := filepath.Join(dir, ".docpatch.yaml")
	if err := os.WriteFile(configPath, []byte(job), 0o644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.LoadConfig(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	req := cfg.Request(false)
	fmt.Printf("Target: %s\n", filepath.Base(req.Path))
	fmt.Printf("Anchor: %s (literal=%v)\n", req.Anchor.Pattern, req.Anchor.Literal)
	fmt.Printf("Scope: %s\n", req.Scope)
	fmt.Printf("Marker: %s\n", req.Marker.Text)

	// Output:
	// Target: executor.md
	// Anchor: # TODO (Phase 3) (literal=true)
	// Scope: document
	// Marker: TODO
}
