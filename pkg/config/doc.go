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
Package config loads docpatch job files.

	            +-------------+
	            |   Config    |
	            |  (one job)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Describes one patch: target file, anchor, replacement, fallback marker
- Picks the parser from the file extension
- Resolves paths relative to the job file

🔄 Flow:
1. Reads the job file
2. Decodes it (unknown fields are rejected)
3. Validates and fills defaults (scope, timeout)
4. Resolves the target (a glob must match exactly one file) and replacement_file

🔍 Example:

	target: agents/gsd-executor.md
	anchor:
	  pattern: 'X="\$Y"\n# TODO\n'
	replacement: |
	  X="$Y"
	  # DONE
	marker:
	  text: "# TODO"
	  block_start: 'X="$Y"'
	scope: fenced

	cfg, err := config.LoadConfig(ctx, ".docpatch.yaml")
	if err != nil {
		return err
	}
	res, err := patch.Apply(ctx, cfg.Request(false))
*/
package config
