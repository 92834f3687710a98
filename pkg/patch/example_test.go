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

package patch_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/docpatch/pkg/patch"
)

func ExampleApply() {
	dir, err := os.MkdirTemp("", "docpatch-example")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "executor.md")
	if err := os.WriteFile(path, []byte("```bash\nX=\"$Y\"\n# TODO\n```\n"), 0o644); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := patch.Apply(context.Background(), patch.Request{
		Path:        path,
		Anchor:      patch.Anchor{Pattern: `X="\$Y"\n# TODO\n`},
		Replacement: "X=\"$Y\"\n# DONE\n",
		Marker:      patch.Marker{Text: "# TODO"},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	data, _ := os.ReadFile(path)
	fmt.Printf("Outcome: %s\n", res.Outcome)
	fmt.Printf("Matches: %d\n", res.Matches)
	fmt.Printf("Written: %v\n", res.Written)
	fmt.Print(string(data))

	// Output:
	// Outcome: matched
	// Matches: 1
	// Written: true
	// ```bash
	// X="$Y"
	// # DONE
	// ```
}

func ExampleDiagnose() {
	doc := &patch.Document{Content: "```bash\nX = \"$Y\"\n# TODO\n```\n"}

	d := patch.Diagnose(doc, patch.Marker{Text: "# TODO", BlockStart: "```bash"})

	fmt.Printf("Found: %v\n", d.MarkerFound)
	fmt.Printf("Line: %d\n", d.Line)
	fmt.Println(d.Excerpt)

	// Output:
	// Found: true
	// Line: 3
	// ```bash
	// X = "$Y"
	// # TODO
}
