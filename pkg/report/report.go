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

// Package report renders patch results for the operator.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/docpatch/pkg/log"
	"github.com/walteh/docpatch/pkg/patch"
)

// 📢 Render prints the outcome of a run, including the diagnostic trail on a no-match
func Render(ctx context.Context, l *log.Logger, res *patch.Result) {
	l.LogPatchOperation(ctx, log.PatchOperation{
		Path:    res.Path,
		Outcome: res.Outcome.String(),
		Matches: res.Matches,
		Written: res.Written,
		DryRun:  res.DryRun,
	})

	switch res.Outcome {
	case patch.Matched:
		if res.DryRun {
			l.Infof("would patch %s (%s)", res.Path, replacements(res.Matches))
			l.Raw(LineDiff(res.Original, res.Updated))
			return
		}
		l.Successf("patched %s (%s)", res.Path, replacements(res.Matches))
	case patch.Unchanged:
		l.Infof("anchor matched %s but the replacement is identical; nothing written", res.Path)
	case patch.NotFoundWithHint, patch.NotFoundAtAll:
		l.Warningf("no changes made to %s: anchor pattern did not match", res.Path)
		RenderDiagnostic(l, res.Diagnostic)
	}
}

// 🩺 RenderDiagnostic prints where the anchor was expected
func RenderDiagnostic(l *log.Logger, d *patch.Diagnostic) {
	if d == nil || !d.MarkerFound {
		marker := ""
		if d != nil {
			marker = d.Marker
		}
		if marker == "" {
			l.Warning("target region not found: no marker configured")
			return
		}
		l.Warningf("target region not found: marker %q is missing (already patched, or the document changed shape)", marker)
		return
	}

	l.Infof("marker %q found at offset %d (line %d), region %d-%d", d.Marker, d.Offset, d.Line, d.Start, d.End)
	if d.Block >= 0 {
		l.Infof("marker sits in fenced block #%d", d.Block)
	}
	l.Raw(pterm.DefaultBox.WithTitle("document").Sprint(d.Excerpt) + "\n")

	if d.Expected != "" {
		l.Info("drift between anchor and document ([-anchor-] {+document+}):")
		l.Raw(Drift(d.Expected, d.Excerpt) + "\n")
	}
}

// 🔍 Drift shows a character diff from expected to actual with whitespace made visible
func Drift(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			sb.WriteString(color.RedString("[-%s-]", visible(d.Text)))
		case diffmatchpatch.DiffInsert:
			sb.WriteString(color.GreenString("{+%s+}", visible(d.Text)))
		}
	}
	return sb.String()
}

// 📝 LineDiff lists the lines removed and added between two versions
func LineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		var paint func(format string, a ...interface{}) string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", color.RedString
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", color.GreenString
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(paint("%s %s", prefix, strings.TrimSuffix(line, "\n")))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

var whitespace = strings.NewReplacer(" ", "·", "\t", "→", "\n", "↵\n")

func visible(s string) string {
	return whitespace.Replace(s)
}

func replacements(n int) string {
	if n == 1 {
		return "1 replacement"
	}
	return fmt.Sprintf("%d replacements", n)
}
