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

package patch

import (
	"strings"

	"github.com/walteh/docpatch/pkg/fence"
)

// DefaultExcerptLimit caps the excerpt after the marker when no end delimiter follows it
const DefaultExcerptLimit = 512

// 🔖 Marker is a short, stable substring expected near the edit site.
// BlockStart and BlockEnd bound the excerpt reported around it.
type Marker struct {
	Text       string
	BlockStart string
	BlockEnd   string // defaults to ```
}

// 🩺 Diagnostic explains where the anchor should have matched
type Diagnostic struct {
	Marker      string
	MarkerFound bool
	Offset      int // byte offset of the marker, -1 when absent
	Line        int // 1-based line of the marker
	Start       int // byte offset where the excerpt starts
	End         int // byte offset where the excerpt ends
	Block       int // index of the enclosing fenced block, -1 when outside any
	Excerpt     string
	Expected    string // what the anchor was meant to match, if known
}

// 🔍 Diagnose looks for marker in the document and reports the region around it.
// The region runs from the nearest BlockStart before the marker to the next
// BlockEnd after it. Without a BlockStart (or BlockEnd) the enclosing fenced
// block bounds the region, and outside any block the marker's line does.
func Diagnose(doc *Document, marker Marker) *Diagnostic {
	d := &Diagnostic{Marker: marker.Text, Offset: -1, Block: -1}
	if marker.Text == "" {
		return d
	}

	content := doc.Content
	idx := strings.Index(content, marker.Text)
	if idx < 0 {
		return d
	}

	d.MarkerFound = true
	d.Offset = idx
	d.Line = strings.Count(content[:idx], "\n") + 1
	block, inBlock := fence.Enclosing(fence.Parse(content), idx)
	if inBlock {
		d.Block = block.Index
	}

	d.Start = -1
	if marker.BlockStart != "" {
		d.Start = strings.LastIndex(content[:idx], marker.BlockStart)
	}
	if d.Start < 0 {
		if inBlock {
			d.Start = block.Start
		} else {
			d.Start = strings.LastIndexByte(content[:idx], '\n') + 1
		}
	}

	markerEnd := idx + len(marker.Text)
	switch {
	case marker.BlockEnd == "" && inBlock:
		d.End = max(block.BodyEnd, markerEnd)
	default:
		blockEnd := marker.BlockEnd
		if blockEnd == "" {
			blockEnd = fence.Delimiter
		}
		if e := strings.Index(content[markerEnd:], blockEnd); e >= 0 {
			d.End = markerEnd + e
		} else {
			d.End = min(len(content), markerEnd+DefaultExcerptLimit)
		}
	}

	d.Excerpt = strings.TrimRight(content[d.Start:d.End], " \t\r\n")
	if len(d.Excerpt) < markerEnd-d.Start {
		// marker ends in whitespace; never trim into it
		d.Excerpt = content[d.Start:markerEnd]
	}

	return d
}
