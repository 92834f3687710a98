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

// Package fence splits markdown-ish documents into their ``` fenced blocks so
// edits can be scoped to a single block instead of the whole file.
package fence

import (
	"strings"
)

// Delimiter opens and closes a fenced block
const Delimiter = "```"

// 🧱 Block is one fenced region of a document.
// Offsets are byte offsets into the parsed content.
type Block struct {
	Index     int    // position among all blocks, starting at 0
	Info      string // info string after the opening fence (e.g. "bash")
	Start     int    // start of the opening fence line
	End       int    // end of the closing fence line (or len(content) when unclosed)
	BodyStart int    // first byte after the opening fence line
	BodyEnd   int    // first byte of the closing fence line
	Closed    bool   // false when the document ends before the closing fence
}

// Body returns the text between the fences
func (b Block) Body(content string) string {
	return content[b.BodyStart:b.BodyEnd]
}

// 🔍 Parse finds every fenced block in content.
// A fence line is any line whose trimmed text starts with ```; the opening
// line may carry an info string, the closing line must be a bare ```.
func Parse(content string) []Block {
	var blocks []Block
	var open *Block

	offset := 0
	for offset < len(content) {
		lineEnd := strings.IndexByte(content[offset:], '\n')
		next := len(content)
		if lineEnd >= 0 {
			next = offset + lineEnd + 1
		}
		line := strings.TrimSpace(content[offset:next])

		switch {
		case open == nil && strings.HasPrefix(line, Delimiter):
			open = &Block{
				Index:     len(blocks),
				Info:      strings.TrimSpace(strings.TrimPrefix(line, Delimiter)),
				Start:     offset,
				BodyStart: next,
			}
		case open != nil && line == Delimiter:
			open.BodyEnd = offset
			open.End = next
			open.Closed = true
			blocks = append(blocks, *open)
			open = nil
		}

		offset = next
	}

	if open != nil {
		open.BodyEnd = len(content)
		open.End = len(content)
		blocks = append(blocks, *open)
	}

	return blocks
}

// 🔄 Replace rebuilds content, passing each block body through fn.
// Text outside block bodies, fence lines included, is copied unchanged.
func Replace(content string, blocks []Block, fn func(b Block, body string) string) string {
	var sb strings.Builder
	sb.Grow(len(content))

	last := 0
	for _, b := range blocks {
		sb.WriteString(content[last:b.BodyStart])
		sb.WriteString(fn(b, b.Body(content)))
		last = b.BodyEnd
	}
	sb.WriteString(content[last:])

	return sb.String()
}

// Enclosing returns the block whose span contains offset
func Enclosing(blocks []Block, offset int) (Block, bool) {
	for _, b := range blocks {
		if offset >= b.Start && offset < b.End {
			return b, true
		}
	}
	return Block{}, false
}
