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

	"github.com/dlclark/regexp2"
	"github.com/walteh/docpatch/pkg/fence"
	"gitlab.com/tozd/go/errors"
)

// 🔄 MatchAndReplace replaces every match of anchor in the document with
// replacement, taken literally. It returns the new content, the number of
// matches and whether the content changed. No match is not an error.
func MatchAndReplace(doc *Document, anchor Anchor, replacement string) (string, int, bool, error) {
	re, err := anchor.Compile()
	if err != nil {
		return doc.Content, 0, false, err
	}

	updated, count, err := replaceAll(re, doc.Content, replacement)
	if err != nil {
		return doc.Content, 0, false, err
	}

	return updated, count, updated != doc.Content, nil
}

// 🧱 MatchAndReplaceFenced is MatchAndReplace applied to each fenced block
// body on its own. Text outside the fences is never touched.
func MatchAndReplaceFenced(doc *Document, anchor Anchor, replacement string) (string, int, bool, error) {
	re, err := anchor.Compile()
	if err != nil {
		return doc.Content, 0, false, err
	}

	var (
		total   int
		failure error
	)
	updated := fence.Replace(doc.Content, fence.Parse(doc.Content), func(b fence.Block, body string) string {
		if failure != nil {
			return body
		}
		out, n, err := replaceAll(re, body, replacement)
		if err != nil {
			failure = errors.Errorf("block %d: %w", b.Index, err)
			return body
		}
		total += n
		return out
	})
	if failure != nil {
		return doc.Content, 0, false, failure
	}

	return updated, total, updated != doc.Content, nil
}

// CountMatches reports how many times anchor matches content
func CountMatches(content string, anchor Anchor) (int, error) {
	re, err := anchor.Compile()
	if err != nil {
		return 0, err
	}

	count := 0
	m, err := re.FindStringMatch(content)
	for m != nil && err == nil {
		count++
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return 0, errors.Errorf("%w: %s", ErrPattern, err)
	}

	return count, nil
}

// replaceAll splices replacement over every match. Bytes between matches are
// copied from content as-is, invalid UTF-8 included.
func replaceAll(re *regexp2.Regexp, content, replacement string) (string, int, error) {
	var (
		sb      strings.Builder
		offsets []int
		last    int
		count   int
	)

	m, err := re.FindStringMatch(content)
	for m != nil && err == nil {
		if offsets == nil {
			offsets = runeOffsets(content)
		}
		start, end := offsets[m.Index], offsets[m.Index+m.Length]
		sb.WriteString(content[last:start])
		sb.WriteString(replacement)
		last = end
		count++
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return content, 0, errors.Errorf("%w: %s", ErrPattern, err)
	}
	if count == 0 {
		return content, 0, nil
	}

	sb.WriteString(content[last:])
	return sb.String(), count, nil
}

// runeOffsets maps each rune index of content, as []rune(content) counts
// them, to its byte offset. The final entry is len(content).
func runeOffsets(content string) []int {
	offsets := make([]int, 0, len(content)+1)
	for i := range content {
		offsets = append(offsets, i)
	}
	return append(offsets, len(content))
}
