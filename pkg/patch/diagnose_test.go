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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		marker      Marker
		wantFound   bool
		wantLine    int
		wantExcerpt string
	}{
		{
			name:      "empty_marker",
			content:   "anything",
			marker:    Marker{},
			wantFound: false,
		},
		{
			name:      "marker_absent",
			content:   "```\nfoo\n```\n",
			marker:    Marker{Text: "# TODO"},
			wantFound: false,
		},
		{
			name:        "bounded_by_start_and_fence",
			content:     "intro\n```bash\nSPEC=\"$R\"\necho hi\n# TODO (Phase 3): invoke\necho more\n```\noutro\n",
			marker:      Marker{Text: "# TODO (Phase 3)", BlockStart: "SPEC=", BlockEnd: "```"},
			wantFound:   true,
			wantLine:    5,
			wantExcerpt: "SPEC=\"$R\"\necho hi\n# TODO (Phase 3): invoke\necho more",
		},
		{
			name:        "default_block_end_is_fence",
			content:     "```\na\n# TODO\nb\n```\n",
			marker:      Marker{Text: "# TODO", BlockStart: "a"},
			wantFound:   true,
			wantLine:    3,
			wantExcerpt: "a\n# TODO\nb",
		},
		{
			name:        "missing_block_start_uses_line_start",
			content:     "x\n  # TODO here\n```\n",
			marker:      Marker{Text: "# TODO", BlockStart: "nope"},
			wantFound:   true,
			wantLine:    2,
			wantExcerpt: "  # TODO here",
		},
		{
			name:        "no_block_start_uses_enclosing_fence",
			content:     "intro\n```bash\nX = \"$Y\"\n# TODO\n```\n",
			marker:      Marker{Text: "# TODO"},
			wantFound:   true,
			wantLine:    4,
			wantExcerpt: "```bash\nX = \"$Y\"\n# TODO",
		},
		{
			name:        "missing_block_start_inside_fence_uses_fence",
			content:     "```\nabove\n# TODO\nbelow\n```\nafter\n",
			marker:      Marker{Text: "# TODO", BlockStart: "nope"},
			wantFound:   true,
			wantLine:    3,
			wantExcerpt: "```\nabove\n# TODO\nbelow",
		},
		{
			name:        "unclosed_fence_runs_to_end",
			content:     "```sh\nabove\n# TODO\ntail",
			marker:      Marker{Text: "# TODO"},
			wantFound:   true,
			wantLine:    3,
			wantExcerpt: "```sh\nabove\n# TODO\ntail",
		},
		{
			name:        "marker_with_trailing_newline",
			content:     "# TODO\n\n```",
			marker:      Marker{Text: "# TODO\n"},
			wantFound:   true,
			wantLine:    1,
			wantExcerpt: "# TODO\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diagnose(&Document{Content: tt.content}, tt.marker)
			require.NotNil(t, d)

			assert.Equal(t, tt.wantFound, d.MarkerFound, "marker found should match")
			if !tt.wantFound {
				assert.Equal(t, -1, d.Offset, "offset should be -1 when absent")
				assert.Equal(t, -1, d.Block)
				return
			}

			assert.Equal(t, strings.Index(tt.content, tt.marker.Text), d.Offset, "offset should point at marker")
			assert.Equal(t, tt.wantLine, d.Line, "line should match")
			assert.Equal(t, tt.wantExcerpt, d.Excerpt, "excerpt should match")
			assert.Contains(t, d.Excerpt, tt.marker.Text, "excerpt must contain the marker")
			assert.LessOrEqual(t, d.Start, d.Offset)
			assert.GreaterOrEqual(t, d.End, d.Offset+len(tt.marker.Text))
		})
	}
}

func TestDiagnoseUnboundedTail(t *testing.T) {
	content := "# TODO" + strings.Repeat("x", DefaultExcerptLimit*2)
	d := Diagnose(&Document{Content: content}, Marker{Text: "# TODO"})

	require.True(t, d.MarkerFound)
	assert.Equal(t, len("# TODO")+DefaultExcerptLimit, d.End, "excerpt should be capped without an end delimiter")
}
