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
	"time"

	"github.com/dlclark/regexp2"
	"gitlab.com/tozd/go/errors"
)

// DefaultMatchTimeout bounds a single anchor evaluation
const DefaultMatchTimeout = 5 * time.Second

// ⚓ Anchor describes the block to replace.
// Pattern is a regular expression evaluated in multiline mode against the
// whole document, unless Literal is set.
type Anchor struct {
	Pattern string
	Literal bool
	Timeout time.Duration
}

// Compile builds the matcher for the anchor
func (a Anchor) Compile() (*regexp2.Regexp, error) {
	if a.Pattern == "" {
		return nil, errors.Errorf("%w: pattern is empty", ErrPattern)
	}

	expr := a.Pattern
	if a.Literal {
		expr = regexp2.Escape(expr)
	}

	re, err := regexp2.Compile(expr, regexp2.Multiline)
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrPattern, err)
	}

	re.MatchTimeout = a.Timeout
	if re.MatchTimeout <= 0 {
		re.MatchTimeout = DefaultMatchTimeout
	}

	return re, nil
}

// Expected is the text the anchor is meant to match, used to show drift.
// Regex anchors are unescaped on a best-effort basis; "" if that fails.
func (a Anchor) Expected() string {
	if a.Literal {
		return a.Pattern
	}
	s, err := regexp2.Unescape(a.Pattern)
	if err != nil {
		return ""
	}
	return s
}
