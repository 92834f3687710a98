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
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Scope selects what the anchor is matched against
type Scope string

const (
	ScopeDocument Scope = "document" // the whole file
	ScopeFenced   Scope = "fenced"   // each ``` block body separately
)

// 📊 Outcome is the terminal state of a run
type Outcome int

const (
	// Matched means the anchor matched and the new content was written (or would be, on a dry run)
	Matched Outcome = iota
	// Unchanged means the anchor matched but the replacement left the content identical
	Unchanged
	// NotFoundWithHint means the anchor did not match but the marker did
	NotFoundWithHint
	// NotFoundAtAll means neither the anchor nor the marker matched
	NotFoundAtAll
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Unchanged:
		return "unchanged"
	case NotFoundWithHint:
		return "not-found-with-hint"
	case NotFoundAtAll:
		return "not-found"
	default:
		return "unknown"
	}
}

// OK reports whether the outcome counts as success
func (o Outcome) OK() bool {
	return o == Matched || o == Unchanged
}

// 📋 Request is one patch run
type Request struct {
	Path        string
	Anchor      Anchor
	Replacement string
	Marker      Marker
	Scope       Scope
	DryRun      bool
}

// 📦 Result is what a run did
type Result struct {
	Path       string
	Outcome    Outcome
	Matches    int
	Original   string
	Updated    string
	Written    bool
	DryRun     bool
	Diagnostic *Diagnostic // set only for NotFoundWithHint and NotFoundAtAll
}

// 🏃 Apply loads the document, replaces the anchor and writes the result.
// When nothing matched it runs the marker diagnosis instead.
// Only I/O and pattern failures are returned as errors.
func Apply(ctx context.Context, req Request) (*Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("path", req.Path).Str("scope", string(req.scope())).Logger()

	doc, err := Load(ctx, req.Path)
	if err != nil {
		return nil, err
	}

	updated, matches, changed, err := req.Replacer()(doc, req.Anchor, req.Replacement)
	if err != nil {
		return nil, errors.Errorf("matching anchor in %s: %w", req.Path, err)
	}

	res := &Result{
		Path:     req.Path,
		Matches:  matches,
		Original: doc.Content,
		Updated:  updated,
		DryRun:   req.DryRun,
	}

	logger.Debug().Int("matches", matches).Bool("changed", changed).Msg("anchor evaluated")

	switch {
	case matches == 0:
		res.Diagnostic = Diagnose(doc, req.Marker)
		res.Diagnostic.Expected = req.Anchor.Expected()
		res.Outcome = NotFoundAtAll
		if res.Diagnostic.MarkerFound {
			res.Outcome = NotFoundWithHint
		}
		logger.Debug().Bool("marker_found", res.Diagnostic.MarkerFound).Int("offset", res.Diagnostic.Offset).Msg("anchor not found")
		return res, nil
	case !changed:
		res.Outcome = Unchanged
		return res, nil
	}

	res.Outcome = Matched
	if req.DryRun {
		return res, nil
	}

	if err := Save(ctx, doc, updated, changed); err != nil {
		return nil, err
	}
	res.Written = true

	return res, nil
}

// ReplaceFunc is MatchAndReplace or one of its scoped variants
type ReplaceFunc func(doc *Document, anchor Anchor, replacement string) (string, int, bool, error)

// Replacer returns the replace function for the request's scope
func (r Request) Replacer() ReplaceFunc {
	if r.scope() == ScopeFenced {
		return MatchAndReplaceFenced
	}
	return MatchAndReplace
}

func (r Request) scope() Scope {
	if r.Scope == "" {
		return ScopeDocument
	}
	return r.Scope
}
