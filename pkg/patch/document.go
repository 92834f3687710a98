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
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrIO marks failures reading or writing the target document
	ErrIO = errors.Base("document i/o failed")

	// ErrPattern marks an anchor that cannot be compiled or evaluated
	ErrPattern = errors.Base("invalid anchor pattern")
)

// 📄 Document is the full text of the target file
type Document struct {
	Path    string
	Content string
}

// 📥 Load reads the whole file at path
func Load(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: reading %s: %s", ErrIO, path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(data)).Msg("loaded document")

	return &Document{Path: path, Content: string(data)}, nil
}

// 💾 Save overwrites the document with content when changed is true.
// The file keeps its permission bits. The write is not atomic.
func Save(ctx context.Context, doc *Document, content string, changed bool) error {
	if !changed {
		zerolog.Ctx(ctx).Debug().Str("path", doc.Path).Msg("content unchanged, skipping write")
		return nil
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(doc.Path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(doc.Path, []byte(content), mode); err != nil {
		return errors.Errorf("%w: writing %s: %s", ErrIO, doc.Path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", doc.Path).Int("bytes", len(content)).Msg("wrote document")

	return nil
}
