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

// Package patch applies a single anchored search-and-replace to one document.
//
// A run is one pass: load the file, match the anchor against the whole
// content (or each fenced block), replace every match with a literal block
// and write the file back only if it changed. When the anchor does not match,
// the run falls back to a marker search and reports the region where the
// anchor was expected, so whitespace or escaping drift can be spotted.
//
// Re-running a successful patch is a no-op because the old block no longer
// matches.
package patch
