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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/docpatch/cmd/docpatch/opts"
	"github.com/walteh/docpatch/pkg/log"
	"github.com/walteh/docpatch/pkg/patch"
	"github.com/walteh/docpatch/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// ErrNoMatch is returned when the anchor did not match; it maps to exit code 1
var ErrNoMatch = errors.Base("anchor did not match")

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Replace the anchored block in the target document",
		Long: `Apply loads the target document and replaces every match of the anchor
with the replacement block. It will:
1. Match the anchor against the whole document (or each fenced block)
2. Write the file back only if the content changed
3. On a miss, search for the marker and show where the anchor was expected`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())
			logger := log.FromContext(ctx)

			logger.Header("patching " + o.Config.Target)

			res, err := patch.Apply(ctx, o.Config.Request(dryRun))
			if err != nil {
				return errors.Errorf("applying patch: %w", err)
			}

			report.Render(ctx, logger, res)

			if !res.Outcome.OK() {
				return ErrNoMatch
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the change without writing the file")

	return cmd
}
