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

// NewDiagnoseCmd creates a new diagnose command
func NewDiagnoseCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Check whether the anchor still matches, without writing",
		Long: `Diagnose evaluates the anchor against the target document and, if it does
not match, reports where the marker was found and how the live text drifted
from the anchor. The document is never written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "diagnose").Logger().WithContext(cmd.Context())
			logger := log.FromContext(ctx)
			req := o.Config.Request(true)

			logger.Header("diagnosing " + req.Path)

			doc, err := patch.Load(ctx, req.Path)
			if err != nil {
				return errors.Errorf("loading document: %w", err)
			}

			_, matches, _, err := req.Replacer()(doc, req.Anchor, req.Replacement)
			if err != nil {
				return errors.Errorf("matching anchor: %w", err)
			}

			if matches > 0 {
				logger.Successf("anchor matches %s %d time(s)", req.Path, matches)
				return nil
			}

			d := patch.Diagnose(doc, req.Marker)
			d.Expected = req.Anchor.Expected()

			logger.Warningf("anchor does not match %s", req.Path)
			report.RenderDiagnostic(logger, d)

			return ErrNoMatch
		},
	}

	return cmd
}
