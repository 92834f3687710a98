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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/docpatch/cmd/docpatch/opts"
	"github.com/walteh/docpatch/pkg/log"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], &opts.RootOpts{}))
}

// run executes the command line and returns the exit code
func run(ctx context.Context, args []string, o *opts.RootOpts) int {
	rootCmd := newRootCmd(o)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	code := exitCode(err)

	if code == exitFailure {
		out := rootCmd.ErrOrStderr()
		if o.Console != nil {
			out = o.Console
		}
		l := log.New(out, zerolog.Disabled)
		if isIOFailure(err) {
			l.Errorf("i/o failure: %s", err)
		} else {
			l.Error(err.Error())
		}
	}

	return code
}
