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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	indent       = 4  // spaces before a patch line
	pathWidth    = 35 // width for the document path
	outcomeWidth = 20 // width for the outcome text
)

// 🎯 PatchOperation is one patch run, for logging
type PatchOperation struct {
	Path    string // document path
	Outcome string // matched / unchanged / not-found-with-hint / not-found
	Matches int    // anchor matches
	Written bool   // whether the file was rewritten
	DryRun  bool
}

// 🎯 Logger writes human lines to a console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
	return NewWithZerolog(console, zlog)
}

// 🏭 NewWithZerolog creates a logger mirroring to an existing zerolog logger
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger, and the zerolog logger it mirrors to, to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(l.zlog.WithContext(ctx), contextKey{}, l)
}

// Console returns the writer human output goes to
func (l *Logger) Console() io.Writer {
	return l.console
}

// 📝 formatPatchOperation formats a patch run for display
func (l *Logger) formatPatchOperation(op PatchOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Outcome {
	case "matched":
		symbol = '⟳'
		symbolColor = color.FgBlue
		if op.Written {
			symbol = '✓'
			symbolColor = color.FgGreen
		}
	case "unchanged":
		symbol = '•'
		symbolColor = color.FgCyan
	default:
		symbol = '✗'
		symbolColor = color.FgYellow
	}

	status := fmt.Sprintf("%d match", op.Matches)
	if op.Matches != 1 {
		status += "es"
	}
	if op.DryRun {
		status += " (dry run)"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", indent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", pathWidth, op.Path),
		fmt.Sprintf("%-*s", outcomeWidth, op.Outcome),
		status)
}

// 📝 LogPatchOperation logs a patch run
func (l *Logger) LogPatchOperation(ctx context.Context, op PatchOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatPatchOperation(op))

	l.zlog.Info().
		Str("path", op.Path).
		Str("outcome", op.Outcome).
		Int("matches", op.Matches).
		Bool("written", op.Written).
		Bool("dry_run", op.DryRun).
		Msg("patch operation")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("docpatch")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Raw writes text to the console as is
func (l *Logger) Raw(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, text)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
