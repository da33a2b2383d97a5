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
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/presetsort/pkg/operation"
	"github.com/walteh/presetsort/pkg/status"
)

// 🎨 Display configuration
const (
	fileIndent    = 4  // spaces to indent file entries
	nameWidth     = 35 // Base width for filename
	categoryWidth = 15 // Width for category
	statusWidth   = 17 // Width for status text
)

// 📦 RootOperation describes one source root being organized
type RootOperation struct {
	Source      string // Source root
	Destination string // Destination root
	Mode        string // copy or move
}

// 🎯 Logger renders organize progress on a console and mirrors it to zerolog.
// It implements operation.Observer.
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	mu        sync.Mutex
	formatter status.FileFormatter
	currentOp *RootOperation
	files     int
	total     int
	failed    int
}

var _ operation.Observer = (*Logger)(nil)

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewDefaultFileFormatter(),
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

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func formatLine(symbol string, name, category, state string) string {
	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		symbol,
		fmt.Sprintf("%-*s", nameWidth, name),
		fmt.Sprintf("%-*s", categoryWidth, category),
		fmt.Sprintf("%-*s", statusWidth, state))
}

// 📝 formatEvent renders one line per placement, or a single line when the
// file never reached a category
func (l *Logger) formatEvent(ev operation.Event) []string {
	var lines []string
	for _, p := range ev.Placements {
		line := status.FormatFileOperation(ev.Name, p)
		if p.Outcome == status.OutcomeFailed && p.Err != nil {
			line += color.New(color.FgRed).Sprint(p.Err.Error())
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		return lines
	}

	switch ev.Kind {
	case operation.EventLeftInPlace:
		return []string{formatLine(color.HiBlackString("•"), ev.Name, status.FormatCategories(ev.Categories), "left in place")}
	case operation.EventFailed:
		line := formatLine(color.RedString("✗"), ev.Name, "-", "failed")
		if ev.Err != nil {
			line += color.New(color.FgRed).Sprint(ev.Err.Error())
		}
		return []string{line}
	default:
		return []string{formatLine(color.CyanString("="), ev.Name, status.FormatCategories(ev.Categories), string(ev.Kind))}
	}
}

// 🔍 OnScan mirrors discovery progress to zerolog
func (l *Logger) OnScan(ctx context.Context, root string, found int) {
	l.zlog.Trace().Str("root", root).Int("found", found).Msg("scanning")
}

// 📝 OnFile prints the outcome of one file
func (l *Logger) OnFile(ctx context.Context, ev operation.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.files++
	l.total = ev.Total
	if ev.Kind == operation.EventFailed {
		l.failed++
	}

	for _, line := range l.formatEvent(ev) {
		fmt.Fprintln(l.console, line)
	}

	entry := l.zlog.Info()
	if ev.Kind == operation.EventFailed {
		entry = l.zlog.Warn().AnErr("error", ev.Err)
	}
	entry.
		Str("file", ev.Path).
		Str("kind", string(ev.Kind)).
		Strs("categories", ev.Categories).
		Str("original", ev.Original).
		Int("counter", ev.Counter).
		Int("total", ev.Total).
		Msg("file organized")
}

// 📝 StartRootOperation starts a new source root
func (l *Logger) StartRootOperation(ctx context.Context, op RootOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.files = 0
	l.total = 0
	l.failed = 0

	fmt.Fprintf(l.console, "[organizing %s]\n",
		color.New(color.FgCyan).Sprint(op.Source))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Destination),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Mode))

	l.zlog.Info().
		Str("source", op.Source).
		Str("destination", op.Destination).
		Str("mode", op.Mode).
		Msg("starting source root")
}

// 📝 EndRootOperation ends the current source root
func (l *Logger) EndRootOperation(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	fmt.Fprintln(l.console, l.formatter.FormatProgress(l.files, l.total))

	l.zlog.Info().
		Str("source", l.currentOp.Source).
		Int("files", l.files).
		Int("failed", l.failed).
		Msg("source root complete")

	l.currentOp = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("presetsort")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
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
