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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/presetsort/pkg/classify"
)

var (
	// ErrSourceNotFound means a source root does not exist
	ErrSourceNotFound = errors.Base("source not found")
	// ErrNotADirectory means a source root exists but is not a directory
	ErrNotADirectory = errors.Base("not a directory")
)

// 🔀 Mode selects how files reach the destination
type Mode int

const (
	// ModeAuto copies, unless the request looks like a re-verification pass
	// over the catch-all folder, see DetectMode.
	ModeAuto Mode = iota
	// ModeCopy never changes a source tree.
	ModeCopy
	// ModeMove relocates files and cleans up sources already filed.
	ModeMove
)

func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "copy"
	case ModeMove:
		return "move"
	default:
		return "auto"
	}
}

// ParseMode parses "auto", "copy" or "move"
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "copy":
		return ModeCopy, nil
	case "move":
		return ModeMove, nil
	}
	return ModeAuto, errors.Errorf("unknown mode %q, want auto, copy or move", s)
}

// DetectMode picks the mode for ModeAuto. A single source whose folder name is
// the catch-all bucket and whose parent is the destination is a re-verification
// pass and moves; everything else copies.
//
// An unrelated folder that happens to share the catch-all name, placed directly
// under the destination, also triggers move mode. Callers that know better
// should pass ModeCopy or ModeMove explicitly.
func DetectMode(sources []string, destination, catchAll string) Mode {
	if len(sources) != 1 {
		return ModeCopy
	}
	src := filepath.Clean(sources[0])
	dst := filepath.Clean(destination)
	if filepath.Base(src) == catchAll && filepath.Dir(src) == dst {
		return ModeMove
	}
	return ModeCopy
}

// 🔧 Options contains configuration for the organizer
type Options struct {
	// Classifier decides categories, required
	Classifier *classify.Classifier
	// Ignore holds doublestar globs, relative to each source root, that discovery skips
	Ignore []string
	// Workers bounds concurrent hashing, defaults to the CPU count
	Workers int
	// Observer receives progress, optional
	Observer Observer
}

// Request describes one organize run
type Request struct {
	Sources     []string
	Destination string
	Mode        Mode
	// Registry pre-seeds content identity, see IndexDestination. A fresh one
	// is used when nil. It is updated in place.
	Registry *Registry
}

// 🎯 Organizer runs the reconciliation of sources into a destination
type Organizer struct {
	classifier *classify.Classifier
	ignore     []string
	workers    int
	observer   Observer
}

// 🏭 New creates a new organizer with the given options
func New(opts Options) (*Organizer, error) {
	if opts.Classifier == nil {
		return nil, errors.Errorf("classifier is required")
	}
	for _, pattern := range opts.Ignore {
		if !validPattern(pattern) {
			return nil, errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	return &Organizer{
		classifier: opts.Classifier,
		ignore:     append([]string(nil), opts.Ignore...),
		workers:    workers,
		observer:   observer,
	}, nil
}

// Classifier returns the classifier the organizer files with
func (o *Organizer) Classifier() *classify.Classifier {
	return o.classifier
}

// checkRoot returns the absolute form of a source root, or a sentinel error
func checkRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(abs)
	if errors.Is(err, os.ErrNotExist) {
		return "", errors.Errorf("%s: %w", root, ErrSourceNotFound)
	}
	if err != nil {
		return "", errors.Errorf("checking %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", errors.Errorf("%s: %w", root, ErrNotADirectory)
	}
	return abs, nil
}

func (o *Organizer) resolve(ctx context.Context, req Request) ([]string, string, Mode, error) {
	if len(req.Sources) == 0 {
		return nil, "", req.Mode, errors.Errorf("at least one source is required")
	}
	if req.Destination == "" {
		return nil, "", req.Mode, errors.Errorf("destination is required")
	}

	sources := make([]string, 0, len(req.Sources))
	for _, src := range req.Sources {
		abs, err := checkRoot(src)
		if err != nil {
			return nil, "", req.Mode, err
		}
		sources = append(sources, abs)
	}

	dest, err := filepath.Abs(req.Destination)
	if err != nil {
		return nil, "", req.Mode, errors.Errorf("resolving destination: %w", err)
	}

	mode := req.Mode
	if mode == ModeAuto {
		mode = DetectMode(sources, dest, o.classifier.CatchAll())
		if mode == ModeMove {
			zerolog.Ctx(ctx).Warn().
				Str("source", sources[0]).
				Str("destination", dest).
				Msg("source is the catch-all folder inside the destination, re-verifying with move mode")
		}
	}

	return sources, dest, mode, nil
}
