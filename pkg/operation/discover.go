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
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/presetsort/pkg/status"
)

// DiscoverOptions tunes a walk
type DiscoverOptions struct {
	// Match accepts a file by name, every regular file when nil
	Match func(name string) bool
	// Ignore holds doublestar globs matched against slash paths relative to the root
	Ignore []string
	// Prune lists absolute directories that are never entered
	Prune []string
	// OnScan is called with the running count of accepted files
	OnScan func(found int)
}

func validPattern(pattern string) bool {
	return pattern != "" && doublestar.ValidatePattern(pattern)
}

func ignored(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// 🔍 Discover walks root recursively and returns the accepted regular files as
// sorted absolute paths. Unreadable entries are returned as errors next to the
// files found, and do not stop the walk.
func Discover(ctx context.Context, root string, opts DiscoverOptions) ([]string, []status.FileError, error) {
	logger := zerolog.Ctx(ctx)

	abs, err := checkRoot(root)
	if err != nil {
		return nil, nil, err
	}

	prune := make(map[string]bool, len(opts.Prune))
	for _, p := range opts.Prune {
		prune[filepath.Clean(p)] = true
	}

	var files []string
	var walkErrs []status.FileError

	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == abs {
				return err
			}
			walkErrs = append(walkErrs, status.FileError{Path: path, Err: errors.Errorf("walking: %w", err)})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(abs, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path == abs {
				return nil
			}
			if prune[path] || ignored(opts.Ignore, rel) {
				logger.Debug().Str("dir", path).Msg("skipping directory")
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".presetsort-") {
			return nil
		}
		if opts.Match != nil && !opts.Match(d.Name()) {
			return nil
		}
		if ignored(opts.Ignore, rel) {
			return nil
		}

		files = append(files, path)
		if opts.OnScan != nil {
			opts.OnScan(len(files))
		}
		return nil
	})
	if err != nil {
		return files, walkErrs, errors.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(files)

	logger.Debug().
		Str("root", abs).
		Int("files", len(files)).
		Int("errors", len(walkErrs)).
		Msg("discovery complete")

	return files, walkErrs, nil
}
