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

package status

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 Outcome is what happened to one (file, category) pair
type Outcome int

const (
	OutcomeUnknown          Outcome = iota
	OutcomeCopied                   // new content copied to the desired path
	OutcomeMoved                    // source moved to the desired path
	OutcomePresent                  // desired path already holds identical content
	OutcomePresentRenamed           // a suffixed sibling already holds identical content
	OutcomeRenamed                  // desired name taken by different content, placed under a suffix
	OutcomeSkippedDuplicate         // content already placed earlier in the run
	OutcomeFailed                   // placement failed, see Placement.Err
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeMoved:
		return "moved"
	case OutcomePresent:
		return "present"
	case OutcomePresentRenamed:
		return "present-renamed"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeSkippedDuplicate:
		return "skipped-duplicate"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Placed reports whether the outcome wrote new content into the destination
func (o Outcome) Placed() bool {
	return o == OutcomeCopied || o == OutcomeMoved || o == OutcomeRenamed
}

// Satisfied reports whether the category holds the content afterwards
func (o Outcome) Satisfied() bool {
	return o.Placed() || o == OutcomePresent || o == OutcomePresentRenamed
}

// 📄 Placement is the result of filing one file into one category
type Placement struct {
	Category string
	Path     string // final path, empty when nothing was placed or found
	Outcome  Outcome
	Moved    bool  // the source itself was relocated
	Bytes    int64 // bytes written into the destination
	Err      error
}

// Method selects how content reaches the destination
type Method int

const (
	MethodCopy Method = iota
	MethodMove
)

func (m Method) String() string {
	if m == MethodMove {
		return "move"
	}
	return "copy"
}

// 🔧 Manager performs every filesystem mutation under one destination root
type Manager struct {
	root  string
	alloc *Allocator
}

// 🏭 New creates a new status manager rooted at root
func New(root string) *Manager {
	return &Manager{
		root:  filepath.Clean(root),
		alloc: NewAllocator(),
	}
}

// Root is the destination root
func (m *Manager) Root() string {
	return m.root
}

// Desired is where src would land in category before any collision handling
func (m *Manager) Desired(category, src string) string {
	return filepath.Join(m.root, category, filepath.Base(src))
}

// 🎯 Place files src (whose content hashes to digest) into category.
//
// The desired path is root/category/base(src). Identical content already at
// the desired path, or at any suffixed sibling probed before a free name is
// found, is reported instead of written. New content is published without
// ever replacing an existing file.
func (m *Manager) Place(ctx context.Context, src, digest, category string, method Method) Placement {
	logger := zerolog.Ctx(ctx)
	p := Placement{Category: category}

	desired := m.Desired(category, src)
	if err := os.MkdirAll(filepath.Dir(desired), 0755); err != nil {
		p.Outcome = OutcomeFailed
		p.Err = errors.Errorf("creating category directory: %w", err)
		return p
	}

	var written int64
	publish := func(candidate string) error {
		var err error
		if method == MethodMove {
			written, err = moveNoClobber(src, candidate)
		} else {
			written, err = copyNoClobber(src, candidate)
		}
		return err
	}

	res, err := m.alloc.Place(desired, digest, publish)
	if err != nil {
		p.Outcome = OutcomeFailed
		p.Err = errors.Errorf("placing %s in %s: %w", filepath.Base(src), category, err)
		return p
	}

	p.Path = res.Path
	switch {
	case res.Present && res.Attempt == 0:
		p.Outcome = OutcomePresent
	case res.Present:
		p.Outcome = OutcomePresentRenamed
	case res.Attempt > 0:
		p.Outcome = OutcomeRenamed
		p.Moved = method == MethodMove
		p.Bytes = written
	case method == MethodMove:
		p.Outcome = OutcomeMoved
		p.Moved = true
		p.Bytes = written
	default:
		p.Outcome = OutcomeCopied
		p.Bytes = written
	}

	logger.Debug().
		Str("source", src).
		Str("category", category).
		Str("path", p.Path).
		Stringer("outcome", p.Outcome).
		Msg("placement")

	return p
}

// Remove deletes a source file after its content is safely filed
func (m *Manager) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Errorf("removing source file: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("removed source")
	return nil
}

// SameFile reports whether a and b name the same file on disk
func SameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// Helper functions

// stage copies src into a hidden temp file next to dst and returns its path
func stage(src, dir string) (string, int64, error) {
	source, err := os.Open(src)
	if err != nil {
		return "", 0, errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	tmp, err := os.CreateTemp(dir, ".presetsort-*.tmp")
	if err != nil {
		return "", 0, errors.Errorf("creating temp file: %w", err)
	}

	n, err := io.Copy(tmp, source)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0644)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", 0, errors.Errorf("copying file content: %w", err)
	}

	return tmp.Name(), n, nil
}

// copyNoClobber publishes a copy of src at dst, failing with fs.ErrExist
// when dst already exists. Readers never observe a partially written dst.
func copyNoClobber(src, dst string) (int64, error) {
	tmp, n, err := stage(src, filepath.Dir(dst))
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp)

	if err := publishNoClobber(tmp, dst); err != nil {
		return 0, err
	}
	return n, nil
}

// publishNoClobber makes tmp visible at dst without replacing anything
func publishNoClobber(tmp, dst string) error {
	err := os.Link(tmp, dst)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		return fs.ErrExist
	}

	// no hard links here, reserve the name then rename over the reservation
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fs.ErrExist
		}
		return errors.Errorf("reserving destination: %w", err)
	}
	f.Close()

	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(dst)
		return errors.Errorf("publishing file: %w", err)
	}
	return nil
}

// moveNoClobber relocates src to dst without replacing anything. A hard link
// keeps the move atomic on one filesystem; across filesystems the content is
// copied first and the source removed only after dst is published.
func moveNoClobber(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, errors.Errorf("reading source file: %w", err)
	}

	err = os.Link(src, dst)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrExist):
		return 0, fs.ErrExist
	default:
		if _, err := copyNoClobber(src, dst); err != nil {
			return 0, err
		}
	}

	if err := os.Remove(src); err != nil {
		return 0, errors.Errorf("removing moved source: %w", err)
	}
	return info.Size(), nil
}
