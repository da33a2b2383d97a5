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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gitlab.com/tozd/go/errors"
)

// MaxAttempts bounds the suffixes tried for one desired path
const MaxAttempts = 10000

// ErrAllocationExhausted means every candidate name up to MaxAttempts is taken
var ErrAllocationExhausted = errors.Base("allocation exhausted")

// 🔐 Allocator hands out collision-free paths. All work for one directory is
// serialized, so a name checked as free stays free until it is published.
type Allocator struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAllocator creates an allocator with no directories locked
func NewAllocator() *Allocator {
	return &Allocator{locks: make(map[string]*sync.Mutex)}
}

func (a *Allocator) lock(dir string) func() {
	a.mu.Lock()
	l, ok := a.locks[dir]
	if !ok {
		l = &sync.Mutex{}
		a.locks[dir] = l
	}
	a.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Candidate returns the n-th name tried for desired: desired itself for 0,
// then stem_1.ext, stem_2.ext and so on.
func Candidate(desired string, n int) string {
	if n == 0 {
		return desired
	}
	dir, base := filepath.Split(desired)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem, ext = base, ""
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
}

// 🎯 Allocate returns the first candidate for desired that does not exist
func (a *Allocator) Allocate(desired string) (string, error) {
	unlock := a.lock(filepath.Dir(desired))
	defer unlock()

	for n := 0; n < MaxAttempts; n++ {
		candidate := Candidate(desired, n)
		_, err := os.Lstat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", errors.Errorf("checking %s: %w", candidate, err)
		}
	}
	return "", errors.Errorf("allocating %s: %w", desired, ErrAllocationExhausted)
}

// Allocation is where Place left the content
type Allocation struct {
	Path    string
	Attempt int  // 0 for the desired path, n for the _n suffix
	Present bool // identical content was already there and nothing was written
}

// Place walks the candidates for desired under the directory lock. A taken
// candidate whose content hashes to digest ends the walk as present. The first
// free candidate is handed to publish, which must fail with fs.ErrExist rather
// than replace a file; that candidate is then skipped.
func (a *Allocator) Place(desired, digest string, publish func(candidate string) error) (Allocation, error) {
	unlock := a.lock(filepath.Dir(desired))
	defer unlock()

	for n := 0; n < MaxAttempts; n++ {
		candidate := Candidate(desired, n)

		info, err := os.Lstat(candidate)
		switch {
		case err == nil:
			if !info.Mode().IsRegular() {
				continue
			}
			existing, err := Hash(candidate)
			if err != nil {
				return Allocation{}, errors.Errorf("hashing existing %s: %w", candidate, err)
			}
			if existing == digest {
				return Allocation{Path: candidate, Attempt: n, Present: true}, nil
			}
			continue
		case !errors.Is(err, fs.ErrNotExist):
			return Allocation{}, errors.Errorf("checking %s: %w", candidate, err)
		}

		if err := publish(candidate); err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			return Allocation{}, err
		}
		return Allocation{Path: candidate, Attempt: n}, nil
	}

	return Allocation{}, errors.Errorf("allocating %s: %w", desired, ErrAllocationExhausted)
}
