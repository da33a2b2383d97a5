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
	"sort"
)

// Counts are the scalar totals of a run
type Counts struct {
	FilesSeen         int
	FilesPlaced       int // files with at least one new placement
	Copies            int
	Moves             int
	Duplicates        int // registry hits plus files whose categories were all already present
	AlreadyPresent    int
	MultiCategory     int
	Renamed           int
	LeftInPlace       int
	DeletedFromSource int
	BytesPlaced       int64
}

func (c *Counts) add(o Counts) {
	c.FilesSeen += o.FilesSeen
	c.FilesPlaced += o.FilesPlaced
	c.Copies += o.Copies
	c.Moves += o.Moves
	c.Duplicates += o.Duplicates
	c.AlreadyPresent += o.AlreadyPresent
	c.MultiCategory += o.MultiCategory
	c.Renamed += o.Renamed
	c.LeftInPlace += o.LeftInPlace
	c.DeletedFromSource += o.DeletedFromSource
	c.BytesPlaced += o.BytesPlaced
}

// ❌ FileError is one per-file failure
type FileError struct {
	Path     string
	Category string // empty when the failure is not tied to a category
	Err      error
}

func (e FileError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Path, e.Category, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// FileRecord is the per-file account of a run
type FileRecord struct {
	Source      string
	Categories  []string
	Multi       bool
	Duplicate   bool
	Original    string // first placed copy, for duplicates
	LeftInPlace bool
	Placements  []Placement
}

// SourceStats keeps the totals of one source root
type SourceStats struct {
	Root        string
	Counts      Counts
	PerCategory map[string]int
	Errors      int
}

// 📈 Stats is the result of one organize run. It only grows while the run is
// in progress and is not touched after being returned.
type Stats struct {
	Counts
	PerCategory map[string]int
	Errors      []FileError
	Files       []FileRecord
	Sources     []SourceStats
}

// NewStats returns empty statistics
func NewStats() *Stats {
	return &Stats{PerCategory: make(map[string]int)}
}

// RecordPlacement counts one placement outcome. Failures are recorded by the
// caller with RecordError, since only it knows the source path.
func (s *Stats) RecordPlacement(p Placement) {
	switch p.Outcome {
	case OutcomeCopied:
		s.Copies++
	case OutcomeMoved:
		s.Moves++
	case OutcomeRenamed:
		s.Renamed++
		if p.Moved {
			s.Moves++
		} else {
			s.Copies++
		}
	default:
		return
	}
	s.BytesPlaced += p.Bytes
	s.PerCategory[p.Category]++
}

// RecordError appends a per-file error record
func (s *Stats) RecordError(path, category string, err error) {
	s.Errors = append(s.Errors, FileError{Path: path, Category: category, Err: err})
}

// Placed is the number of placements that wrote content
func (s *Stats) Placed() int {
	return s.Copies + s.Moves
}

// Merge folds the statistics of one source root into s
func (s *Stats) Merge(root string, o *Stats) {
	s.Counts.add(o.Counts)
	per := make(map[string]int, len(o.PerCategory))
	for k, v := range o.PerCategory {
		s.PerCategory[k] += v
		per[k] = v
	}
	s.Errors = append(s.Errors, o.Errors...)
	s.Files = append(s.Files, o.Files...)
	s.Sources = append(s.Sources, SourceStats{
		Root:        root,
		Counts:      o.Counts,
		PerCategory: per,
		Errors:      len(o.Errors),
	})
}

// CategoryNames returns the categories that received content, sorted
func (s *Stats) CategoryNames() []string {
	names := make([]string, 0, len(s.PerCategory))
	for k := range s.PerCategory {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
