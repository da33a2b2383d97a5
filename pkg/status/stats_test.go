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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPlacement(t *testing.T) {
	s := NewStats()

	s.RecordPlacement(Placement{Category: "Bass", Outcome: OutcomeCopied, Bytes: 10})
	s.RecordPlacement(Placement{Category: "Lead", Outcome: OutcomeMoved, Moved: true, Bytes: 5})
	s.RecordPlacement(Placement{Category: "Bass", Outcome: OutcomeRenamed, Bytes: 3})
	s.RecordPlacement(Placement{Category: "Pad", Outcome: OutcomeRenamed, Moved: true, Bytes: 2})
	s.RecordPlacement(Placement{Category: "Bass", Outcome: OutcomePresent})
	s.RecordPlacement(Placement{Category: "Bass", Outcome: OutcomePresentRenamed})
	s.RecordPlacement(Placement{Category: "Bass", Outcome: OutcomeSkippedDuplicate})
	s.RecordPlacement(Placement{Category: "Bass", Outcome: OutcomeFailed, Err: assert.AnError})

	assert.Equal(t, 2, s.Copies)
	assert.Equal(t, 2, s.Moves)
	assert.Equal(t, 2, s.Renamed)
	assert.Equal(t, 4, s.Placed())
	assert.Equal(t, int64(20), s.BytesPlaced)
	assert.Equal(t, map[string]int{"Bass": 2, "Lead": 1, "Pad": 1}, s.PerCategory)
	assert.Empty(t, s.Errors, "failures are recorded by the caller")
	assert.Equal(t, []string{"Bass", "Lead", "Pad"}, s.CategoryNames())
}

func TestRecordError(t *testing.T) {
	s := NewStats()
	s.RecordError("/src/a.fxp", "", assert.AnError)
	s.RecordError("/src/b.fxp", "Lead", assert.AnError)

	require.Len(t, s.Errors, 2)
	assert.Equal(t, "/src/a.fxp: "+assert.AnError.Error(), s.Errors[0].Error())
	assert.Equal(t, "/src/b.fxp [Lead]: "+assert.AnError.Error(), s.Errors[1].Error())
	assert.ErrorIs(t, s.Errors[1], assert.AnError)
}

func TestMerge(t *testing.T) {
	first := NewStats()
	first.FilesSeen = 2
	first.FilesPlaced = 2
	first.RecordPlacement(Placement{Category: "Bass", Outcome: OutcomeCopied, Bytes: 4})
	first.RecordPlacement(Placement{Category: "Lead", Outcome: OutcomeCopied, Bytes: 4})
	first.Files = append(first.Files, FileRecord{Source: "/a/Bass.fxp"}, FileRecord{Source: "/a/Lead.fxp"})

	second := NewStats()
	second.FilesSeen = 3
	second.FilesPlaced = 1
	second.Duplicates = 2
	second.RecordPlacement(Placement{Category: "Bass", Outcome: OutcomeCopied, Bytes: 4})
	second.RecordError("/b/broken.fxp", "", assert.AnError)

	total := NewStats()
	total.Merge("/a", first)
	total.Merge("/b", second)

	assert.Equal(t, 5, total.FilesSeen)
	assert.Equal(t, 3, total.FilesPlaced)
	assert.Equal(t, 3, total.Copies)
	assert.Equal(t, 2, total.Duplicates)
	assert.Equal(t, int64(12), total.BytesPlaced)
	assert.Equal(t, map[string]int{"Bass": 2, "Lead": 1}, total.PerCategory)
	assert.Len(t, total.Errors, 1)
	assert.Len(t, total.Files, 2)

	require.Len(t, total.Sources, 2)
	assert.Equal(t, "/a", total.Sources[0].Root)
	assert.Equal(t, 2, total.Sources[0].Counts.FilesSeen)
	assert.Equal(t, 0, total.Sources[0].Errors)
	assert.Equal(t, "/b", total.Sources[1].Root)
	assert.Equal(t, 1, total.Sources[1].Errors)
	assert.Equal(t, map[string]int{"Bass": 1}, total.Sources[1].PerCategory)

	second.PerCategory["Bass"] = 99
	assert.Equal(t, 1, total.Sources[1].PerCategory["Bass"], "per-source counts should be copied")
}
