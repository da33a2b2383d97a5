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

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer([]string{"future bass", "drum and bass", "dnb", "trap"})

	tests := []struct {
		name           string
		filename       string
		wantStem       string
		wantNormalized string
	}{
		{
			name:           "genre_prefix",
			filename:       "Future Bass - LEAD 13.fxp",
			wantStem:       "future bass - lead 13",
			wantNormalized: "lead 13",
		},
		{
			name:           "genre_with_underscores",
			filename:       "Future_Bass_Pluck.serumpreset",
			wantStem:       "future_bass_pluck",
			wantNormalized: "pluck",
		},
		{
			name:           "brackets_and_dots",
			filename:       "[DnB] Reese.v2 (Wide).fxp",
			wantStem:       "[dnb] reese.v2 (wide)",
			wantNormalized: "reese v2 wide",
		},
		{
			name:           "noise_inside_word_kept",
			filename:       "Trapeze_Lead.fxp",
			wantStem:       "trapeze_lead",
			wantNormalized: "trapeze lead",
		},
		{
			name:           "no_extension",
			filename:       "Deep_Bass",
			wantStem:       "deep_bass",
			wantNormalized: "deep bass",
		},
		{
			name:           "directory_is_ignored",
			filename:       "/presets/Bass/Deep_Bass.fxp",
			wantStem:       "deep_bass",
			wantNormalized: "deep bass",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, normalized := n.Normalize(tt.filename)
			assert.Equal(t, tt.wantStem, stem, "stem should match")
			assert.Equal(t, tt.wantNormalized, normalized, "normalized text should match")
		})
	}
}

func TestStem(t *testing.T) {
	assert.Equal(t, "Deep_Bass", Stem("Deep_Bass.fxp"))
	assert.Equal(t, "a.b", Stem("a.b.fxp"))
	assert.Equal(t, ".fxp", Stem(".fxp"))
	assert.Equal(t, "plain", Stem("plain"))
}
