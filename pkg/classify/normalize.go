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
	"path/filepath"
	"strings"

	"github.com/walteh/presetsort/pkg/text"
)

// 🧹 Normalizer prepares filenames for keyword matching
type Normalizer struct {
	noise *text.PhraseRemover
}

// NewNormalizer builds a normalizer that erases the given genre phrases
func NewNormalizer(genreNoise []string) *Normalizer {
	return &Normalizer{noise: text.NewPhraseRemover(genreNoise)}
}

// Stem returns the base name without its final extension
func Stem(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// Normalize returns the lowercased stem and the text used for matching.
//
// The stem keeps every separator so anchored keywords like "tsp_" still find
// their anchor. The normalized text has separators replaced by single spaces
// and every genre phrase removed as whole words.
func (n *Normalizer) Normalize(filename string) (originalLowerStem, normalized string) {
	stem := Stem(filename)
	originalLowerStem = strings.ToLower(stem)
	normalized, _ = n.noise.Remove(text.Words(stem))
	return originalLowerStem, normalized
}
