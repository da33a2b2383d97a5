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
	"strings"

	"github.com/walteh/presetsort/pkg/config"
	"github.com/walteh/presetsort/pkg/text"
)

// compact removes every separator so "ABC_123456" checks as "abc123456"
func compact(stem string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 && text.IsBoundary(byte(r)) {
			return -1
		}
		return r
	}, stem)
}

func (s compiledSpecial) matches(stem, normalized string) bool {
	switch s.kind {
	case config.SpecialHash:
		return s.anyPattern(compact(stem))
	case config.SpecialPattern:
		return s.anyPattern(normalized)
	case config.SpecialVocabulary:
		// the unnormalized stem is used so genre removal cannot hide a word
		folded := text.Fold(text.Words(stem))
		for _, w := range s.words {
			if text.ContainsWord(folded, w) {
				return true
			}
		}
	}
	return false
}

func (s compiledSpecial) anyPattern(in string) bool {
	if in == "" {
		return false
	}
	for _, re := range s.patterns {
		if re.MatchString(in) {
			return true
		}
	}
	return false
}
