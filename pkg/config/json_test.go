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

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestJSONParsing tests JSON config parsing
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_minimal_json",
			config: `{
				"categories": [
					{"name": "Bass", "keywords": ["bass"]}
				]
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultCatchAll, cfg.CatchAll) // default value
				require.Len(t, cfg.Categories, 1)
				assert.Equal(t, []Keyword{{Pattern: "bass"}}, cfg.Categories[0].Keywords)
			},
		},
		{
			name: "valid_full_json",
			config: `{
				"catch_all": "Other",
				"extensions": [".FXP"],
				"genre_noise": ["DnB"],
				"categories": [
					{"name": "Pad", "keywords": ["atmosphere"], "strict": ["PAD"]}
				],
				"special": [
					{"category": "Custom", "kind": "vocabulary", "words": ["meu"]}
				]
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Other", cfg.CatchAll)
				assert.Equal(t, []string{".fxp"}, cfg.Extensions)
				assert.Equal(t, []string{"dnb"}, cfg.GenreNoise)
				assert.Equal(t, []Keyword{
					{Pattern: "atmosphere"},
					{Pattern: "pad", Strict: true},
				}, cfg.Categories[0].Keywords)
				require.Len(t, cfg.Special, 1)
				assert.Equal(t, SpecialVocabulary, cfg.Special[0].Kind)
				assert.Equal(t, "vocabulary", cfg.Special[0].Name, "name should default to kind")
			},
		},
		{
			name:        "invalid_json",
			config:      `{"categories": [`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "unknown_field",
			config:      `{"categories": [{"name": "Bass", "keywords": ["bass"]}], "extra": true}`,
			wantErr:     true,
			errContains: "unknown field",
		},
		{
			name:        "no_categories",
			config:      `{"catch_all": "Misc"}`,
			wantErr:     true,
			errContains: "at least one category is required",
		},
		{
			name:        "vocabulary_without_words",
			config:      `{"categories": [{"name": "Bass", "keywords": ["bass"]}], "special": [{"category": "Custom", "kind": "vocabulary"}]}`,
			wantErr:     true,
			errContains: "at least one word is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &JSONParser{}
			cfg, err := parser.Parse(context.Background(), []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
