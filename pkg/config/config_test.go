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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_config",
			config: `
catch_all: Misc
extensions: [FXP, .vital]
genre_noise: ["Future Bass"]
ignore: ["**/backup/**"]
categories:
  - name: Bass
    keywords: [bass, "808"]
    strict: [sub]
  - name: Lead
    keywords: [lead]
special:
  - name: hash
    category: Hashed
    kind: hash
    patterns: ["^[0-9]+$"]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Misc", cfg.CatchAll, "catch-all should match")
				assert.Equal(t, []string{".fxp", ".vital"}, cfg.Extensions, "extensions should be normalized")
				assert.Equal(t, []string{"future bass"}, cfg.GenreNoise, "genre noise should be lowercased")
				assert.Equal(t, []string{"**/backup/**"}, cfg.Ignore, "ignore globs should match")
				require.Len(t, cfg.Categories, 2, "should have 2 categories")
				assert.Equal(t, "Bass", cfg.Categories[0].Name, "first category should match")
				assert.Equal(t, []Keyword{
					{Pattern: "bass"},
					{Pattern: "808"},
					{Pattern: "sub", Strict: true},
				}, cfg.Categories[0].Keywords, "keywords should carry strictness")
				require.Len(t, cfg.Special, 1, "should have 1 special rule")
				assert.Equal(t, SpecialHash, cfg.Special[0].Kind, "special kind should match")
			},
		},
		{
			name: "minimal_config",
			config: `
categories:
  - name: Bass
    keywords: [bass]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultCatchAll, cfg.CatchAll, "catch-all should have default value")
				assert.Equal(t, []string{".fxp", ".serumpreset"}, cfg.Extensions, "extensions should have default value")
				assert.Empty(t, cfg.Special, "special should be empty")
			},
		},
		{
			name: "unknown_field",
			config: `
categories:
  - name: Bass
    keywords: [bass]
colour: blue
`,
			wantErr:     true,
			errContains: "colour",
		},
		{
			name: "duplicate_category",
			config: `
categories:
  - name: Bass
    keywords: [bass]
  - name: bass
    keywords: [low]
`,
			wantErr:     true,
			errContains: "defined more than once",
		},
		{
			name: "category_named_like_catch_all",
			config: `
categories:
  - name: Uncategorized
    keywords: [misc]
`,
			wantErr:     true,
			errContains: "defined more than once",
		},
		{
			name: "category_without_keywords",
			config: `
categories:
  - name: Bass
`,
			wantErr:     true,
			errContains: "has no keywords",
		},
		{
			name: "category_with_path_separator",
			config: `
categories:
  - name: Bass/Sub
    keywords: [sub]
`,
			wantErr:     true,
			errContains: "not a valid folder name",
		},
		{
			name: "bad_special_regex",
			config: `
categories:
  - name: Bass
    keywords: [bass]
special:
  - category: Hashed
    kind: hash
    patterns: ["(["]
`,
			wantErr:     true,
			errContains: "compiling",
		},
		{
			name: "unknown_special_kind",
			config: `
categories:
  - name: Bass
    keywords: [bass]
special:
  - category: Hashed
    kind: magic
    patterns: ["x"]
`,
			wantErr:     true,
			errContains: "unknown kind",
		},
	}

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "presetsort.yaml")
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			assert.Equal(t, configPath, cfg.Location(), "location should be recorded")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presetsort.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0644))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate(), "built-in table should validate")
	assert.Equal(t, DefaultCatchAll, cfg.CatchAll)
	assert.Equal(t, []string{".fxp", ".serumpreset"}, cfg.Extensions)
	assert.Len(t, cfg.Categories, 12)
	assert.Equal(t, "", cfg.Location())
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Categories[0].Keywords[0].Pattern = "changed"
	a.GenreNoise[0] = "changed"

	b := Default()
	assert.Equal(t, "bass", b.Categories[0].Keywords[0].Pattern)
	assert.Equal(t, "future bass", b.GenreNoise[0])
}

func TestClone(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.Categories[0].Keywords[0].Pattern = "changed"
	b.Special[0].Patterns[0] = "changed"
	b.Extensions[0] = ".changed"

	assert.Equal(t, "bass", a.Categories[0].Keywords[0].Pattern)
	assert.Equal(t, `^[0-9]+$`, a.Special[0].Patterns[0])
	assert.Equal(t, ".fxp", a.Extensions[0])
}

func TestCategoryNames(t *testing.T) {
	cfg := &Config{
		CatchAll: "Misc",
		Categories: []CategoryRule{
			{Name: "Bass"},
			{Name: "Lead"},
		},
		Special: []SpecialRule{
			{Category: "Custom"},
			{Category: "Custom"},
			{Category: "Hashed"},
		},
	}
	assert.Equal(t, []string{"Bass", "Lead", "Custom", "Hashed", "Misc"}, cfg.CategoryNames())
}

func TestConfigString(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want string
	}{
		{
			name: "built_in",
			cfg: &Config{
				CatchAll:   "Uncategorized",
				Extensions: []string{".fxp"},
				Categories: []CategoryRule{{Name: "Bass"}},
			},
			want: "built-in: 1 categories, 0 special rules, catch-all Uncategorized, extensions .fxp",
		},
		{
			name: "from_file",
			cfg: &Config{
				CatchAll:   "Misc",
				Extensions: []string{".fxp", ".serumpreset"},
				location:   "/tmp/presetsort.yaml",
			},
			want: "/tmp/presetsort.yaml: 0 categories, 0 special rules, catch-all Misc, extensions .fxp,.serumpreset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.String(), "String() should match")
		})
	}
}
