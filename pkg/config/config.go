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
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultCatchAll is the bucket for files nothing else claims.
const DefaultCatchAll = "Uncategorized"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔑 Keyword is one pattern belonging to a category.
//
// Plain keywords match anywhere in the name. Strict keywords only match as a
// whole token, flanked by separators or the ends of the name.
type Keyword struct {
	Pattern string
	Strict  bool
}

// 📂 CategoryRule maps a category name to its keywords
type CategoryRule struct {
	Name     string
	Keywords []Keyword
}

// SpecialKind selects how a SpecialRule inspects a filename.
type SpecialKind string

const (
	SpecialHash       SpecialKind = "hash"       // regexes against the stem with separators removed
	SpecialVocabulary SpecialKind = "vocabulary" // whole-word match against accent-folded tokens
	SpecialPattern    SpecialKind = "pattern"    // regexes against the normalized name
)

// 🧩 SpecialRule is a fallback detector evaluated only when no category matched
type SpecialRule struct {
	Name     string
	Category string
	Kind     SpecialKind
	Patterns []string
	Words    []string
}

// 📚 Config is the complete classification table.
//
// A Config is plain data. Consumers compile it once (see classify.New) and never
// look at it again, so mutating a Config after construction has no effect on
// classifiers already built from it.
type Config struct {
	CatchAll   string
	Extensions []string
	GenreNoise []string
	Ignore     []string
	Categories []CategoryRule
	Special    []SpecialRule

	location string
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	cfg.location = path

	logger.Debug().
		Str("path", path).
		Int("categories", len(cfg.Categories)).
		Int("special", len(cfg.Special)).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and normalizes it in place
func (cfg *Config) Validate() error {
	cfg.CatchAll = strings.TrimSpace(cfg.CatchAll)
	if cfg.CatchAll == "" {
		cfg.CatchAll = DefaultCatchAll
	}
	if !validFolderName(cfg.CatchAll) {
		return errors.Errorf("catch_all %q is not a valid folder name", cfg.CatchAll)
	}

	if len(cfg.Extensions) == 0 {
		return errors.Errorf("at least one extension is required")
	}
	for i, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			return errors.Errorf("extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Extensions[i] = ext
	}

	if len(cfg.Categories) == 0 {
		return errors.Errorf("at least one category is required")
	}
	seen := make(map[string]bool, len(cfg.Categories)+len(cfg.Special)+1)
	seen[strings.ToLower(cfg.CatchAll)] = true
	for i, cat := range cfg.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return errors.Errorf("categories[%d].name is required", i)
		}
		if !validFolderName(name) {
			return errors.Errorf("category %q is not a valid folder name", name)
		}
		if seen[strings.ToLower(name)] {
			return errors.Errorf("category %q is defined more than once", name)
		}
		seen[strings.ToLower(name)] = true
		if len(cat.Keywords) == 0 {
			return errors.Errorf("category %q has no keywords", name)
		}
		for j, kw := range cat.Keywords {
			kw.Pattern = strings.ToLower(strings.TrimSpace(kw.Pattern))
			if kw.Pattern == "" {
				return errors.Errorf("category %q keyword %d is empty", name, j)
			}
			cat.Keywords[j] = kw
		}
		cfg.Categories[i].Name = name
	}

	for i, phrase := range cfg.GenreNoise {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			return errors.Errorf("genre_noise[%d] is empty", i)
		}
		cfg.GenreNoise[i] = phrase
	}

	for i, sp := range cfg.Special {
		if sp.Name == "" {
			sp.Name = string(sp.Kind)
		}
		sp.Category = strings.TrimSpace(sp.Category)
		if sp.Category == "" {
			return errors.Errorf("special %q: category is required", sp.Name)
		}
		if !validFolderName(sp.Category) {
			return errors.Errorf("special %q: category %q is not a valid folder name", sp.Name, sp.Category)
		}
		switch sp.Kind {
		case SpecialHash, SpecialPattern:
			if len(sp.Patterns) == 0 {
				return errors.Errorf("special %q: at least one pattern is required", sp.Name)
			}
			for _, pat := range sp.Patterns {
				if _, err := regexp.Compile(pat); err != nil {
					return errors.Errorf("special %q: compiling %q: %w", sp.Name, pat, err)
				}
			}
		case SpecialVocabulary:
			if len(sp.Words) == 0 {
				return errors.Errorf("special %q: at least one word is required", sp.Name)
			}
		default:
			return errors.Errorf("special %q: unknown kind %q", sp.Name, sp.Kind)
		}
		cfg.Special[i] = sp
	}

	return nil
}

// 📋 CategoryNames returns every folder the table can produce, keyword
// categories first, then special categories, then the catch-all.
func (cfg *Config) CategoryNames() []string {
	names := make([]string, 0, len(cfg.Categories)+len(cfg.Special)+1)
	seen := map[string]bool{}
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	for _, c := range cfg.Categories {
		add(c.Name)
	}
	for _, s := range cfg.Special {
		add(s.Category)
	}
	add(cfg.CatchAll)
	return names
}

// Clone returns a deep copy.
func (cfg *Config) Clone() *Config {
	out := &Config{
		CatchAll:   cfg.CatchAll,
		Extensions: append([]string(nil), cfg.Extensions...),
		GenreNoise: append([]string(nil), cfg.GenreNoise...),
		Ignore:     append([]string(nil), cfg.Ignore...),
		location:   cfg.location,
	}
	for _, c := range cfg.Categories {
		out.Categories = append(out.Categories, CategoryRule{
			Name:     c.Name,
			Keywords: append([]Keyword(nil), c.Keywords...),
		})
	}
	for _, s := range cfg.Special {
		s.Patterns = append([]string(nil), s.Patterns...)
		s.Words = append([]string(nil), s.Words...)
		out.Special = append(out.Special, s)
	}
	return out
}

// Location is the file the config was loaded from, or "" for the built-in table.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	src := cfg.location
	if src == "" {
		src = "built-in"
	}
	return fmt.Sprintf("%s: %d categories, %d special rules, catch-all %s, extensions %s",
		src, len(cfg.Categories), len(cfg.Special), cfg.CatchAll, strings.Join(cfg.Extensions, ","))
}

func validFolderName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// fileConfig is the on-disk schema shared by the YAML and JSON parsers.
type fileConfig struct {
	CatchAll   string         `json:"catch_all,omitempty" yaml:"catch_all,omitempty"`
	Extensions []string       `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	GenreNoise []string       `json:"genre_noise,omitempty" yaml:"genre_noise,omitempty"`
	Ignore     []string       `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	Categories []fileCategory `json:"categories" yaml:"categories"`
	Special    []fileSpecial  `json:"special,omitempty" yaml:"special,omitempty"`
}

type fileCategory struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Strict   []string `json:"strict,omitempty" yaml:"strict,omitempty"`
}

type fileSpecial struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Category string   `json:"category" yaml:"category"`
	Kind     string   `json:"kind" yaml:"kind"`
	Patterns []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	Words    []string `json:"words,omitempty" yaml:"words,omitempty"`
}

// toConfig converts the file schema into the model. Omitted extensions fall
// back to the built-in set.
func (fc *fileConfig) toConfig() *Config {
	cfg := &Config{
		CatchAll:   fc.CatchAll,
		Extensions: fc.Extensions,
		GenreNoise: fc.GenreNoise,
		Ignore:     fc.Ignore,
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), defaultExtensions...)
	}
	for _, c := range fc.Categories {
		rule := CategoryRule{Name: c.Name}
		for _, k := range c.Keywords {
			rule.Keywords = append(rule.Keywords, Keyword{Pattern: k})
		}
		for _, k := range c.Strict {
			rule.Keywords = append(rule.Keywords, Keyword{Pattern: k, Strict: true})
		}
		cfg.Categories = append(cfg.Categories, rule)
	}
	for _, s := range fc.Special {
		cfg.Special = append(cfg.Special, SpecialRule{
			Name:     s.Name,
			Category: s.Category,
			Kind:     SpecialKind(strings.ToLower(s.Kind)),
			Patterns: s.Patterns,
			Words:    s.Words,
		})
	}
	return cfg
}
