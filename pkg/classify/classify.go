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
	"regexp"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/presetsort/pkg/config"
	"github.com/walteh/presetsort/pkg/text"
)

// Via names which rule produced a resolved category set
type Via string

const (
	ViaKeyword  Via = "keyword"
	ViaSpecial  Via = "special"
	ViaCatchAll Via = "catch-all"
)

type compiledKeyword struct {
	keyword  config.Keyword
	anchored bool
}

type compiledCategory struct {
	name     string
	keywords []compiledKeyword
}

// 🧠 Classifier is an immutable, compiled classification table
type Classifier struct {
	normalizer *Normalizer
	categories []compiledCategory
	special    []compiledSpecial
	catchAll   string
	extensions map[string]bool
	names      []string
}

// 🏭 New validates cfg and compiles it. The classifier keeps no reference to
// cfg, so later changes to it have no effect.
func New(cfg *config.Config) (*Classifier, error) {
	if cfg == nil {
		return nil, errors.Errorf("config is required")
	}
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	c := &Classifier{
		normalizer: NewNormalizer(cfg.GenreNoise),
		catchAll:   cfg.CatchAll,
		extensions: make(map[string]bool, len(cfg.Extensions)),
		names:      cfg.CategoryNames(),
	}

	for _, ext := range cfg.Extensions {
		c.extensions[ext] = true
	}

	for _, cat := range cfg.Categories {
		cc := compiledCategory{name: cat.Name}
		for _, kw := range cat.Keywords {
			cc.keywords = append(cc.keywords, compiledKeyword{
				keyword:  kw,
				anchored: text.HasAnchor(kw.Pattern),
			})
		}
		c.categories = append(c.categories, cc)
	}

	for _, sp := range cfg.Special {
		cs, err := compileSpecial(sp)
		if err != nil {
			return nil, err
		}
		c.special = append(c.special, cs)
	}

	return c, nil
}

// MustNew is New for tables known to be valid, such as config.Default()
func MustNew(cfg *config.Config) *Classifier {
	c, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// CatchAll is the bucket used when nothing else matches
func (c *Classifier) CatchAll() string {
	return c.catchAll
}

// Categories lists every folder the classifier can produce: keyword
// categories in table order, then special categories, then the catch-all.
func (c *Classifier) Categories() []string {
	return append([]string(nil), c.names...)
}

// Extensions returns the supported suffixes, sorted
func (c *Classifier) Extensions() []string {
	out := make([]string, 0, len(c.extensions))
	for ext := range c.extensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// HasSupportedExtension reports whether name ends in a supported suffix, ignoring case
func (c *Classifier) HasSupportedExtension(name string) bool {
	return c.extensions[strings.ToLower(filepath.Ext(name))]
}

// Normalize exposes the normalizer outputs for filename
func (c *Classifier) Normalize(filename string) (originalLowerStem, normalized string) {
	return c.normalizer.Normalize(filename)
}

func (k compiledKeyword) matches(stem, normalized string) bool {
	hay := normalized
	if k.anchored {
		hay = stem
	}
	if k.keyword.Strict {
		return text.ContainsWord(hay, k.keyword.Pattern)
	}
	return strings.Contains(hay, k.keyword.Pattern)
}

// Match records the keyword that placed a file in a category
type Match struct {
	Category string
	Keyword  config.Keyword
}

func (c *Classifier) match(stem, normalized string) []Match {
	var out []Match
	for _, cat := range c.categories {
		for _, kw := range cat.keywords {
			if kw.matches(stem, normalized) {
				out = append(out, Match{Category: cat.name, Keyword: kw.keyword})
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}

// 🎯 Classify returns the keyword categories filename belongs to, sorted by
// name. An empty result means no keyword matched; the special chain and the
// catch-all are only applied by Resolve.
func (c *Classifier) Classify(filename string) []string {
	stem, normalized := c.normalizer.Normalize(filename)
	matches := c.match(stem, normalized)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Category)
	}
	return out
}

// Special runs the fallback chain in order and returns the first hit
func (c *Classifier) Special(filename string) (string, bool) {
	name, _, ok := c.firstSpecial(filename)
	return name, ok
}

func (c *Classifier) firstSpecial(filename string) (category, rule string, ok bool) {
	stem, normalized := c.normalizer.Normalize(filename)
	for _, sp := range c.special {
		if sp.matches(stem, normalized) {
			return sp.category, sp.name, true
		}
	}
	return "", "", false
}

// Resolve returns the final category set for filename: keyword categories,
// else the first special category, else the catch-all. It never returns an
// empty set.
func (c *Classifier) Resolve(filename string) ([]string, Via) {
	if cats := c.Classify(filename); len(cats) > 0 {
		return cats, ViaKeyword
	}
	if cat, ok := c.Special(filename); ok {
		return []string{cat}, ViaSpecial
	}
	return []string{c.catchAll}, ViaCatchAll
}

// Explanation shows how a filename was classified
type Explanation struct {
	Filename    string
	Stem        string
	Normalized  string
	Matches     []Match
	SpecialRule string
	Categories  []string
	Via         Via
}

// 🔍 Explain classifies filename and reports every intermediate step
func (c *Classifier) Explain(filename string) *Explanation {
	stem, normalized := c.normalizer.Normalize(filename)
	exp := &Explanation{
		Filename:   filepath.Base(filename),
		Stem:       stem,
		Normalized: normalized,
		Matches:    c.match(stem, normalized),
	}
	if len(exp.Matches) > 0 {
		exp.Via = ViaKeyword
		for _, m := range exp.Matches {
			exp.Categories = append(exp.Categories, m.Category)
		}
		return exp
	}
	if cat, rule, ok := c.firstSpecial(filename); ok {
		exp.Via = ViaSpecial
		exp.SpecialRule = rule
		exp.Categories = []string{cat}
		return exp
	}
	exp.Via = ViaCatchAll
	exp.Categories = []string{c.catchAll}
	return exp
}

// compiledSpecial is a SpecialRule with its regexes and words prepared
type compiledSpecial struct {
	name     string
	category string
	kind     config.SpecialKind
	patterns []*regexp.Regexp
	words    []string
}

func compileSpecial(sp config.SpecialRule) (compiledSpecial, error) {
	cs := compiledSpecial{name: sp.Name, category: sp.Category, kind: sp.Kind}
	for _, p := range sp.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return cs, errors.Errorf("special %q: compiling %q: %w", sp.Name, p, err)
		}
		cs.patterns = append(cs.patterns, re)
	}
	for _, w := range sp.Words {
		if w = text.Fold(text.Words(w)); w != "" {
			cs.words = append(cs.words, w)
		}
	}
	return cs, nil
}
