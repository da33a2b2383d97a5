package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "underscores", in: "Deep_Bass_01", want: "deep bass 01"},
		{name: "mixed_separators", in: "Future Bass - KEYS - Analog.Movement", want: "future bass keys analog movement"},
		{name: "brackets", in: "[KSHMR] Lead (Wide) {v2}", want: "kshmr lead wide v2"},
		{name: "whitespace_runs", in: "  Lush   Pad\t", want: "lush pad"},
		{name: "empty", in: "", want: ""},
		{name: "only_separators", in: "__--..", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name string
		s    string
		kw   string
		want bool
	}{
		{name: "whole_token", s: "lush pad soft", kw: "pad", want: true},
		{name: "start_of_string", s: "pad dreamy", kw: "pad", want: true},
		{name: "end_of_string", s: "soft pad", kw: "pad", want: true},
		{name: "exact", s: "pad", kw: "pad", want: true},
		{name: "inside_word", s: "padding", kw: "pad", want: false},
		{name: "suffix_of_word", s: "white", kw: "hit", want: false},
		{name: "second_occurrence", s: "padding pad", kw: "pad", want: true},
		{name: "underscore_boundary", s: "bass_sub_01", kw: "sub", want: true},
		{name: "dash_boundary", s: "lead-ld-x", kw: "ld", want: true},
		{name: "dot_boundary", s: "v1.fx.a", kw: "fx", want: true},
		{name: "anchored_prefix_left", s: "tsp_s2ph_bass", kw: "tsp_", want: true},
		{name: "anchored_prefix_needs_left", s: "xtsp_s2ph", kw: "tsp_", want: false},
		{name: "empty_keyword", s: "anything", kw: "", want: false},
		{name: "longer_than_text", s: "pa", kw: "pad", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsWord(tt.s, tt.kw))
		})
	}
}

func TestHasAnchor(t *testing.T) {
	assert.True(t, HasAnchor("hi-hat"))
	assert.True(t, HasAnchor("tsp_"))
	assert.True(t, HasAnchor("v1.2"))
	assert.False(t, HasAnchor("warm pad"))
	assert.False(t, HasAnchor("bass"))
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "cópia", want: "copia"},
		{in: "canção", want: "cancao"},
		{in: "klänge", want: "klange"},
		{in: "plain", want: "plain"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestPhraseRemover(t *testing.T) {
	r := NewPhraseRemover([]string{"bass", "Drum and Bass", "future_bass", "dnb", "DNB", ""})

	assert.Equal(t, []string{"drum and bass", "future bass", "bass", "dnb"}, r.Phrases(), "phrases should be normalized, deduplicated and ordered longest first")

	tests := []struct {
		name      string
		in        string
		want      string
		wantCount int
	}{
		{name: "leading_genre", in: "future bass lead 13", want: "lead 13", wantCount: 1},
		{name: "long_phrase_wins", in: "drum and bass pad atmospheric", want: "pad atmospheric", wantCount: 1},
		{name: "whole_words_only", in: "dnbx lead", want: "dnbx lead", wantCount: 0},
		{name: "repeated", in: "dnb lead dnb", want: "lead", wantCount: 2},
		{name: "adjacent", in: "dnb dnb lead", want: "lead", wantCount: 2},
		{name: "everything", in: "bass", want: "", wantCount: 1},
		{name: "nothing", in: "lush pad", want: "lush pad", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := r.Remove(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}
