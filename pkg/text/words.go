package text

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separatorReplacer turns every filename separator into a space
var separatorReplacer = strings.NewReplacer(
	"_", " ",
	"-", " ",
	".", " ",
	"[", " ",
	"]", " ",
	"(", " ",
	")", " ",
	"{", " ",
	"}", " ",
)

// Words lowercases s, turns separators and brackets into spaces and collapses
// whitespace runs into a single space.
func Words(s string) string {
	return strings.Join(strings.Fields(separatorReplacer.Replace(strings.ToLower(s))), " ")
}

// IsBoundary reports whether b separates tokens in a filename
func IsBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '_', '-', '.':
		return true
	}
	return false
}

// HasAnchor reports whether s contains a separator that normalization would erase
func HasAnchor(s string) bool {
	return strings.ContainsAny(s, "_-.")
}

// ContainsWord reports whether kw occurs in s as a whole token.
//
// A boundary is a separator byte or either end of s. When kw itself begins or
// ends with a separator, no boundary is needed on that side.
func ContainsWord(s, kw string) bool {
	if kw == "" {
		return false
	}
	needLeft := !IsBoundary(kw[0])
	needRight := !IsBoundary(kw[len(kw)-1])
	for off := 0; off <= len(s)-len(kw); {
		i := strings.Index(s[off:], kw)
		if i < 0 {
			return false
		}
		start := off + i
		end := start + len(kw)
		leftOK := !needLeft || start == 0 || IsBoundary(s[start-1])
		rightOK := !needRight || end == len(s) || IsBoundary(s[end])
		if leftOK && rightOK {
			return true
		}
		off = start + 1
	}
	return false
}

// Fold strips diacritics so "cópia" and "copia" compare equal.
//
// The transformer chain keeps state, so a fresh one is built per call.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// 🧹 PhraseRemover erases whole-word phrases from already normalized text
type PhraseRemover struct {
	phrases []string
}

// NewPhraseRemover normalizes phrases with Words and orders them longest first,
// so "drum and bass" is removed before a shorter phrase could split it.
func NewPhraseRemover(phrases []string) *PhraseRemover {
	seen := make(map[string]bool, len(phrases))
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = Words(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return &PhraseRemover{phrases: out}
}

// Phrases returns the normalized phrases in removal order
func (r *PhraseRemover) Phrases() []string {
	return append([]string(nil), r.phrases...)
}

// Remove deletes every whole-word occurrence of each phrase from s, which must
// already be in Words form. It returns the cleaned text and the number of
// removals made.
func (r *PhraseRemover) Remove(s string) (string, int) {
	count := 0
	padded := " " + s + " "
	for _, p := range r.phrases {
		needle := " " + p + " "
		for strings.Contains(padded, needle) {
			padded = strings.Replace(padded, needle, " ", 1)
			count++
		}
	}
	return strings.Join(strings.Fields(padded), " "), count
}
