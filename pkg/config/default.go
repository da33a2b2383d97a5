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

var defaultExtensions = []string{".fxp", ".serumpreset"}

func plain(patterns ...string) []Keyword {
	out := make([]Keyword, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, Keyword{Pattern: p})
	}
	return out
}

func strict(patterns ...string) []Keyword {
	out := make([]Keyword, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, Keyword{Pattern: p, Strict: true})
	}
	return out
}

func rule(name string, groups ...[]Keyword) CategoryRule {
	r := CategoryRule{Name: name}
	for _, g := range groups {
		r.Keywords = append(r.Keywords, g...)
	}
	return r
}

// 🏭 Default returns a fresh copy of the built-in classification table.
//
// Short or ambiguous keywords are listed as strict so "hit" does not match
// "white" and "pad" does not match "padding". Keywords containing "-" are
// matched against the raw lowercased stem, since normalization would erase
// the separator they rely on.
func Default() *Config {
	return &Config{
		CatchAll:   DefaultCatchAll,
		Extensions: append([]string(nil), defaultExtensions...),
		GenreNoise: []string{
			"future bass",
			"drum and bass",
			"drum & bass",
			"drum n bass",
			"dnb",
			"dubstep",
			"trap",
			"edm",
			"house",
			"techno",
			"trance",
			"hardstyle",
			"hardcore",
			"electro",
			"progressive",
		},
		Categories: []CategoryRule{
			rule("Bass",
				plain("bass", "subbass", "808", "reese", "wobble", "growl", "riddim", "neuro"),
				strict("sub", "bs", "bss"),
			),
			rule("Lead",
				plain("lead", "melody", "screech", "scream"),
				strict("ld", "lds", "solo", "hook"),
			),
			rule("Pluck",
				plain("pluck", "pizz", "staccato"),
				strict("short", "pl", "plk"),
			),
			rule("Piano_Keys",
				plain("piano", "keyboard", "organ", "epiano", "e-piano", "rhodes", "wurlitzer", "clavinet"),
				strict("keys", "key", "ky", "clav"),
			),
			rule("Pad",
				plain("atmosphere", "drone", "ambient", "evolving", "dreamy", "ethereal", "texture", "soundscape", "warm pad", "soft pad"),
				strict("pad", "pads", "pd", "lush"),
			),
			rule("Synth",
				plain("synth", "polysynth", "analog", "vintage", "retro", "supersaw", "saw lead", "classic synth"),
				strict("poly", "80s", "square", "sy"),
			),
			rule("Drums",
				plain("drum", "kick", "snare", "hihat", "hi-hat", "cymbal", "percussion", "one shot"),
				strict("perc", "tom", "clap", "dr"),
			),
			rule("Arp_Seq",
				plain("arpeggi", "sequence", "rhythm", "gated", "pattern"),
				strict("arp", "arps", "seq", "sq", "gate", "step"),
			),
			rule("FX",
				plain("sfx", "effect", "riser", "uplifter", "downlifter", "down lifter", "impact", "sweep", "swoosh", "whoosh", "transition", "tension", "buildup", "build up", "noise"),
				strict("fx", "rise", "hit", "drop", "trans"),
			),
			rule("Vocals",
				plain("vocal", "choir", "voice", "formant", "talking", "speech", "singing"),
				strict("vox", "vx", "talk", "sing"),
			),
			rule("Strings_Orch",
				plain("string", "violin", "cello", "orchestra", "brass", "flute", "woodwind", "cinematic", "trailer", "movie score"),
				strict("horn", "horns", "wind", "film", "str"),
			),
			rule("Chords",
				plain("chord", "harmonic", "harmony", "triads"),
				strict("stab", "stabs", "chd"),
			),
		},
		Special: []SpecialRule{
			{
				Name:     "hash",
				Category: "Hashed_Names",
				Kind:     SpecialHash,
				Patterns: []string{
					`^[0-9]+$`,
					`^[a-z]{1,4}[0-9]{6,}$`,
					`^[0-9a-f]{16,}$`,
				},
			},
			{
				Name:     "localized",
				Category: "Custom_User",
				Kind:     SpecialVocabulary,
				Words: []string{
					"meu", "minha", "meus", "minhas", "novo", "nova", "teste", "som", "timbre",
					"personalizado", "editado", "copia", "mio", "mia", "nuevo", "sonido", "prueba",
					"mein", "meine", "neu", "klang", "mon", "ma", "nouveau", "essai",
				},
			},
			{
				Name:     "customized",
				Category: "Custom_User",
				Kind:     SpecialPattern,
				Patterns: []string{
					`^(my|user|custom)\s?(preset|patch|sound)`,
					`^(init|default)(\s?(preset|patch))?(\s?[0-9]+)?$`,
					`^(untitled|new preset|preset)(\s?[0-9]+)?$`,
					`\bcopy(\s?[0-9]+)?$`,
				},
			},
		},
	}
}
