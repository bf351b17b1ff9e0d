package textstat

import "strings"

// maxThemes caps the number of theme tags returned per text.
const maxThemes = 5

// themeEntry pairs a theme tag with its trigger keywords.
// Kept as an ordered slice: map iteration order would make tagging
// nondeterministic across calls.
type themeEntry struct {
	tag      string
	keywords []string
}

var themeLexicon = []themeEntry{
	{"existential", []string{"existence", "being", "mortality", "death", "life", "meaning", "absurd"}},
	{"political", []string{"power", "society", "justice", "freedom", "oppression", "revolution", "state"}},
	{"romantic", []string{"love", "passion", "desire", "beauty", "emotion", "heart", "soul"}},
	{"rational", []string{"reason", "logic", "mind", "thought", "intellect", "rational", "analysis"}},
	{"spiritual", []string{"god", "divine", "soul", "faith", "religious", "spiritual", "transcendent"}},
	{"nature", []string{"nature", "natural", "world", "earth", "organic", "wild", "landscape"}},
	{"human_condition", []string{"suffering", "joy", "pain", "happiness", "consciousness", "identity"}},
	{"artistic", []string{"art", "beauty", "aesthetic", "creative", "imagination", "expression"}},
	{"social", []string{"community", "relationship", "other", "society", "collective", "individual"}},
	{"language", []string{"language", "words", "writing", "discourse", "communication", "text"}},
}

// Themes tags a text sample against the fixed theme lexicon.
// Tags come back in lexicon order, at most maxThemes of them.
func Themes(text string) []string {
	lower := strings.ToLower(text)

	var tags []string
	for _, entry := range themeLexicon {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, entry.tag)
				break
			}
		}
		if len(tags) == maxThemes {
			break
		}
	}
	return tags
}
