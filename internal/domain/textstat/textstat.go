// Package textstat derives linguistic statistics and theme tags from raw text.
// All functions are pure: the same text always yields the same output.
package textstat

import (
	"regexp"
	"strings"
	"unicode"
)

// Features holds linguistic statistics for one text sample.
type Features struct {
	WordCount          int     `json:"word_count"`
	SentenceCount      int     `json:"sentence_count"`
	AvgSentenceLength  float64 `json:"avg_sentence_length"`
	AvgWordLength      float64 `json:"avg_word_length"`
	PunctuationDensity float64 `json:"punctuation_density"`
	QuestionDensity    float64 `json:"question_density"`
	ComplexWordRatio   float64 `json:"complex_word_ratio"`
}

// complexWordRunes is the length threshold above which a word counts as complex.
const complexWordRunes = 8

var (
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
	punctRe       = regexp.MustCompile(`[.,!?;:]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Extract computes linguistic features for a text sample.
// Text without terminal punctuation is treated as a single sentence, so
// sentence-based ratios never divide by zero.
func Extract(text string) Features {
	words := strings.Fields(text)
	sentences := splitSentences(text)

	f := Features{
		WordCount:     len(words),
		SentenceCount: len(sentences),
	}
	if f.SentenceCount == 0 {
		f.SentenceCount = 1
	}

	f.AvgSentenceLength = avgSentenceLength(sentences, len(words))
	f.QuestionDensity = float64(countQuestionSentences(text)) / float64(f.SentenceCount)

	if len(words) == 0 {
		return f
	}

	var letterTotal, complexCount int
	for _, w := range words {
		n := wordLength(w)
		letterTotal += n
		if n > complexWordRunes {
			complexCount++
		}
	}
	f.AvgWordLength = float64(letterTotal) / float64(len(words))
	f.ComplexWordRatio = float64(complexCount) / float64(len(words))
	f.PunctuationDensity = float64(len(punctRe.FindAllString(text, -1))) / float64(len(words))

	return f
}

// Normalize collapses whitespace and folds typographic quotes to ASCII.
// Applied before embedding so that formatting noise does not shift vectors.
func Normalize(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	r := strings.NewReplacer(
		"“", `"`, "”", `"`,
		"‘", "'", "’", "'",
	)
	return strings.TrimSpace(r.Replace(text))
}

func splitSentences(text string) []string {
	parts := sentenceEndRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func avgSentenceLength(sentences []string, wordCount int) float64 {
	if len(sentences) == 0 {
		// Whole text counts as one sentence.
		return float64(wordCount)
	}
	var total int
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(sentences))
}

// countQuestionSentences counts terminal punctuation runs containing '?'.
func countQuestionSentences(text string) int {
	var n int
	for _, run := range sentenceEndRe.FindAllString(text, -1) {
		if strings.ContainsRune(run, '?') {
			n++
		}
	}
	return n
}

// wordLength counts the non-punctuation runes of a word.
func wordLength(w string) int {
	var n int
	for _, r := range w {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			n++
		}
	}
	return n
}
