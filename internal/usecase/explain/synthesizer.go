// Package explain synthesizes deterministic, template-driven match explanations.
package explain

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/archetype/internal/domain/figure"
	"github.com/kailas-cloud/archetype/internal/domain/textstat"
)

// Confidence tiers over the similarity score.
const (
	strongScore   = 0.75
	moderateScore = 0.60
)

// Style observation thresholds.
const (
	longSentenceWords    = 20.0
	questioningThreshold = 0.2
)

// Synthesizer produces a reason string and the overlapping themes for one
// match. Identical inputs always yield identical text; it never calls the
// embedding provider.
type Synthesizer struct{}

// New creates an explanation synthesizer.
func New() *Synthesizer {
	return &Synthesizer{}
}

// Explain builds the explanation for one ranked figure.
// The returned overlap preserves the figure's theme-tag order.
func (s *Synthesizer) Explain(
	features textstat.Features, userThemes []string, fig figure.Figure, score float64,
) (string, []string) {
	overlap := intersect(fig.Themes(), userThemes)

	var sentences []string
	if t := themeSentence(overlap, fig.Name()); t != "" {
		sentences = append(sentences, t)
	}
	sentences = append(sentences, styleSentences(features, fig)...)

	if len(sentences) == 0 {
		sentences = append(sentences, fallbackSentence(fig, score))
	}

	return strings.Join(sentences, ". ") + ".", overlap
}

// themeSentence is selected by theme-overlap size.
func themeSentence(overlap []string, name string) string {
	switch {
	case len(overlap) == 0:
		return ""
	case len(overlap) == 1:
		return fmt.Sprintf("Your writing explores %s themes similar to %s", overlap[0], name)
	default:
		return fmt.Sprintf(
			"Your writing weaves together %s — themes central to %s's work",
			strings.Join(overlap, ", "), name,
		)
	}
}

// styleSentences correlates up to two linguistic observations with figure attributes.
func styleSentences(features textstat.Features, fig figure.Figure) []string {
	var out []string
	if features.AvgSentenceLength > longSentenceWords && strings.Contains(fig.Style(), "complex") {
		out = append(out, "Your complex sentence structure mirrors their philosophical depth")
	}
	if features.QuestionDensity > questioningThreshold && fig.Category() == figure.Philosopher {
		out = append(out, "Your questioning nature reflects their philosophical inquiry")
	}
	return out
}

// fallbackSentence is the hedged generic reason used when nothing specific
// can be said; it asserts resemblance, never identity.
func fallbackSentence(fig figure.Figure, score float64) string {
	return fmt.Sprintf(
		"The semantic pattern of your text shows %s alignment with %s's characteristic expression as a %s (similarity %.2f)",
		confidence(score), fig.Name(), fig.Category(), score,
	)
}

func confidence(score float64) string {
	switch {
	case score > strongScore:
		return "strong"
	case score > moderateScore:
		return "moderate"
	default:
		return "possible"
	}
}

// intersect returns the elements of base also present in other, in base order.
func intersect(base, other []string) []string {
	set := make(map[string]struct{}, len(other))
	for _, s := range other {
		set[s] = struct{}{}
	}

	var out []string
	for _, s := range base {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
