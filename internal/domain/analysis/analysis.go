// Package analysis holds the result shapes assembled per analyze request.
package analysis

import (
	"github.com/kailas-cloud/archetype/internal/domain/figure"
	"github.com/kailas-cloud/archetype/internal/domain/textstat"
)

// UserLabel is the reserved projection label for the submitted text.
const UserLabel = "You"

// Match is one ranked cultural figure with its explanation.
type Match struct {
	Name           string
	Category       figure.Category
	Period         string
	Score          float64
	Reason         string
	KeyThemes      []string
	Recommendation figure.Recommendation
}

// Point is a 2D projection coordinate for one label.
type Point struct {
	Label string
	X     float64
	Y     float64
}

// Summary describes the user submission: extracted features, detected
// themes, and the L2 norm of the embedding vector.
type Summary struct {
	Features      textstat.Features
	Themes        []string
	EmbeddingNorm float64
}

// Result is the full analyze response. Projection lists corpus figures in
// index order followed by the user point; it is empty when the projection
// engine is degraded.
type Result struct {
	Matches          []Match
	Projection       []Point
	Summary          Summary
	ProcessingTimeMS float64
}
