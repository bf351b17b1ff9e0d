package analyze

import (
	"context"

	"github.com/kailas-cloud/archetype/internal/domain"
	"github.com/kailas-cloud/archetype/internal/domain/analysis"
	"github.com/kailas-cloud/archetype/internal/domain/figure"
	"github.com/kailas-cloud/archetype/internal/domain/textstat"
	"github.com/kailas-cloud/archetype/internal/usecase/rank"
)

// Embedder vectorizes the submitted text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Ranker scores the query vector against the corpus.
type Ranker interface {
	Rank(query []float32, topK int) ([]rank.Scored, error)
}

// Explainer builds the reason text and theme overlap for one match.
type Explainer interface {
	Explain(features textstat.Features, userThemes []string, fig figure.Figure, score float64) (string, []string)
}

// Projector maps vectors onto the fixed 2D corpus map.
type Projector interface {
	CorpusPoints() []analysis.Point
	Project(query []float32) (analysis.Point, bool)
}
