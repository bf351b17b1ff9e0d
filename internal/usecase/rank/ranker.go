// Package rank computes cosine-similarity rankings of a query vector against
// the corpus index.
package rank

import (
	"fmt"
	"math"
	"sort"

	"github.com/kailas-cloud/archetype/internal/domain"
	"github.com/kailas-cloud/archetype/internal/domain/figure"
	"github.com/kailas-cloud/archetype/internal/usecase/corpus"
)

// Scored pairs a corpus figure with its similarity score.
type Scored struct {
	Figure figure.Figure
	Score  float64
}

// Ranker ranks query vectors against the corpus. Stateless apart from the
// read-only index reference; a pure function of its inputs.
type Ranker struct {
	index *corpus.Index
}

// New creates a ranker over the given corpus index.
func New(index *corpus.Index) *Ranker {
	return &Ranker{index: index}
}

// Rank scores every corpus figure against the query and returns the top K in
// descending score order. Equal scores keep corpus insertion order (stable
// sort), so results are deterministic. K larger than the corpus is clamped.
func (r *Ranker) Rank(query []float32, topK int) ([]Scored, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("rank: %w: got %d", domain.ErrInvalidTopK, topK)
	}

	figures := r.index.All()
	scored := make([]Scored, len(figures))
	for i := range figures {
		scored[i] = Scored{
			Figure: figures[i],
			Score:  cosineSimilarity(query, figures[i].Embedding()),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK > len(scored) {
		topK = len(scored)
	}
	return scored[:topK], nil
}

// cosineSimilarity computes the cosine similarity between two vectors.
// Mismatched or zero vectors score 0 rather than NaN.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
