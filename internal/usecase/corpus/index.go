// Package corpus builds and holds the immutable reference corpus index.
package corpus

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/archetype/internal/domain"
	"github.com/kailas-cloud/archetype/internal/domain/figure"
)

// Index is the ordered, read-only collection of indexed cultural figures.
// Built once at startup; safe for unsynchronized concurrent reads afterwards.
// Insertion order is stable and serves as the deterministic ranking tie-break.
type Index struct {
	figures []figure.Figure
	dim     int
}

// Build embeds every profile's representative texts, aggregates them into one
// vector per figure, and assembles the index. Any embedding failure or
// dimensionality mismatch fails the whole build: a partially-loaded corpus
// must never serve.
func Build(
	ctx context.Context,
	profiles []figure.Profile,
	embedder domain.Embedder,
	logger *zap.Logger,
) (*Index, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorpusLoad, domain.ErrCorpusEmpty)
	}

	figures := make([]figure.Figure, 0, len(profiles))
	dim := 0

	for i := range profiles {
		p := &profiles[i]

		batch, err := embedTexts(ctx, embedder, p.Texts())
		if err != nil {
			return nil, fmt.Errorf("%w: embed texts for %q: %w", domain.ErrCorpusLoad, p.Name(), err)
		}

		aggregate, err := meanVector(batch.Embeddings)
		if err != nil {
			return nil, fmt.Errorf("%w: aggregate for %q: %w", domain.ErrCorpusLoad, p.Name(), err)
		}

		if dim == 0 {
			dim = len(aggregate)
		} else if len(aggregate) != dim {
			return nil, fmt.Errorf(
				"%w: figure %q has dimension %d, corpus has %d: %w",
				domain.ErrCorpusLoad, p.Name(), len(aggregate), dim, domain.ErrVectorDimMismatch,
			)
		}

		f, err := figure.New(*p, aggregate)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCorpusLoad, err)
		}
		figures = append(figures, f)
	}

	logger.Info("Corpus index built",
		zap.Int("figures", len(figures)),
		zap.Int("dimensions", dim),
	)

	return &Index{figures: figures, dim: dim}, nil
}

func embedTexts(ctx context.Context, embedder domain.Embedder, texts []string) (domain.BatchEmbeddingResult, error) {
	if be, ok := embedder.(domain.BatchEmbedder); ok {
		return be.BatchEmbed(ctx, texts)
	}
	return domain.BatchFallback(ctx, embedder, texts)
}

// meanVector computes the element-wise mean of equally sized vectors.
func meanVector(vectors [][]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no vectors to aggregate")
	}

	dim := len(vectors[0])
	if dim == 0 {
		return nil, fmt.Errorf("empty vector in aggregate")
	}

	sums := make([]float64, dim)
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf(
				"vector [%d] has dimension %d, expected %d: %w",
				i, len(v), dim, domain.ErrVectorDimMismatch,
			)
		}
		for j, x := range v {
			sums[j] += float64(x)
		}
	}

	mean := make([]float32, dim)
	n := float64(len(vectors))
	for j, s := range sums {
		mean[j] = float32(s / n)
	}
	return mean, nil
}

// All returns the indexed figures in insertion order. Read-only.
func (idx *Index) All() []figure.Figure { return idx.figures }

// Size returns the number of indexed figures.
func (idx *Index) Size() int { return len(idx.figures) }

// Dim returns the embedding dimensionality shared by all figures.
func (idx *Index) Dim() int { return idx.dim }
