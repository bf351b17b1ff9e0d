// Package analyze orchestrates the full text analysis pipeline: features,
// themes, embedding, ranking, explanations, and projection.
package analyze

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/archetype/internal/domain"
	"github.com/kailas-cloud/archetype/internal/domain/analysis"
	"github.com/kailas-cloud/archetype/internal/domain/textstat"
	"github.com/kailas-cloud/archetype/internal/metrics"
)

// maxKeyThemes caps how many overlapping themes each match surfaces.
const maxKeyThemes = 3

// Service runs one analyze request end to end. Everything after the
// embedding call is deterministic, so identical text yields identical
// matches, reasons, and coordinates.
type Service struct {
	embed   Embedder
	ranker  Ranker
	explain Explainer
	project Projector
	logger  *zap.Logger
}

// New creates the analysis service.
func New(embed Embedder, ranker Ranker, explain Explainer, project Projector, logger *zap.Logger) *Service {
	return &Service{
		embed:   embed,
		ranker:  ranker,
		explain: explain,
		project: project,
		logger:  logger,
	}
}

// Analyze extracts features, embeds the text, and assembles the ranked
// matches with explanations and the projection map. An embedding failure
// aborts the whole request; no partial result is returned.
func (s *Service) Analyze(ctx context.Context, text string, topK int) (analysis.Result, error) {
	start := time.Now()

	if topK <= 0 {
		return analysis.Result{}, fmt.Errorf("analyze: %w: got %d", domain.ErrInvalidTopK, topK)
	}

	normalized := textstat.Normalize(text)
	features := textstat.Extract(normalized)
	themes := textstat.Themes(normalized)

	embRes, err := s.embed.Embed(ctx, normalized)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("embed query: %w", err)
	}

	scored, err := s.ranker.Rank(embRes.Embedding, topK)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("rank: %w", err)
	}

	matches := make([]analysis.Match, len(scored))
	for i, sc := range scored {
		reason, overlap := s.explain.Explain(features, themes, sc.Figure, sc.Score)
		if len(overlap) > maxKeyThemes {
			overlap = overlap[:maxKeyThemes]
		}
		matches[i] = analysis.Match{
			Name:           sc.Figure.Name(),
			Category:       sc.Figure.Category(),
			Period:         sc.Figure.Period(),
			Score:          sc.Score,
			Reason:         reason,
			KeyThemes:      overlap,
			Recommendation: sc.Figure.Recommendation(),
		}
	}

	projection := s.project.CorpusPoints()
	if userPoint, ok := s.project.Project(embRes.Embedding); ok {
		projection = append(projection, userPoint)
	}

	elapsed := time.Since(start)
	metrics.AnalysisRequestsTotal.Inc()
	metrics.AnalysisDuration.Observe(elapsed.Seconds())

	s.logger.Info("Analysis completed",
		zap.Int("top_k", topK),
		zap.Int("matches", len(matches)),
		zap.Int("themes", len(themes)),
		zap.Duration("duration", elapsed),
	)

	return analysis.Result{
		Matches:    matches,
		Projection: projection,
		Summary: analysis.Summary{
			Features:      features,
			Themes:        themes,
			EmbeddingNorm: l2Norm(embRes.Embedding),
		},
		ProcessingTimeMS: float64(elapsed.Nanoseconds()) / 1e6,
	}, nil
}

func l2Norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
