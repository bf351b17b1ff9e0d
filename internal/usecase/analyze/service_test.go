package analyze

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/archetype/internal/domain"
	"github.com/kailas-cloud/archetype/internal/domain/analysis"
	"github.com/kailas-cloud/archetype/internal/domain/figure"
	"github.com/kailas-cloud/archetype/internal/domain/textstat"
	"github.com/kailas-cloud/archetype/internal/usecase/rank"
)

type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
	calls  int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	m.calls++
	return m.result, m.err
}

type mockRanker struct {
	scored []rank.Scored
	err    error
}

func (m *mockRanker) Rank(_ []float32, topK int) ([]rank.Scored, error) {
	if m.err != nil {
		return nil, m.err
	}
	if topK > len(m.scored) {
		topK = len(m.scored)
	}
	return m.scored[:topK], nil
}

type mockExplainer struct {
	reason  string
	overlap []string
}

func (m *mockExplainer) Explain(
	_ textstat.Features, _ []string, _ figure.Figure, _ float64,
) (string, []string) {
	return m.reason, m.overlap
}

type mockProjector struct {
	points    []analysis.Point
	userPoint analysis.Point
	ok        bool
}

func (m *mockProjector) CorpusPoints() []analysis.Point {
	out := make([]analysis.Point, len(m.points))
	copy(out, m.points)
	return out
}

func (m *mockProjector) Project(_ []float32) (analysis.Point, bool) {
	return m.userPoint, m.ok
}

func makeFigure(t *testing.T, name string, cat figure.Category) figure.Figure {
	t.Helper()
	p, err := figure.NewProfile(name, cat, "19th century", []string{"text"},
		[]string{"existential"}, "", figure.Recommendation{Title: "Book", Year: 1942, Kind: "novel"})
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	f, err := figure.New(p, []float32{1, 0})
	if err != nil {
		t.Fatalf("figure.New: %v", err)
	}
	return f
}

func newService(emb *mockEmbedder, ranker *mockRanker, exp *mockExplainer, proj *mockProjector) *Service {
	return New(emb, ranker, exp, proj, zap.NewNop())
}

func TestAnalyze_Success(t *testing.T) {
	fig := makeFigure(t, "Albert Camus", figure.Philosopher)
	emb := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{3, 4}}}
	ranker := &mockRanker{scored: []rank.Scored{{Figure: fig, Score: 0.8}}}
	exp := &mockExplainer{reason: "Your writing explores existential themes.", overlap: []string{"existential"}}
	proj := &mockProjector{
		points:    []analysis.Point{{Label: "Albert Camus", X: 1, Y: 2}},
		userPoint: analysis.Point{Label: analysis.UserLabel, X: 0.5, Y: 0.5},
		ok:        true,
	}
	s := newService(emb, ranker, exp, proj)

	result, err := s.Analyze(context.Background(), "Why do we exist? The absurd surrounds us.", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matches))
	}
	m := result.Matches[0]
	if m.Name != "Albert Camus" || m.Category != figure.Philosopher || m.Score != 0.8 {
		t.Errorf("unexpected match %+v", m)
	}
	if m.Reason != exp.reason {
		t.Errorf("reason = %q, want %q", m.Reason, exp.reason)
	}
	if !reflect.DeepEqual(m.KeyThemes, []string{"existential"}) {
		t.Errorf("key themes = %v", m.KeyThemes)
	}
	if m.Recommendation.Title != "Book" {
		t.Errorf("recommendation not carried: %+v", m.Recommendation)
	}

	// Corpus points first, user point last.
	if len(result.Projection) != 2 {
		t.Fatalf("expected 2 projection points, got %d", len(result.Projection))
	}
	if result.Projection[1].Label != analysis.UserLabel {
		t.Errorf("last point label = %q, want %q", result.Projection[1].Label, analysis.UserLabel)
	}

	// ||(3,4)|| = 5.
	if math.Abs(result.Summary.EmbeddingNorm-5) > 1e-9 {
		t.Errorf("embedding norm = %f, want 5", result.Summary.EmbeddingNorm)
	}
	if result.Summary.Features.WordCount == 0 {
		t.Error("expected extracted features in summary")
	}
	if result.ProcessingTimeMS < 0 {
		t.Errorf("negative processing time %f", result.ProcessingTimeMS)
	}
}

func TestAnalyze_InvalidTopK(t *testing.T) {
	s := newService(&mockEmbedder{}, &mockRanker{}, &mockExplainer{}, &mockProjector{})

	for _, k := range []int{0, -5} {
		_, err := s.Analyze(context.Background(), "some text", k)
		if !errors.Is(err, domain.ErrInvalidTopK) {
			t.Errorf("topK=%d: expected ErrInvalidTopK, got %v", k, err)
		}
	}
}

func TestAnalyze_EmbedFailureNoPartialResult(t *testing.T) {
	emb := &mockEmbedder{err: domain.ErrEmbeddingUnavailable}
	s := newService(emb, &mockRanker{}, &mockExplainer{}, &mockProjector{})

	result, err := s.Analyze(context.Background(), "some text", 3)
	if !errors.Is(err, domain.ErrEmbeddingUnavailable) {
		t.Fatalf("expected ErrEmbeddingUnavailable, got %v", err)
	}
	if !reflect.DeepEqual(result, analysis.Result{}) {
		t.Errorf("expected zero result on embed failure, got %+v", result)
	}
}

func TestAnalyze_DegradedProjection(t *testing.T) {
	fig := makeFigure(t, "Victor Hugo", figure.Writer)
	emb := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1, 0}}}
	ranker := &mockRanker{scored: []rank.Scored{{Figure: fig, Score: 0.5}}}
	proj := &mockProjector{ok: false}
	s := newService(emb, ranker, &mockExplainer{reason: "r"}, proj)

	result, err := s.Analyze(context.Background(), "some text", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Projection) != 0 {
		t.Errorf("expected empty projection, got %v", result.Projection)
	}
	if len(result.Matches) != 1 {
		t.Errorf("matches must survive a degraded projection, got %d", len(result.Matches))
	}
}

func TestAnalyze_CapsKeyThemes(t *testing.T) {
	fig := makeFigure(t, "Simone de Beauvoir", figure.Philosopher)
	emb := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1, 0}}}
	ranker := &mockRanker{scored: []rank.Scored{{Figure: fig, Score: 0.6}}}
	exp := &mockExplainer{
		reason:  "r",
		overlap: []string{"existential", "political", "social", "human_condition"},
	}
	s := newService(emb, ranker, exp, &mockProjector{})

	result, err := s.Analyze(context.Background(), "some text", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"existential", "political", "social"}
	if !reflect.DeepEqual(result.Matches[0].KeyThemes, want) {
		t.Errorf("key themes = %v, want %v", result.Matches[0].KeyThemes, want)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	fig := makeFigure(t, "Albert Camus", figure.Philosopher)
	emb := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{0.6, 0.8}}}
	ranker := &mockRanker{scored: []rank.Scored{{Figure: fig, Score: 0.73}}}
	exp := &mockExplainer{reason: "stable reason", overlap: []string{"existential"}}
	proj := &mockProjector{
		points:    []analysis.Point{{Label: "Albert Camus", X: 1, Y: 1}},
		userPoint: analysis.Point{Label: analysis.UserLabel, X: 2, Y: 2},
		ok:        true,
	}
	s := newService(emb, ranker, exp, proj)

	text := "Why is there something rather than nothing? I keep returning to this question."
	first, err := s.Analyze(context.Background(), text, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Analyze(context.Background(), text, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Matches, second.Matches) {
		t.Error("matches differ between identical requests")
	}
	if !reflect.DeepEqual(first.Projection, second.Projection) {
		t.Error("projection differs between identical requests")
	}
	if !reflect.DeepEqual(first.Summary, second.Summary) {
		t.Error("summary differs between identical requests")
	}
}
