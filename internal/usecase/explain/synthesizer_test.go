package explain

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kailas-cloud/archetype/internal/domain/figure"
	"github.com/kailas-cloud/archetype/internal/domain/textstat"
)

func makeFigure(t *testing.T, name string, cat figure.Category, themes []string, style string) figure.Figure {
	t.Helper()
	p, err := figure.NewProfile(name, cat, "period", []string{"text"}, themes, style, figure.Recommendation{})
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	f, err := figure.New(p, []float32{1})
	if err != nil {
		t.Fatalf("figure.New: %v", err)
	}
	return f
}

func TestExplain_SingleThemeOverlap(t *testing.T) {
	fig := makeFigure(t, "Albert Camus", figure.Philosopher, []string{"existential", "political"}, "")
	s := New()

	reason, overlap := s.Explain(textstat.Features{}, []string{"existential", "nature"}, fig, 0.8)

	if !reflect.DeepEqual(overlap, []string{"existential"}) {
		t.Errorf("unexpected overlap %v", overlap)
	}
	want := "Your writing explores existential themes similar to Albert Camus."
	if reason != want {
		t.Errorf("unexpected reason:\ngot:  %q\nwant: %q", reason, want)
	}
}

func TestExplain_MultiThemeOverlapKeepsFigureOrder(t *testing.T) {
	fig := makeFigure(t, "Simone de Beauvoir", figure.Philosopher,
		[]string{"existential", "political", "social"}, "")
	s := New()

	// User themes in a different order: figure order must win.
	_, overlap := s.Explain(textstat.Features{}, []string{"social", "existential"}, fig, 0.7)

	if !reflect.DeepEqual(overlap, []string{"existential", "social"}) {
		t.Errorf("unexpected overlap %v", overlap)
	}
}

func TestExplain_StyleObservations(t *testing.T) {
	fig := makeFigure(t, "Marcel Proust", figure.Writer, []string{"memory"}, "complex, winding sentences")
	s := New()
	features := textstat.Features{AvgSentenceLength: 28}

	reason, _ := s.Explain(features, []string{"memory"}, fig, 0.7)

	if !strings.Contains(reason, "complex sentence structure") {
		t.Errorf("expected sentence-structure observation in %q", reason)
	}
}

func TestExplain_QuestioningPhilosopher(t *testing.T) {
	fig := makeFigure(t, "René Descartes", figure.Philosopher, nil, "")
	s := New()
	features := textstat.Features{QuestionDensity: 0.5}

	reason, overlap := s.Explain(features, []string{"rational"}, fig, 0.7)

	if len(overlap) != 0 {
		t.Errorf("expected empty overlap, got %v", overlap)
	}
	if !strings.Contains(reason, "questioning nature") {
		t.Errorf("expected questioning observation in %q", reason)
	}
}

func TestExplain_QuestioningNonPhilosopher(t *testing.T) {
	fig := makeFigure(t, "Claude Monet", figure.Artist, nil, "")
	s := New()
	features := textstat.Features{QuestionDensity: 0.5}

	reason, _ := s.Explain(features, nil, fig, 0.7)

	if strings.Contains(reason, "questioning nature") {
		t.Errorf("questioning rule must only fire for philosophers, got %q", reason)
	}
}

func TestExplain_FallbackHedged(t *testing.T) {
	fig := makeFigure(t, "Victor Hugo", figure.Writer, []string{"romantic"}, "")
	s := New()

	tests := []struct {
		score float64
		tier  string
	}{
		{0.9, "strong"},
		{0.65, "moderate"},
		{0.3, "possible"},
	}
	for _, tt := range tests {
		reason, overlap := s.Explain(textstat.Features{}, []string{"nature"}, fig, tt.score)

		if len(overlap) != 0 {
			t.Errorf("score %.2f: expected empty overlap, got %v", tt.score, overlap)
		}
		if !strings.Contains(reason, tt.tier+" alignment") {
			t.Errorf("score %.2f: expected %q tier in %q", tt.score, tt.tier, reason)
		}
		if !strings.Contains(reason, "writer") {
			t.Errorf("fallback must reference the category, got %q", reason)
		}
	}
}

func TestExplain_Deterministic(t *testing.T) {
	fig := makeFigure(t, "Albert Camus", figure.Philosopher,
		[]string{"existential", "human_condition"}, "clear and complex")
	s := New()
	features := textstat.Features{AvgSentenceLength: 25, QuestionDensity: 0.3}
	themes := []string{"existential", "human_condition"}

	r1, o1 := s.Explain(features, themes, fig, 0.71)
	r2, o2 := s.Explain(features, themes, fig, 0.71)

	if r1 != r2 {
		t.Errorf("reason not deterministic:\n%q\n%q", r1, r2)
	}
	if !reflect.DeepEqual(o1, o2) {
		t.Errorf("overlap not deterministic: %v vs %v", o1, o2)
	}
}
