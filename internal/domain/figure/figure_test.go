package figure

import (
	"strings"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, s := range []string{"philosopher", "writer", "artist", "scientist"} {
		c, err := ParseCategory(s)
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", s, err)
		}
		if string(c) != s {
			t.Errorf("expected %q, got %q", s, c)
		}
	}

	if _, err := ParseCategory("poet"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestNewProfile_Valid(t *testing.T) {
	p, err := NewProfile(
		"Albert Camus", Philosopher, "20th century",
		[]string{"text one", "text two", "text three"},
		[]string{"existential", "absurd"},
		"clear, direct prose",
		Recommendation{Title: "The Myth of Sisyphus", Year: 1942, Kind: "essay"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "Albert Camus" {
		t.Errorf("unexpected name %q", p.Name())
	}
	if len(p.Texts()) != 3 {
		t.Errorf("expected 3 texts, got %d", len(p.Texts()))
	}
	if p.Recommendation().Year != 1942 {
		t.Errorf("unexpected recommendation year %d", p.Recommendation().Year)
	}
}

func TestNewProfile_NoTexts(t *testing.T) {
	_, err := NewProfile("Someone", Writer, "19th century", nil, nil, "", Recommendation{})
	if err == nil {
		t.Fatal("expected error for zero representative texts")
	}
	if !strings.Contains(err.Error(), "no representative texts") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewProfile_TooManyTexts(t *testing.T) {
	texts := make([]string, 11)
	for i := range texts {
		texts[i] = "t"
	}
	_, err := NewProfile("Someone", Writer, "19th century", texts, nil, "", Recommendation{})
	if err == nil {
		t.Fatal("expected error for more than 10 texts")
	}
}

func TestNewProfile_EmptyName(t *testing.T) {
	_, err := NewProfile("", Writer, "", []string{"t"}, nil, "", Recommendation{})
	if err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestNew_EmptyEmbedding(t *testing.T) {
	p, err := NewProfile("Someone", Writer, "", []string{"t"}, nil, "", Recommendation{})
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	if _, err := New(p, nil); err == nil {
		t.Fatal("expected error for empty aggregate embedding")
	}
	if _, err := New(p, []float32{0.1, 0.2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
