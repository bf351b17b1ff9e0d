// Package figure holds the cultural figure value objects owned by the corpus index.
package figure

import (
	"fmt"
)

// Category is the closed set of figure categories.
type Category string

const (
	// Philosopher category.
	Philosopher Category = "philosopher"
	// Writer category.
	Writer Category = "writer"
	// Artist category.
	Artist Category = "artist"
	// Scientist category.
	Scientist Category = "scientist"
)

// ParseCategory validates a raw category string.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Philosopher, Writer, Artist, Scientist:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// Recommendation is a suggested work for a matched figure.
type Recommendation struct {
	Title string
	Year  int    // 0 = unknown
	Kind  string // book, essay, painting, ... (free-form, may be empty)
}

// Profile is a dataset entry before embedding: figure metadata plus
// representative texts.
type Profile struct {
	name           string
	category       Category
	period         string
	texts          []string
	themes         []string
	style          string
	recommendation Recommendation
}

// NewProfile validates and creates a dataset profile.
// A profile must have a name and at least one representative text;
// more than maxTexts texts is rejected to keep aggregates comparable.
func NewProfile(
	name string, category Category, period string,
	texts, themes []string, style string, rec Recommendation,
) (Profile, error) {
	const maxTexts = 10

	if name == "" {
		return Profile{}, fmt.Errorf("figure name is required")
	}
	if len(texts) == 0 {
		return Profile{}, fmt.Errorf("figure %q has no representative texts", name)
	}
	if len(texts) > maxTexts {
		return Profile{}, fmt.Errorf("figure %q has %d representative texts, max %d", name, len(texts), maxTexts)
	}
	for i, t := range texts {
		if t == "" {
			return Profile{}, fmt.Errorf("figure %q has empty representative text [%d]", name, i)
		}
	}

	return Profile{
		name:           name,
		category:       category,
		period:         period,
		texts:          texts,
		themes:         themes,
		style:          style,
		recommendation: rec,
	}, nil
}

// Name returns the figure name.
func (p *Profile) Name() string { return p.name }

// Category returns the figure category.
func (p *Profile) Category() Category { return p.category }

// Period returns the period label.
func (p *Profile) Period() string { return p.period }

// Texts returns the representative texts. Read-only.
func (p *Profile) Texts() []string { return p.texts }

// Themes returns the theme tags. Read-only.
func (p *Profile) Themes() []string { return p.themes }

// Style returns the free-form writing style description.
func (p *Profile) Style() string { return p.style }

// Recommendation returns the recommended work.
func (p *Profile) Recommendation() Recommendation { return p.recommendation }

// Figure is an indexed cultural figure: profile metadata plus the aggregate
// embedding computed at corpus build time. Immutable after the build.
type Figure struct {
	profile   Profile
	embedding []float32
}

// New creates an indexed figure from a profile and its aggregate embedding.
func New(profile Profile, embedding []float32) (Figure, error) {
	if len(embedding) == 0 {
		return Figure{}, fmt.Errorf("figure %q has an empty aggregate embedding", profile.Name())
	}
	return Figure{profile: profile, embedding: embedding}, nil
}

// Name returns the figure name.
func (f *Figure) Name() string { return f.profile.name }

// Category returns the figure category.
func (f *Figure) Category() Category { return f.profile.category }

// Period returns the period label.
func (f *Figure) Period() string { return f.profile.period }

// Themes returns the theme tags. Read-only.
func (f *Figure) Themes() []string { return f.profile.themes }

// Style returns the free-form writing style description.
func (f *Figure) Style() string { return f.profile.style }

// Recommendation returns the recommended work.
func (f *Figure) Recommendation() Recommendation { return f.profile.recommendation }

// Embedding returns the aggregate embedding. Read-only.
func (f *Figure) Embedding() []float32 { return f.embedding }
