package dataset

import (
	"fmt"

	"github.com/kailas-cloud/archetype/internal/domain/figure"
)

// figureDTO is the on-disk JSON shape of one dataset entry.
type figureDTO struct {
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Period         string            `json:"period"`
	Texts          []string          `json:"texts"`
	Themes         []string          `json:"themes"`
	WritingStyle   string            `json:"writing_style"`
	Recommendation recommendationDTO `json:"recommendation"`
}

type recommendationDTO struct {
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
	Type  string `json:"type,omitempty"`
}

// toDomain validates the DTO and converts it to a domain profile.
func (d *figureDTO) toDomain() (figure.Profile, error) {
	category, err := figure.ParseCategory(d.Category)
	if err != nil {
		return figure.Profile{}, fmt.Errorf("figure %q: %w", d.Name, err)
	}

	rec := figure.Recommendation{
		Title: d.Recommendation.Title,
		Year:  d.Recommendation.Year,
		Kind:  d.Recommendation.Type,
	}

	profile, err := figure.NewProfile(
		d.Name, category, d.Period, d.Texts, d.Themes, d.WritingStyle, rec,
	)
	if err != nil {
		return figure.Profile{}, err
	}
	return profile, nil
}
