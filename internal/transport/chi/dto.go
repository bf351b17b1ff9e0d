package chi

import (
	"github.com/kailas-cloud/archetype/internal/domain/analysis"
	"github.com/kailas-cloud/archetype/internal/domain/figure"
	"github.com/kailas-cloud/archetype/internal/domain/textstat"
	"github.com/kailas-cloud/archetype/internal/usecase/health"
)

// Error codes returned in the error response body.
const (
	codeBadRequest           = "bad_request"
	codeValidationFailed     = "validation_failed"
	codeEmbeddingUnavailable = "embedding_unavailable"
	codeInternalError        = "internal_error"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AnalyzeRequest is the POST /analyze body.
type AnalyzeRequest struct {
	Text string `json:"text"`
	TopK *int   `json:"top_k,omitempty"`
}

// AnalyzeResponse is the POST /analyze body on success.
type AnalyzeResponse struct {
	Matches          []Match     `json:"matches"`
	Projection       []Point     `json:"projection"`
	UserSummary      UserSummary `json:"user_summary"`
	ProcessingTimeMS float64     `json:"processing_time_ms"`
}

// Match is one ranked figure in the response.
type Match struct {
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Period         string          `json:"period"`
	Score          float64         `json:"score"`
	Reason         string          `json:"reason"`
	KeyThemes      []string        `json:"key_themes"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

// Recommendation is a starting-point work for a matched figure.
type Recommendation struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	Type  string `json:"type"`
}

// Point is a 2D projection coordinate.
type Point struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// UserSummary describes the submitted text.
type UserSummary struct {
	Features      textstat.Features `json:"features"`
	Themes        []string          `json:"themes"`
	EmbeddingNorm float64           `json:"embedding_norm"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status     string            `json:"status"`
	Checks     map[string]string `json:"checks"`
	CorpusSize int               `json:"corpus_size"`
	Version    string            `json:"version"`
}

func analyzeResponseFrom(result analysis.Result) AnalyzeResponse {
	matches := make([]Match, len(result.Matches))
	for i, m := range result.Matches {
		matches[i] = matchFrom(m)
	}

	points := make([]Point, len(result.Projection))
	for i, p := range result.Projection {
		points[i] = Point{Label: p.Label, X: p.X, Y: p.Y}
	}

	return AnalyzeResponse{
		Matches:    matches,
		Projection: points,
		UserSummary: UserSummary{
			Features:      result.Summary.Features,
			Themes:        result.Summary.Themes,
			EmbeddingNorm: result.Summary.EmbeddingNorm,
		},
		ProcessingTimeMS: result.ProcessingTimeMS,
	}
}

func matchFrom(m analysis.Match) Match {
	out := Match{
		Name:      m.Name,
		Category:  string(m.Category),
		Period:    m.Period,
		Score:     m.Score,
		Reason:    m.Reason,
		KeyThemes: m.KeyThemes,
	}
	if m.Recommendation != (figure.Recommendation{}) {
		out.Recommendation = &Recommendation{
			Title: m.Recommendation.Title,
			Year:  m.Recommendation.Year,
			Type:  m.Recommendation.Kind,
		}
	}
	return out
}

func healthResponseFrom(report health.Report, version string) HealthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{
		Status:     string(report.Status),
		Checks:     checks,
		CorpusSize: report.CorpusSize,
		Version:    version,
	}
}
