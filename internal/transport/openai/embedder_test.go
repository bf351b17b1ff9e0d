package openai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kailas-cloud/archetype/internal/domain"
)

func TestParseAPIError_RequestErrorWithDetail(t *testing.T) {
	err := parseAPIError(&openai.RequestError{
		HTTPStatusCode: 503,
		Body:           []byte(`{"detail": "model is warming up"}`),
	})

	if !errors.Is(err, domain.ErrEmbeddingUnavailable) {
		t.Fatalf("expected ErrEmbeddingUnavailable, got %v", err)
	}
	want := "embedding API error 503: model is warming up: " + domain.ErrEmbeddingUnavailable.Error()
	if err.Error() != want {
		t.Errorf("unexpected message:\ngot:  %q\nwant: %q", err.Error(), want)
	}
}

func TestParseAPIError_RequestErrorRawBody(t *testing.T) {
	err := parseAPIError(&openai.RequestError{
		HTTPStatusCode: 500,
		Body:           []byte("internal failure"),
	})

	if !errors.Is(err, domain.ErrEmbeddingUnavailable) {
		t.Fatalf("expected ErrEmbeddingUnavailable, got %v", err)
	}
}

func TestParseAPIError_APIError(t *testing.T) {
	err := parseAPIError(&openai.APIError{
		HTTPStatusCode: 429,
		Message:        "rate limit exceeded",
	})

	if !errors.Is(err, domain.ErrEmbeddingUnavailable) {
		t.Fatalf("expected ErrEmbeddingUnavailable, got %v", err)
	}
}

func TestParseAPIError_ContextDeadline(t *testing.T) {
	err := parseAPIError(context.DeadlineExceeded)

	if !errors.Is(err, domain.ErrEmbeddingUnavailable) {
		t.Fatalf("expected ErrEmbeddingUnavailable, got %v", err)
	}
	// Timeouts must stay distinguishable from plain provider failures.
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected wrapped DeadlineExceeded, got %v", err)
	}
}

func TestParseAPIError_Unknown(t *testing.T) {
	err := parseAPIError(errors.New("connection refused"))

	if !errors.Is(err, domain.ErrEmbeddingUnavailable) {
		t.Fatalf("expected ErrEmbeddingUnavailable, got %v", err)
	}
}

func TestExtractDetail(t *testing.T) {
	if got := extractDetail([]byte(`{"detail": "quota exceeded"}`)); got != "quota exceeded" {
		t.Errorf("expected detail, got %q", got)
	}
	if got := extractDetail([]byte(`not json`)); got != "" {
		t.Errorf("expected empty detail for non-JSON body, got %q", got)
	}
	if got := extractDetail([]byte(`{"error": "other shape"}`)); got != "" {
		t.Errorf("expected empty detail for missing field, got %q", got)
	}
}

func TestBatchEmbed_EmptyInput(t *testing.T) {
	e := NewEmbedder(&Config{APIKey: "test", Model: "test-model"})

	result, err := e.BatchEmbed(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Embeddings) != 0 {
		t.Errorf("expected no embeddings, got %d", len(result.Embeddings))
	}
}
