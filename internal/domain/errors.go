package domain

import "errors"

// Sentinel errors shared across layers. Transport maps them to HTTP statuses.
var (
	// ErrInvalidTopK signals a non-positive top_k.
	ErrInvalidTopK = errors.New("top_k must be positive")
	// ErrEmbeddingUnavailable signals an unreachable or failing embedding provider.
	ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")
	// ErrCorpusLoad signals a malformed dataset or a failed corpus build. Fatal at startup.
	ErrCorpusLoad = errors.New("corpus load failed")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrCorpusEmpty signals an empty corpus where at least one entry is required.
	ErrCorpusEmpty = errors.New("corpus is empty")
)
