package domain

import "errors"

var (
	// ErrParticipantNotFound signals a missing participant record.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrInvalidRequest signals a malformed search request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrEmbeddingRateLimited signals a locally throttled embedding request.
	ErrEmbeddingRateLimited = errors.New("embedding request rate limited")
	// ErrVectorSearchUnavailable signals that the vector collaborator is unreachable.
	ErrVectorSearchUnavailable = errors.New("vector search unavailable")
	// ErrIndexNotReady signals a search before the first index build completed.
	ErrIndexNotReady = errors.New("search index not ready")
)
