package verifykit

import "errors"

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned by New when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingDomain is returned by New when no domain is provided.
	ErrMissingDomain = errors.New("domain is required")
)
