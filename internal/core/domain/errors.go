package domain

import "errors"

var (
	ErrAdNotFound = errors.New("advertisement not found")
	// ErrMalformedAd is returned by catalog ingestion for records with a
	// missing id, a missing or non-integer priority, or negative counters.
	ErrMalformedAd  = errors.New("malformed advertisement")
	ErrMissingUser  = errors.New("missing user")
	ErrInvalidRange = errors.New("invalid date range")
)
