package service

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the ingestion paths.
var (
	// ErrMalformedInput: the webhook body is not JSON or carries no incident.
	ErrMalformedInput = errors.New("malformed input")
	// ErrFetchFailure: the feed was unreachable, unparseable or empty. The
	// poll cycle is skipped.
	ErrFetchFailure = errors.New("feed fetch failure")
	// ErrPersistence: the log store could not be written. Not retried.
	ErrPersistence = errors.New("persistence failure")

	ErrFeedEmpty = fmt.Errorf("%w: feed has no entries", ErrFetchFailure)
)
