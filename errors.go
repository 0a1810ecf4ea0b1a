package chatbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrUninitialized is returned when the process-wide app is used before
	// Setup has run.
	ErrUninitialized = errors.New("chatbuf: not initialized")

	// ErrInvalidModel is returned for a model key that does not name one of
	// the configured model tiers.
	ErrInvalidModel = errors.New("chatbuf: invalid model")
)

// DocumentError reports a failed host-buffer operation.
type DocumentError struct {
	Op  string
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Op, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// ProviderError reports a remote completion failure, carrying the message
// text the provider supplied.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("completion: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
