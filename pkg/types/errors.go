package types

import (
	"errors"
	"fmt"
)

// Error kinds returned by the signing engine. Callers match them with
// errors.Is; the wrapped message carries the failing detail.
var (
	// ErrCredentialFormat indicates a malformed L1 or L2 private key string.
	ErrCredentialFormat = errors.New("credential format error")

	// ErrConfigFormat indicates a malformed chain ID or class hash in the
	// system configuration.
	ErrConfigFormat = errors.New("configuration format error")

	// ErrProtocol indicates a selector or address computation failure.
	ErrProtocol = errors.New("protocol error")

	// ErrSigning indicates a typed-data encoding failure (missing type or
	// field, bad value format) or an underlying curve signature failure.
	ErrSigning = errors.New("signing error")

	// ErrAccountState indicates an operation that requires an initialized
	// account was attempted without one.
	ErrAccountState = errors.New("account state error")
)

// APIError is a non-2xx response from the Paradex gateway.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}
