package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password. Callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPasswordMismatch      = errors.New("password confirmation does not match")
	ErrWeakPassword          = errors.New("password must be at least 8 characters")
	ErrIncompleteIntegration = errors.New("shop domain and access token must be provided together")
)

// IntegrationUnreachableError wraps the connectivity failure from the
// live credential check so handlers can map it to a 400.
type IntegrationUnreachableError struct {
	Err error
}

func (e *IntegrationUnreachableError) Error() string {
	return "shopify integration unreachable: " + e.Err.Error()
}

func (e *IntegrationUnreachableError) Unwrap() error { return e.Err }
