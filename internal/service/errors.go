package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-api-hub/internal/store"
)

var (
	// ErrAuthenticationRequired is returned when an operation needs a caller
	// identity and none was supplied.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrInvalidToken is returned for malformed credentials and bad signatures.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenRevoked is returned by validation when the signature is valid
	// but no active ledger record matches the token.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrTokenNotActive is returned by rotation when the old token is no
	// longer active, including when a concurrent rotation won.
	ErrTokenNotActive = errors.New("token is not active")

	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrConflict         = errors.New("conflict")

	// ErrUnavailable is retryable and never an authoritative negative result.
	ErrUnavailable = errors.New("service unavailable")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// fromStore translates repository errors into the service vocabulary.
// Authoritative results are returned as bare sentinels so nothing about the
// storage leaks to callers; other failures keep their cause.
func fromStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrPermissionDenied):
		return ErrPermissionDenied
	case errors.Is(err, store.ErrAuthenticationRequired):
		return ErrAuthenticationRequired
	case errors.Is(err, store.ErrInvalidField), errors.Is(err, store.ErrPageOutOfRange):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
