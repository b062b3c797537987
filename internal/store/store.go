package store

import (
	"context"
	"errors"

	"registro-service/internal/domain"
)

// ErrNotFound indicates no credential record exists for the requested email.
// Any other error from a Store is a store-access failure.
var ErrNotFound = errors.New("credential not found")

// Store persists one credential record per email.
type Store interface {
	// Put writes the credential, overwriting any existing record for the email.
	Put(ctx context.Context, cred domain.Credential) error
	// Get returns the credential for email, or ErrNotFound.
	Get(ctx context.Context, email string) (domain.Credential, error)
}
