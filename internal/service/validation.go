package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"registro-service/internal/cache"
	"registro-service/internal/domain"
	"registro-service/internal/store"
)

// ErrStoreAccess wraps durable-store failures during validation so the
// boundary can map them to a generic server error.
var ErrStoreAccess = errors.New("store access failed")

// ValidationService checks a submitted password against the stored record.
type ValidationService interface {
	Validate(ctx context.Context, email, password string) (bool, error)
}

type validationService struct {
	cache *cache.Cache
	store store.Store
}

func NewValidationService(c *cache.Cache, s store.Store) ValidationService {
	return &validationService{
		cache: c,
		store: s,
	}
}

// Validate resolves the stored password for email (cache first, durable
// store on miss, filling the cache on a hit) and compares by exact string
// equality. A missing record is ErrUserNotFound; any store failure is
// wrapped in ErrStoreAccess.
func (s *validationService) Validate(ctx context.Context, email, password string) (bool, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return false, domain.ErrCredentialsRequired
	}

	stored, ok := s.cache.Get(email)
	if !ok {
		cred, err := s.store.Get(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return false, domain.ErrUserNotFound
			}
			return false, fmt.Errorf("%w: %w", ErrStoreAccess, err)
		}
		stored = cred.Password
		s.cache.Put(email, stored)
	}

	return password == stored, nil
}
