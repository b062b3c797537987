package service

import (
	"context"
	"fmt"
	"strings"

	"registro-service/internal/cache"
	"registro-service/internal/domain"
	"registro-service/internal/mail"
	"registro-service/internal/store"
)

const (
	notificationSubject = "Registro Exitoso"
	notificationText    = "Tu contraseña generada automáticamente: %s"
	notificationHTML    = "<p>Tu contraseña generada automáticamente: %s</p>"
)

// RegistrationService issues a generated password for a new email, notifies
// the user, and persists the credential.
type RegistrationService interface {
	Register(ctx context.Context, email string) error
}

type registrationService struct {
	cache  *cache.Cache
	store  store.Store
	sender mail.Sender
}

func NewRegistrationService(c *cache.Cache, s store.Store, sender mail.Sender) RegistrationService {
	return &registrationService{
		cache:  c,
		store:  s,
		sender: sender,
	}
}

// Register issues a password for email. A cache hit means this process has
// already registered the email: the call is an idempotent replay and returns
// immediately without sending or writing. On a miss, the notification must
// be delivered before the credential is persisted; a failed delivery leaves
// the store untouched.
func (s *registrationService) Register(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.ErrEmailRequired
	}

	if _, ok := s.cache.Get(email); ok {
		return nil
	}

	password, err := GeneratePassword()
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}

	s.cache.Put(email, password)

	err = s.sender.Send(ctx, email,
		notificationSubject,
		fmt.Sprintf(notificationText, password),
		fmt.Sprintf(notificationHTML, password),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}

	if err := s.store.Put(ctx, domain.Credential{Email: email, Password: password}); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	return nil
}
