// Package sqlite provides a local sqlite-backed credential store for
// development, behind the same interface as the DynamoDB driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"registro-service/internal/domain"
	"registro-service/internal/store"
)

const createCredentialsTable = `
CREATE TABLE IF NOT EXISTS credentials (
	email TEXT PRIMARY KEY,
	password TEXT NOT NULL
);
`

type CredentialStore struct {
	db *sql.DB
}

func NewCredentialStore(db *sql.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

func (s *CredentialStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createCredentialsTable); err != nil {
		return fmt.Errorf("create credentials table: %w", err)
	}
	return nil
}

func (s *CredentialStore) Put(ctx context.Context, cred domain.Credential) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO credentials (email, password)
VALUES (?, ?)
ON CONFLICT(email) DO UPDATE SET password = excluded.password`,
		cred.Email,
		cred.Password,
	)
	if err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (s *CredentialStore) Get(ctx context.Context, email string) (domain.Credential, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT email, password
FROM credentials
WHERE email = ?`,
		email,
	)

	var cred domain.Credential
	if err := row.Scan(&cred.Email, &cred.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Credential{}, store.ErrNotFound
		}
		return domain.Credential{}, fmt.Errorf("scan credential: %w", err)
	}
	return cred, nil
}

var _ store.Store = (*CredentialStore)(nil)
