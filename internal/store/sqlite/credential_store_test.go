package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registro-service/internal/domain"
	"registro-service/internal/store"
)

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "registro.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewCredentialStore(db)
	require.NoError(t, s.Init(context.Background()))
	return s
}

func TestPutAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, domain.Credential{Email: "a@x.com", Password: "s3cretpass!!"}))

	cred, err := s.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", cred.Email)
	assert.Equal(t, "s3cretpass!!", cred.Password)
}

func TestPutOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, domain.Credential{Email: "a@x.com", Password: "first"}))
	require.NoError(t, s.Put(ctx, domain.Credential{Email: "a@x.com", Password: "second"}))

	cred, err := s.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "second", cred.Password)
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "b@y.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
