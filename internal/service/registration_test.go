package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registro-service/internal/cache"
	"registro-service/internal/domain"
	"registro-service/internal/store"
)

// --- fakes ---

type fakeStore struct {
	records map[string]string
	putErr  error
	getErr  error
	puts    int
	gets    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]string)}
}

func (f *fakeStore) Put(ctx context.Context, cred domain.Credential) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.records[cred.Email] = cred.Password
	return nil
}

func (f *fakeStore) Get(ctx context.Context, email string) (domain.Credential, error) {
	f.gets++
	if f.getErr != nil {
		return domain.Credential{}, f.getErr
	}
	password, ok := f.records[email]
	if !ok {
		return domain.Credential{}, store.ErrNotFound
	}
	return domain.Credential{Email: email, Password: password}, nil
}

type fakeSender struct {
	sendErr error
	sends   int

	lastTo   string
	lastText string
	lastHTML string
}

func (f *fakeSender) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	f.sends++
	f.lastTo = to
	f.lastText = textBody
	f.lastHTML = htmlBody
	if f.sendErr != nil {
		return f.sendErr
	}
	return nil
}

// --- tests ---

func TestRegisterStoresAndNotifies(t *testing.T) {
	st := newFakeStore()
	sender := &fakeSender{}
	svc := NewRegistrationService(cache.New(), st, sender)

	err := svc.Register(context.Background(), "a@x.com")
	require.NoError(t, err)

	assert.Equal(t, 1, sender.sends)
	assert.Equal(t, "a@x.com", sender.lastTo)
	assert.Equal(t, 1, st.puts)

	stored := st.records["a@x.com"]
	require.Len(t, stored, 12)
	assert.Contains(t, sender.lastText, stored)
	assert.Contains(t, sender.lastHTML, stored)
}

func TestRegisterIdempotentUnderWarmCache(t *testing.T) {
	st := newFakeStore()
	sender := &fakeSender{}
	svc := NewRegistrationService(cache.New(), st, sender)

	require.NoError(t, svc.Register(context.Background(), "a@x.com"))
	first := st.records["a@x.com"]

	require.NoError(t, svc.Register(context.Background(), "a@x.com"))

	assert.Equal(t, 1, sender.sends, "replay must not resend")
	assert.Equal(t, 1, st.puts, "replay must not rewrite")
	assert.Equal(t, first, st.records["a@x.com"], "stored password unchanged")
}

func TestRegisterDistinctEmails(t *testing.T) {
	st := newFakeStore()
	sender := &fakeSender{}
	svc := NewRegistrationService(cache.New(), st, sender)

	require.NoError(t, svc.Register(context.Background(), "a@x.com"))
	require.NoError(t, svc.Register(context.Background(), "b@y.com"))

	assert.Equal(t, 2, sender.sends)
	assert.Equal(t, 2, st.puts)
}

func TestRegisterEmptyEmail(t *testing.T) {
	svc := NewRegistrationService(cache.New(), newFakeStore(), &fakeSender{})

	err := svc.Register(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrEmailRequired)
}

func TestRegisterDeliveryFailureSkipsPersist(t *testing.T) {
	st := newFakeStore()
	sender := &fakeSender{sendErr: errors.New("ses down")}
	svc := NewRegistrationService(cache.New(), st, sender)

	err := svc.Register(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDelivery)
	assert.Equal(t, 0, st.puts, "record must not be persisted when delivery fails")
}

func TestRegisterReplayAfterDeliveryFailure(t *testing.T) {
	// The cache is filled before the send, so a retry for the same email in
	// the same process is treated as a replay: success, no send, no write.
	st := newFakeStore()
	sender := &fakeSender{sendErr: errors.New("ses down")}
	svc := NewRegistrationService(cache.New(), st, sender)

	require.Error(t, svc.Register(context.Background(), "a@x.com"))

	sender.sendErr = nil
	require.NoError(t, svc.Register(context.Background(), "a@x.com"))
	assert.Equal(t, 1, sender.sends)
	assert.Equal(t, 0, st.puts)
}

func TestRegisterStoreFailure(t *testing.T) {
	st := newFakeStore()
	st.putErr = errors.New("table missing")
	svc := NewRegistrationService(cache.New(), st, &fakeSender{})

	err := svc.Register(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.False(t, domain.IsClientError(err))
	assert.True(t, strings.Contains(err.Error(), "persist credential"))
}
