package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeSessions struct {
	accounts map[string]string
	getErr   error
	deleted  []string
}

func (f *fakeSessions) GetSession(_ context.Context, sessionID string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.accounts[sessionID], nil
}

func (f *fakeSessions) DeleteSession(_ context.Context, sessionID string) error {
	f.deleted = append(f.deleted, sessionID)
	delete(f.accounts, sessionID)
	return nil
}

type fakeRoles struct {
	roles map[string]string
	err   error
}

func (f *fakeRoles) GetAccountRole(_ context.Context, accountID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.roles[accountID], nil
}

func TestCheckSellerSession(t *testing.T) {
	sessions := &fakeSessions{accounts: map[string]string{"sess-1": "acct-1"}}
	roles := &fakeRoles{roles: map[string]string{"acct-1": models.RoleSeller}}
	gate := NewGate(sessions, roles)

	state, accountID := gate.Check(context.Background(), "sess-1")

	assert.Equal(t, StateAuthenticatedSeller, state)
	assert.Equal(t, "acct-1", accountID)
	assert.Empty(t, sessions.deleted)
}

func TestCheckEmptySession(t *testing.T) {
	gate := NewGate(&fakeSessions{}, &fakeRoles{})

	state, accountID := gate.Check(context.Background(), "")

	assert.Equal(t, StateUnauthenticated, state)
	assert.Empty(t, accountID)
}

func TestCheckUnknownSession(t *testing.T) {
	sessions := &fakeSessions{accounts: map[string]string{}}
	gate := NewGate(sessions, &fakeRoles{})

	state, accountID := gate.Check(context.Background(), "sess-gone")

	assert.Equal(t, StateUnauthenticated, state)
	assert.Empty(t, accountID)
	// A missing record is not an error, so nothing to revoke.
	assert.Empty(t, sessions.deleted)
}

func TestCheckNonSellerSignedOut(t *testing.T) {
	sessions := &fakeSessions{accounts: map[string]string{"sess-1": "acct-1"}}
	roles := &fakeRoles{roles: map[string]string{"acct-1": models.RoleCustomer}}
	gate := NewGate(sessions, roles)

	state, accountID := gate.Check(context.Background(), "sess-1")

	assert.Equal(t, StateUnauthenticated, state)
	assert.Empty(t, accountID)
	assert.Equal(t, []string{"sess-1"}, sessions.deleted)

	// The revoked session stays dead on the next check.
	state, _ = gate.Check(context.Background(), "sess-1")
	assert.Equal(t, StateUnauthenticated, state)
}

func TestCheckFailsClosedOnSessionError(t *testing.T) {
	sessions := &fakeSessions{getErr: errors.New("redis down")}
	gate := NewGate(sessions, &fakeRoles{roles: map[string]string{"acct-1": models.RoleSeller}})

	state, accountID := gate.Check(context.Background(), "sess-1")

	assert.Equal(t, StateUnauthenticated, state)
	assert.Empty(t, accountID)
	assert.Equal(t, []string{"sess-1"}, sessions.deleted)
}

func TestCheckFailsClosedOnRoleError(t *testing.T) {
	sessions := &fakeSessions{accounts: map[string]string{"sess-1": "acct-1"}}
	roles := &fakeRoles{err: errors.New("db down")}
	gate := NewGate(sessions, roles)

	state, accountID := gate.Check(context.Background(), "sess-1")

	assert.Equal(t, StateUnauthenticated, state)
	assert.Empty(t, accountID)
	assert.Equal(t, []string{"sess-1"}, sessions.deleted)
}
