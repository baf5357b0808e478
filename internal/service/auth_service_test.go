package service

import (
	"context"
	"testing"
	"time"

	"github.com/JLSed/ShoeFreak-Seller/internal/auth"
	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	byID    map[string]*models.Account
	byEmail map[string]*models.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		byID:    make(map[string]*models.Account),
		byEmail: make(map[string]*models.Account),
	}
}

func (f *fakeAccounts) CreateAccount(_ context.Context, account *models.Account) error {
	if _, ok := f.byEmail[account.Email]; ok {
		return store.ErrEmailTaken
	}
	f.byID[account.ID] = account
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccounts) GetAccountByID(_ context.Context, id string) (*models.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccounts) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccounts) UpdateAccountProfile(_ context.Context, id, firstName, lastName, contactNumber, address, photoURL string) error {
	a, ok := f.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	a.FirstName = firstName
	a.LastName = lastName
	a.ContactNumber = contactNumber
	a.Address = address
	a.PhotoURL = photoURL
	return nil
}

type fakeSessionWriter struct {
	sessions map[string]string
}

func newFakeSessionWriter() *fakeSessionWriter {
	return &fakeSessionWriter{sessions: make(map[string]string)}
}

func (f *fakeSessionWriter) SetSession(_ context.Context, sessionID, accountID string, _ time.Duration) error {
	f.sessions[sessionID] = accountID
	return nil
}

func (f *fakeSessionWriter) DeleteSession(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func validSignUp() *SignUpRequest {
	return &SignUpRequest{
		FirstName:       "Juan",
		LastName:        "Dela Cruz",
		Email:           "juan@example.com",
		ContactNumber:   "09171234567",
		Address:         "Quezon City",
		Password:        "sneakers123",
		ConfirmPassword: "sneakers123",
	}
}

func newAuthService(accounts *fakeAccounts, sessions *fakeSessionWriter) *AuthService {
	return NewAuthService(accounts, sessions, []byte("test-secret"), time.Hour)
}

func TestSignUp(t *testing.T) {
	accounts := newFakeAccounts()
	svc := newAuthService(accounts, newFakeSessionWriter())

	account, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	assert.Equal(t, models.RoleSeller, account.Role)
	assert.NotEmpty(t, account.ID)
	assert.NotEqual(t, "sneakers123", account.PasswordHash)
}

func TestSignUpValidation(t *testing.T) {
	svc := newAuthService(newFakeAccounts(), newFakeSessionWriter())

	cases := []struct {
		name   string
		mutate func(*SignUpRequest)
	}{
		{"missing first name", func(r *SignUpRequest) { r.FirstName = "" }},
		{"bad email", func(r *SignUpRequest) { r.Email = "not-an-email" }},
		{"bad contact prefix", func(r *SignUpRequest) { r.ContactNumber = "08171234567" }},
		{"contact too short", func(r *SignUpRequest) { r.ContactNumber = "0917123456" }},
		{"missing address", func(r *SignUpRequest) { r.Address = "" }},
		{"short password", func(r *SignUpRequest) { r.Password = "short"; r.ConfirmPassword = "short" }},
		{"password mismatch", func(r *SignUpRequest) { r.ConfirmPassword = "different1" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignUp()
			tc.mutate(req)
			_, err := svc.SignUp(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc := newAuthService(newFakeAccounts(), newFakeSessionWriter())

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), validSignUp())
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestSignIn(t *testing.T) {
	accounts := newFakeAccounts()
	sessions := newFakeSessionWriter()
	svc := newAuthService(accounts, sessions)

	account, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	session, err := svc.SignIn(context.Background(), &SignInRequest{
		Email:    "juan@example.com",
		Password: "sneakers123",
	})
	require.NoError(t, err)
	assert.Equal(t, account.ID, session.Account.ID)

	claims, err := auth.ParseSessionToken(session.Token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, account.ID, sessions.sessions[claims.SessionID])
}

func TestSignInBadCredentials(t *testing.T) {
	svc := newAuthService(newFakeAccounts(), newFakeSessionWriter())

	_, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), &SignInRequest{
		Email:    "juan@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), &SignInRequest{
		Email:    "nobody@example.com",
		Password: "sneakers123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOut(t *testing.T) {
	sessions := newFakeSessionWriter()
	svc := newAuthService(newFakeAccounts(), sessions)
	sessions.sessions["sess-1"] = "acct-1"

	require.NoError(t, svc.SignOut(context.Background(), "sess-1"))
	assert.Empty(t, sessions.sessions)
}

func TestUpdateProfile(t *testing.T) {
	accounts := newFakeAccounts()
	svc := newAuthService(accounts, newFakeSessionWriter())

	account, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), account.ID, "Juana", "Dela Cruz", "09981234567", "Makati", "")
	require.NoError(t, err)
	assert.Equal(t, "Juana", updated.FirstName)
	assert.Equal(t, "09981234567", updated.ContactNumber)
	// The role tag never changes through profile updates.
	assert.Equal(t, models.RoleSeller, updated.Role)

	_, err = svc.UpdateProfile(context.Background(), account.ID, "", "Dela Cruz", "", "", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateProfile(context.Background(), account.ID, "Juana", "Dela Cruz", "12345", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}
