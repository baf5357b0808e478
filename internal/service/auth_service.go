package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/JLSed/ShoeFreak-Seller/internal/auth"
	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/store"
	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Philippine mobile numbers: 09 followed by nine digits.
	contactPattern = regexp.MustCompile(`^09\d{9}$`)
)

// AuthService handles sign-up, sign-in and session management.
type AuthService struct {
	accounts   AccountStore
	sessions   SessionWriter
	jwtSecret  []byte
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(accounts AccountStore, sessions SessionWriter, jwtSecret []byte, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		accounts:   accounts,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		logger:     util.GetLogger(),
	}
}

// SignUpRequest carries a new seller's profile
type SignUpRequest struct {
	FirstName       string `json:"first_name" binding:"required"`
	LastName        string `json:"last_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	ContactNumber   string `json:"contact_number" binding:"required"`
	Address         string `json:"address" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// SignInRequest carries credentials
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Session is the result of a successful sign-in
type Session struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"account"`
}

// SignUp validates the profile, rejects duplicate emails and creates a
// seller account. All accounts created here carry the SELLER role; that
// tag never changes afterwards.
func (s *AuthService) SignUp(ctx context.Context, req *SignUpRequest) (*models.Account, error) {
	ctx, span := util.StartSpan(ctx, "AuthService.SignUp")
	defer span.End()

	if err := validateSignUp(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:            uuid.New().String(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		Role:          models.RoleSeller,
		PasswordHash:  hash,
	}

	if err := s.accounts.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, fmt.Errorf("%s is already registered: %w", req.Email, store.ErrEmailTaken)
		}
		return nil, err
	}

	util.SignUpsTotal.Inc()
	s.logger.Info("Seller account created", zap.String("account_id", account.ID))
	return account, nil
}

// SignIn verifies credentials and opens a session. Note the role is not
// checked here: the seller gate rechecks it on every request and forces
// non-sellers back out.
func (s *AuthService) SignIn(ctx context.Context, req *SignInRequest) (*Session, error) {
	ctx, span := util.StartSpan(ctx, "AuthService.SignIn")
	defer span.End()

	account, err := s.accounts.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.SignInsTotal.WithLabelValues("rejected").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.ComparePassword(req.Password, account.PasswordHash) {
		util.SignInsTotal.WithLabelValues("rejected").Inc()
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	if err := s.sessions.SetSession(ctx, sessionID, account.ID, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	token, err := auth.GenerateSessionToken(sessionID, account.ID, s.sessionTTL, s.jwtSecret)
	if err != nil {
		_ = s.sessions.DeleteSession(ctx, sessionID)
		return nil, err
	}

	util.SignInsTotal.WithLabelValues("ok").Inc()
	s.logger.Info("Signed in", zap.String("account_id", account.ID))
	return &Session{Token: token, Account: account}, nil
}

// SignOut revokes the session record
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteSession(ctx, sessionID)
}

// CurrentAccount loads the signed-in account's profile
func (s *AuthService) CurrentAccount(ctx context.Context, accountID string) (*models.Account, error) {
	return s.accounts.GetAccountByID(ctx, accountID)
}

// UpdateProfile updates mutable profile fields for the signed-in account
func (s *AuthService) UpdateProfile(ctx context.Context, accountID, firstName, lastName, contactNumber, address, photoURL string) (*models.Account, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("first and last name are required: %w", ErrValidation)
	}
	if contactNumber != "" && !contactPattern.MatchString(contactNumber) {
		return nil, fmt.Errorf("invalid contact number: %w", ErrValidation)
	}

	if err := s.accounts.UpdateAccountProfile(ctx, accountID, firstName, lastName, contactNumber, address, photoURL); err != nil {
		return nil, err
	}
	return s.accounts.GetAccountByID(ctx, accountID)
}

func validateSignUp(req *SignUpRequest) error {
	switch {
	case req.FirstName == "" || req.LastName == "":
		return fmt.Errorf("first and last name are required: %w", ErrValidation)
	case !emailPattern.MatchString(req.Email):
		return fmt.Errorf("invalid email address: %w", ErrValidation)
	case !contactPattern.MatchString(req.ContactNumber):
		return fmt.Errorf("invalid contact number: %w", ErrValidation)
	case req.Address == "":
		return fmt.Errorf("address is required: %w", ErrValidation)
	case len(req.Password) < 8:
		return fmt.Errorf("password must be at least 8 characters: %w", ErrValidation)
	case req.Password != req.ConfirmPassword:
		return fmt.Errorf("passwords do not match: %w", ErrValidation)
	}
	return nil
}
