package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/lib/pq"
)

// CreateAccount inserts a new account row. Returns ErrEmailTaken when the
// email unique constraint fires.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO users (user_id, first_name, last_name, email, contact_number, address, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := s.db.GetContext(ctx, &account.CreatedAt, query,
		account.ID, account.FirstName, account.LastName, account.Email,
		account.ContactNumber, account.Address, account.Role, account.PasswordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccountByID retrieves an account by its id
func (s *Store) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	err := s.db.GetContext(ctx, &account, "SELECT * FROM users WHERE user_id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByEmail retrieves an account by email
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := s.db.GetContext(ctx, &account, "SELECT * FROM users WHERE email = $1", email)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountRole retrieves only the role tag for an account. Used by the
// seller gate on every session check.
func (s *Store) GetAccountRole(ctx context.Context, id string) (string, error) {
	var role string
	err := s.db.GetContext(ctx, &role, "SELECT role FROM users WHERE user_id = $1", id)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

// UpdateAccountProfile updates mutable profile fields. The role column is
// deliberately not touched here.
func (s *Store) UpdateAccountProfile(ctx context.Context, id, firstName, lastName, contactNumber, address, photoURL string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, contact_number = $3, address = $4, photo_url = $5
		 WHERE user_id = $6`,
		firstName, lastName, contactNumber, address, photoURL, id)
	return err
}
