package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shiftdesk/backend/internal/infrastructure/database"
	"github.com/shiftdesk/backend/pkg/auth"
	"github.com/shiftdesk/backend/pkg/constants"
	"github.com/shiftdesk/backend/pkg/query"
)

// AuthService is the keyed credential lookup over the reserved Users
// table. It never touches the schema engine, and only password digests
// are stored or compared. The minimum password length is the UI layer's
// check (auth.CheckLength), run before Register is called.
type AuthService struct {
	opener database.Opener
}

// NewAuthService creates a new AuthService
func NewAuthService(opener database.Opener) *AuthService {
	return &AuthService{opener: opener}
}

// UserExists checks whether a username is already registered
func (s *AuthService) UserExists(ctx context.Context, username string) (bool, error) {
	db, err := s.opener.Open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	return s.userExists(ctx, db, username)
}

func (s *AuthService) userExists(ctx context.Context, db *sql.DB, username string) (bool, error) {
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?",
		query.Quote(constants.TableUsers), query.Quote(constants.FieldUsername))

	var count int
	if err := db.QueryRowContext(ctx, q, username).Scan(&count); err != nil {
		return false, fmt.Errorf("checking user existence: %w", err)
	}
	return count > 0, nil
}

// Register stores a new username with the digest of its password. Returns
// false when the username is already taken.
func (s *AuthService) Register(ctx context.Context, username, password string) (bool, error) {
	db, err := s.opener.Open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	exists, err := s.userExists(ctx, db, username)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hashing password: %w", err)
	}

	q := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)",
		query.Quote(constants.TableUsers),
		query.Quote(constants.FieldUsername),
		query.Quote(constants.FieldPasswordHash))

	res, err := db.ExecContext(ctx, q, username, hash)
	if err != nil {
		return false, fmt.Errorf("registering user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Authenticate compares the password's digest against the stored one.
// An unknown username is a plain false, not an error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	db, err := s.opener.Open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		query.Quote(constants.FieldPasswordHash),
		query.Quote(constants.TableUsers),
		query.Quote(constants.FieldUsername))

	var stored string
	err = db.QueryRowContext(ctx, q, username).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading credentials: %w", err)
	}

	return auth.VerifyPassword(password, stored), nil
}
