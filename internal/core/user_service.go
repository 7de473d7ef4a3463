package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// UserService provides authentication and registration over app_user.
type UserService interface {
	// Authenticate returns the matching user for correct credentials and
	// (nil, nil) for an unknown username or wrong password. It never returns
	// an error for "not found".
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// RegisterUser bcrypt-hashes the password and inserts a new account.
	// A taken username surfaces as *DuplicateUsernameError.
	RegisterUser(ctx context.Context, username, password, fullName, role string) (*User, error)

	// GetByID returns a user by primary key.
	GetByID(ctx context.Context, userID int) (*User, error)
}

type userService struct {
	pool *pgxpool.Pool
}

// NewUserService constructs a UserService backed by PostgreSQL.
func NewUserService(pool *pgxpool.Pool) UserService {
	return &userService{pool: pool}
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u := &User{}
	err := s.pool.QueryRow(ctx, `
		SELECT user_id, username, password_hash, full_name, user_role
		FROM app_user
		WHERE username = $1
		LIMIT 1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	// Stored hashes are bcrypt for registered accounts; seed placeholders are
	// not valid bcrypt and fail the comparison like any wrong password.
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return u, nil
}

func (s *userService) RegisterUser(ctx context.Context, username, password, fullName, role string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer tx.Rollback(ctx)

	u := &User{Username: username, PasswordHash: string(hash), FullName: fullName, Role: role}
	err = tx.QueryRow(ctx, `
		INSERT INTO app_user (username, password_hash, full_name, user_role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id`,
		username, string(hash), fullName, role,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &DuplicateUsernameError{Username: username}
		}
		return nil, classifyWriteError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, userID int) (*User, error) {
	u := &User{}
	err := s.pool.QueryRow(ctx, `
		SELECT user_id, username, password_hash, full_name, user_role
		FROM app_user
		WHERE user_id = $1`,
		userID,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role)
	if err != nil {
		return nil, fmt.Errorf("user id=%d not found: %w", userID, err)
	}
	return u, nil
}
