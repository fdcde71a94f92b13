// Package services contains server-side business logic. This file implements
// UserService, which handles signup and login and issues session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkov/qanda/internal/common"
	"github.com/avolkov/qanda/internal/dbx"
	"github.com/avolkov/qanda/internal/server/auth"
	"github.com/avolkov/qanda/internal/server/models"
	"github.com/avolkov/qanda/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Signup: create a user and mint a session token
// - Login: verify credentials and mint a session token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	codec       *auth.TokenCodec
}

// NewUserService constructs a UserService from repositories, the password
// hasher, and the token codec.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.PasswordHasher, codec *auth.TokenCodec) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		codec:       codec,
	}
}

// Signup creates a new user and returns it along with a fresh session token.
//
// A taken email yields common.ErrorAlreadyExists before any hash is computed.
// The check and the insert run in one transaction; two concurrent signups for
// the same email can still both pass the check, so the database unique
// constraint breaks the tie and the loser gets common.ErrorAlreadyExists from
// the insert.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*models.User, string, error) {
	user := &models.User{Name: name, Email: email}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrorAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking email uniqueness: %w", err)
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		user.PasswordHash = hash

		created, err := repo.Create(ctx, user)
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrorAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		user = created
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return user, token, nil
}

// Login verifies the credentials and, on success, returns the user and a new
// session token. An unknown email and a wrong password both yield
// common.ErrorUnauthorized so callers cannot tell which emails are registered.
// Store, hasher, and codec failures keep their cause so the handler can log it.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", fmt.Errorf("error fetching user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return user, token, nil
}
