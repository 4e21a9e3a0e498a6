// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/store"
)

// RegisterInput is a registration form submission.
type RegisterInput struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// AccountService handles login and self-registration.
type AccountService struct {
	queries *store.Queries
	now     func() time.Time
}

// NewAccountService creates an AccountService.
func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{
		queries: store.New(db),
		now:     time.Now,
	}
}

// Login checks the credentials and returns the identity to bind to the
// session. An unknown email and a wrong password both yield
// ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (*auth.Identity, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	user, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return &auth.Identity{Email: user.Email, Role: auth.Role(user.Role)}, nil
}

// Register creates a member account. The email is trimmed and lowercased
// before the duplicate check.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*auth.Identity, error) {
	in = RegisterInput{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: strings.TrimSpace(in.Password),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	exists, err := s.queries.UserExists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("checking user: %w", err)
	}
	if exists {
		return nil, ErrDuplicateUser
	}

	user, err := s.queries.CreateUser(ctx, store.CreateUserParams{
		Email:     in.Email,
		Password:  in.Password,
		Role:      string(auth.RoleMember),
		CreatedAt: s.now(),
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return &auth.Identity{Email: user.Email, Role: auth.Role(user.Role)}, nil
}
