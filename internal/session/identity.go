// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexedwards/scs/v2"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/store"
)

// UserLookup finds a user by exact email. *store.Queries satisfies it.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
}

// Resolver maps the session attached to a context to an identity.
type Resolver struct {
	sm    *scs.SessionManager
	users UserLookup
}

// NewResolver creates a Resolver.
func NewResolver(sm *scs.SessionManager, users UserLookup) *Resolver {
	return &Resolver{sm: sm, users: users}
}

// CurrentIdentity returns the identity for the session in ctx, or nil for an
// anonymous visitor. A session whose user no longer exists is anonymous.
func (r *Resolver) CurrentIdentity(ctx context.Context) (*auth.Identity, error) {
	email := r.sm.GetString(ctx, KeyEmail)
	if email == "" {
		return nil, nil
	}

	user, err := r.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolving session user: %w", err)
	}

	return &auth.Identity{Email: user.Email, Role: auth.Role(user.Role)}, nil
}

// Establish binds email to the session, renewing the token first.
func (r *Resolver) Establish(ctx context.Context, email string) error {
	if err := r.sm.RenewToken(ctx); err != nil {
		return fmt.Errorf("renewing session token: %w", err)
	}
	r.sm.Put(ctx, KeyEmail, email)
	return nil
}

// Clear unbinds the identity and renews the token. Other values, such as
// the language preference, are kept.
func (r *Resolver) Clear(ctx context.Context) error {
	if err := r.sm.RenewToken(ctx); err != nil {
		return fmt.Errorf("renewing session token: %w", err)
	}
	r.sm.Remove(ctx, KeyEmail)
	return nil
}
