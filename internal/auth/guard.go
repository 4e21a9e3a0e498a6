// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth holds the authorization model: identities, roles, the
// composable access policies and the news ownership rule.
package auth

import (
	"errors"
	"slices"
	"strings"
)

// Role is a coarse permission level attached to a user.
type Role string

// Known roles.
const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleMember:
		return true
	}
	return false
}

// Identity is the resolved current user. A nil *Identity means anonymous.
type Identity struct {
	Email string
	Role  Role
}

// Is reports whether the identity holds the given role.
func (id *Identity) Is(role Role) bool {
	return id != nil && id.Role == role
}

// Guard errors. Callers translate them into HTTP responses.
var (
	// ErrUnauthenticated means no identity is present.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means an identity is present but lacks the role or ownership.
	ErrForbidden = errors.New("forbidden")
)

// Policy decides whether an identity may proceed.
type Policy interface {
	Check(id *Identity) error
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(id *Identity) error

// Check calls f(id).
func (f PolicyFunc) Check(id *Identity) error { return f(id) }

// RequireAuthenticated rejects anonymous callers.
func RequireAuthenticated() Policy {
	return PolicyFunc(func(id *Identity) error {
		if id == nil {
			return ErrUnauthenticated
		}
		return nil
	})
}

// RolePolicy requires an authenticated identity whose role is in Allowed.
type RolePolicy struct {
	Allowed []Role
}

// Check implements Policy.
func (p RolePolicy) Check(id *Identity) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if !slices.Contains(p.Allowed, id.Role) {
		return ErrForbidden
	}
	return nil
}

// String lists the allowed roles, for log attributes.
func (p RolePolicy) String() string {
	names := make([]string, len(p.Allowed))
	for i, r := range p.Allowed {
		names[i] = string(r)
	}
	return strings.Join(names, ",")
}

// RequireRole returns a RolePolicy for the given roles.
func RequireRole(roles ...Role) RolePolicy {
	return RolePolicy{Allowed: roles}
}

// Shared policies.
var (
	// ManageContent covers the news management listing, news create/edit
	// and the message inbox.
	ManageContent = RequireRole(RoleAdmin, RoleEditor)
	// AdminOnly covers deletion of news and messages.
	AdminOnly = RequireRole(RoleAdmin)
)

// Enforce evaluates policy against id.
func Enforce(policy Policy, id *Identity) error {
	return policy.Check(id)
}

// CanEditNews applies the ownership rule for editing a news item written by
// author. It must be called only after the item is known to exist.
func CanEditNews(id *Identity, author string) error {
	if id == nil {
		return ErrUnauthenticated
	}
	switch id.Role {
	case RoleAdmin:
		return nil
	case RoleEditor:
		if id.Email == author {
			return nil
		}
	}
	return ErrForbidden
}
