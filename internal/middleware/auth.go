// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for identity loading,
// authorization, language selection and request hardening.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/alexedwards/scs/v2"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/i18n"
	"github.com/citygreenhub/greenhub/internal/logging"
	"github.com/citygreenhub/greenhub/internal/metrics"
	"github.com/citygreenhub/greenhub/internal/session"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for request data.
const (
	ContextKeyIdentity ContextKey = "identity"
	ContextKeyLanguage ContextKey = "language"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

// IdentityResolver resolves the identity bound to the session in ctx.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context) (*auth.Identity, error)
}

// LoadIdentity creates middleware that loads the current identity into the
// request context. Anonymous visitors pass through without one; a lookup
// failure is logged and the request continues as anonymous.
func LoadIdentity(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := resolver.CurrentIdentity(r.Context())
			if err != nil {
				slog.ErrorContext(r.Context(), "failed to resolve session identity", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if id == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity retrieves the current identity from the request context.
// Returns nil for anonymous visitors.
func GetIdentity(r *http.Request) *auth.Identity {
	id, _ := r.Context().Value(ContextKeyIdentity).(*auth.Identity)
	return id
}

// RequestPath stores the request path in the context so log records written
// further down the chain carry it.
func RequestPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithRequestPath(r.Context(), r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ErrorPageFunc writes a terminal error response with the given status.
type ErrorPageFunc func(w http.ResponseWriter, r *http.Request, status int)

func plainErrorPage(w http.ResponseWriter, _ *http.Request, status int) {
	http.Error(w, http.StatusText(status), status)
}

// Guard turns authorization failures into HTTP responses:
// ErrUnauthenticated redirects to the login page with the original path in
// "next", ErrForbidden ends the request with 403.
type Guard struct {
	sm        *scs.SessionManager
	metrics   *metrics.Metrics
	errorPage ErrorPageFunc
}

// NewGuard creates a Guard. m may be nil. A nil errorPage writes plain text.
func NewGuard(sm *scs.SessionManager, m *metrics.Metrics, errorPage ErrorPageFunc) *Guard {
	if errorPage == nil {
		errorPage = plainErrorPage
	}
	return &Guard{sm: sm, metrics: m, errorPage: errorPage}
}

// Require creates middleware that enforces policy before the handler runs.
func (g *Guard) Require(policy auth.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := auth.Enforce(policy, GetIdentity(r)); err != nil {
				g.Deny(w, r, err, policy)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Deny writes the response for a guard error. It reports false, writing
// nothing, when err is not a guard error.
func (g *Guard) Deny(w http.ResponseWriter, r *http.Request, err error, policy auth.Policy) bool {
	id := GetIdentity(r)

	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		g.metrics.AuthzDenied("unauthenticated")

		flashKey := "flash.auth_required_action"
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			flashKey = "flash.auth_required_view"
		}
		g.sm.Put(r.Context(), session.KeyFlash, i18n.T(GetLanguage(r), flashKey))
		g.sm.Put(r.Context(), session.KeyFlashType, "warning")

		http.Redirect(w, r, LoginPath+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		return true

	case errors.Is(err, auth.ErrForbidden):
		g.metrics.AuthzDenied("forbidden")

		required := ""
		if s, ok := policy.(fmt.Stringer); ok {
			required = s.String()
		}
		var email string
		var role auth.Role
		if id != nil {
			email, role = id.Email, id.Role
		}
		slog.WarnContext(r.Context(), "access denied",
			"status", http.StatusForbidden,
			"method", r.Method,
			"path", r.URL.Path,
			"user", email,
			"user_role", role,
			"required_roles", required,
			"remote_addr", r.RemoteAddr,
		)

		g.errorPage(w, r, http.StatusForbidden)
		return true
	}

	return false
}
