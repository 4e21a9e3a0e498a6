// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/citygreenhub/greenhub/internal/render"
	"github.com/citygreenhub/greenhub/internal/service"
	"github.com/citygreenhub/greenhub/internal/session"
	"github.com/citygreenhub/greenhub/internal/util"
)

// LoginData is the data for the login form.
type LoginData struct {
	Next  string
	Email string
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// RegisterData is the data for the registration form.
type RegisterData struct {
	Email string
}

// AuthHandler handles authentication routes.
type AuthHandler struct {
	renderer *render.Renderer
	accounts *service.AccountService
	resolver *session.Resolver
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(renderer *render.Renderer, accounts *service.AccountService, resolver *session.Resolver) *AuthHandler {
	return &AuthHandler{
		renderer: renderer,
		accounts: accounts,
		resolver: resolver,
	}
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, LoginData{Next: r.URL.Query().Get("next")}, "")
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	var form loginForm
	if !decodeFormOrRedirect(w, r, h.renderer, RouteLogin, "flash.login_failed", &form) {
		return
	}

	identity, err := h.accounts.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			slog.InfoContext(r.Context(), "failed login attempt", "remote_addr", r.RemoteAddr)
			h.renderLogin(w, r, LoginData{Next: next, Email: form.Email}, tr(r, "flash.login_failed"))
			return
		}
		logAndInternalError(w, r, h.renderer, "login failed", "error", err)
		return
	}

	if err := h.resolver.Establish(r.Context(), identity.Email); err != nil {
		logAndInternalError(w, r, h.renderer, "failed to establish session", "error", err)
		return
	}

	slog.InfoContext(r.Context(), "user logged in", "email", identity.Email, "role", identity.Role)
	flashSuccess(w, r, h.renderer, util.SafeRedirectPath(next, RouteRoot), tr(r, "flash.login_ok"))
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, data LoginData, flash string) {
	renderPage(w, r, h.renderer, pageLogin, render.TemplateData{
		Title:     tr(r, "page.login"),
		Data:      data,
		Flash:     flash,
		FlashType: render.FlashDanger,
	})
}

// RegisterForm handles GET /register.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, RegisterData{}, "")
}

// Register handles POST /register. A new member is signed in immediately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form service.RegisterInput
	if !decodeFormOrRedirect(w, r, h.renderer, RouteRegister, "flash.register_invalid", &form) {
		return
	}

	identity, err := h.accounts.Register(r.Context(), form)
	switch {
	case errors.Is(err, service.ErrValidation):
		h.renderRegister(w, r, RegisterData{Email: form.Email}, tr(r, "flash.register_invalid"))
		return
	case errors.Is(err, service.ErrDuplicateUser):
		h.renderRegister(w, r, RegisterData{Email: form.Email}, tr(r, "flash.register_duplicate"))
		return
	case err != nil:
		logAndInternalError(w, r, h.renderer, "registration failed", "error", err)
		return
	}

	if err := h.resolver.Establish(r.Context(), identity.Email); err != nil {
		logAndInternalError(w, r, h.renderer, "failed to establish session", "error", err)
		return
	}

	slog.InfoContext(r.Context(), "user registered", "email", identity.Email)
	flashSuccess(w, r, h.renderer, RouteRoot, tr(r, "flash.register_ok"))
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, r *http.Request, data RegisterData, flash string) {
	renderPage(w, r, h.renderer, pageRegister, render.TemplateData{
		Title:     tr(r, "page.register"),
		Data:      data,
		Flash:     flash,
		FlashType: render.FlashDanger,
	})
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.resolver.Clear(r.Context()); err != nil {
		logAndInternalError(w, r, h.renderer, "failed to clear session", "error", err)
		return
	}

	flashAndRedirect(w, r, h.renderer, RouteRoot, tr(r, "flash.logout"), render.FlashInfo)
}
