// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ajg/form"
	"github.com/go-chi/chi/v5"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/i18n"
	"github.com/citygreenhub/greenhub/internal/middleware"
	"github.com/citygreenhub/greenhub/internal/render"
	"github.com/citygreenhub/greenhub/internal/service"
)

// flashAndRedirect sets a flash message and redirects to the given URL.
// Uses http.StatusSeeOther (303) for POST redirects.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message, messageType string) {
	renderer.SetFlash(r, message, messageType)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashError sets an error flash message and redirects to the given URL.
func flashError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, render.FlashDanger)
}

// flashSuccess sets a success flash message and redirects to the given URL.
func flashSuccess(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, message string) {
	flashAndRedirect(w, r, renderer, url, message, render.FlashSuccess)
}

// tr translates key into the request language.
func tr(r *http.Request, key string, args ...any) string {
	return i18n.T(middleware.GetLanguage(r), key, args...)
}

// decodeFormOrRedirect decodes the urlencoded request body into dst and
// redirects with an error message on failure. Keys without a matching form
// tag are ignored.
// Returns true if decoding succeeded, false if it failed (and redirect was performed).
func decodeFormOrRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirectURL, messageKey string, dst any) bool {
	dec := form.NewDecoder(r.Body)
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(dst); err != nil {
		slog.InfoContext(r.Context(), "rejected form body", "error", err)
		flashError(w, r, renderer, redirectURL, tr(r, messageKey))
		return false
	}
	return true
}

// renderPage renders a page template, answering 500 when rendering fails.
func renderPage(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, name string, data render.TemplateData) {
	renderPageStatus(w, r, renderer, http.StatusOK, name, data)
}

func renderPageStatus(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, status int, name string, data render.TemplateData) {
	if err := renderer.RenderStatus(w, r, status, name, data); err != nil {
		logAndInternalError(w, r, renderer, "failed to render page", "template", name, "error", err)
	}
}

// logAndInternalError logs an error and writes a 500 Internal Server Error page.
func logAndInternalError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, logMsg string, args ...any) {
	slog.ErrorContext(r.Context(), logMsg, args...)
	renderer.ErrorPage(w, r, http.StatusInternalServerError)
}

// handleServiceError answers a failed service call: guard errors go through
// the guard, ErrNotFound renders 404, anything else is logged as a 500.
func handleServiceError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, guard *middleware.Guard, policy auth.Policy, logMsg string, err error) {
	if guard.Deny(w, r, err, policy) {
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		renderer.ErrorPage(w, r, http.StatusNotFound)
		return
	}
	logAndInternalError(w, r, renderer, logMsg, "error", err)
}

// parseIDParam reads the {id} URL parameter. It reports false for anything
// that is not a positive integer.
func parseIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
