// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/citygreenhub/greenhub/internal/middleware"
	"github.com/citygreenhub/greenhub/internal/render"
)

// CSRFFailure returns the handler used when a form submission fails the
// cross-origin check. It renders the 403 page.
func CSRFFailure(renderer *render.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.WarnContext(r.Context(), "CSRF validation failed",
			"reason", middleware.CSRFFailureReason(r),
			"method", r.Method,
			"path", r.URL.Path,
		)
		renderer.ErrorPage(w, r, http.StatusForbidden)
	})
}
