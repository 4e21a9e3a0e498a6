// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/citygreenhub/greenhub/internal/i18n"
	"github.com/citygreenhub/greenhub/internal/session"
)

// Language creates middleware that selects the interface language.
// Priority order:
// 1. Query parameter ?lang=XX (explicit switch, remembered in the session)
// 2. Language stored in the session
// 3. Accept-Language header
// 4. Default language
func Language(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			lang := ""

			if q := strings.ToLower(r.URL.Query().Get("lang")); q != "" && i18n.IsSupported(q) {
				sm.Put(ctx, session.KeyLang, q)
				lang = q
			}

			if lang == "" {
				if stored := sm.GetString(ctx, session.KeyLang); i18n.IsSupported(stored) {
					lang = stored
				}
			}

			if lang == "" {
				if accept := r.Header.Get("Accept-Language"); accept != "" {
					lang = i18n.MatchLanguage(accept)
				} else {
					lang = i18n.GetDefaultLanguage()
				}
			}

			next.ServeHTTP(w, r.WithContext(WithLanguage(ctx, lang)))
		})
	}
}

// WithLanguage returns a copy of ctx carrying lang.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ContextKeyLanguage, lang)
}

// GetLanguage retrieves the current language code from the request context,
// falling back to the default language.
func GetLanguage(r *http.Request) string {
	if lang, ok := r.Context().Value(ContextKeyLanguage).(string); ok && lang != "" {
		return lang
	}
	return i18n.GetDefaultLanguage()
}
