// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/citygreenhub/greenhub/internal/session"
)

func TestLanguage(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		stored     string
		acceptLang string
		want       string
	}{
		{"default", "/", "", "", "ru"},
		{"query switch", "/?lang=en", "", "", "en"},
		{"query is case insensitive", "/?lang=EN", "", "", "en"},
		{"unsupported query ignored", "/?lang=de", "", "", "ru"},
		{"query beats session", "/?lang=ru", "en", "", "ru"},
		{"session", "/about", "en", "", "en"},
		{"stale session value ignored", "/about", "fr", "", "ru"},
		{"session beats header", "/", "ru", "en-US,en;q=0.9", "ru"},
		{"accept language", "/", "", "en-GB,en;q=0.8", "en"},
		{"unsupported accept language", "/", "", "fr-FR", "ru"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := scs.New()

			var got string
			inner := Language(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = GetLanguage(r)
			}))
			seed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.stored != "" {
					sm.Put(r.Context(), session.KeyLang, tt.stored)
				}
				inner.ServeHTTP(w, r)
			})

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.acceptLang != "" {
				req.Header.Set("Accept-Language", tt.acceptLang)
			}
			sm.LoadAndSave(seed).ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("GetLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLanguage_SwitchIsRemembered(t *testing.T) {
	sm := scs.New()

	var remembered string
	handler := sm.LoadAndSave(Language(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remembered = sm.GetString(r.Context(), session.KeyLang)
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/news?lang=en", nil))

	if remembered != "en" {
		t.Errorf("session language = %q, want en", remembered)
	}
}

func TestGetLanguage_Fallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetLanguage(req); got != "ru" {
		t.Errorf("GetLanguage() = %q, want ru", got)
	}

	req = req.WithContext(WithLanguage(context.Background(), "en"))
	if got := GetLanguage(req); got != "en" {
		t.Errorf("GetLanguage() = %q, want en", got)
	}
}
