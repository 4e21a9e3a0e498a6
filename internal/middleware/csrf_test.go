// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var testAuthKey = []byte("12345678901234567890123456789012")

func TestDefaultCSRFConfig_Development(t *testing.T) {
	cfg := DefaultCSRFConfig(testAuthKey, true)

	if len(cfg.AuthKey) != 32 {
		t.Errorf("expected 32-byte AuthKey, got %d bytes", len(cfg.AuthKey))
	}

	expected := map[string]bool{
		"localhost:5000": true,
		"127.0.0.1:5000": true,
	}
	if len(cfg.TrustedOrigins) != len(expected) {
		t.Fatalf("expected %d TrustedOrigins in dev mode, got %d", len(expected), len(cfg.TrustedOrigins))
	}
	for _, origin := range cfg.TrustedOrigins {
		if !expected[origin] {
			t.Errorf("unexpected TrustedOrigin: %s", origin)
		}
		// The csrf library expects host:port, not a full URL
		if strings.HasPrefix(origin, "http") {
			t.Errorf("TrustedOrigin should be host:port, not full URL: %s", origin)
		}
	}
}

func TestDefaultCSRFConfig_Production(t *testing.T) {
	cfg := DefaultCSRFConfig(testAuthKey, false)

	if len(cfg.TrustedOrigins) != 0 {
		t.Errorf("expected no TrustedOrigins in production, got %d", len(cfg.TrustedOrigins))
	}
}

func TestCSRF_FetchMetadata(t *testing.T) {
	cfg := DefaultCSRFConfig(testAuthKey, false)

	var reason string
	cfg.ErrorHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reason = CSRFFailureReason(r)
		http.Error(w, "custom csrf error", http.StatusForbidden)
	})
	handler := CSRF(cfg)(okHandler)

	tests := []struct {
		name       string
		method     string
		fetchSite  string
		wantStatus int
	}{
		{"safe method cross-site", http.MethodGet, "cross-site", http.StatusOK},
		{"same-origin post", http.MethodPost, "same-origin", http.StatusOK},
		{"cross-site post", http.MethodPost, "cross-site", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason = ""
			req := httptest.NewRequest(tt.method, "/contact", nil)
			req.Header.Set("Sec-Fetch-Site", tt.fetchSite)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusForbidden {
				if !strings.Contains(rr.Body.String(), "custom csrf error") {
					t.Errorf("custom error handler not used: %q", rr.Body.String())
				}
				if reason == "" || reason == "unknown" {
					t.Errorf("failure reason = %q", reason)
				}
			}
		})
	}
}

func TestCSRF_DefaultErrorHandler(t *testing.T) {
	handler := CSRF(DefaultCSRFConfig(testAuthKey, false))(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/manage/news", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
}
