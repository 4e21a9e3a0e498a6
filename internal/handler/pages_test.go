// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/citygreenhub/greenhub/internal/catalog"
)

func TestPagesHandler_Home(t *testing.T) {
	site := newTestSite(t)

	status, _, body := site.get(RouteRoot)

	assertStatus(t, status, http.StatusOK)
	assertContains(t, body, catalog.Default().Banner().Headline)
	assertContains(t, body, "Вебинар по городским лесам")
}

func TestPagesHandler_Article(t *testing.T) {
	site := newTestSite(t)
	article := catalog.Default().Sections()[0].Articles[0]

	tests := []struct {
		name       string
		path       string
		wantStatus int
		want       string
	}{
		{"by slug", RouteArticles + "/" + url.PathEscape(article.Slug), http.StatusOK, article.Title},
		{"by alias", RouteArticles + "/" + article.Alias, http.StatusOK, article.Title},
		{"missing", RouteArticles + "/no-such-article", http.StatusNotFound, ru("error.not_found")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, body := site.get(tt.path)
			assertStatus(t, status, tt.wantStatus)
			assertContains(t, body, tt.want)
		})
	}
}

func TestPagesHandler_Search(t *testing.T) {
	site := newTestSite(t)

	status, _, body := site.get(RouteSearch + "?q=" + url.QueryEscape("вебинар"))
	assertStatus(t, status, http.StatusOK)
	assertContains(t, body, "Вебинар по городским лесам")

	status, _, body = site.get(RouteSearch + "?q=" + url.QueryEscape("zzzz-nothing"))
	assertStatus(t, status, http.StatusOK)
	assertContains(t, body, ru("page.search_empty"))
}

func TestPagesHandler_NotFound(t *testing.T) {
	site := newTestSite(t)

	status, _, body := site.get("/no/such/page")

	assertStatus(t, status, http.StatusNotFound)
	assertContains(t, body, ru("error.not_found_text"))
}

func TestHealthHandler_Health(t *testing.T) {
	site := newTestSite(t)

	resp, err := site.client.Get(site.server.URL + RouteHealth)
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	assertStatus(t, resp.StatusCode, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q; want application/json", ct)
	}

	var got HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.Status != statusHealthy {
		t.Errorf("status = %q; want %q", got.Status, statusHealthy)
	}
	if got.Version != "test" {
		t.Errorf("version = %q; want test", got.Version)
	}
	if got.Checks["database"].Status != statusHealthy {
		t.Errorf("database check = %+v; want healthy", got.Checks["database"])
	}
}

func TestHealthHandler_Degraded(t *testing.T) {
	site := newTestSite(t)
	_ = site.db.Close()

	status, _, body := site.get(RouteHealth)

	assertStatus(t, status, http.StatusServiceUnavailable)
	assertContains(t, body, `"status":"degraded"`)
}
