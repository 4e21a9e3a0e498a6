// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/citygreenhub/greenhub/internal/catalog"
	"github.com/citygreenhub/greenhub/internal/render"
	"github.com/citygreenhub/greenhub/internal/service"
	"github.com/citygreenhub/greenhub/internal/store"
)

// HomeData is the data for the home page.
type HomeData struct {
	Banner   catalog.Banner
	News     []store.News
	Sections []catalog.Section
}

// SearchData is the data for the search page.
type SearchData struct {
	Query   string
	Results []service.SearchResult
}

// PagesHandler serves the public pages.
type PagesHandler struct {
	renderer *render.Renderer
	catalog  *catalog.Catalog
	news     *service.NewsService
	search   *service.SearchService
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(renderer *render.Renderer, c *catalog.Catalog, news *service.NewsService, search *service.SearchService) *PagesHandler {
	return &PagesHandler{
		renderer: renderer,
		catalog:  c,
		news:     news,
		search:   search,
	}
}

// Home handles GET /.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	items, err := h.news.List(r.Context())
	if err != nil {
		logAndInternalError(w, r, h.renderer, "failed to list news", "error", err)
		return
	}

	renderPage(w, r, h.renderer, pageHome, render.TemplateData{
		Data: HomeData{
			Banner:   h.catalog.Banner(),
			News:     items,
			Sections: h.catalog.Sections(),
		},
	})
}

// About handles GET /about.
func (h *PagesHandler) About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, pageAbout, render.TemplateData{Title: tr(r, "page.about")})
}

// Services handles GET /services.
func (h *PagesHandler) Services(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, pageServices, render.TemplateData{Title: tr(r, "page.services")})
}

// Articles handles GET /articles.
func (h *PagesHandler) Articles(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, pageArticles, render.TemplateData{
		Title: tr(r, "page.articles"),
		Data:  h.catalog.Sections(),
	})
}

// Article handles GET /articles/{slug}. Both the Cyrillic slug and its
// transliterated alias resolve.
func (h *PagesHandler) Article(w http.ResponseWriter, r *http.Request) {
	article, ok := h.catalog.FindArticle(chi.URLParam(r, "slug"))
	if !ok {
		h.renderer.ErrorPage(w, r, http.StatusNotFound)
		return
	}

	renderPage(w, r, h.renderer, pageArticle, render.TemplateData{
		Title: article.Title,
		Data:  article,
	})
}

// Practices handles GET /practices.
func (h *PagesHandler) Practices(w http.ResponseWriter, r *http.Request) {
	articles, _ := h.catalog.Section(catalog.PracticesSection)
	renderPage(w, r, h.renderer, pagePractices, render.TemplateData{
		Title: tr(r, "page.practices"),
		Data:  articles,
	})
}

// Resources handles GET /resources.
func (h *PagesHandler) Resources(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, pageResources, render.TemplateData{
		Title: tr(r, "page.resources"),
		Data:  h.catalog.Resources(),
	})
}

// News handles GET /news.
func (h *PagesHandler) News(w http.ResponseWriter, r *http.Request) {
	items, err := h.news.List(r.Context())
	if err != nil {
		logAndInternalError(w, r, h.renderer, "failed to list news", "error", err)
		return
	}

	renderPage(w, r, h.renderer, pageNews, render.TemplateData{
		Title: tr(r, "page.news"),
		Data:  items,
	})
}

// Search handles GET /search?q=.
func (h *PagesHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	results, err := h.search.Search(r.Context(), query)
	if err != nil {
		logAndInternalError(w, r, h.renderer, "search failed", "error", err)
		return
	}

	renderPage(w, r, h.renderer, pageSearch, render.TemplateData{
		Title: tr(r, "page.search"),
		Data:  SearchData{Query: query, Results: results},
	})
}

// Sitemap handles GET /sitemap.
func (h *PagesHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, pageSitemap, render.TemplateData{
		Title: tr(r, "page.sitemap"),
		Data:  h.catalog.SitemapPages(),
	})
}

// NotFound renders the 404 page for unknown routes.
func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.ErrorPage(w, r, http.StatusNotFound)
}
