// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/citygreenhub/greenhub/internal/catalog"
	"github.com/citygreenhub/greenhub/internal/seo"
)

// SEOHandler serves sitemap.xml and robots.txt.
type SEOHandler struct {
	catalog     *catalog.Catalog
	disallowAll bool
}

// NewSEOHandler creates a new SEOHandler. disallowAll blocks every crawler,
// for non-production deployments.
func NewSEOHandler(c *catalog.Catalog, disallowAll bool) *SEOHandler {
	return &SEOHandler{catalog: c, disallowAll: disallowAll}
}

// SitemapXML handles GET /sitemap.xml.
func (h *SEOHandler) SitemapXML(w http.ResponseWriter, r *http.Request) {
	b := seo.NewSitemapBuilder(siteURL(r))
	b.AddHomepage()
	for _, link := range h.catalog.SitemapPages() {
		if seo.IsDisallowed(link.Path) {
			continue
		}
		b.AddPage(link.Path)
	}
	for _, section := range h.catalog.Sections() {
		for _, article := range section.Articles {
			b.AddArticle(article.Slug)
		}
	}

	out, err := b.Build()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}

// RobotsTxt handles GET /robots.txt.
func (h *SEOHandler) RobotsTxt(w http.ResponseWriter, r *http.Request) {
	content := seo.NewRobotsBuilder(seo.RobotsConfig{
		SiteURL:     siteURL(r),
		DisallowAll: h.disallowAll,
	}).Build()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(content))
}

// siteURL returns the scheme and host the request was made to.
func siteURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
