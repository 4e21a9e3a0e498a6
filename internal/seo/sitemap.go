// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo builds the crawler-facing documents: sitemap.xml and robots.txt.
package seo

import (
	"encoding/xml"
	"net/url"
	"strings"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Change frequencies used by the site.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder collects site paths and renders them as sitemap XML.
type SitemapBuilder struct {
	siteURL string
	seen    map[string]bool
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder. siteURL is the scheme and
// host, without a trailing slash.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		seen:    make(map[string]bool),
	}
}

// AddHomepage adds the homepage to the sitemap.
func (b *SitemapBuilder) AddHomepage() {
	b.add("/", ChangeFreqDaily, "1.0")
}

// AddPage adds a local path such as "/about". Duplicate paths are ignored.
func (b *SitemapBuilder) AddPage(path string) {
	freq := ChangeFreqMonthly
	if path == "/news" {
		freq = ChangeFreqDaily
	}
	b.add(path, freq, "0.8")
}

// AddArticle adds an article detail page. The slug is path-escaped.
func (b *SitemapBuilder) AddArticle(slug string) {
	b.add("/articles/"+url.PathEscape(slug), ChangeFreqMonthly, "0.6")
}

func (b *SitemapBuilder) add(path string, freq ChangeFreq, priority string) {
	if b.seen[path] {
		return
	}
	b.seen[path] = true
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + path,
		ChangeFreq: freq,
		Priority:   priority,
	})
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}
