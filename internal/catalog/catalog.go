// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package catalog holds the static site content: site details, the banner,
// article sections, resources and navigation. The content is built once and
// never changes afterwards; accessors return copies.
package catalog

import (
	"slices"
	"strings"
	"sync"

	"github.com/citygreenhub/greenhub/internal/util"
)

// SiteMeta describes the organisation behind the site.
type SiteMeta struct {
	Title        string
	Tagline      string
	ContactEmail string
	ContactPhone string
	Address      string
	SupportHours string
}

// Banner is the home page hero text.
type Banner struct {
	Headline string
	Subtext  string
}

// Article is a static article. Alias is the transliterated ASCII form of
// Slug and resolves to the same article.
type Article struct {
	Slug    string
	Alias   string
	Title   string
	Excerpt string
	Content string
}

// Section is a named group of articles.
type Section struct {
	Name     string
	Articles []Article
}

// Resource is an external link with a description.
type Resource struct {
	Name        string
	Description string
	Link        string
}

// Link is a labelled site path used in navigation and the sitemap.
type Link struct {
	Label string
	Path  string
}

// ArticleHit is an article matched by Search, with its section name.
type ArticleHit struct {
	Section string
	Article Article
}

// Catalog is the read-only content set.
type Catalog struct {
	meta      SiteMeta
	banner    Banner
	sections  []Section
	resources []Resource
	nav       []Link
	sitemap   []Link
	index     map[string]Article
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the site catalogue, built on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(siteMeta, banner, sections, resources, navLinks, sitemapExtra)
	})
	return defaultCatalog
}

// New builds a catalogue from the given content. Inputs are copied.
func New(meta SiteMeta, b Banner, secs []Section, res []Resource, nav, extra []Link) *Catalog {
	c := &Catalog{
		meta:      meta,
		banner:    b,
		resources: slices.Clone(res),
		nav:       slices.Clone(nav),
		sitemap:   slices.Concat(nav, extra),
		index:     make(map[string]Article),
	}

	for _, s := range secs {
		arts := make([]Article, len(s.Articles))
		for i, a := range s.Articles {
			a.Alias = util.Slugify(a.Slug)
			arts[i] = a

			if _, dup := c.index[a.Slug]; !dup {
				c.index[a.Slug] = a
			}
			if _, dup := c.index[a.Alias]; a.Alias != "" && !dup {
				c.index[a.Alias] = a
			}
		}
		c.sections = append(c.sections, Section{Name: s.Name, Articles: arts})
	}

	return c
}

// Meta returns the site details.
func (c *Catalog) Meta() SiteMeta { return c.meta }

// Banner returns the home page banner.
func (c *Catalog) Banner() Banner { return c.banner }

// Sections returns every article section in display order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		out[i] = Section{Name: s.Name, Articles: slices.Clone(s.Articles)}
	}
	return out
}

// Section returns the articles of the named section.
func (c *Catalog) Section(name string) ([]Article, bool) {
	for _, s := range c.sections {
		if s.Name == name {
			return slices.Clone(s.Articles), true
		}
	}
	return nil, false
}

// Resources returns the resource list.
func (c *Catalog) Resources() []Resource { return slices.Clone(c.resources) }

// NavLinks returns the main navigation.
func (c *Catalog) NavLinks() []Link { return slices.Clone(c.nav) }

// SitemapPages returns the pages listed on the sitemap.
func (c *Catalog) SitemapPages() []Link { return slices.Clone(c.sitemap) }

// FindArticle looks an article up by its slug or its transliterated alias.
func (c *Catalog) FindArticle(slug string) (Article, bool) {
	a, ok := c.index[slug]
	return a, ok
}

// Search returns articles whose title, excerpt or content contains query,
// case-insensitively, in section order. An empty query matches nothing.
func (c *Catalog) Search(query string) []ArticleHit {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var hits []ArticleHit
	for _, s := range c.sections {
		for _, a := range s.Articles {
			haystack := strings.ToLower(a.Title + " " + a.Excerpt + " " + a.Content)
			if strings.Contains(haystack, query) {
				hits = append(hits, ArticleHit{Section: s.Name, Article: a})
			}
		}
	}
	return hits
}
