// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/citygreenhub/greenhub/internal/catalog"
	"github.com/citygreenhub/greenhub/internal/store"
)

// SearchService matches a query against static articles and stored news.
type SearchService struct {
	queries *store.Queries
	catalog *catalog.Catalog
}

// SearchResult is one hit. Exactly one of Article and News is set.
type SearchResult struct {
	Section string
	Article *catalog.Article
	News    *store.News
}

// NewSearchService creates a new search service.
func NewSearchService(db *sql.DB, c *catalog.Catalog) *SearchService {
	return &SearchService{queries: store.New(db), catalog: c}
}

// Search does a lowercase substring match. Articles come first in section
// order, then news in feed order. A blank query returns no results.
func (s *SearchService) Search(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	var results []SearchResult
	for _, hit := range s.catalog.Search(query) {
		a := hit.Article
		results = append(results, SearchResult{Section: hit.Section, Article: &a})
	}

	news, err := s.queries.ListNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("searching news: %w", err)
	}
	for _, item := range news {
		haystack := strings.ToLower(item.Title + " " + item.Summary)
		if strings.Contains(haystack, query) {
			n := item
			results = append(results, SearchResult{Section: catalog.NewsSection, News: &n})
		}
	}

	return results, nil
}
