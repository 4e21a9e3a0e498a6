// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service implements the content operations on top of the store.
// Every guarded operation takes the acting identity and enforces the
// authorization policy itself before touching the database.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/metrics"
	"github.com/citygreenhub/greenhub/internal/store"
)

// NewsInput is the editable part of a news item.
type NewsInput struct {
	Title   string `form:"title" validate:"required"`
	Date    string `form:"date" validate:"required"`
	Summary string `form:"summary" validate:"required"`
}

func (in NewsInput) trimmed() NewsInput {
	return NewsInput{
		Title:   strings.TrimSpace(in.Title),
		Date:    strings.TrimSpace(in.Date),
		Summary: strings.TrimSpace(in.Summary),
	}
}

// NewsService manages news items.
type NewsService struct {
	queries *store.Queries
	metrics *metrics.Metrics
}

// NewNewsService creates a NewsService. m may be nil.
func NewNewsService(db *sql.DB, m *metrics.Metrics) *NewsService {
	return &NewsService{
		queries: store.New(db),
		metrics: m,
	}
}

// List returns every news item, most recent first. It is public.
func (s *NewsService) List(ctx context.Context) ([]store.News, error) {
	items, err := s.queries.ListNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing news: %w", err)
	}
	return items, nil
}

// ListForManagement returns the same list as List for admins and editors.
func (s *NewsService) ListForManagement(ctx context.Context, actor *auth.Identity) ([]store.News, error) {
	if err := auth.Enforce(auth.ManageContent, actor); err != nil {
		return nil, err
	}
	return s.List(ctx)
}

// Get returns a news item the actor is allowed to edit.
func (s *NewsService) Get(ctx context.Context, actor *auth.Identity, id int64) (store.News, error) {
	if err := auth.Enforce(auth.ManageContent, actor); err != nil {
		return store.News{}, err
	}

	item, err := s.find(ctx, id)
	if err != nil {
		return store.News{}, err
	}

	if err := auth.CanEditNews(actor, item.Author); err != nil {
		return store.News{}, err
	}
	return item, nil
}

// Create publishes a news item authored by the actor.
func (s *NewsService) Create(ctx context.Context, actor *auth.Identity, in NewsInput) (store.News, error) {
	if err := auth.Enforce(auth.ManageContent, actor); err != nil {
		return store.News{}, err
	}

	in = in.trimmed()
	if err := validateInput(in); err != nil {
		s.metrics.ContentOp("news", "create", "invalid")
		return store.News{}, err
	}

	item, err := s.queries.CreateNews(ctx, store.CreateNewsParams{
		Title:   in.Title,
		Date:    in.Date,
		Summary: in.Summary,
		Author:  actor.Email,
	})
	if err != nil {
		return store.News{}, fmt.Errorf("creating news: %w", err)
	}

	s.metrics.ContentOp("news", "create", "ok")
	return item, nil
}

// Update changes title, date and summary of an existing item. The author is
// never changed. The item must exist before ownership is checked. On
// ErrValidation the stored item is returned unchanged alongside the error.
func (s *NewsService) Update(ctx context.Context, actor *auth.Identity, id int64, in NewsInput) (store.News, error) {
	if err := auth.Enforce(auth.ManageContent, actor); err != nil {
		return store.News{}, err
	}

	item, err := s.find(ctx, id)
	if err != nil {
		return store.News{}, err
	}

	if err := auth.CanEditNews(actor, item.Author); err != nil {
		return store.News{}, err
	}

	in = in.trimmed()
	if err := validateInput(in); err != nil {
		s.metrics.ContentOp("news", "update", "invalid")
		return item, err
	}

	affected, err := s.queries.UpdateNews(ctx, store.UpdateNewsParams{
		ID:      id,
		Title:   in.Title,
		Date:    in.Date,
		Summary: in.Summary,
	})
	if err != nil {
		return store.News{}, fmt.Errorf("updating news %d: %w", id, err)
	}
	if affected == 0 {
		// deleted between the lookup and the update
		return store.News{}, ErrNotFound
	}

	item.Title = in.Title
	item.Date = in.Date
	item.Summary = in.Summary

	s.metrics.ContentOp("news", "update", "ok")
	return item, nil
}

// Delete removes a news item. Only admins may delete. A missing id is
// reported as deleted == false with no error.
func (s *NewsService) Delete(ctx context.Context, actor *auth.Identity, id int64) (bool, error) {
	if err := auth.Enforce(auth.AdminOnly, actor); err != nil {
		return false, err
	}

	affected, err := s.queries.DeleteNews(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deleting news %d: %w", id, err)
	}

	if affected == 0 {
		s.metrics.ContentOp("news", "delete", "not_found")
		return false, nil
	}
	s.metrics.ContentOp("news", "delete", "ok")
	return true, nil
}

func (s *NewsService) find(ctx context.Context, id int64) (store.News, error) {
	item, err := s.queries.GetNewsByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.News{}, ErrNotFound
		}
		return store.News{}, fmt.Errorf("loading news %d: %w", id, err)
	}
	return item, nil
}
