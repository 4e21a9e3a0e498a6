// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/middleware"
	"github.com/citygreenhub/greenhub/internal/render"
	"github.com/citygreenhub/greenhub/internal/service"
	"github.com/citygreenhub/greenhub/internal/store"
)

// ManageNewsData is the data for the news management page. Active is set
// while an item is being edited.
type ManageNewsData struct {
	Items  []store.News
	Active *store.News
	Form   service.NewsInput
}

// NewsHandler handles news management routes.
type NewsHandler struct {
	renderer *render.Renderer
	guard    *middleware.Guard
	news     *service.NewsService
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(renderer *render.Renderer, guard *middleware.Guard, news *service.NewsService) *NewsHandler {
	return &NewsHandler{
		renderer: renderer,
		guard:    guard,
		news:     news,
	}
}

// List handles GET /manage/news.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderManage(w, r, ManageNewsData{}, "")
}

// Create handles POST /manage/news.
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form service.NewsInput
	if !decodeFormOrRedirect(w, r, h.renderer, RouteManageNews, "flash.news_create_invalid", &form) {
		return
	}

	item, err := h.news.Create(r.Context(), middleware.GetIdentity(r), form)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.renderManage(w, r, ManageNewsData{Form: form}, tr(r, "flash.news_create_invalid"))
			return
		}
		handleServiceError(w, r, h.renderer, h.guard, auth.ManageContent, "failed to create news", err)
		return
	}

	slog.InfoContext(r.Context(), "news created", "news_id", item.ID, "author", item.Author)
	flashSuccess(w, r, h.renderer, RouteManageNews, tr(r, "flash.news_created"))
}

// EditForm handles GET /manage/news/{id}/edit.
func (h *NewsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		h.renderer.ErrorPage(w, r, http.StatusNotFound)
		return
	}

	item, err := h.news.Get(r.Context(), middleware.GetIdentity(r), id)
	if err != nil {
		handleServiceError(w, r, h.renderer, h.guard, auth.ManageContent, "failed to load news", err)
		return
	}

	h.renderManage(w, r, ManageNewsData{
		Active: &item,
		Form:   service.NewsInput{Title: item.Title, Date: item.Date, Summary: item.Summary},
	}, "")
}

// Update handles POST /manage/news/{id}/edit.
func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		h.renderer.ErrorPage(w, r, http.StatusNotFound)
		return
	}
	editURL := fmt.Sprintf("%s/%d%s", RouteManageNews, id, RouteSuffixEdit)
	var form service.NewsInput
	if !decodeFormOrRedirect(w, r, h.renderer, editURL, "flash.news_update_invalid", &form) {
		return
	}

	actor := middleware.GetIdentity(r)
	item, err := h.news.Update(r.Context(), actor, id, form)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.renderManage(w, r, ManageNewsData{Active: &item, Form: form}, tr(r, "flash.news_update_invalid"))
			return
		}
		handleServiceError(w, r, h.renderer, h.guard, auth.ManageContent, "failed to update news", err)
		return
	}

	slog.InfoContext(r.Context(), "news updated", "news_id", item.ID, "updated_by", actor.Email)
	flashSuccess(w, r, h.renderer, RouteManageNews, tr(r, "flash.news_updated"))
}

// Delete handles POST /manage/news/{id}/delete.
func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		flashAndRedirect(w, r, h.renderer, RouteManageNews, tr(r, "flash.news_not_found"), render.FlashWarning)
		return
	}

	deleted, err := h.news.Delete(r.Context(), middleware.GetIdentity(r), id)
	if err != nil {
		handleServiceError(w, r, h.renderer, h.guard, auth.AdminOnly, "failed to delete news", err)
		return
	}

	if !deleted {
		flashAndRedirect(w, r, h.renderer, RouteManageNews, tr(r, "flash.news_not_found"), render.FlashWarning)
		return
	}

	slog.InfoContext(r.Context(), "news deleted", "news_id", id)
	flashAndRedirect(w, r, h.renderer, RouteManageNews, tr(r, "flash.news_deleted"), render.FlashInfo)
}

func (h *NewsHandler) renderManage(w http.ResponseWriter, r *http.Request, data ManageNewsData, flash string) {
	items, err := h.news.ListForManagement(r.Context(), middleware.GetIdentity(r))
	if err != nil {
		handleServiceError(w, r, h.renderer, h.guard, auth.ManageContent, "failed to list news", err)
		return
	}
	data.Items = items

	renderPage(w, r, h.renderer, pageManageNews, render.TemplateData{
		Title:     tr(r, "page.manage_news"),
		Data:      data,
		Flash:     flash,
		FlashType: render.FlashWarning,
	})
}
