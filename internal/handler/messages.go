// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/middleware"
	"github.com/citygreenhub/greenhub/internal/render"
	"github.com/citygreenhub/greenhub/internal/service"
)

// MessagesHandler handles the contact form and the message inbox.
type MessagesHandler struct {
	renderer *render.Renderer
	guard    *middleware.Guard
	messages *service.MessageService
}

// NewMessagesHandler creates a new MessagesHandler.
func NewMessagesHandler(renderer *render.Renderer, guard *middleware.Guard, messages *service.MessageService) *MessagesHandler {
	return &MessagesHandler{
		renderer: renderer,
		guard:    guard,
		messages: messages,
	}
}

// ContactForm handles GET /contact.
func (h *MessagesHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, r, service.MessageInput{}, "")
}

// Contact handles POST /contact.
func (h *MessagesHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var form service.MessageInput
	if !decodeFormOrRedirect(w, r, h.renderer, RouteContact, "flash.contact_invalid", &form) {
		return
	}

	msg, err := h.messages.Create(r.Context(), form)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.renderContact(w, r, form, tr(r, "flash.contact_invalid"))
			return
		}
		logAndInternalError(w, r, h.renderer, "failed to store message", "error", err)
		return
	}

	slog.InfoContext(r.Context(), "contact message received", "message_id", msg.ID)
	flashSuccess(w, r, h.renderer, RouteContact, tr(r, "flash.contact_sent"))
}

func (h *MessagesHandler) renderContact(w http.ResponseWriter, r *http.Request, form service.MessageInput, flash string) {
	renderPage(w, r, h.renderer, pageContact, render.TemplateData{
		Title:     tr(r, "page.contact"),
		Data:      form,
		Flash:     flash,
		FlashType: render.FlashWarning,
	})
}

// List handles GET /messages.
func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.messages.List(r.Context(), middleware.GetIdentity(r))
	if err != nil {
		handleServiceError(w, r, h.renderer, h.guard, auth.ManageContent, "failed to list messages", err)
		return
	}

	renderPage(w, r, h.renderer, pageMessages, render.TemplateData{
		Title: tr(r, "page.messages"),
		Data:  items,
	})
}

// Delete handles POST /messages/{id}/delete.
func (h *MessagesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		flashAndRedirect(w, r, h.renderer, RouteMessages, tr(r, "flash.message_not_found"), render.FlashWarning)
		return
	}

	deleted, err := h.messages.Delete(r.Context(), middleware.GetIdentity(r), id)
	if err != nil {
		handleServiceError(w, r, h.renderer, h.guard, auth.AdminOnly, "failed to delete message", err)
		return
	}

	if !deleted {
		flashAndRedirect(w, r, h.renderer, RouteMessages, tr(r, "flash.message_not_found"), render.FlashWarning)
		return
	}

	slog.InfoContext(r.Context(), "message deleted", "message_id", id)
	flashAndRedirect(w, r, h.renderer, RouteMessages, tr(r, "flash.message_deleted"), render.FlashInfo)
}
