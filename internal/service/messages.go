// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/metrics"
	"github.com/citygreenhub/greenhub/internal/store"
)

// MessageCreatedLayout formats Message.Created.
const MessageCreatedLayout = "2006-01-02 15:04 UTC"

// MessageInput is a contact form submission.
type MessageInput struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Message string `form:"message" validate:"required"`
}

// MessageService manages the contact inbox.
type MessageService struct {
	queries *store.Queries
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewMessageService creates a MessageService. m may be nil.
func NewMessageService(db *sql.DB, m *metrics.Metrics) *MessageService {
	return &MessageService{
		queries: store.New(db),
		metrics: m,
		now:     time.Now,
	}
}

// Create stores a message. Anyone may submit one.
func (s *MessageService) Create(ctx context.Context, in MessageInput) (store.Message, error) {
	in = MessageInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
	if err := validateInput(in); err != nil {
		s.metrics.ContentOp("message", "create", "invalid")
		return store.Message{}, err
	}

	msg, err := s.queries.CreateMessage(ctx, store.CreateMessageParams{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		Created: s.now().UTC().Format(MessageCreatedLayout),
	})
	if err != nil {
		return store.Message{}, fmt.Errorf("creating message: %w", err)
	}

	s.metrics.ContentOp("message", "create", "ok")
	return msg, nil
}

// List returns the inbox, newest first, to admins and editors.
func (s *MessageService) List(ctx context.Context, actor *auth.Identity) ([]store.Message, error) {
	if err := auth.Enforce(auth.ManageContent, actor); err != nil {
		return nil, err
	}

	msgs, err := s.queries.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return msgs, nil
}

// Delete removes a message. Only admins may delete. A missing id is
// reported as deleted == false with no error.
func (s *MessageService) Delete(ctx context.Context, actor *auth.Identity, id int64) (bool, error) {
	if err := auth.Enforce(auth.AdminOnly, actor); err != nil {
		return false, err
	}

	affected, err := s.queries.DeleteMessage(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deleting message %d: %w", id, err)
	}

	if affected == 0 {
		s.metrics.ContentOp("message", "delete", "not_found")
		return false, nil
	}
	s.metrics.ContentOp("message", "delete", "ok")
	return true, nil
}
