// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "context"

const createMessage = `INSERT INTO messages (name, email, message, created) VALUES (?, ?, ?, ?)`

// CreateMessageParams holds the columns of a new contact message.
type CreateMessageParams struct {
	Name    string
	Email   string
	Message string
	Created string
}

// CreateMessage inserts a contact message and returns it with its id.
func (q *Queries) CreateMessage(ctx context.Context, arg CreateMessageParams) (Message, error) {
	res, err := q.db.ExecContext(ctx, createMessage, arg.Name, arg.Email, arg.Message, arg.Created)
	if err != nil {
		return Message{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:      id,
		Name:    arg.Name,
		Email:   arg.Email,
		Message: arg.Message,
		Created: arg.Created,
	}, nil
}

const listMessages = `SELECT id, name, email, message, created FROM messages ORDER BY id DESC`

// ListMessages returns all messages, newest first.
func (q *Queries) ListMessages(ctx context.Context) ([]Message, error) {
	rows, err := q.db.QueryContext(ctx, listMessages)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []Message
	for rows.Next() {
		var i Message
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.Message, &i.Created); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteMessage = `DELETE FROM messages WHERE id = ?`

// DeleteMessage removes a message and returns the number of deleted rows.
func (q *Queries) DeleteMessage(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteMessage, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countMessages = `SELECT COUNT(*) FROM messages`

// CountMessages returns the number of stored messages.
func (q *Queries) CountMessages(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countMessages).Scan(&count)
	return count, err
}
