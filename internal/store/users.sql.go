// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"
)

// createdAtLayout is the text layout of users.created_at.
const createdAtLayout = time.RFC3339Nano

const createUser = `INSERT INTO users (email, password, role, created_at) VALUES (?, ?, ?, ?)`

// CreateUserParams holds the columns of a new user.
type CreateUserParams struct {
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
}

// CreateUser inserts a user. A duplicate email fails with the driver's
// UNIQUE constraint error.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	createdAt := arg.CreatedAt.UTC()
	_, err := q.db.ExecContext(ctx, createUser,
		arg.Email,
		arg.Password,
		arg.Role,
		createdAt.Format(createdAtLayout),
	)
	if err != nil {
		return User{}, err
	}
	return User{
		Email:     arg.Email,
		Password:  arg.Password,
		Role:      arg.Role,
		CreatedAt: createdAt,
	}, nil
}

const getUserByEmail = `SELECT email, password, role, created_at FROM users WHERE email = ?`

// GetUserByEmail returns the user with exactly this email or sql.ErrNoRows.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByEmail, email)
	var (
		i         User
		createdAt string
	)
	if err := row.Scan(&i.Email, &i.Password, &i.Role, &createdAt); err != nil {
		return i, err
	}
	t, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return i, fmt.Errorf("parsing created_at for %s: %w", i.Email, err)
	}
	i.CreatedAt = t
	return i, nil
}

const userExists = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

// UserExists reports whether a user with exactly this email is stored.
func (q *Queries) UserExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, userExists, email).Scan(&exists)
	return exists, err
}

const countUsers = `SELECT COUNT(*) FROM users`

// CountUsers returns the number of stored users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countUsers).Scan(&count)
	return count, err
}
