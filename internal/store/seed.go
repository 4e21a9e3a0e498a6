// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Default accounts created on first run.
const (
	DefaultAdminEmail     = "admin@citygreenhub.example"
	DefaultAdminPassword  = "adminpass"
	DefaultEditorEmail    = "editor@citygreenhub.example"
	DefaultEditorPassword = "editorpass"
)

type seedUser struct {
	email    string
	password string
	role     string
}

var seedUsers = []seedUser{
	{DefaultAdminEmail, DefaultAdminPassword, "admin"},
	{DefaultEditorEmail, DefaultEditorPassword, "editor"},
}

var seedNews = []CreateNewsParams{
	{
		Title:   "Новый гид по микро-климату двориков",
		Date:    "2024-05-18",
		Summary: "Опубликован набор решений по уменьшению перегрева общественных пространств летом.",
		Author:  DefaultEditorEmail,
	},
	{
		Title:   "Вебинар по городским лесам",
		Date:    "2024-06-02",
		Summary: "Обсуждаем стандарты ухода, мониторинг и вовлечение волонтёров.",
		Author:  DefaultEditorEmail,
	},
	{
		Title:   "Пилот биофильтрации стока",
		Date:    "2024-06-15",
		Summary: "В одном из районов запущен демонстрационный участок с фильтрующими канавами.",
		Author:  DefaultAdminEmail,
	},
	{
		Title:   "Руководство по стандартам ГОСТ 34.602-2020",
		Date:    "2024-06-28",
		Summary: "Подготовлена шпаргалка по структуре технического задания для цифровых проектов.",
		Author:  DefaultAdminEmail,
	},
	{
		Title:   "Программа микро-грантов",
		Date:    "2024-07-01",
		Summary: "Открыт набор заявок на проекты по озеленению дворов с участием жителей.",
		Author:  DefaultEditorEmail,
	},
}

// Seed fills in the default accounts and news. Users are inserted only when
// their email is missing and news only when the table is empty, so calling
// Seed on every startup never duplicates or overwrites rows.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	queries := New(db).WithTx(tx)
	now := time.Now()

	for _, u := range seedUsers {
		exists, err := queries.UserExists(ctx, u.email)
		if err != nil {
			return fmt.Errorf("checking for user %s: %w", u.email, err)
		}
		if exists {
			continue
		}
		if _, err := queries.CreateUser(ctx, CreateUserParams{
			Email:     u.email,
			Password:  u.password,
			Role:      u.role,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("creating %s user: %w", u.role, err)
		}
		slog.Info("created default user", "email", u.email, "role", u.role)
	}

	count, err := queries.CountNews(ctx)
	if err != nil {
		return fmt.Errorf("counting news: %w", err)
	}
	if count == 0 {
		for _, item := range seedNews {
			if _, err := queries.CreateNews(ctx, item); err != nil {
				return fmt.Errorf("creating seed news %q: %w", item.Title, err)
			}
		}
		slog.Info("seeded news", "count", len(seedNews))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
