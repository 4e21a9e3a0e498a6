// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "context"

const createNews = `INSERT INTO news (title, date, summary, author) VALUES (?, ?, ?, ?)`

// CreateNewsParams holds the columns of a new news item.
type CreateNewsParams struct {
	Title   string
	Date    string
	Summary string
	Author  string
}

// CreateNews inserts a news item and returns it with its assigned id.
func (q *Queries) CreateNews(ctx context.Context, arg CreateNewsParams) (News, error) {
	res, err := q.db.ExecContext(ctx, createNews, arg.Title, arg.Date, arg.Summary, arg.Author)
	if err != nil {
		return News{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return News{}, err
	}
	return News{
		ID:      id,
		Title:   arg.Title,
		Date:    arg.Date,
		Summary: arg.Summary,
		Author:  arg.Author,
	}, nil
}

const getNewsByID = `SELECT id, title, date, summary, author FROM news WHERE id = ?`

// GetNewsByID returns one news item or sql.ErrNoRows.
func (q *Queries) GetNewsByID(ctx context.Context, id int64) (News, error) {
	var i News
	err := q.db.QueryRowContext(ctx, getNewsByID, id).Scan(
		&i.ID,
		&i.Title,
		&i.Date,
		&i.Summary,
		&i.Author,
	)
	return i, err
}

// Dates that SQLite cannot parse yield NULL from date() and sort after
// parseable ones; within equal dates the newest id comes first.
const listNews = `SELECT id, title, date, summary, author FROM news
ORDER BY date(date) DESC, date DESC, id DESC`

// ListNews returns all news items, most recent first.
func (q *Queries) ListNews(ctx context.Context) ([]News, error) {
	rows, err := q.db.QueryContext(ctx, listNews)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []News
	for rows.Next() {
		var i News
		if err := rows.Scan(&i.ID, &i.Title, &i.Date, &i.Summary, &i.Author); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateNews = `UPDATE news SET title = ?, date = ?, summary = ? WHERE id = ?`

// UpdateNewsParams holds the mutable columns of a news item.
type UpdateNewsParams struct {
	ID      int64
	Title   string
	Date    string
	Summary string
}

// UpdateNews rewrites title, date and summary. The author is never touched.
// It returns the number of affected rows.
func (q *Queries) UpdateNews(ctx context.Context, arg UpdateNewsParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateNews, arg.Title, arg.Date, arg.Summary, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteNews = `DELETE FROM news WHERE id = ?`

// DeleteNews removes a news item and returns the number of deleted rows.
func (q *Queries) DeleteNews(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteNews, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countNews = `SELECT COUNT(*) FROM news`

// CountNews returns the number of stored news items.
func (q *Queries) CountNews(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countNews).Scan(&count)
	return count, err
}
