// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Reset deletes the database files (main, WAL, SHM) at path, then recreates
// the schema and seeds it again.
func Reset(ctx context.Context, path string) error {
	for _, suffix := range []string{"", "-wal", "-shm"} {
		if err := os.Remove(path + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", path+suffix, err)
		}
	}
	slog.Info("database deleted", "path", path)

	db, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := Seed(ctx, db); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	return nil
}
