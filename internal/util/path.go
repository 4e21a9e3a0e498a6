// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// SafeRedirectPath returns target if it is a local absolute path on this
// site, otherwise fallback. Scheme-relative ("//host"), backslash and
// absolute URLs are rejected so a login "next" parameter cannot be used as
// an open redirect.
func SafeRedirectPath(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") {
		return fallback
	}
	if strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return fallback
	}
	for _, r := range target {
		if r < 0x20 || r == 0x7f {
			return fallback
		}
	}

	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return fallback
	}
	return target
}

// EnsureParentDir creates the directory that will hold path, if missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
