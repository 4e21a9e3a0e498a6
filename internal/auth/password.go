// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import "crypto/subtle"

// CheckPassword compares a submitted password with the stored one.
//
// Passwords are stored as entered. The comparison is constant-time so that
// the response time does not leak how much of the secret matched.
func CheckPassword(stored, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
