// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"errors"
	"testing"
)

var (
	admin   = &Identity{Email: "admin@citygreenhub.example", Role: RoleAdmin}
	editor  = &Identity{Email: "editor@citygreenhub.example", Role: RoleEditor}
	editor2 = &Identity{Email: "other-editor@citygreenhub.example", Role: RoleEditor}
	member  = &Identity{Email: "member@example.com", Role: RoleMember}
	unknown = &Identity{Email: "ghost@example.com", Role: Role("superuser")}
)

func TestRequireAuthenticated(t *testing.T) {
	if err := Enforce(RequireAuthenticated(), nil); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("anonymous: got %v, want ErrUnauthenticated", err)
	}
	for _, id := range []*Identity{admin, editor, member} {
		if err := Enforce(RequireAuthenticated(), id); err != nil {
			t.Errorf("%s: unexpected error %v", id.Role, err)
		}
	}
}

func TestEnforce_Policies(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		id      *Identity
		wantErr error
	}{
		{"manage anonymous", ManageContent, nil, ErrUnauthenticated},
		{"manage admin", ManageContent, admin, nil},
		{"manage editor", ManageContent, editor, nil},
		{"manage member", ManageContent, member, ErrForbidden},
		{"manage unknown role", ManageContent, unknown, ErrForbidden},
		{"admin-only anonymous", AdminOnly, nil, ErrUnauthenticated},
		{"admin-only admin", AdminOnly, admin, nil},
		{"admin-only editor", AdminOnly, editor, ErrForbidden},
		{"admin-only member", AdminOnly, member, ErrForbidden},
		{"empty role set", RequireRole(), admin, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Enforce(tt.policy, tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Enforce() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanEditNews(t *testing.T) {
	author := editor.Email

	tests := []struct {
		name    string
		id      *Identity
		wantErr error
	}{
		{"admin edits any", admin, nil},
		{"author editor", editor, nil},
		{"other editor", editor2, ErrForbidden},
		{"member is never allowed", &Identity{Email: author, Role: RoleMember}, ErrForbidden},
		{"anonymous", nil, ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanEditNews(tt.id, author)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CanEditNews() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRolePolicy_String(t *testing.T) {
	if got := ManageContent.String(); got != "admin,editor" {
		t.Errorf("String() = %q, want %q", got, "admin,editor")
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleEditor, RoleMember} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	if Role("root").Valid() {
		t.Error("root should not be valid")
	}
}

func TestIdentity_Is(t *testing.T) {
	var anon *Identity
	if anon.Is(RoleAdmin) {
		t.Error("nil identity must not hold any role")
	}
	if !admin.Is(RoleAdmin) || admin.Is(RoleEditor) {
		t.Error("admin role check failed")
	}
}
