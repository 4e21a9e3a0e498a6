// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/store"
	"github.com/citygreenhub/greenhub/internal/testutil"
)

func TestAccountService_Login(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()

	svc := NewAccountService(db)
	ctx := context.Background()

	id, err := svc.Login(ctx, " "+store.DefaultEditorEmail+" ", store.DefaultEditorPassword+"\n")
	require.NoError(t, err)
	assert.Equal(t, store.DefaultEditorEmail, id.Email)
	assert.Equal(t, auth.RoleEditor, id.Role)
}

func TestAccountService_LoginFailuresAreIndistinguishable(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()

	svc := NewAccountService(db)
	ctx := context.Background()

	_, wrongPassword := svc.Login(ctx, store.DefaultAdminEmail, "not-the-password")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", store.DefaultAdminPassword)

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAccountService_LoginIsCaseSensitive(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()

	_, err := NewAccountService(db).Login(context.Background(), "ADMIN@citygreenhub.example", store.DefaultAdminPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_Register(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()

	svc := NewAccountService(db)
	ctx := context.Background()

	id, err := svc.Register(ctx, RegisterInput{Email: "  New@X.com ", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", id.Email)
	assert.Equal(t, auth.RoleMember, id.Role)

	user, err := store.New(db).GetUserByEmail(ctx, "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, "member", user.Role)

	// the new account can log in right away
	_, err = svc.Login(ctx, "new@x.com", "pw123")
	assert.NoError(t, err)
}

func TestAccountService_RegisterDuplicateIgnoresCase(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()

	svc := NewAccountService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "Editor@CityGreenHub.example", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	_, err = svc.Register(ctx, RegisterInput{Email: "new@x.com", Password: "pw"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{Email: "NEW@x.com", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	n, err := store.New(db).CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestAccountService_RegisterValidation(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewAccountService(db)
	ctx := context.Background()

	for _, in := range []RegisterInput{
		{Email: "", Password: "pw"},
		{Email: "a@example.com", Password: "   "},
		{},
	} {
		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

// Registering yields a member, and a member is refused news management.
func TestScenario_RegisteredMemberCannotManageNews(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()

	ctx := context.Background()

	id, err := NewAccountService(db).Register(ctx, RegisterInput{Email: "new@x.com", Password: "pw123"})
	require.NoError(t, err)
	require.Equal(t, auth.RoleMember, id.Role)

	_, err = NewNewsService(db, nil).ListForManagement(ctx, id)
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

// An editor's post cannot be edited by a different editor.
func TestScenario_EditorOwnership(t *testing.T) {
	db, cleanup := testutil.SeededDB(t)
	defer cleanup()

	ctx := context.Background()
	accounts := NewAccountService(db)
	news := NewNewsService(db, nil)

	editor, err := accounts.Login(ctx, store.DefaultEditorEmail, store.DefaultEditorPassword)
	require.NoError(t, err)

	item, err := news.Create(ctx, editor, NewsInput{Title: "T", Date: "2024-01-01", Summary: "S"})
	require.NoError(t, err)
	assert.Equal(t, "editor@citygreenhub.example", item.Author)

	_, err = store.New(db).CreateUser(ctx, store.CreateUserParams{
		Email:    otherEditor.Email,
		Password: "pw",
		Role:     string(auth.RoleEditor),
	})
	require.NoError(t, err)
	second, err := accounts.Login(ctx, otherEditor.Email, "pw")
	require.NoError(t, err)

	_, err = news.Update(ctx, second, item.ID, NewsInput{Title: "T", Date: "2024-01-01", Summary: "changed"})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}
