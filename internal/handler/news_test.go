// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/store"
)

const otherEditorEmail = "second.editor@citygreenhub.example"

func newsIDByTitle(t *testing.T, site *testSite, title string) int64 {
	t.Helper()
	var id int64
	if err := site.db.QueryRow("SELECT id FROM news WHERE title = ?", title).Scan(&id); err != nil {
		t.Fatalf("looking up news %q: %v", title, err)
	}
	return id
}

func newsAuthor(t *testing.T, site *testSite, id int64) string {
	t.Helper()
	var author string
	if err := site.db.QueryRow("SELECT author FROM news WHERE id = ?", id).Scan(&author); err != nil {
		t.Fatalf("loading news %d: %v", id, err)
	}
	return author
}

func editPath(id int64) string {
	return fmt.Sprintf("%s/%d%s", RouteManageNews, id, RouteSuffixEdit)
}

func deletePath(id int64) string {
	return fmt.Sprintf("%s/%d%s", RouteManageNews, id, RouteSuffixDelete)
}

func newsForm(title string) url.Values {
	return url.Values{
		"title":   {title},
		"date":    {"2025-03-01"},
		"summary": {"Краткое описание"},
	}
}

func TestNewsHandler_AnonymousRedirectsToLogin(t *testing.T) {
	site := newTestSite(t)

	status, location, _ := site.get(RouteManageNews)

	assertStatus(t, status, http.StatusSeeOther)
	want := RouteLogin + "?next=" + url.QueryEscape(RouteManageNews)
	if location != want {
		t.Errorf("Location = %q; want %q", location, want)
	}

	_, _, body := site.get(location)
	assertContains(t, body, ru("flash.auth_required_view"))
}

func TestNewsHandler_CreateRecordsAuthor(t *testing.T) {
	site := newTestSite(t)
	site.login(store.DefaultEditorEmail, store.DefaultEditorPassword)

	status, location, _ := site.post(RouteManageNews, newsForm("Открытие сада на крыше"))
	assertStatus(t, status, http.StatusSeeOther)
	if location != RouteManageNews {
		t.Errorf("Location = %q; want %q", location, RouteManageNews)
	}

	id := newsIDByTitle(t, site, "Открытие сада на крыше")
	if got := newsAuthor(t, site, id); got != store.DefaultEditorEmail {
		t.Errorf("author = %q; want %q", got, store.DefaultEditorEmail)
	}

	_, _, body := site.get(RouteManageNews)
	assertContains(t, body, ru("flash.news_created"))
	assertContains(t, body, "Открытие сада на крыше")
}

func TestNewsHandler_CreateInvalid(t *testing.T) {
	site := newTestSite(t)
	site.login(store.DefaultAdminEmail, store.DefaultAdminPassword)
	before := site.countRows("news")

	form := newsForm("Черновик")
	form.Set("summary", "   ")
	status, _, body := site.post(RouteManageNews, form)

	assertStatus(t, status, http.StatusOK)
	assertContains(t, body, ru("flash.news_create_invalid"))
	assertContains(t, body, "Черновик")
	if got := site.countRows("news"); got != before {
		t.Errorf("news = %d; want %d", got, before)
	}
}

func TestNewsHandler_EditorOwnership(t *testing.T) {
	site := newTestSite(t)

	_, err := store.New(site.db).CreateUser(context.Background(), store.CreateUserParams{
		Email:     otherEditorEmail,
		Password:  "otherpass",
		Role:      string(auth.RoleEditor),
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	site.login(store.DefaultEditorEmail, store.DefaultEditorPassword)
	site.post(RouteManageNews, newsForm("Посадка аллеи"))
	id := newsIDByTitle(t, site, "Посадка аллеи")

	other := site.withClient()
	other.login(otherEditorEmail, "otherpass")

	status, _, _ := other.get(editPath(id))
	assertStatus(t, status, http.StatusForbidden)

	status, _, _ = other.post(editPath(id), newsForm("Чужая правка"))
	assertStatus(t, status, http.StatusForbidden)

	status, _, _ = site.post(editPath(id), newsForm("Посадка аллеи: итоги"))
	assertStatus(t, status, http.StatusSeeOther)

	if got := newsAuthor(t, site, id); got != store.DefaultEditorEmail {
		t.Errorf("author = %q; want %q", got, store.DefaultEditorEmail)
	}
	newsIDByTitle(t, site, "Посадка аллеи: итоги")
}

func TestNewsHandler_AdminEditsAnyItem(t *testing.T) {
	site := newTestSite(t)
	site.login(store.DefaultAdminEmail, store.DefaultAdminPassword)
	id := newsIDByTitle(t, site, "Вебинар по городским лесам")

	status, _, body := site.get(editPath(id))
	assertStatus(t, status, http.StatusOK)
	assertContains(t, body, ru("page.edit_news"))

	status, _, _ = site.post(editPath(id), newsForm("Вебинар перенесён"))
	assertStatus(t, status, http.StatusSeeOther)
	if got := newsAuthor(t, site, id); got != store.DefaultEditorEmail {
		t.Errorf("author = %q; want %q", got, store.DefaultEditorEmail)
	}
}

func TestNewsHandler_EditMissing(t *testing.T) {
	site := newTestSite(t)
	site.login(store.DefaultAdminEmail, store.DefaultAdminPassword)

	for _, path := range []string{editPath(9999), RouteManageNews + "/abc" + RouteSuffixEdit} {
		status, _, _ := site.get(path)
		assertStatus(t, status, http.StatusNotFound)
	}
}

func TestNewsHandler_Delete(t *testing.T) {
	site := newTestSite(t)
	id := newsIDByTitle(t, site, "Программа микро-грантов")

	editor := site.withClient()
	editor.login(store.DefaultEditorEmail, store.DefaultEditorPassword)
	status, _, _ := editor.post(deletePath(id), nil)
	assertStatus(t, status, http.StatusForbidden)

	site.login(store.DefaultAdminEmail, store.DefaultAdminPassword)
	before := site.countRows("news")

	status, location, _ := site.post(deletePath(id), nil)
	assertStatus(t, status, http.StatusSeeOther)
	if location != RouteManageNews {
		t.Errorf("Location = %q; want %q", location, RouteManageNews)
	}
	_, _, body := site.get(RouteManageNews)
	assertContains(t, body, ru("flash.news_deleted"))
	if got := site.countRows("news"); got != before-1 {
		t.Errorf("news = %d; want %d", got, before-1)
	}

	// again: nothing left to delete
	site.post(deletePath(id), nil)
	_, _, body = site.get(RouteManageNews)
	assertContains(t, body, ru("flash.news_not_found"))
	if got := site.countRows("news"); got != before-1 {
		t.Errorf("news = %d; want %d", got, before-1)
	}
}

func TestNewsHandler_UpdateInvalidKeepsEditForm(t *testing.T) {
	site := newTestSite(t)
	site.login(store.DefaultAdminEmail, store.DefaultAdminPassword)
	id := newsIDByTitle(t, site, "Вебинар по городским лесам")

	form := newsForm("Новый заголовок")
	form.Set("date", "")
	status, _, body := site.post(editPath(id), form)

	assertStatus(t, status, http.StatusOK)
	assertContains(t, body, ru("flash.news_update_invalid"))
	assertContains(t, body, ru("page.edit_news"))
	assertContains(t, body, editPath(id))
	assertContains(t, body, "Новый заголовок")
	newsIDByTitle(t, site, "Вебинар по городским лесам")
}
