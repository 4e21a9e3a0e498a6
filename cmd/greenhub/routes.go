// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"database/sql"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/citygreenhub/greenhub/internal/auth"
	"github.com/citygreenhub/greenhub/internal/catalog"
	"github.com/citygreenhub/greenhub/internal/config"
	"github.com/citygreenhub/greenhub/internal/handler"
	"github.com/citygreenhub/greenhub/internal/metrics"
	"github.com/citygreenhub/greenhub/internal/middleware"
	"github.com/citygreenhub/greenhub/internal/render"
	"github.com/citygreenhub/greenhub/internal/service"
	"github.com/citygreenhub/greenhub/internal/session"
	"github.com/citygreenhub/greenhub/internal/store"
	"github.com/citygreenhub/greenhub/internal/version"
	"github.com/citygreenhub/greenhub/web"
)

// app holds the long-lived dependencies shared by the router.
type app struct {
	cfg      *config.Config
	db       *sql.DB
	sessions *scs.SessionManager
	renderer *render.Renderer
	catalog  *catalog.Catalog
	metrics  *metrics.Metrics
	version  version.Info
}

func newApp(cfg *config.Config, db *sql.DB, info version.Info) (*app, error) {
	sessionManager := session.New(db, cfg.IsDevelopment())

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("getting templates fs: %w", err)
	}

	c := catalog.Default()
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		Catalog:        c,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	return &app{
		cfg:      cfg,
		db:       db,
		sessions: sessionManager,
		renderer: renderer,
		catalog:  c,
		metrics:  m,
		version:  info,
	}, nil
}

// routes builds the HTTP handler.
func (a *app) routes() http.Handler {
	resolver := session.NewResolver(a.sessions, store.New(a.db))
	guard := middleware.NewGuard(a.sessions, a.metrics, a.renderer.ErrorPage)

	newsService := service.NewNewsService(a.db, a.metrics)

	pagesHandler := handler.NewPagesHandler(a.renderer, a.catalog, newsService, service.NewSearchService(a.db, a.catalog))
	authHandler := handler.NewAuthHandler(a.renderer, service.NewAccountService(a.db), resolver)
	newsHandler := handler.NewNewsHandler(a.renderer, guard, newsService)
	messagesHandler := handler.NewMessagesHandler(a.renderer, guard, service.NewMessageService(a.db, a.metrics))
	healthHandler := handler.NewHealthHandler(a.db, a.version)
	seoHandler := handler.NewSEOHandler(a.catalog, a.cfg.IsDevelopment())

	csrfConfig := middleware.DefaultCSRFConfig([]byte(a.cfg.SessionSecret), a.cfg.IsDevelopment())
	csrfConfig.ErrorHandler = handler.CSRFFailure(a.renderer)
	csrfMiddleware := middleware.CSRF(csrfConfig)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(a.metrics.Middleware)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(a.cfg.IsDevelopment())))
	r.Use(middleware.RequestPath)

	// Stateless endpoints
	r.Get(handler.RouteHealth, healthHandler.Health)
	r.Get(handler.RouteSitemapXML, seoHandler.SitemapXML)
	r.Get(handler.RouteRobotsTxt, seoHandler.RobotsTxt)
	if a.metrics != nil {
		r.Handle(handler.RouteMetrics, a.metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err == nil {
		r.Handle(handler.RouteStatic+"/*", http.StripPrefix(handler.RouteStatic+"/", http.FileServer(http.FS(staticFS))))
	}

	r.Group(func(r chi.Router) {
		r.Use(a.sessions.LoadAndSave)
		r.Use(middleware.Language(a.sessions))
		r.Use(middleware.LoadIdentity(resolver))
		r.Use(csrfMiddleware)

		r.Get(handler.RouteRoot, pagesHandler.Home)
		r.Get(handler.RouteAbout, pagesHandler.About)
		r.Get(handler.RouteServices, pagesHandler.Services)
		r.Get(handler.RouteArticles, pagesHandler.Articles)
		r.Get(handler.RouteArticles+handler.RouteParamSlug, pagesHandler.Article)
		r.Get(handler.RoutePractices, pagesHandler.Practices)
		r.Get(handler.RouteResources, pagesHandler.Resources)
		r.Get(handler.RouteNews, pagesHandler.News)
		r.Get(handler.RouteSearch, pagesHandler.Search)
		r.Get(handler.RouteSitemap, pagesHandler.Sitemap)

		r.Get(handler.RouteContact, messagesHandler.ContactForm)
		r.Post(handler.RouteContact, messagesHandler.Contact)

		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.Post(handler.RouteLogin, authHandler.Login)
		r.Get(handler.RouteRegister, authHandler.RegisterForm)
		r.Post(handler.RouteRegister, authHandler.Register)
		r.Get(handler.RouteLogout, authHandler.Logout)

		// Admin and editor
		r.Group(func(r chi.Router) {
			r.Use(guard.Require(auth.ManageContent))

			r.Get(handler.RouteManageNews, newsHandler.List)
			r.Post(handler.RouteManageNews, newsHandler.Create)
			r.Get(handler.RouteManageNews+handler.RouteParamID+handler.RouteSuffixEdit, newsHandler.EditForm)
			r.Post(handler.RouteManageNews+handler.RouteParamID+handler.RouteSuffixEdit, newsHandler.Update)
			r.Get(handler.RouteMessages, messagesHandler.List)
		})

		// Admin only
		r.Group(func(r chi.Router) {
			r.Use(guard.Require(auth.AdminOnly))

			r.Post(handler.RouteManageNews+handler.RouteParamID+handler.RouteSuffixDelete, newsHandler.Delete)
			r.Post(handler.RouteMessages+handler.RouteParamID+handler.RouteSuffixDelete, messagesHandler.Delete)
		})

		r.NotFound(pagesHandler.NotFound)
	})

	return r
}
