// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"

	RouteAbout     = "/about"
	RouteServices  = "/services"
	RouteArticles  = "/articles"
	RoutePractices = "/practices"
	RouteResources = "/resources"
	RouteNews      = "/news"
	RouteSearch    = "/search"
	RouteSitemap   = "/sitemap"
	RouteContact   = "/contact"
	RouteHealth    = "/health"
	RouteMetrics   = "/metrics"
	RouteStatic    = "/static"

	RouteSitemapXML = "/sitemap.xml"
	RouteRobotsTxt  = "/robots.txt"

	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteLogout is the logout route.
	RouteLogout   = "/logout"
	RouteRegister = "/register"

	// RouteManageNews is the news management listing.
	RouteManageNews = "/manage/news"
	// RouteMessages is the contact inbox.
	RouteMessages = "/messages"

	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteParamSlug is the slug parameter pattern.
	RouteParamSlug = "/{slug}"
	// RouteSuffixEdit is the suffix for edit routes.
	RouteSuffixEdit = "/edit"
	// RouteSuffixDelete is the suffix for delete routes.
	RouteSuffixDelete = "/delete"
)

// Template names.
const (
	pageHome       = "pages/home"
	pageAbout      = "pages/about"
	pageServices   = "pages/services"
	pageArticles   = "pages/articles"
	pageArticle    = "pages/article"
	pagePractices  = "pages/practices"
	pageResources  = "pages/resources"
	pageNews       = "pages/news"
	pageSearch     = "pages/search"
	pageSitemap    = "pages/sitemap"
	pageContact    = "pages/contact"
	pageLogin      = "pages/login"
	pageRegister   = "pages/register"
	pageManageNews = "pages/manage_news"
	pageMessages   = "pages/messages"
)
