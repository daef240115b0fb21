// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"toolvote/catalog"
	"toolvote/middleware"
)

type CatalogHandler struct {
	cat catalog.Catalog
}

func NewCatalogHandler(cat catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// List handles GET /tools
// Serves the static catalog in its fixed order so the widget and the server
// share one source of truth for ids and base counts.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.cat.Entries())
}
