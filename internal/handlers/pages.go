// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"pagecraft/internal/models"
)

// PageDocument is the assembled read model for a page: the page row plus its
// sections in display order. This is what gets cached in Valkey.
type PageDocument struct {
	Page     models.Page      `json:"page"`
	Sections []models.Section `json:"sections"`
}

// PagesList returns all pages without their sections.
func (a *API) PagesList(w http.ResponseWriter, r *http.Request) {
	pages, err := a.pages.List()
	if err != nil {
		slog.Error("list pages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list pages")
		return
	}
	if pages == nil {
		pages = []models.Page{}
	}
	writeJSON(w, http.StatusOK, pages)
}

type pageCreateRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Theme       *models.Theme `json:"theme"`
}

// PageCreate creates an empty page. The theme defaults when omitted.
func (a *API) PageCreate(w http.ResponseWriter, r *http.Request) {
	var req pageCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	page := &models.Page{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Theme:       models.DefaultTheme(),
	}
	if req.Theme != nil {
		page.Theme = *req.Theme
	}

	created, err := a.pages.Create(page)
	if err != nil {
		slog.Error("create page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create page")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// PageGet returns the assembled page document, served from Valkey when a
// fresh copy exists.
func (a *API) PageGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if a.pageCache != nil {
		if doc, hit := a.pageCache.Get(r.Context(), id); hit {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write(doc)
			return
		}
	}

	page, err := a.pages.FindByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	sections, err := a.sections.ListByPage(id)
	if err != nil {
		slog.Error("list sections failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load sections")
		return
	}
	if sections == nil {
		sections = []models.Section{}
	}

	doc := PageDocument{Page: *page, Sections: sections}
	payload, err := json.Marshal(doc)
	if err != nil {
		slog.Error("marshal page document failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to assemble page")
		return
	}

	if a.pageCache != nil {
		a.pageCache.Set(r.Context(), id, payload)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

type pageUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PageUpdate modifies a page's title and description.
func (a *API) PageUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req pageUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	page, err := a.pages.FindByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	page.Title = strings.TrimSpace(req.Title)
	page.Description = req.Description
	if err := a.pages.Update(page); err != nil {
		slog.Error("update page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update page")
		return
	}

	a.invalidatePage(r, id)
	writeJSON(w, http.StatusOK, page)
}

// PageDelete removes a page and all of its sections.
func (a *API) PageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := a.pages.Delete(id); err != nil {
		slog.Error("delete page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete page")
		return
	}

	a.invalidatePage(r, id)
	w.WriteHeader(http.StatusNoContent)
}

// ThemeUpdate replaces the page-wide theme. Sections are untouched: they
// reference theme roles, they do not own colors.
func (a *API) ThemeUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var theme models.Theme
	if !decodeBody(w, r, &theme) {
		return
	}

	page, err := a.pages.FindByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	if err := a.pages.UpdateTheme(id, theme); err != nil {
		slog.Error("update theme failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update theme")
		return
	}

	a.invalidatePage(r, id)
	writeJSON(w, http.StatusOK, theme)
}

type pageGenerateRequest struct {
	Description string `json:"description"`
}

// PageGenerate creates a complete landing page from a business description.
// The AI proposes typed sections; each one is schema-validated before being
// persisted, and rejected proposals are reported back in the skipped list.
func (a *API) PageGenerate(w http.ResponseWriter, r *http.Request) {
	var req pageGenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	if !a.checkPromptSafety(w, r, description) {
		return
	}

	generated, err := a.engine.GeneratePage(r.Context(), description)
	if err != nil {
		writeEditorError(w, err)
		return
	}

	page, err := a.pages.Create(&models.Page{
		Title:       generated.Title,
		Description: description,
		Theme:       models.DefaultTheme(),
	})
	if err != nil {
		slog.Error("create generated page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save page")
		return
	}

	var sections []models.Section
	for _, gs := range generated.Sections {
		created, err := a.sections.Create(&models.Section{
			PageID:     page.ID,
			Type:       gs.Type,
			IsVisible:  true,
			Content:    gs.Content,
			TemplateID: gs.TemplateID,
		})
		if err != nil {
			slog.Error("create generated section failed", "type", gs.Type, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to save sections")
			return
		}
		sections = append(sections, *created)
	}

	slog.Info("page generated",
		"page_id", page.ID,
		"sections", len(sections),
		"skipped", len(generated.Skipped),
	)

	writeJSON(w, http.StatusCreated, map[string]any{
		"page":     page,
		"sections": sections,
		"skipped":  generated.Skipped,
	})
}

// invalidatePage drops the cached document for a page after any mutation.
func (a *API) invalidatePage(r *http.Request, id uuid.UUID) {
	if a.pageCache == nil {
		return
	}
	a.pageCache.Invalidate(r.Context(), id)
}
