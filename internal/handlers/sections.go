// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"pagecraft/internal/editor"
	"pagecraft/internal/models"
	"pagecraft/internal/schema"
	"pagecraft/internal/store"
	"pagecraft/internal/styles"
	"pagecraft/internal/templates"
)

type sectionCreateRequest struct {
	Type       string `json:"type"`
	TemplateID string `json:"template_id"`
}

// SectionCreate appends a new section to a page. Content starts from the
// schema defaults so the section is valid from its first render. The
// template defaults to the canonical one for the type when omitted.
func (a *API) SectionCreate(w http.ResponseWriter, r *http.Request) {
	pageID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req sectionCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sectionType := models.SectionType(req.Type)
	if !sectionType.IsValid() {
		writeError(w, http.StatusBadRequest, "unknown section type "+strconv.Quote(req.Type))
		return
	}

	templateID := req.TemplateID
	if templateID == "" {
		templateID = templates.DefaultIDFor(sectionType)
	} else {
		meta, found := templates.Get(templateID)
		if !found {
			writeEditorError(w, &editor.UnknownTemplateError{TemplateID: templateID})
			return
		}
		if meta.SectionType != sectionType {
			writeEditorError(w, &editor.TemplateTypeMismatchError{
				TemplateID:   templateID,
				TemplateType: meta.SectionType,
				SectionType:  sectionType,
			})
			return
		}
	}

	page, err := a.pages.FindByID(pageID)
	if err != nil {
		slog.Error("find page failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	created, err := a.sections.Create(&models.Section{
		PageID:     pageID,
		Type:       sectionType,
		IsVisible:  true,
		Content:    schema.DefaultsFor(sectionType),
		TemplateID: templateID,
	})
	if err != nil {
		slog.Error("create section failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create section")
		return
	}

	a.invalidatePage(r, pageID)
	writeJSON(w, http.StatusCreated, created)
}

type reorderRequest struct {
	Order []uuid.UUID `json:"order"`
}

// SectionsReorder rewrites the positions of a page's sections to match the
// given ID order. The order must name every section of the page exactly once.
func (a *API) SectionsReorder(w http.ResponseWriter, r *http.Request) {
	pageID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req reorderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	existing, err := a.sections.ListByPage(pageID)
	if err != nil {
		slog.Error("list sections failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load sections")
		return
	}
	if len(req.Order) != len(existing) {
		writeError(w, http.StatusBadRequest, "order must list every section of the page exactly once")
		return
	}
	seen := make(map[uuid.UUID]bool, len(req.Order))
	for _, id := range req.Order {
		if seen[id] {
			writeError(w, http.StatusBadRequest, "order lists section "+id.String()+" twice")
			return
		}
		seen[id] = true
	}

	if err := a.sections.Reorder(pageID, req.Order); err != nil {
		slog.Error("reorder sections failed", "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	a.invalidatePage(r, pageID)
	w.WriteHeader(http.StatusNoContent)
}

// SectionGet returns one section.
func (a *API) SectionGet(w http.ResponseWriter, r *http.Request) {
	sec, ok := a.loadSection(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

type sectionUpdateRequest struct {
	Content map[string]any `json:"content"`
}

// SectionUpdate replaces a section's content after schema validation. The
// write is compare-and-swapped on the section's timestamp, so a concurrent
// edit produces a 409 instead of a silent overwrite.
func (a *API) SectionUpdate(w http.ResponseWriter, r *http.Request) {
	sec, ok := a.loadSection(w, r)
	if !ok {
		return
	}

	var req sectionUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Content == nil {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	normalized, err := schema.Validate(sec.Type, req.Content)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sec.Content = normalized
	a.persistSection(w, r, sec)
}

// SectionDelete removes a section.
func (a *API) SectionDelete(w http.ResponseWriter, r *http.Request) {
	sec, ok := a.loadSection(w, r)
	if !ok {
		return
	}

	if err := a.sections.Delete(sec.ID); err != nil {
		slog.Error("delete section failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete section")
		return
	}

	a.invalidatePage(r, sec.PageID)
	w.WriteHeader(http.StatusNoContent)
}

type visibilityRequest struct {
	IsVisible bool `json:"is_visible"`
}

// SectionVisibility toggles whether a section renders without touching its
// content.
func (a *API) SectionVisibility(w http.ResponseWriter, r *http.Request) {
	sec, ok := a.loadSection(w, r)
	if !ok {
		return
	}

	var req visibilityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := a.sections.SetVisibility(sec.ID, req.IsVisible); err != nil {
		slog.Error("set visibility failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update visibility")
		return
	}

	sec.IsVisible = req.IsVisible
	a.invalidatePage(r, sec.PageID)
	writeJSON(w, http.StatusOK, sec)
}

type variantSelectRequest struct {
	SelectedVariant int `json:"selected_variant"`
}

// SectionVariant selects which stored content variant renders. Index 0 is
// the section's base content; index n (n >= 1) is variants[n-1].
func (a *API) SectionVariant(w http.ResponseWriter, r *http.Request) {
	sec, ok := a.loadSection(w, r)
	if !ok {
		return
	}

	var req variantSelectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.SelectedVariant < 0 || req.SelectedVariant > len(sec.Variants) {
		writeError(w, http.StatusUnprocessableEntity, "selected variant is out of range")
		return
	}

	sec.SelectedVariant = req.SelectedVariant
	a.persistSection(w, r, sec)
}

type variantAddRequest struct {
	Content map[string]any `json:"content"`
}

// maxVariants caps the stored content variants per section. Variants are
// alternatives a user picks between, not an archive.
const maxVariants = 5

// SectionVariantAdd stores an additional content variant for a section.
// Variants validate against the same schema as the base content.
func (a *API) SectionVariantAdd(w http.ResponseWriter, r *http.Request) {
	sec, ok := a.loadSection(w, r)
	if !ok {
		return
	}

	var req variantAddRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Content == nil {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}
	if len(sec.Variants) >= maxVariants {
		writeError(w, http.StatusUnprocessableEntity,
			"a section holds at most "+strconv.Itoa(maxVariants)+" variants")
		return
	}

	normalized, err := schema.Validate(sec.Type, req.Content)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sec.Variants = append(sec.Variants, normalized)
	a.persistSection(w, r, sec)
}

type styleRequest struct {
	StyleOverrides *models.StyleOverrides `json:"style_overrides"`
}

type styleResponse struct {
	Section  *models.Section `json:"section"`
	Warnings []string        `json:"warnings,omitempty"`
}

// SectionStyle applies a manual style-override patch. The patch goes through
// the same grammar and vocabulary validation as AI-generated overrides and is
// merged onto the existing overrides per selector, override classes winning
// their conflict families.
func (a *API) SectionStyle(w http.ResponseWriter, r *http.Request) {
	sec, ok := a.loadSection(w, r)
	if !ok {
		return
	}

	var req styleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StyleOverrides == nil {
		writeError(w, http.StatusBadRequest, "style_overrides is required")
		return
	}

	check := styles.Validate(req.StyleOverrides, sec.Type)
	if !check.Valid {
		writeError(w, http.StatusUnprocessableEntity, strings.Join(check.Errors, "; "))
		return
	}

	sec.StyleOverrides = styles.Merge(sec.StyleOverrides, req.StyleOverrides)

	updated, err := a.sections.UpdateDocument(sec, sec.UpdatedAt)
	if err != nil {
		if errors.Is(err, store.ErrStaleWrite) {
			writeError(w, http.StatusConflict, "the section was modified by another request; please retry")
			return
		}
		slog.Error("update section style failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update style overrides")
		return
	}

	a.invalidatePage(r, sec.PageID)
	writeJSON(w, http.StatusOK, styleResponse{Section: updated, Warnings: check.Warnings})
}

type editRequest struct {
	Comment string `json:"comment"`
	Kind    string `json:"kind"`
}

type editResponse struct {
	*editor.EditResult
	Section *models.Section `json:"section,omitempty"`
}

// SectionEdit runs a free-text edit request through the AI pipeline. An
// applied result is persisted and returned together with the updated
// section; a rejected one comes back with Applied false, a user-facing
// reason, and the section untouched.
func (a *API) SectionEdit(w http.ResponseWriter, r *http.Request) {
	sec, ok := a.loadSection(w, r)
	if !ok {
		return
	}

	var req editRequest
	if !decodeBody(w, r, &req) {
		return
	}

	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		writeError(w, http.StatusBadRequest, "comment is required")
		return
	}

	kind := editor.EditKind(req.Kind)
	if kind != "" && kind != editor.EditStyle && kind != editor.EditContent {
		writeError(w, http.StatusBadRequest, "kind must be \"style\" or \"content\"")
		return
	}

	if !a.checkPromptSafety(w, r, comment) {
		return
	}

	result, err := a.engine.Edit(r.Context(), sec, comment, kind)
	if err != nil {
		writeEditorError(w, err)
		return
	}

	if !result.Applied {
		writeJSON(w, http.StatusOK, editResponse{EditResult: result})
		return
	}

	switch result.Kind {
	case editor.EditStyle:
		sec.StyleOverrides = result.Overrides
	case editor.EditContent:
		sec.Content = result.Content
	}

	updated, err := a.sections.UpdateDocument(sec, sec.UpdatedAt)
	if err != nil {
		if errors.Is(err, store.ErrStaleWrite) {
			writeError(w, http.StatusConflict, "the section changed while the edit was running; please retry")
			return
		}
		slog.Error("persist edit failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save the edit")
		return
	}

	a.invalidatePage(r, sec.PageID)
	writeJSON(w, http.StatusOK, editResponse{EditResult: result, Section: updated})
}

type switchRequest struct {
	TemplateID string `json:"template_id"`
}

type switchResponse struct {
	*editor.SwitchResult
	Section *models.Section `json:"section"`
}

// SectionSwitchTemplate moves a section onto another template. A same-type
// switch is a metadata update; a cross-type switch transforms the content
// through the AI pipeline and validates it before anything is written. On a
// cross-type switch element style overrides are dropped, since their
// selectors belong to the old type's vocabulary.
func (a *API) SectionSwitchTemplate(w http.ResponseWriter, r *http.Request) {
	sec, ok := a.loadSection(w, r)
	if !ok {
		return
	}

	var req switchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.TemplateID == "" {
		writeError(w, http.StatusBadRequest, "template_id is required")
		return
	}

	result, err := a.engine.SwitchTemplate(r.Context(), sec, req.TemplateID)
	if err != nil {
		writeEditorError(w, err)
		return
	}

	sec.TemplateID = result.TemplateID
	sec.Type = result.SectionType
	sec.Content = result.Content
	if result.Transformed {
		if sec.StyleOverrides != nil {
			sec.StyleOverrides = &models.StyleOverrides{Section: sec.StyleOverrides.Section}
		}
		// Variants belong to the old content shape.
		sec.Variants = nil
		sec.SelectedVariant = 0
	}

	updated, err := a.sections.UpdateDocument(sec, sec.UpdatedAt)
	if err != nil {
		if errors.Is(err, store.ErrStaleWrite) {
			writeError(w, http.StatusConflict, "the section changed while the switch was running; please retry")
			return
		}
		slog.Error("persist template switch failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save the switch")
		return
	}

	a.invalidatePage(r, sec.PageID)
	writeJSON(w, http.StatusOK, switchResponse{SwitchResult: result, Section: updated})
}

// loadSection fetches the section named by the {id} URL parameter, writing
// the error response itself when the id is bad or the section is missing.
func (a *API) loadSection(w http.ResponseWriter, r *http.Request) (*models.Section, bool) {
	id, ok := pathID(w, r)
	if !ok {
		return nil, false
	}

	sec, err := a.sections.FindByID(id)
	if err != nil {
		slog.Error("find section failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load section")
		return nil, false
	}
	if sec == nil {
		writeError(w, http.StatusNotFound, "section not found")
		return nil, false
	}
	return sec, true
}

// persistSection writes a section's document fields with the CAS guard and
// returns the updated row, handling the stale-write conflict uniformly.
func (a *API) persistSection(w http.ResponseWriter, r *http.Request, sec *models.Section) {
	updated, err := a.sections.UpdateDocument(sec, sec.UpdatedAt)
	if err != nil {
		if errors.Is(err, store.ErrStaleWrite) {
			writeError(w, http.StatusConflict, "the section was modified by another request; please retry")
			return
		}
		slog.Error("update section failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update section")
		return
	}

	a.invalidatePage(r, sec.PageID)
	writeJSON(w, http.StatusOK, updated)
}
