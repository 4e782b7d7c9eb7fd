// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON API handlers. Every endpoint reads and
// writes JSON; validation failures come back as 4xx with an error message,
// AI transport failures as 502.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pagecraft/internal/ai"
	"pagecraft/internal/cache"
	"pagecraft/internal/editor"
	"pagecraft/internal/store"
)

// API bundles the dependencies shared by all endpoint handlers.
type API struct {
	pages      *store.PageStore
	sections   *store.SectionStore
	pageCache  *cache.PageCache
	engine     *editor.Engine
	aiRegistry *ai.Registry
}

// NewAPI creates the handler set. pageCache may be nil when Valkey is not
// configured; reads then always go to the database.
func NewAPI(pages *store.PageStore, sections *store.SectionStore, pageCache *cache.PageCache, engine *editor.Engine, aiRegistry *ai.Registry) *API {
	return &API{
		pages:      pages,
		sections:   sections,
		pageCache:  pageCache,
		engine:     engine,
		aiRegistry: aiRegistry,
	}
}

// Health returns a simple JSON health check response.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody decodes the request body into dst, rejecting unknown fields.
// Writes a 400 and returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// pathID parses the {id} URL parameter as a UUID. Writes a 400 and returns
// false on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// writeEditorError maps the editor package's typed errors onto HTTP statuses.
// Provider failures are 502 (retryable, not the client's fault); everything
// else is 422 because the request was understood but could not be honored.
func writeEditorError(w http.ResponseWriter, err error) {
	var unknownTmpl *editor.UnknownTemplateError
	var mismatch *editor.TemplateTypeMismatchError
	var parseErr *editor.ResponseParseError
	var semanticErr *editor.ResponseSemanticError
	var providerErr *editor.ProviderError

	switch {
	case errors.As(err, &unknownTmpl):
		writeError(w, http.StatusUnprocessableEntity, unknownTmpl.Error())
	case errors.As(err, &mismatch):
		writeError(w, http.StatusUnprocessableEntity, mismatch.Error())
	case errors.As(err, &parseErr):
		writeError(w, http.StatusUnprocessableEntity, "the AI response could not be understood; please try again")
	case errors.As(err, &semanticErr):
		writeError(w, http.StatusUnprocessableEntity, "the AI response had the wrong shape; please try again")
	case errors.As(err, &providerErr):
		slog.Error("ai provider failed", "error", providerErr.Err)
		writeError(w, http.StatusBadGateway, "the AI provider is unavailable; please try again later")
	default:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	}
}

// checkPromptSafety runs a user prompt through the moderation API before it
// reaches a completion model. Returns true if the prompt may proceed. Fails
// open on moderation transport errors since providers keep their own filters.
func (a *API) checkPromptSafety(w http.ResponseWriter, r *http.Request, prompt string) bool {
	result, err := a.aiRegistry.CheckPrompt(r.Context(), prompt)
	if err != nil {
		slog.Warn("moderation check failed, allowing prompt", "error", err)
		return true
	}

	if result.Safe {
		return true
	}

	categories := strings.Join(result.Categories, ", ")
	slog.Warn("prompt flagged by moderation", "categories", categories)
	writeError(w, http.StatusUnprocessableEntity,
		"Your prompt was flagged for: "+categories+". Please reformulate your request and try again.")
	return false
}
