// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
)

// AIProviders reports the configured providers and which one is active.
func (a *API) AIProviders(w http.ResponseWriter, r *http.Request) {
	available := a.aiRegistry.Available()
	sort.Strings(available)
	writeJSON(w, http.StatusOK, map[string]any{
		"active":    a.aiRegistry.ActiveName(),
		"available": available,
	})
}

type setProviderRequest struct {
	Provider string `json:"provider"`
}

// AISetProvider switches the active AI provider at runtime.
func (a *API) AISetProvider(w http.ResponseWriter, r *http.Request) {
	var req setProviderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	name := strings.TrimSpace(req.Provider)
	if name == "" {
		writeError(w, http.StatusBadRequest, "provider is required")
		return
	}

	if err := a.aiRegistry.SetActive(name); err != nil {
		slog.Warn("failed to switch AI provider", "provider", name, "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.Info("ai provider switched", "provider", name)
	writeJSON(w, http.StatusOK, map[string]string{"active": name})
}
