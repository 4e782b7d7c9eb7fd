// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"pagecraft/internal/models"
	"pagecraft/internal/templates"
)

// templateItem is one registry entry in an API response, with the default
// flag resolved for the client.
type templateItem struct {
	templates.Metadata
	IsDefault bool `json:"is_default"`
}

// TemplatesList returns the registered templates, optionally filtered by the
// type query parameter.
func (a *API) TemplatesList(w http.ResponseWriter, r *http.Request) {
	var types []models.SectionType
	if filter := r.URL.Query().Get("type"); filter != "" {
		t := models.SectionType(filter)
		if !t.IsValid() {
			writeError(w, http.StatusBadRequest, "unknown section type "+strconv.Quote(filter))
			return
		}
		types = []models.SectionType{t}
	} else {
		types = models.AllSectionTypes()
	}

	items := []templateItem{}
	for _, t := range types {
		def := templates.DefaultIDFor(t)
		for _, m := range templates.ListFor(t) {
			items = append(items, templateItem{Metadata: m, IsDefault: m.ID == def})
		}
	}
	writeJSON(w, http.StatusOK, items)
}

// SectionTypes returns the closed list of section types together with their
// default template ids.
func (a *API) SectionTypes(w http.ResponseWriter, r *http.Request) {
	type typeItem struct {
		Type            models.SectionType `json:"type"`
		DefaultTemplate string             `json:"default_template"`
		Templates       int                `json:"templates"`
	}

	items := make([]typeItem, 0, len(models.AllSectionTypes()))
	for _, t := range models.AllSectionTypes() {
		items = append(items, typeItem{
			Type:            t,
			DefaultTemplate: templates.DefaultIDFor(t),
			Templates:       len(templates.ListFor(t)),
		})
	}
	writeJSON(w, http.StatusOK, items)
}
