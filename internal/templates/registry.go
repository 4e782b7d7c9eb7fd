// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package templates is the registry of interchangeable visual templates.
// Every template renders the content schema of its section type, so switching
// between two templates of the same type never requires touching content.
// The registry is assembled once at package init from the per-type catalogs
// and is immutable afterwards; all access goes through read-only lookups.
package templates

import (
	"fmt"
	"sort"
	"strings"

	"pagecraft/internal/models"
)

// Metadata describes one registered template. IDs are globally unique and
// namespaced by section type: the first hyphen-delimited segment of the id
// is always the section type (e.g. "hero-centered").
type Metadata struct {
	ID          string             `json:"id"`
	SectionType models.SectionType `json:"section_type"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Tags        []string           `json:"tags,omitempty"`
}

var registry = build()

type registryData struct {
	byID     map[string]Metadata
	byType   map[models.SectionType][]Metadata
	defaults map[models.SectionType]string
}

// build assembles the registry from the catalog and enforces its structural
// invariants. A violation is a programming error in the catalog, so build
// panics at startup instead of failing lazily at lookup time.
func build() *registryData {
	r := &registryData{
		byID:     make(map[string]Metadata),
		byType:   make(map[models.SectionType][]Metadata),
		defaults: make(map[models.SectionType]string),
	}

	for _, m := range catalog {
		if _, dup := r.byID[m.ID]; dup {
			panic("templates: duplicate template id " + m.ID)
		}
		if !m.SectionType.IsValid() {
			panic("templates: template " + m.ID + " has unknown section type " + string(m.SectionType))
		}
		if !strings.HasPrefix(m.ID, string(m.SectionType)+"-") {
			panic("templates: template id " + m.ID + " is not namespaced by its section type")
		}
		r.byID[m.ID] = m
		r.byType[m.SectionType] = append(r.byType[m.SectionType], m)
	}

	for t, id := range defaultIDs {
		m, ok := r.byID[id]
		if !ok {
			panic("templates: default template " + id + " is not registered")
		}
		if m.SectionType != t {
			panic("templates: default template " + id + " belongs to the wrong section type")
		}
		r.defaults[t] = id
	}

	// Every section type needs at least one template and exactly one default.
	for _, t := range models.AllSectionTypes() {
		if len(r.byType[t]) == 0 {
			panic("templates: no templates registered for section type " + string(t))
		}
		if _, ok := r.defaults[t]; !ok {
			panic("templates: no default template for section type " + string(t))
		}
		sort.Slice(r.byType[t], func(i, j int) bool {
			return r.byType[t][i].ID < r.byType[t][j].ID
		})
	}

	return r
}

// Get returns the metadata for a template id.
func Get(id string) (Metadata, bool) {
	m, ok := registry.byID[id]
	return m, ok
}

// Exists reports whether a template id is registered.
func Exists(id string) bool {
	_, ok := registry.byID[id]
	return ok
}

// ListFor returns all templates for a section type, sorted by id.
// Returns a fresh slice so callers cannot mutate the registry.
func ListFor(t models.SectionType) []Metadata {
	src := registry.byType[t]
	out := make([]Metadata, len(src))
	copy(out, src)
	return out
}

// DefaultIDFor returns the designated default template id for a section type.
func DefaultIDFor(t models.SectionType) string {
	return registry.defaults[t]
}

// SectionTypeOf derives the section type from a template id's first
// hyphen-delimited segment and verifies it is a known type.
func SectionTypeOf(id string) (models.SectionType, error) {
	seg, _, found := strings.Cut(id, "-")
	if !found || seg == "" {
		return "", fmt.Errorf("templates: id %q is not namespaced by section type", id)
	}
	t := models.SectionType(seg)
	if !t.IsValid() {
		return "", fmt.Errorf("templates: id %q has unknown section type %q", id, seg)
	}
	return t, nil
}
