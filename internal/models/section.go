// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SectionType identifies the kind of landing-page section. The set is closed:
// every switch over SectionType in the codebase handles all of these, so adding
// a type is a compile-checked change.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionFeatures     SectionType = "features"
	SectionPricing      SectionType = "pricing"
	SectionTestimonials SectionType = "testimonials"
	SectionFAQ          SectionType = "faq"
	SectionCTA          SectionType = "cta"
	SectionMenu         SectionType = "menu"
	SectionPortfolio    SectionType = "portfolio"
	SectionTeam         SectionType = "team"
	SectionGallery      SectionType = "gallery"
	SectionContact      SectionType = "contact"
	SectionStats        SectionType = "stats"
	SectionLogos        SectionType = "logos"
	SectionAbout        SectionType = "about"
	SectionServices     SectionType = "services"
)

// AllSectionTypes returns every section type in display order.
// Returns a fresh slice so callers cannot mutate the canonical order.
func AllSectionTypes() []SectionType {
	return []SectionType{
		SectionHero, SectionFeatures, SectionPricing, SectionTestimonials,
		SectionFAQ, SectionCTA, SectionMenu, SectionPortfolio, SectionTeam,
		SectionGallery, SectionContact, SectionStats, SectionLogos,
		SectionAbout, SectionServices,
	}
}

// IsValid reports whether t is one of the declared section types.
func (t SectionType) IsValid() bool {
	switch t {
	case SectionHero, SectionFeatures, SectionPricing, SectionTestimonials,
		SectionFAQ, SectionCTA, SectionMenu, SectionPortfolio, SectionTeam,
		SectionGallery, SectionContact, SectionStats, SectionLogos,
		SectionAbout, SectionServices:
		return true
	}
	return false
}

// StyleOverrides is a presentation-only patch layered on top of a template's
// default utility classes. Section applies at the container level; Elements is
// keyed by selector path (e.g. "headline", "cta.button", "features[2].title").
// Values are always space-separated utility-class strings, never structured data.
type StyleOverrides struct {
	Section  string            `json:"section,omitempty"`
	Elements map[string]string `json:"elements,omitempty"`
}

// IsZero reports whether the override set describes no change at all.
func (o *StyleOverrides) IsZero() bool {
	return o == nil || (o.Section == "" && len(o.Elements) == 0)
}

// Clone returns a deep copy, safe for callers to mutate.
func (o *StyleOverrides) Clone() *StyleOverrides {
	if o == nil {
		return nil
	}
	c := &StyleOverrides{Section: o.Section}
	if o.Elements != nil {
		c.Elements = make(map[string]string, len(o.Elements))
		for k, v := range o.Elements {
			c.Elements[k] = v
		}
	}
	return c
}

// Section is one typed block of a landing page. Content always validates
// against the schema for Type, and TemplateID always references a registered
// template whose section type equals Type.
type Section struct {
	ID              uuid.UUID        `json:"id"`
	PageID          uuid.UUID        `json:"page_id"`
	Type            SectionType      `json:"type"`
	Position        int              `json:"position"`
	IsVisible       bool             `json:"is_visible"`
	Content         map[string]any   `json:"content"`
	TemplateID      string           `json:"template_id"`
	StyleOverrides  *StyleOverrides  `json:"style_overrides,omitempty"`
	Variants        []map[string]any `json:"variants,omitempty"`
	SelectedVariant int              `json:"selected_variant"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
