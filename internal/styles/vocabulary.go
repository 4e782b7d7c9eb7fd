// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// vocabulary.go declares the element selectors each section type exposes for
// style targeting. This manifest is the public surface offered to the LLM in
// style-edit prompts and the reference set used by override validation, so it
// must stay in sync with the elements the frontend templates actually render.
package styles

import "pagecraft/internal/models"

// elementSelectors maps each section type to its selector vocabulary, in
// normalized form: "[]" stands for any array index, so "features[].title"
// covers "features[0].title", "features[2].title" and so on.
var elementSelectors = map[models.SectionType][]string{
	models.SectionHero: {
		"headline", "subheadline", "badge", "image", "cta", "cta.button",
	},
	models.SectionFeatures: {
		"heading", "subheading",
		"features[].card", "features[].icon", "features[].title", "features[].description",
	},
	models.SectionPricing: {
		"heading", "subheading",
		"tiers[].card", "tiers[].name", "tiers[].price", "tiers[].features", "tiers[].button",
	},
	models.SectionTestimonials: {
		"heading",
		"items[].card", "items[].quote", "items[].author", "items[].role",
	},
	models.SectionFAQ: {
		"heading", "items[].question", "items[].answer",
	},
	models.SectionCTA: {
		"headline", "subheadline", "cta.button",
	},
	models.SectionMenu: {
		"heading",
		"categories[].name", "categories[].items[].name",
		"categories[].items[].description", "categories[].items[].price",
	},
	models.SectionPortfolio: {
		"heading", "subheading",
		"projects[].card", "projects[].title", "projects[].description", "projects[].tags",
	},
	models.SectionTeam: {
		"heading",
		"members[].card", "members[].name", "members[].role", "members[].bio",
	},
	models.SectionGallery: {
		"heading", "images[].image", "images[].caption",
	},
	models.SectionContact: {
		"heading", "subheading", "email", "phone", "address", "form", "form.button",
	},
	models.SectionStats: {
		"heading", "items[].value", "items[].label",
	},
	models.SectionLogos: {
		"heading", "items[].logo",
	},
	models.SectionAbout: {
		"heading", "body", "image",
	},
	models.SectionServices: {
		"heading", "subheading",
		"items[].card", "items[].icon", "items[].title", "items[].description",
	},
}

// SelectorsFor returns the selector vocabulary for a section type.
// Returns a fresh slice so callers cannot mutate the manifest.
func SelectorsFor(t models.SectionType) []string {
	src := elementSelectors[t]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// KnownSelector reports whether a raw selector path, once normalized, is part
// of the declared vocabulary for t. The selector must already be
// grammatically valid; callers parse first.
func KnownSelector(t models.SectionType, sel Selector) bool {
	norm := sel.Normalized()
	for _, s := range elementSelectors[t] {
		if s == norm {
			return true
		}
	}
	return false
}
