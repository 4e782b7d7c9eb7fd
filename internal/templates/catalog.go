// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go lists every template the product ships. The editor UI reads this
// list to offer "switchable looks" for a section; the rendering frontend maps
// each id to its React component.
package templates

import "pagecraft/internal/models"

// defaultIDs designates the template applied when a section is first created.
var defaultIDs = map[models.SectionType]string{
	models.SectionHero:         "hero-centered",
	models.SectionFeatures:     "features-grid",
	models.SectionPricing:      "pricing-simple",
	models.SectionTestimonials: "testimonials-cards",
	models.SectionFAQ:          "faq-accordion",
	models.SectionCTA:          "cta-banner",
	models.SectionMenu:         "menu-columns",
	models.SectionPortfolio:    "portfolio-grid",
	models.SectionTeam:         "team-grid",
	models.SectionGallery:      "gallery-masonry",
	models.SectionContact:      "contact-split",
	models.SectionStats:        "stats-row",
	models.SectionLogos:        "logos-strip",
	models.SectionAbout:        "about-split",
	models.SectionServices:     "services-cards",
}

var catalog = []Metadata{
	// Hero
	{ID: "hero-centered", SectionType: models.SectionHero, Name: "Centered Hero",
		Description: "Headline and call-to-action centered above the fold.", Tags: []string{"classic", "minimal"}},
	{ID: "hero-split", SectionType: models.SectionHero, Name: "Split Hero",
		Description: "Copy on the left, product image on the right.", Tags: []string{"image", "saas"}},
	{ID: "hero-gradient", SectionType: models.SectionHero, Name: "Gradient Hero",
		Description: "Full-bleed gradient background with a bold headline.", Tags: []string{"bold", "modern"}},

	// Features
	{ID: "features-grid", SectionType: models.SectionFeatures, Name: "Feature Grid",
		Description: "Three-column grid of icon cards.", Tags: []string{"grid", "icons"}},
	{ID: "features-list", SectionType: models.SectionFeatures, Name: "Feature List",
		Description: "Stacked rows with generous whitespace.", Tags: []string{"list"}},
	{ID: "features-alternating", SectionType: models.SectionFeatures, Name: "Alternating Features",
		Description: "Image and copy alternating left and right per feature.", Tags: []string{"image", "detailed"}},

	// Pricing
	{ID: "pricing-simple", SectionType: models.SectionPricing, Name: "Simple Pricing",
		Description: "Side-by-side tier cards with feature lists.", Tags: []string{"cards"}},
	{ID: "pricing-comparison", SectionType: models.SectionPricing, Name: "Comparison Pricing",
		Description: "Comparison table with a highlighted recommended tier.", Tags: []string{"table", "detailed"}},

	// Testimonials
	{ID: "testimonials-cards", SectionType: models.SectionTestimonials, Name: "Testimonial Cards",
		Description: "Quote cards with author avatars in a grid.", Tags: []string{"grid"}},
	{ID: "testimonials-carousel", SectionType: models.SectionTestimonials, Name: "Testimonial Carousel",
		Description: "One large rotating quote with navigation dots.", Tags: []string{"carousel"}},

	// FAQ
	{ID: "faq-accordion", SectionType: models.SectionFAQ, Name: "FAQ Accordion",
		Description: "Collapsible question rows.", Tags: []string{"accordion"}},
	{ID: "faq-columns", SectionType: models.SectionFAQ, Name: "FAQ Columns",
		Description: "Questions and answers in a two-column layout.", Tags: []string{"columns"}},

	// CTA
	{ID: "cta-banner", SectionType: models.SectionCTA, Name: "CTA Banner",
		Description: "Full-width colored banner with a single button.", Tags: []string{"banner"}},
	{ID: "cta-simple", SectionType: models.SectionCTA, Name: "Simple CTA",
		Description: "Centered headline and button on a plain background.", Tags: []string{"minimal"}},

	// Menu
	{ID: "menu-columns", SectionType: models.SectionMenu, Name: "Menu Columns",
		Description: "Category columns with dotted price leaders.", Tags: []string{"restaurant"}},
	{ID: "menu-cards", SectionType: models.SectionMenu, Name: "Menu Cards",
		Description: "Dishes as photo cards grouped by category.", Tags: []string{"cards", "photos"}},

	// Portfolio
	{ID: "portfolio-grid", SectionType: models.SectionPortfolio, Name: "Portfolio Grid",
		Description: "Uniform project thumbnails with hover overlays.", Tags: []string{"grid"}},
	{ID: "portfolio-masonry", SectionType: models.SectionPortfolio, Name: "Portfolio Masonry",
		Description: "Variable-height masonry layout.", Tags: []string{"masonry"}},

	// Team
	{ID: "team-grid", SectionType: models.SectionTeam, Name: "Team Grid",
		Description: "Portrait cards with names and roles.", Tags: []string{"grid"}},
	{ID: "team-minimal", SectionType: models.SectionTeam, Name: "Minimal Team",
		Description: "Compact list without photos.", Tags: []string{"minimal"}},

	// Gallery
	{ID: "gallery-masonry", SectionType: models.SectionGallery, Name: "Masonry Gallery",
		Description: "Pinterest-style image wall.", Tags: []string{"masonry"}},
	{ID: "gallery-grid", SectionType: models.SectionGallery, Name: "Grid Gallery",
		Description: "Uniform square crops with lightbox.", Tags: []string{"grid"}},

	// Contact
	{ID: "contact-split", SectionType: models.SectionContact, Name: "Split Contact",
		Description: "Contact details beside an inquiry form.", Tags: []string{"form"}},
	{ID: "contact-centered", SectionType: models.SectionContact, Name: "Centered Contact",
		Description: "Stacked contact details, no form.", Tags: []string{"minimal"}},

	// Stats
	{ID: "stats-row", SectionType: models.SectionStats, Name: "Stats Row",
		Description: "Big numbers in a single horizontal band.", Tags: []string{"numbers"}},

	// Logos
	{ID: "logos-strip", SectionType: models.SectionLogos, Name: "Logo Strip",
		Description: "Grayscale customer logos in one row.", Tags: []string{"social-proof"}},

	// About
	{ID: "about-split", SectionType: models.SectionAbout, Name: "Split About",
		Description: "Story copy beside a large photo.", Tags: []string{"image"}},
	{ID: "about-centered", SectionType: models.SectionAbout, Name: "Centered About",
		Description: "Narrow centered column of text.", Tags: []string{"minimal"}},

	// Services
	{ID: "services-cards", SectionType: models.SectionServices, Name: "Service Cards",
		Description: "Icon cards in a responsive grid.", Tags: []string{"cards", "icons"}},
	{ID: "services-list", SectionType: models.SectionServices, Name: "Service List",
		Description: "Numbered list with descriptions.", Tags: []string{"list"}},
}
