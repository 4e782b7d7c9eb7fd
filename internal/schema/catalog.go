// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go declares the content schema for every section type. The catalog
// is assembled once at package init and never mutated afterwards; all access
// goes through the read-only functions in schema.go.
package schema

import "pagecraft/internal/models"

var catalog = buildCatalog()

func buildCatalog() map[models.SectionType]Schema {
	c := make(map[models.SectionType]Schema, 15)
	for _, s := range []Schema{
		heroSchema(), featuresSchema(), pricingSchema(), testimonialsSchema(),
		faqSchema(), ctaSchema(), menuSchema(), portfolioSchema(), teamSchema(),
		gallerySchema(), contactSchema(), statsSchema(), logosSchema(),
		aboutSchema(), servicesSchema(),
	} {
		c[s.Type] = s
	}

	// Every section type must have a schema; a miss here is a programming
	// error, so fail loudly at startup rather than at first validation.
	for _, t := range models.AllSectionTypes() {
		if _, ok := c[t]; !ok {
			panic("schema: missing content schema for section type " + string(t))
		}
	}
	return c
}

// --- field constructors ---

func str(name string, required bool, def string) Field {
	return Field{Name: name, Kind: KindString, Required: required, Default: def, MaxLen: 2000}
}

func boolean(name string, def bool) Field {
	return Field{Name: name, Kind: KindBool, Default: def}
}

func enum(name string, required bool, def string, values ...string) Field {
	return Field{Name: name, Kind: KindEnum, Required: required, Default: def, Enum: values}
}

func obj(name string, required bool, fields ...Field) Field {
	return Field{Name: name, Kind: KindObject, Required: required, Fields: fields}
}

func arr(name string, min, max int, elem Field) Field {
	return Field{Name: name, Kind: KindArray, Required: true, MinItems: min, MaxItems: max, Elem: &elem}
}

func objElem(fields ...Field) Field {
	return Field{Kind: KindObject, Fields: fields}
}

func strElem() Field {
	return Field{Kind: KindString, MaxLen: 2000}
}

// ctaField is the call-to-action object shared by several schemas.
func ctaField(name string, required bool, text string) Field {
	return obj(name, required,
		str("text", true, text),
		str("url", true, "#"),
	)
}

// --- per-type schemas ---

func heroSchema() Schema {
	return Schema{Type: models.SectionHero, Fields: []Field{
		str("headline", true, "Build something people love"),
		str("subheadline", false, "Launch your next idea faster with a page that converts."),
		enum("layout", false, "centered", "centered", "split", "left"),
		ctaField("cta", true, "Get Started"),
		str("image", false, ""),
		str("badge", false, ""),
	}}
}

func featuresSchema() Schema {
	return Schema{Type: models.SectionFeatures, Fields: []Field{
		str("heading", true, "Everything you need"),
		str("subheading", false, ""),
		enum("layout", false, "grid", "grid", "list", "alternating"),
		arr("features", 3, 6, objElem(
			str("icon", false, "sparkles"),
			str("title", true, "Feature"),
			str("description", true, "Describe the benefit in one or two sentences."),
		)),
	}}
}

func pricingSchema() Schema {
	return Schema{Type: models.SectionPricing, Fields: []Field{
		str("heading", true, "Simple pricing"),
		str("subheading", false, ""),
		arr("tiers", 1, 4, objElem(
			str("name", true, "Starter"),
			str("price", true, "$0"),
			enum("period", false, "month", "month", "year", "once"),
			arr("features", 1, 8, strElem()),
			str("ctaText", false, "Choose plan"),
			boolean("highlighted", false),
		)),
	}}
}

func testimonialsSchema() Schema {
	return Schema{Type: models.SectionTestimonials, Fields: []Field{
		str("heading", true, "Loved by our customers"),
		arr("items", 1, 6, objElem(
			str("quote", true, "This product changed how we work."),
			str("author", true, "Jamie Doe"),
			str("role", false, ""),
			str("avatar", false, ""),
		)),
	}}
}

func faqSchema() Schema {
	return Schema{Type: models.SectionFAQ, Fields: []Field{
		str("heading", true, "Frequently asked questions"),
		arr("items", 2, 8, objElem(
			str("question", true, "How does it work?"),
			str("answer", true, "Answer the question clearly and concisely."),
		)),
	}}
}

func ctaSchema() Schema {
	return Schema{Type: models.SectionCTA, Fields: []Field{
		str("headline", true, "Ready to get started?"),
		str("subheadline", false, ""),
		ctaField("cta", true, "Get Started"),
		enum("style", false, "banner", "banner", "card", "minimal"),
	}}
}

func menuSchema() Schema {
	return Schema{Type: models.SectionMenu, Fields: []Field{
		str("heading", true, "Our menu"),
		arr("categories", 1, 4, objElem(
			str("name", true, "Mains"),
			arr("items", 1, 10, objElem(
				str("name", true, "Dish"),
				str("description", false, ""),
				str("price", true, "$12"),
			)),
		)),
	}}
}

func portfolioSchema() Schema {
	return Schema{Type: models.SectionPortfolio, Fields: []Field{
		str("heading", true, "Selected work"),
		str("subheading", false, ""),
		arr("projects", 2, 9, objElem(
			str("title", true, "Project"),
			str("description", false, ""),
			str("image", false, ""),
			Field{Name: "tags", Kind: KindArray, MinItems: 0, MaxItems: 5, Elem: &Field{Kind: KindString, MaxLen: 50}},
		)),
	}}
}

func teamSchema() Schema {
	return Schema{Type: models.SectionTeam, Fields: []Field{
		str("heading", true, "Meet the team"),
		arr("members", 1, 8, objElem(
			str("name", true, "Alex Smith"),
			str("role", true, "Founder"),
			str("bio", false, ""),
			str("photo", false, ""),
		)),
	}}
}

func gallerySchema() Schema {
	return Schema{Type: models.SectionGallery, Fields: []Field{
		str("heading", false, "Gallery"),
		arr("images", 3, 12, objElem(
			str("url", true, ""),
			str("alt", true, "Gallery image"),
			str("caption", false, ""),
		)),
	}}
}

func contactSchema() Schema {
	return Schema{Type: models.SectionContact, Fields: []Field{
		str("heading", true, "Get in touch"),
		str("subheading", false, ""),
		str("email", false, ""),
		str("phone", false, ""),
		str("address", false, ""),
		boolean("showForm", true),
	}}
}

func statsSchema() Schema {
	return Schema{Type: models.SectionStats, Fields: []Field{
		str("heading", false, ""),
		arr("items", 2, 4, objElem(
			str("value", true, "100+"),
			str("label", true, "Happy customers"),
		)),
	}}
}

func logosSchema() Schema {
	return Schema{Type: models.SectionLogos, Fields: []Field{
		str("heading", false, "Trusted by"),
		arr("items", 3, 8, objElem(
			str("name", true, "Acme Inc"),
			str("logoUrl", false, ""),
		)),
	}}
}

func aboutSchema() Schema {
	return Schema{Type: models.SectionAbout, Fields: []Field{
		str("heading", true, "About us"),
		str("body", true, "Tell your story in a few short paragraphs."),
		str("image", false, ""),
		enum("layout", false, "image-left", "image-left", "image-right", "text-only"),
	}}
}

func servicesSchema() Schema {
	return Schema{Type: models.SectionServices, Fields: []Field{
		str("heading", true, "What we offer"),
		str("subheading", false, ""),
		arr("items", 2, 6, objElem(
			str("title", true, "Service"),
			str("description", true, "Describe the service."),
			str("icon", false, "briefcase"),
		)),
	}}
}
