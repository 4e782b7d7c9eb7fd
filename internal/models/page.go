// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Theme holds the page-wide color roles and font family. Sections reference
// the theme but never own or mutate it.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	FontFamily string `json:"font_family"`
}

// DefaultTheme returns the starter theme applied to newly generated pages.
func DefaultTheme() Theme {
	return Theme{
		Primary:    "#4f46e5",
		Secondary:  "#0ea5e9",
		Accent:     "#f59e0b",
		Background: "#ffffff",
		Text:       "#111827",
		FontFamily: "Inter",
	}
}

// Page is a landing page: an ordered collection of sections plus a theme.
type Page struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Theme       Theme     `json:"theme"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
