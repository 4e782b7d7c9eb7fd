package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"pagecraft/internal/models"
	"pagecraft/internal/schema"
	"pagecraft/internal/templates"
)

// Seed populates the database with initial development data.
// It creates a demo landing page with a starter set of sections so the
// editor has something to work on immediately. Skipped when any page
// already exists.
func Seed(db *sql.DB) error {
	// Check if any pages exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM pages").Scan(&count); err != nil {
		return fmt.Errorf("seed check pages: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	theme, err := json.Marshal(models.DefaultTheme())
	if err != nil {
		return fmt.Errorf("seed marshal theme: %w", err)
	}

	var pageID string
	err = db.QueryRow(`
		INSERT INTO pages (title, description, theme)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "Demo Landing Page", "A starter page seeded for development.", theme).Scan(&pageID)
	if err != nil {
		return fmt.Errorf("seed insert page: %w", err)
	}

	// A representative starter layout: hero on top, call to action at the
	// bottom. Content comes from the schema defaults, so every section is
	// valid from the first render.
	starter := []models.SectionType{
		models.SectionHero,
		models.SectionFeatures,
		models.SectionTestimonials,
		models.SectionCTA,
	}

	for position, sectionType := range starter {
		content, err := json.Marshal(schema.DefaultsFor(sectionType))
		if err != nil {
			return fmt.Errorf("seed marshal %s content: %w", sectionType, err)
		}

		_, err = db.Exec(`
			INSERT INTO sections (page_id, type, position, content, template_id)
			VALUES ($1, $2, $3, $4, $5)
		`, pageID, sectionType, position, content, templates.DefaultIDFor(sectionType))
		if err != nil {
			return fmt.Errorf("seed insert %s section: %w", sectionType, err)
		}
	}

	slog.Info("database seeded with demo page",
		"page_id", pageID,
		"sections", len(starter),
	)

	return nil
}
