// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pagecraft/internal/models"
)

// ErrStaleWrite is returned when a section update carries an updated_at that
// no longer matches the stored row, meaning another writer got there first.
var ErrStaleWrite = errors.New("section was modified by another request")

// SectionStore handles all section-related database operations.
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore creates a new SectionStore with the given database connection.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

const sectionColumns = `id, page_id, type, position, is_visible, content,
	       template_id, style_overrides, variants, selected_variant,
	       created_at, updated_at`

// ListByPage returns all sections of a page ordered by position.
func (s *SectionStore) ListByPage(pageID uuid.UUID) ([]models.Section, error) {
	rows, err := s.db.Query(`
		SELECT `+sectionColumns+`
		FROM sections
		WHERE page_id = $1
		ORDER BY position ASC
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *sec)
	}
	return sections, rows.Err()
}

// FindByID retrieves a section by its UUID. Returns nil if not found.
func (s *SectionStore) FindByID(id uuid.UUID) (*models.Section, error) {
	row := s.db.QueryRow(`
		SELECT `+sectionColumns+`
		FROM sections WHERE id = $1
	`, id)

	sec, err := scanSection(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find section by id: %w", err)
	}
	return sec, nil
}

// Create inserts a new section at the end of its page and returns it with
// the generated ID and position.
func (s *SectionStore) Create(sec *models.Section) (*models.Section, error) {
	content, overrides, variants, err := marshalSectionDocs(sec)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO sections (page_id, type, position, is_visible, content,
		                      template_id, style_overrides, variants, selected_variant)
		VALUES ($1, $2,
		        (SELECT COALESCE(MAX(position), -1) + 1 FROM sections WHERE page_id = $1),
		        $3, $4, $5, $6, $7, $8)
		RETURNING `+sectionColumns+`
	`, sec.PageID, sec.Type, sec.IsVisible, content,
		sec.TemplateID, overrides, variants, sec.SelectedVariant)

	result, err := scanSection(row)
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return result, nil
}

// UpdateDocument replaces a section's mutable document fields (content,
// template, style overrides, variants, visibility). The write is guarded by
// a compare-and-swap on updated_at: if the row changed since the caller read
// it, ErrStaleWrite is returned and nothing is written.
func (s *SectionStore) UpdateDocument(sec *models.Section, readAt time.Time) (*models.Section, error) {
	content, overrides, variants, err := marshalSectionDocs(sec)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		UPDATE sections SET
			content = $1, template_id = $2, type = $3, style_overrides = $4,
			variants = $5, selected_variant = $6, is_visible = $7,
			updated_at = NOW()
		WHERE id = $8 AND updated_at = $9
		RETURNING `+sectionColumns+`
	`, content, sec.TemplateID, sec.Type, overrides,
		variants, sec.SelectedVariant, sec.IsVisible, sec.ID, readAt)

	result, err := scanSection(row)
	if err == sql.ErrNoRows {
		// Row exists but updated_at moved, or the section is gone. Either
		// way the caller's read is no longer current.
		return nil, ErrStaleWrite
	}
	if err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	}
	return result, nil
}

// SetVisibility toggles whether a section renders.
func (s *SectionStore) SetVisibility(id uuid.UUID, visible bool) error {
	_, err := s.db.Exec(`
		UPDATE sections SET is_visible = $1, updated_at = NOW() WHERE id = $2
	`, visible, id)
	if err != nil {
		return fmt.Errorf("set section visibility: %w", err)
	}
	return nil
}

// Reorder rewrites the position of every section on a page to match the
// given ID order. Runs in a transaction; IDs not belonging to the page are
// rejected.
func (s *SectionStore) Reorder(pageID uuid.UUID, order []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reorder begin: %w", err)
	}
	defer tx.Rollback()

	for position, id := range order {
		res, err := tx.Exec(`
			UPDATE sections SET position = $1, updated_at = NOW()
			WHERE id = $2 AND page_id = $3
		`, position, id, pageID)
		if err != nil {
			return fmt.Errorf("reorder section %s: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reorder rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("reorder: section %s does not belong to page %s", id, pageID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reorder commit: %w", err)
	}
	return nil
}

// Delete removes a section by ID.
func (s *SectionStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}

func marshalSectionDocs(sec *models.Section) (content, overrides, variants []byte, err error) {
	content, err = json.Marshal(sec.Content)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal section content: %w", err)
	}

	if !sec.StyleOverrides.IsZero() {
		overrides, err = json.Marshal(sec.StyleOverrides)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("marshal style overrides: %w", err)
		}
	}

	if sec.Variants == nil {
		variants = []byte("[]")
	} else {
		variants, err = json.Marshal(sec.Variants)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("marshal variants: %w", err)
		}
	}
	return content, overrides, variants, nil
}

func scanSection(row rowScanner) (*models.Section, error) {
	sec := &models.Section{}
	var content, overrides, variants []byte
	if err := row.Scan(
		&sec.ID, &sec.PageID, &sec.Type, &sec.Position, &sec.IsVisible, &content,
		&sec.TemplateID, &overrides, &variants, &sec.SelectedVariant,
		&sec.CreatedAt, &sec.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(content) > 0 {
		if err := json.Unmarshal(content, &sec.Content); err != nil {
			return nil, fmt.Errorf("unmarshal section content: %w", err)
		}
	}
	if len(overrides) > 0 {
		sec.StyleOverrides = &models.StyleOverrides{}
		if err := json.Unmarshal(overrides, sec.StyleOverrides); err != nil {
			return nil, fmt.Errorf("unmarshal style overrides: %w", err)
		}
	}
	if len(variants) > 0 {
		if err := json.Unmarshal(variants, &sec.Variants); err != nil {
			return nil, fmt.Errorf("unmarshal variants: %w", err)
		}
	}
	return sec, nil
}
