// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the PostgreSQL persistence layer. Section content,
// style overrides, variants and page themes are stored as JSONB documents;
// everything else is regular relational columns.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"pagecraft/internal/models"
)

// PageStore handles all page-level database operations.
type PageStore struct {
	db *sql.DB
}

// NewPageStore creates a new PageStore with the given database connection.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

// List returns all pages ordered by creation date descending.
func (s *PageStore) List() ([]models.Page, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, theme, created_at, updated_at
		FROM pages
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

// FindByID retrieves a page by its UUID. Returns nil if not found.
func (s *PageStore) FindByID(id uuid.UUID) (*models.Page, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, theme, created_at, updated_at
		FROM pages WHERE id = $1
	`, id)

	p, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	return p, nil
}

// Create inserts a new page and returns it with the generated ID.
func (s *PageStore) Create(p *models.Page) (*models.Page, error) {
	theme, err := json.Marshal(p.Theme)
	if err != nil {
		return nil, fmt.Errorf("marshal theme: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO pages (title, description, theme)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, theme, created_at, updated_at
	`, p.Title, p.Description, theme)

	result, err := scanPage(row)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return result, nil
}

// Update modifies a page's title, description and theme.
func (s *PageStore) Update(p *models.Page) error {
	theme, err := json.Marshal(p.Theme)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE pages SET
			title = $1, description = $2, theme = $3, updated_at = NOW()
		WHERE id = $4
	`, p.Title, p.Description, theme, p.ID)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// UpdateTheme replaces only the theme document.
func (s *PageStore) UpdateTheme(id uuid.UUID, theme models.Theme) error {
	payload, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE pages SET theme = $1, updated_at = NOW() WHERE id = $2
	`, payload, id)
	if err != nil {
		return fmt.Errorf("update page theme: %w", err)
	}
	return nil
}

// Delete removes a page by ID. Sections are removed by the FK cascade.
func (s *PageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(row rowScanner) (*models.Page, error) {
	p := &models.Page{}
	var theme []byte
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &theme, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if len(theme) > 0 {
		if err := json.Unmarshal(theme, &p.Theme); err != nil {
			return nil, fmt.Errorf("unmarshal theme: %w", err)
		}
	}
	return p, nil
}
