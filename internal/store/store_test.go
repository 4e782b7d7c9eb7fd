// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pagecraft/internal/database"
	"pagecraft/internal/models"
	"pagecraft/internal/schema"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "pagecraft")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "pagecraft")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testPage creates a throwaway page and registers its removal. The FK
// cascade removes any sections created under it.
func testPage(t *testing.T, db *sql.DB, title string) *models.Page {
	t.Helper()

	pages := NewPageStore(db)
	p, err := pages.Create(&models.Page{Title: title, Theme: models.DefaultTheme()})
	if err != nil {
		t.Fatalf("create test page: %v", err)
	}
	t.Cleanup(func() { pages.Delete(p.ID) })
	return p
}

// testSection creates a section of the given type with default content.
func testSection(t *testing.T, db *sql.DB, page *models.Page, st models.SectionType) *models.Section {
	t.Helper()

	sections := NewSectionStore(db)
	sec, err := sections.Create(&models.Section{
		PageID:     page.ID,
		Type:       st,
		IsVisible:  true,
		Content:    schema.DefaultsFor(st),
		TemplateID: string(st) + "-test",
	})
	if err != nil {
		t.Fatalf("create test section: %v", err)
	}
	return sec
}
