// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared helpers for handler integration tests.
// Tests that need PostgreSQL are skipped when it is not reachable; the AI
// layer is always stubbed so no test talks to a real provider.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pagecraft/internal/ai"
	"pagecraft/internal/database"
	"pagecraft/internal/editor"
	"pagecraft/internal/store"
)

// stubGenerator returns a canned completion for the edit engine.
type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(context.Context, string, string) (string, error) {
	return s.response, s.err
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "pagecraft")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "pagecraft")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testServer wires a full API against the test database and a stubbed
// completion service, mounted on the real route shapes.
func testServer(t *testing.T, llm editor.Generator) http.Handler {
	t.Helper()

	db := testDB(t)
	api := NewAPI(
		store.NewPageStore(db),
		store.NewSectionStore(db),
		nil, // no cache in tests
		editor.NewEngine(llm),
		ai.NewRegistry("openai", nil),
	)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/pages", api.PageCreate)
		r.Route("/pages/{id}", func(r chi.Router) {
			r.Get("/", api.PageGet)
			r.Delete("/", api.PageDelete)
			r.Post("/sections", api.SectionCreate)
			r.Put("/sections/reorder", api.SectionsReorder)
		})
		r.Route("/sections/{id}", func(r chi.Router) {
			r.Get("/", api.SectionGet)
			r.Put("/", api.SectionUpdate)
			r.Put("/style", api.SectionStyle)
			r.Put("/visibility", api.SectionVisibility)
			r.Put("/variant", api.SectionVariant)
			r.Post("/variants", api.SectionVariantAdd)
			r.Post("/edit", api.SectionEdit)
			r.Post("/switch-template", api.SectionSwitchTemplate)
		})
	})
	return r
}

// doJSON performs a request with a JSON body and decodes the JSON response
// into out (when out is non-nil).
func doJSON(t *testing.T, h http.Handler, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response (%d): %v\n%s", rec.Code, err, rec.Body.String())
		}
	}
	return rec
}
