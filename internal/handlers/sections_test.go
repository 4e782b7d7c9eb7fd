package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pagecraft/internal/models"
)

// TestSectionLifecycle walks a section through the full editing flow against
// a real database: create, content update, visibility, variants, an AI style
// edit, and a same-type template switch.
func TestSectionLifecycle(t *testing.T) {
	srv := testServer(t, &stubGenerator{
		response: `{"explanation": "Larger headline.", "styleOverrides": {"elements": {"headline": "text-6xl"}}}`,
	})

	// Create a page.
	var page models.Page
	rec := doJSON(t, srv, http.MethodPost, "/api/pages",
		map[string]string{"title": "Lifecycle Test"}, &page)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create page: %d %s", rec.Code, rec.Body.String())
	}
	defer doJSON(t, srv, http.MethodDelete, "/api/pages/"+page.ID.String(), nil, nil)

	// Add a hero section; content starts from the schema defaults.
	var sec models.Section
	rec = doJSON(t, srv, http.MethodPost, "/api/pages/"+page.ID.String()+"/sections",
		map[string]string{"type": "hero"}, &sec)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create section: %d %s", rec.Code, rec.Body.String())
	}
	if sec.TemplateID != "hero-centered" {
		t.Errorf("template = %q, want the type default", sec.TemplateID)
	}
	if sec.Content["headline"] == "" {
		t.Error("section has no default content")
	}

	secURL := "/api/sections/" + sec.ID.String()

	// Replace the content.
	content := sec.Content
	content["headline"] = "A better headline"
	rec = doJSON(t, srv, http.MethodPut, secURL, map[string]any{"content": content}, &sec)
	if rec.Code != http.StatusOK {
		t.Fatalf("update content: %d %s", rec.Code, rec.Body.String())
	}
	if sec.Content["headline"] != "A better headline" {
		t.Errorf("content = %v", sec.Content)
	}

	// Apply a manual style patch; an unknown selector warns but passes.
	var styled styleResponse
	rec = doJSON(t, srv, http.MethodPut, secURL+"/style", map[string]any{
		"style_overrides": map[string]any{
			"section":  "bg-slate-900",
			"elements": map[string]string{"headline": "text-5xl", "sidebar": "w-64"},
		},
	}, &styled)
	if rec.Code != http.StatusOK {
		t.Fatalf("style patch: %d %s", rec.Code, rec.Body.String())
	}
	if styled.Section.StyleOverrides == nil || styled.Section.StyleOverrides.Section != "bg-slate-900" {
		t.Errorf("overrides = %+v", styled.Section.StyleOverrides)
	}
	if len(styled.Warnings) != 1 {
		t.Errorf("warnings = %v", styled.Warnings)
	}
	sec = *styled.Section

	// An ungrammatical selector is rejected outright.
	rec = doJSON(t, srv, http.MethodPut, secURL+"/style", map[string]any{
		"style_overrides": map[string]any{"elements": map[string]string{"head..line": "text-xl"}},
	}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad selector: %d", rec.Code)
	}

	// Hide it.
	rec = doJSON(t, srv, http.MethodPut, secURL+"/visibility",
		map[string]bool{"is_visible": false}, &sec)
	if rec.Code != http.StatusOK || sec.IsVisible {
		t.Fatalf("visibility: %d visible=%v", rec.Code, sec.IsVisible)
	}

	// Store a variant and select it.
	variant := map[string]any{
		"headline": "Variant headline",
		"cta":      map[string]any{"text": "Try it", "url": "/try"},
	}
	rec = doJSON(t, srv, http.MethodPost, secURL+"/variants",
		map[string]any{"content": variant}, &sec)
	if rec.Code != http.StatusOK {
		t.Fatalf("add variant: %d %s", rec.Code, rec.Body.String())
	}
	if len(sec.Variants) != 1 {
		t.Fatalf("variants = %d", len(sec.Variants))
	}

	rec = doJSON(t, srv, http.MethodPut, secURL+"/variant",
		map[string]int{"selected_variant": 1}, &sec)
	if rec.Code != http.StatusOK || sec.SelectedVariant != 1 {
		t.Fatalf("select variant: %d selected=%d", rec.Code, sec.SelectedVariant)
	}

	// Out-of-range selection is rejected.
	rec = doJSON(t, srv, http.MethodPut, secURL+"/variant",
		map[string]int{"selected_variant": 5}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("out-of-range variant: %d", rec.Code)
	}

	// Run an AI style edit; the stub returns a headline override.
	var edited editResponse
	rec = doJSON(t, srv, http.MethodPost, secURL+"/edit",
		map[string]string{"comment": "make the headline bigger"}, &edited)
	if rec.Code != http.StatusOK {
		t.Fatalf("edit: %d %s", rec.Code, rec.Body.String())
	}
	if !edited.Applied {
		t.Fatalf("edit not applied: %q", edited.Reason)
	}
	if edited.Section == nil || edited.Section.StyleOverrides == nil ||
		edited.Section.StyleOverrides.Elements["headline"] != "text-6xl" {
		t.Errorf("persisted overrides: %+v", edited.Section)
	}

	// Same-type template switch keeps content and overrides.
	var switched switchResponse
	rec = doJSON(t, srv, http.MethodPost, secURL+"/switch-template",
		map[string]string{"template_id": "hero-split"}, &switched)
	if rec.Code != http.StatusOK {
		t.Fatalf("switch: %d %s", rec.Code, rec.Body.String())
	}
	if switched.Transformed {
		t.Error("same-type switch was transformed")
	}
	if switched.Section.TemplateID != "hero-split" {
		t.Errorf("template = %q", switched.Section.TemplateID)
	}
	if switched.Section.StyleOverrides == nil {
		t.Error("same-type switch dropped style overrides")
	}
}

func TestSectionCreateValidation(t *testing.T) {
	srv := testServer(t, &stubGenerator{})

	var page models.Page
	rec := doJSON(t, srv, http.MethodPost, "/api/pages",
		map[string]string{"title": "Validation Test"}, &page)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create page: %d", rec.Code)
	}
	defer doJSON(t, srv, http.MethodDelete, "/api/pages/"+page.ID.String(), nil, nil)

	sectionsURL := "/api/pages/" + page.ID.String() + "/sections"

	// Unknown type.
	rec = doJSON(t, srv, http.MethodPost, sectionsURL,
		map[string]string{"type": "carousel"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown type: %d", rec.Code)
	}

	// Template from another section type.
	rec = doJSON(t, srv, http.MethodPost, sectionsURL,
		map[string]string{"type": "hero", "template_id": "pricing-simple"}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("mismatched template: %d", rec.Code)
	}

	// Unregistered template.
	rec = doJSON(t, srv, http.MethodPost, sectionsURL,
		map[string]string{"type": "hero", "template_id": "hero-holographic"}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("unknown template: %d", rec.Code)
	}

	// Content update violating the schema.
	var sec models.Section
	doJSON(t, srv, http.MethodPost, sectionsURL, map[string]string{"type": "hero"}, &sec)
	rec = doJSON(t, srv, http.MethodPut, "/api/sections/"+sec.ID.String(),
		map[string]any{"content": map[string]any{"headline": 42}}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid content: %d", rec.Code)
	}
}

// Template checks run before the page lookup, so these cases need only the
// in-process registries. The assertions pin the exact error messages the
// typed template errors produce.
func TestSectionCreateTemplateErrors(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/pages/{id}/sections", registryAPI().SectionCreate)
	url := "/api/pages/" + uuid.NewString() + "/sections"

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "unregistered template",
			body: `{"type": "hero", "template_id": "hero-holographic"}`,
			want: `template "hero-holographic" is not registered`,
		},
		{
			name: "type mismatch",
			body: `{"type": "hero", "template_id": "pricing-simple"}`,
			want: `template "pricing-simple" renders "pricing" sections, not "hero"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error != tt.want {
				t.Errorf("error = %q, want %q", resp.Error, tt.want)
			}
		})
	}
}

func TestSectionVariantLimit(t *testing.T) {
	srv := testServer(t, &stubGenerator{})

	var page models.Page
	doJSON(t, srv, http.MethodPost, "/api/pages", map[string]string{"title": "Variant Limit Test"}, &page)
	defer doJSON(t, srv, http.MethodDelete, "/api/pages/"+page.ID.String(), nil, nil)

	var sec models.Section
	doJSON(t, srv, http.MethodPost, "/api/pages/"+page.ID.String()+"/sections",
		map[string]string{"type": "hero"}, &sec)

	variantsURL := "/api/sections/" + sec.ID.String() + "/variants"
	for i := 0; i < maxVariants; i++ {
		rec := doJSON(t, srv, http.MethodPost, variantsURL,
			map[string]any{"content": sec.Content}, &sec)
		if rec.Code != http.StatusOK {
			t.Fatalf("variant %d: %d %s", i+1, rec.Code, rec.Body.String())
		}
	}
	if len(sec.Variants) != maxVariants {
		t.Fatalf("variants = %d, want %d", len(sec.Variants), maxVariants)
	}

	rec := doJSON(t, srv, http.MethodPost, variantsURL,
		map[string]any{"content": sec.Content}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("over-limit variant: %d %s", rec.Code, rec.Body.String())
	}
}

func TestSectionEditRejectionLeavesSectionAlone(t *testing.T) {
	// The stub answers with prose instead of JSON, a soft failure.
	srv := testServer(t, &stubGenerator{response: "I would make it blue."})

	var page models.Page
	doJSON(t, srv, http.MethodPost, "/api/pages", map[string]string{"title": "Soft Fail Test"}, &page)
	defer doJSON(t, srv, http.MethodDelete, "/api/pages/"+page.ID.String(), nil, nil)

	var sec models.Section
	doJSON(t, srv, http.MethodPost, "/api/pages/"+page.ID.String()+"/sections",
		map[string]string{"type": "hero"}, &sec)

	var resp editResponse
	rec := doJSON(t, srv, http.MethodPost, "/api/sections/"+sec.ID.String()+"/edit",
		map[string]string{"comment": "make it blue"}, &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("edit: %d %s", rec.Code, rec.Body.String())
	}
	if resp.Applied {
		t.Fatal("applied despite an unusable response")
	}
	if resp.Reason == "" {
		t.Error("no user-facing reason")
	}
	if resp.Section != nil {
		t.Error("rejected edit returned a section")
	}

	// Stored state is untouched.
	var after models.Section
	doJSON(t, srv, http.MethodGet, "/api/sections/"+sec.ID.String(), nil, &after)
	if after.StyleOverrides != nil {
		t.Error("rejected edit wrote overrides")
	}
	if !after.UpdatedAt.Equal(sec.UpdatedAt) {
		t.Error("rejected edit touched the row")
	}
}

func TestSectionCrossTypeSwitchDropsElementOverrides(t *testing.T) {
	srv := testServer(t, &stubGenerator{
		response: `{"mappedContent": {"headline": "Ready when you are", "cta": {"text": "Go", "url": "#"}}, "notes": "Kept the call to action."}`,
	})

	var page models.Page
	doJSON(t, srv, http.MethodPost, "/api/pages", map[string]string{"title": "Cross Switch Test"}, &page)
	defer doJSON(t, srv, http.MethodDelete, "/api/pages/"+page.ID.String(), nil, nil)

	var sec models.Section
	doJSON(t, srv, http.MethodPost, "/api/pages/"+page.ID.String()+"/sections",
		map[string]string{"type": "hero"}, &sec)

	// Seed a variant so the switch has something to drop.
	doJSON(t, srv, http.MethodPost, "/api/sections/"+sec.ID.String()+"/variants",
		map[string]any{"content": sec.Content}, &sec)

	var switched switchResponse
	rec := doJSON(t, srv, http.MethodPost, "/api/sections/"+sec.ID.String()+"/switch-template",
		map[string]string{"template_id": "cta-banner"}, &switched)
	if rec.Code != http.StatusOK {
		t.Fatalf("switch: %d %s", rec.Code, rec.Body.String())
	}

	if !switched.Transformed {
		t.Error("cross-type switch not transformed")
	}
	if switched.Section.Type != models.SectionCTA {
		t.Errorf("type = %q", switched.Section.Type)
	}
	if len(switched.Section.Variants) != 0 || switched.Section.SelectedVariant != 0 {
		t.Error("variants survived a cross-type switch")
	}
	if switched.Section.Content["headline"] != "Ready when you are" {
		t.Errorf("content = %v", switched.Section.Content)
	}
}
