package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"pagecraft/internal/models"
)

func TestSectionCreateAssignsPositions(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	p := testPage(t, db, "Position Test")
	first := testSection(t, db, p, models.SectionHero)
	second := testSection(t, db, p, models.SectionFeatures)
	third := testSection(t, db, p, models.SectionCTA)

	if first.Position != 0 || second.Position != 1 || third.Position != 2 {
		t.Errorf("positions = %d, %d, %d", first.Position, second.Position, third.Position)
	}

	listed, err := sections.ListByPage(p.ID)
	if err != nil {
		t.Fatalf("ListByPage: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("got %d sections", len(listed))
	}
	if listed[0].Type != models.SectionHero || listed[2].Type != models.SectionCTA {
		t.Errorf("order: %s, %s, %s", listed[0].Type, listed[1].Type, listed[2].Type)
	}
}

func TestSectionDocumentRoundTrip(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	p := testPage(t, db, "Document Test")
	sec := testSection(t, db, p, models.SectionHero)

	if sec.StyleOverrides != nil {
		t.Error("fresh section has overrides")
	}

	sec.StyleOverrides = &models.StyleOverrides{
		Section:  "bg-slate-900",
		Elements: map[string]string{"headline": "text-6xl"},
	}
	sec.Variants = []map[string]any{sec.Content}
	sec.SelectedVariant = 1

	updated, err := sections.UpdateDocument(sec, sec.UpdatedAt)
	if err != nil {
		t.Fatalf("UpdateDocument: %v", err)
	}

	found, err := sections.FindByID(updated.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.StyleOverrides == nil || found.StyleOverrides.Elements["headline"] != "text-6xl" {
		t.Errorf("overrides = %+v", found.StyleOverrides)
	}
	if len(found.Variants) != 1 || found.SelectedVariant != 1 {
		t.Errorf("variants = %d selected = %d", len(found.Variants), found.SelectedVariant)
	}
	if found.Content["headline"] == "" {
		t.Error("content lost in round trip")
	}
}

func TestSectionUpdateDocumentStaleWrite(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	p := testPage(t, db, "CAS Test")
	sec := testSection(t, db, p, models.SectionHero)

	// First writer wins.
	if _, err := sections.UpdateDocument(sec, sec.UpdatedAt); err != nil {
		t.Fatalf("first UpdateDocument: %v", err)
	}

	// Second writer still holds the old read timestamp.
	_, err := sections.UpdateDocument(sec, sec.UpdatedAt)
	if !errors.Is(err, ErrStaleWrite) {
		t.Fatalf("expected ErrStaleWrite, got %v", err)
	}
}

func TestSectionUpdateDocumentMissingRow(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	p := testPage(t, db, "Missing Row Test")
	sec := testSection(t, db, p, models.SectionHero)
	if err := sections.Delete(sec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := sections.UpdateDocument(sec, sec.UpdatedAt)
	if !errors.Is(err, ErrStaleWrite) {
		t.Fatalf("expected ErrStaleWrite for a deleted row, got %v", err)
	}
}

func TestSectionSetVisibility(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	p := testPage(t, db, "Visibility Test")
	sec := testSection(t, db, p, models.SectionHero)

	if err := sections.SetVisibility(sec.ID, false); err != nil {
		t.Fatalf("SetVisibility: %v", err)
	}

	found, _ := sections.FindByID(sec.ID)
	if found.IsVisible {
		t.Error("section still visible")
	}
}

func TestSectionReorder(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	p := testPage(t, db, "Reorder Test")
	a := testSection(t, db, p, models.SectionHero)
	b := testSection(t, db, p, models.SectionFeatures)
	c := testSection(t, db, p, models.SectionCTA)

	if err := sections.Reorder(p.ID, []uuid.UUID{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	listed, err := sections.ListByPage(p.ID)
	if err != nil {
		t.Fatalf("ListByPage: %v", err)
	}
	got := []models.SectionType{listed[0].Type, listed[1].Type, listed[2].Type}
	want := []models.SectionType{models.SectionCTA, models.SectionHero, models.SectionFeatures}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSectionReorderRejectsForeignSection(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	ours := testPage(t, db, "Reorder Owner")
	theirs := testPage(t, db, "Reorder Intruder")
	a := testSection(t, db, ours, models.SectionHero)
	foreign := testSection(t, db, theirs, models.SectionHero)

	if err := sections.Reorder(ours.ID, []uuid.UUID{foreign.ID, a.ID}); err == nil {
		t.Fatal("expected an error for a section from another page")
	}

	// The transaction rolled back: the foreign section is untouched.
	found, _ := sections.FindByID(foreign.ID)
	if found.PageID != theirs.ID || found.Position != 0 {
		t.Errorf("foreign section changed: %+v", found)
	}
}

func TestSectionUpdateTouchesTimestamp(t *testing.T) {
	db := testDB(t)
	sections := NewSectionStore(db)

	p := testPage(t, db, "Timestamp Test")
	sec := testSection(t, db, p, models.SectionHero)

	time.Sleep(10 * time.Millisecond)
	updated, err := sections.UpdateDocument(sec, sec.UpdatedAt)
	if err != nil {
		t.Fatalf("UpdateDocument: %v", err)
	}
	if !updated.UpdatedAt.After(sec.UpdatedAt) {
		t.Errorf("updated_at did not advance: %v -> %v", sec.UpdatedAt, updated.UpdatedAt)
	}
}
