package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubModerator struct {
	result *ModerationResult
	err    error
	calls  int
}

func (m *stubModerator) CheckSafety(context.Context, string) (*ModerationResult, error) {
	m.calls++
	return m.result, m.err
}

func TestFallbackModerator(t *testing.T) {
	t.Run("primary success skips backup", func(t *testing.T) {
		primary := &stubModerator{result: &ModerationResult{Safe: true}}
		backup := &stubModerator{result: &ModerationResult{Safe: true}}
		m := &fallbackModerator{primary: primary, backup: backup}

		res, err := m.CheckSafety(context.Background(), "hello")
		if err != nil || !res.Safe {
			t.Fatalf("res=%+v err=%v", res, err)
		}
		if backup.calls != 0 {
			t.Error("backup was called despite primary success")
		}
	})

	t.Run("flagged result is final", func(t *testing.T) {
		primary := &stubModerator{result: &ModerationResult{Safe: false, Categories: []string{"violence"}}}
		backup := &stubModerator{result: &ModerationResult{Safe: true}}
		m := &fallbackModerator{primary: primary, backup: backup}

		res, err := m.CheckSafety(context.Background(), "bad prompt")
		if err != nil {
			t.Fatalf("err=%v", err)
		}
		if res.Safe {
			t.Error("flagged primary result was overridden")
		}
		if backup.calls != 0 {
			t.Error("backup consulted for a second opinion")
		}
	})

	t.Run("primary error falls through", func(t *testing.T) {
		primary := &stubModerator{err: errors.New("rate limited")}
		backup := &stubModerator{result: &ModerationResult{Safe: true}}
		m := &fallbackModerator{primary: primary, backup: backup}

		res, err := m.CheckSafety(context.Background(), "hello")
		if err != nil || !res.Safe {
			t.Fatalf("res=%+v err=%v", res, err)
		}
		if backup.calls != 1 {
			t.Errorf("backup calls = %d", backup.calls)
		}
	})
}

func TestCheckModeration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/moderations" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"results": [{"flagged": true, "categories": {"violence": true, "hate": true, "self-harm": false}}]}`))
	}))
	defer srv.Close()

	m := newOpenAIModerator("sk-test", srv.URL)

	res, err := m.CheckSafety(context.Background(), "a nasty prompt")
	if err != nil {
		t.Fatalf("CheckSafety: %v", err)
	}
	if res.Safe {
		t.Error("flagged prompt reported safe")
	}
	// Only hit categories, sorted.
	if len(res.Categories) != 2 || res.Categories[0] != "hate" || res.Categories[1] != "violence" {
		t.Errorf("categories = %v", res.Categories)
	}
}

func TestCheckModerationSafe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"flagged": false, "categories": {}}]}`))
	}))
	defer srv.Close()

	m := newMistralModerator("key", srv.URL)

	res, err := m.CheckSafety(context.Background(), "a friendly prompt")
	if err != nil {
		t.Fatalf("CheckSafety: %v", err)
	}
	if !res.Safe || len(res.Categories) != 0 {
		t.Errorf("res = %+v", res)
	}
}

func TestCheckModerationEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	m := newOpenAIModerator("key", srv.URL)

	if _, err := m.CheckSafety(context.Background(), "hello"); err == nil {
		t.Fatal("expected an error for empty results")
	}
}
