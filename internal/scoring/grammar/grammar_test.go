package grammar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHeuristicFindsCommonMistakes(t *testing.T) {
	issues, err := NewHeuristic().Check(context.Background(), "They was late so we could of started without them")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(issues), issues)
	}
}

func TestHeuristicCleanText(t *testing.T) {
	issues, err := NewHeuristic().Check(context.Background(), "They were late so we could have started without them")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestLanguageToolFiltersIssueTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/check" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse form: %v", err)
		}
		if r.PostForm.Get("language") != "en-US" {
			t.Errorf("unexpected language %q", r.PostForm.Get("language"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"matches": [
				{"message": "Possible agreement error", "rule": {"id": "AGREEMENT", "issueType": "grammar"}},
				{"message": "Possible typo", "rule": {"id": "TYPO", "issueType": "typos"}},
				{"message": "Wordy phrase", "rule": {"id": "STYLE_1", "issueType": "style"}}
			]
		}`))
	}))
	defer server.Close()

	issues, err := NewLanguageTool(server.URL).Check(context.Background(), "some answer text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues after filtering style, got %d: %v", len(issues), issues)
	}
}

func TestLanguageToolServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := NewLanguageTool(server.URL).Check(context.Background(), "text"); err == nil {
		t.Fatal("expected error for server failure")
	}
}

type failingBackend struct{}

func (failingBackend) Check(context.Context, string) ([]Issue, error) {
	return nil, errors.New("unreachable")
}

func TestFallbackUsesSecondary(t *testing.T) {
	fb := NewFallback(failingBackend{}, NewHeuristic())
	issues, err := fb.Check(context.Background(), "he have no idea")
	if err != nil {
		t.Fatalf("fallback should absorb primary failure: %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue from heuristic fallback, got %v", issues)
	}
}
