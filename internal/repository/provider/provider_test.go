package provider

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/DSTX70/teamhub-search/internal/db"
	"github.com/DSTX70/teamhub-search/internal/domain/search/entity"
)

// --- Mocks ---

type mockStore struct {
	textResult *db.SearchResult
	textErr    error
	fuzzResult *db.SearchResult
	fuzzErr    error

	lastText *db.TextQuery
	lastFuzz *db.TextQuery
}

func (m *mockStore) SearchText(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	m.lastText = q
	if m.textErr != nil {
		return nil, m.textErr
	}
	if m.textResult == nil {
		return &db.SearchResult{}, nil
	}
	return m.textResult, nil
}

func (m *mockStore) SearchFuzzy(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	m.lastFuzz = q
	if m.fuzzErr != nil {
		return nil, m.fuzzErr
	}
	if m.fuzzResult == nil {
		return &db.SearchResult{}, nil
	}
	return m.fuzzResult, nil
}

func entry(key string, score float64, fields map[string]string) db.SearchEntry {
	return db.SearchEntry{Key: key, Score: score, Fields: fields}
}

// --- Tests ---

func TestSearch_QueriesBothPredicates(t *testing.T) {
	store := &mockStore{}
	repo := NewProject(store)

	if _, err := repo.Search(context.Background(), "launch"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.lastText == nil || store.lastFuzz == nil {
		t.Fatal("both search primitives must run")
	}
	if store.lastText.IndexName != "hub:project:idx" {
		t.Errorf("text index = %q", store.lastText.IndexName)
	}
	wantFields := []string{"title", "description"}
	if !reflect.DeepEqual(store.lastText.Fields, wantFields) {
		t.Errorf("text fields = %v, want %v", store.lastText.Fields, wantFields)
	}
	// Fuzzy matching is title-only.
	if !reflect.DeepEqual(store.lastFuzz.Fields, []string{"title"}) {
		t.Errorf("fuzzy fields = %v, want [title]", store.lastFuzz.Fields)
	}
}

func TestSearch_BlendsScores(t *testing.T) {
	store := &mockStore{
		textResult: &db.SearchResult{Total: 1, Entries: []db.SearchEntry{
			entry("hub:task:t1", 0.5, map[string]string{"title": "Fix login"}),
		}},
		fuzzResult: &db.SearchResult{Total: 1, Entries: []db.SearchEntry{
			entry("hub:task:t1", 1.0, map[string]string{"title": "Fix login"}),
		}},
	}
	repo := NewTask(store)

	got, err := repo.Search(context.Background(), "login")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	want := lexicalWeight*0.5 + fuzzyWeight*1.0
	if math.Abs(got[0].Score()-want) > 1e-9 {
		t.Errorf("Score() = %f, want %f", got[0].Score(), want)
	}
}

func TestSearch_EitherPredicateQualifies(t *testing.T) {
	store := &mockStore{
		textResult: &db.SearchResult{Total: 1, Entries: []db.SearchEntry{
			entry("hub:brand:lex-only", 0.8, map[string]string{"title": "Acme"}),
		}},
		fuzzResult: &db.SearchResult{Total: 1, Entries: []db.SearchEntry{
			entry("hub:brand:fuzz-only", 0.6, map[string]string{"title": "Acmee"}),
		}},
	}
	repo := NewBrand(store)

	got, err := repo.Search(context.Background(), "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	byID := map[string]float64{}
	for i := range got {
		byID[got[i].ID()] = got[i].Score()
	}
	if math.Abs(byID["lex-only"]-lexicalWeight*0.8) > 1e-9 {
		t.Errorf("lex-only score = %f", byID["lex-only"])
	}
	if math.Abs(byID["fuzz-only"]-fuzzyWeight*0.6) > 1e-9 {
		t.Errorf("fuzz-only score = %f", byID["fuzz-only"])
	}
}

func TestSearch_BuildsPathAndExtras(t *testing.T) {
	store := &mockStore{
		textResult: &db.SearchResult{Total: 1, Entries: []db.SearchEntry{
			entry("hub:project:p1", 0.5, map[string]string{
				"title":    "Website relaunch",
				"status":   "active",
				"due_date": "2026-09-30",
				"ignored":  "x",
			}),
		}},
	}
	repo := NewProject(store)

	got, err := repo.Search(context.Background(), "relaunch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	c := &got[0]
	wantPath := []string{rootCrumb, "Projects", "Website relaunch"}
	if !reflect.DeepEqual(c.Path(), wantPath) {
		t.Errorf("Path() = %v, want %v", c.Path(), wantPath)
	}
	wantExtras := map[string]string{"status": "active", "due_date": "2026-09-30"}
	if !reflect.DeepEqual(c.Extras(), wantExtras) {
		t.Errorf("Extras() = %v, want %v", c.Extras(), wantExtras)
	}
}

func TestSearch_SkipsMalformedRows(t *testing.T) {
	store := &mockStore{
		textResult: &db.SearchResult{Total: 3, Entries: []db.SearchEntry{
			entry("hub:agent:", 0.9, map[string]string{"title": "No id"}),
			entry("hub:agent:a2", 0.8, map[string]string{}),
			entry("hub:agent:a3", 0.7, map[string]string{"title": "Valid"}),
		}},
	}
	repo := NewAgent(store)

	got, err := repo.Search(context.Background(), "agent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "a3" {
		t.Errorf("got %d candidates, want only a3", len(got))
	}
}

func TestSearch_StoreErrorPropagates(t *testing.T) {
	wantErr := errors.New("index missing")
	store := &mockStore{textErr: wantErr}
	repo := NewTask(store)

	_, err := repo.Search(context.Background(), "query")
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
}

func TestAll_CoversEveryEntityType(t *testing.T) {
	repos := All(&mockStore{})
	if len(repos) != len(entity.All()) {
		t.Fatalf("len(All()) = %d, want %d", len(repos), len(entity.All()))
	}
	for i, typ := range entity.All() {
		if repos[i].EntityType() != typ {
			t.Errorf("repos[%d] = %s, want %s", i, repos[i].EntityType(), typ)
		}
	}
}
