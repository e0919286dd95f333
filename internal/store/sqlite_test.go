package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/promptai/ims-mcp/internal/schema"
	"github.com/promptai/ims-mcp/internal/store"
)

func newTestStore(t *testing.T) *store.SQLite {
	t.Helper()
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "ims.db"), schema.Tables)
	if err != nil {
		t.Fatalf("OpenSQLite() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func insertCompany(t *testing.T, s *store.SQLite, name, status string) map[string]any {
	t.Helper()
	row, err := s.Insert(context.Background(), "companies", map[string]any{
		"name":   name,
		"status": status,
	})
	if err != nil {
		t.Fatalf("Insert(%s) error: %v", name, err)
	}
	return row
}

func TestInsert_ReturnsStoredRow(t *testing.T) {
	s := newTestStore(t)

	row := insertCompany(t, s, "Acme Constructions", "lead")

	id, _ := row["id"].(string)
	if !schema.IsUUID(id) {
		t.Errorf("id = %v, want generated UUID", row["id"])
	}
	if row["name"] != "Acme Constructions" || row["status"] != "lead" {
		t.Errorf("row = %v", row)
	}
	if row["created_at"] == nil || row["updated_at"] == nil {
		t.Error("timestamps should be set by the store")
	}
	if row["notes"] != nil {
		t.Errorf("absent column should be nil, got %v", row["notes"])
	}
}

func TestInsert_ValueRoundTrips(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	company := insertCompany(t, s, "Acme", "lead")
	contact, err := s.Insert(ctx, "contacts", map[string]any{
		"company_id":        company["id"],
		"name":              "Jane",
		"is_decision_maker": true,
	})
	if err != nil {
		t.Fatalf("Insert(contacts) error: %v", err)
	}
	if contact["is_decision_maker"] != true {
		t.Errorf("boolean did not round-trip: %v", contact["is_decision_maker"])
	}

	task, err := s.Insert(ctx, "contact_tasks", map[string]any{
		"contact_id":    contact["id"],
		"task_name":     "Prepare cost estimates",
		"linked_skills": []any{"estimating", "takeoffs"},
	})
	if err != nil {
		t.Fatalf("Insert(contact_tasks) error: %v", err)
	}
	if !reflect.DeepEqual(task["linked_skills"], []any{"estimating", "takeoffs"}) {
		t.Errorf("string_array did not round-trip: %v", task["linked_skills"])
	}

	eng, err := s.Insert(ctx, "engagements", map[string]any{
		"company_id":      company["id"],
		"proposal_id":     company["id"],
		"milestone_dates": map[string]any{"kickoff": "2024-06-01"},
	})
	if err != nil {
		t.Fatalf("Insert(engagements) error: %v", err)
	}
	if !reflect.DeepEqual(eng["milestone_dates"], map[string]any{"kickoff": "2024-06-01"}) {
		t.Errorf("json did not round-trip: %v", eng["milestone_dates"])
	}
}

func TestInsert_UnknownTable(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Insert(context.Background(), "nope", map[string]any{}); err == nil {
		t.Error("unknown table should be an error")
	}
}

func TestList_FiltersAndWindow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertCompany(t, s, "Acme", "lead")
	insertCompany(t, s, "BuildCo", "training")
	insertCompany(t, s, "CivicWorks", "training")

	rows, err := s.List(ctx, "companies", store.ListParams{
		Filters: []store.Filter{{Column: "status", Value: "training"}},
		OrderBy: "name",
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["name"] != "BuildCo" || rows[1]["name"] != "CivicWorks" {
		t.Errorf("ordering wrong: %v, %v", rows[0]["name"], rows[1]["name"])
	}

	rows, err = s.List(ctx, "companies", store.ListParams{
		Filters: []store.Filter{{Column: "status", Value: "training"}},
		OrderBy: "name",
		Offset:  1,
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("List() with offset error: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "CivicWorks" {
		t.Errorf("offset window wrong: %v", rows)
	}
}

func TestList_SearchIsCaseInsensitivePartial(t *testing.T) {
	s := newTestStore(t)

	insertCompany(t, s, "Acme Constructions", "lead")
	insertCompany(t, s, "BuildCo", "lead")

	rows, err := s.List(context.Background(), "companies", store.ListParams{
		Search: "acme",
		Limit:  10,
	})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "Acme Constructions" {
		t.Errorf("search results = %v", rows)
	}
}

func TestList_DescendingOrder(t *testing.T) {
	s := newTestStore(t)

	insertCompany(t, s, "Acme", "lead")
	insertCompany(t, s, "BuildCo", "lead")

	rows, err := s.List(context.Background(), "companies", store.ListParams{
		OrderBy:    "name",
		Descending: true,
		Limit:      10,
	})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if rows[0]["name"] != "BuildCo" {
		t.Errorf("descending order wrong: %v", rows[0]["name"])
	}
}

func TestList_RejectsUnknownColumns(t *testing.T) {
	s := newTestStore(t)

	_, err := s.List(context.Background(), "companies", store.ListParams{
		Filters: []store.Filter{{Column: "evil; DROP TABLE companies", Value: 1}},
		Limit:   10,
	})
	if err == nil {
		t.Error("undeclared filter column should be rejected")
	}

	_, err = s.List(context.Background(), "companies", store.ListParams{
		OrderBy: "evil",
		Limit:   10,
	})
	if err == nil {
		t.Error("undeclared order_by column should be rejected")
	}
}

func TestList_BooleanFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	company := insertCompany(t, s, "Acme", "lead")
	for _, dm := range []bool{true, false, true} {
		if _, err := s.Insert(ctx, "contacts", map[string]any{
			"company_id":        company["id"],
			"name":              "Contact",
			"is_decision_maker": dm,
		}); err != nil {
			t.Fatalf("Insert() error: %v", err)
		}
	}

	rows, err := s.List(ctx, "contacts", store.ListParams{
		Filters: []store.Filter{{Column: "is_decision_maker", Value: true}},
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("got %d decision makers, want 2", len(rows))
	}
}

func TestUpdate_AppliesPatch(t *testing.T) {
	s := newTestStore(t)

	row := insertCompany(t, s, "Acme", "lead")
	id := row["id"].(string)

	updated, err := s.Update(context.Background(), "companies", id, map[string]any{
		"status": "contacted",
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated["status"] != "contacted" {
		t.Errorf("status = %v, want contacted", updated["status"])
	}
	if updated["name"] != "Acme" {
		t.Errorf("untouched column changed: %v", updated["name"])
	}
}

func TestUpdate_MissingRowIsNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Update(context.Background(), "companies",
		"99999999-9999-9999-9999-999999999999", map[string]any{"status": "lead"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDelete_RemovesRowAndIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	row := insertCompany(t, s, "Acme", "lead")
	id := row["id"].(string)

	if err := s.Delete(ctx, "companies", id); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	rows, err := s.List(ctx, "companies", store.ListParams{Limit: 10})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("row still present after delete: %v", rows)
	}

	// Deleting a row that no longer exists is not an error.
	if err := s.Delete(ctx, "companies", id); err != nil {
		t.Errorf("second Delete() error: %v", err)
	}
}

func TestOpenSQLite_Reopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ims.db")

	s, err := store.OpenSQLite(path, schema.Tables)
	if err != nil {
		t.Fatalf("OpenSQLite() error: %v", err)
	}
	row, err := s.Insert(context.Background(), "companies", map[string]any{"name": "Acme"})
	if err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	// Second open migrates idempotently and sees existing data.
	s2, err := store.OpenSQLite(path, schema.Tables)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer s2.Close()

	rows, err := s2.List(context.Background(), "companies", store.ListParams{Limit: 10})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(rows) != 1 || rows[0]["id"] != row["id"] {
		t.Errorf("persisted rows = %v", rows)
	}
}
