package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kgnconstruction/kgnbackend/models"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "leads.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestSQLiteStoreInsertAndList(t *testing.T) {
	store := openTestSQLite(t)
	ctx := context.Background()

	budget := "₹50 Lakhs"
	row := models.CustomProjectRequest{
		FullName:        "Ravi Kumar",
		Email:           "ravi@example.com",
		Phone:           "9845012345",
		ProjectLocation: "Hubli",
		Budget:          &budget,
	}.Row()

	rec, err := store.Insert(ctx, models.TableCustomProjects, row)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if rec.ID != "1" {
		t.Fatalf("expected first id 1, got %q", rec.ID)
	}
	if rec.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	if _, err := store.Insert(ctx, models.TableCustomProjects, row); err != nil {
		t.Fatalf("second Insert: %v", err)
	}

	items, total, err := store.List(ctx, models.TableCustomProjects, Page{Number: 1, Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(items) != 1 {
		t.Fatalf("expected 1 of 2 items, got %d of %d", len(items), total)
	}
	got := items[0]
	if got.ID != "2" {
		t.Fatalf("expected newest first, got id %q", got.ID)
	}
	if got.Fields["budget"] != budget {
		t.Fatalf("budget = %#v", got.Fields["budget"])
	}
	if got.Fields["bedrooms"] != nil {
		t.Fatalf("absent optional should read back as NULL, got %#v", got.Fields["bedrooms"])
	}
}

func TestSQLiteStoreRejectsConstraintViolation(t *testing.T) {
	store := openTestSQLite(t)

	row := models.QuoteRequest{
		FullName:    "Asha",
		Email:       "asha@example.com",
		Phone:       "1",
		ProjectType: models.ProjectType("spaceport"),
	}.Row()
	if _, err := store.Insert(context.Background(), models.TableQuotes, row); err == nil {
		t.Fatalf("expected the project_type check to reject the row")
	}

	_, total, err := store.List(context.Background(), models.TableQuotes, Page{Number: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 0 {
		t.Fatalf("rejected insert must not be stored, total=%d", total)
	}
}

func TestSQLiteStoreRejectsBadInput(t *testing.T) {
	store := openTestSQLite(t)
	ctx := context.Background()

	if _, err := store.Insert(ctx, "quotes; DROP TABLE quotes", models.Row{}); err == nil {
		t.Fatalf("expected unknown table error")
	}
	if _, err := store.Insert(ctx, models.TableQuotes, models.Row{"name) VALUES (1); --": "x"}); err == nil {
		t.Fatalf("expected invalid column error")
	}
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.db")
	for range 2 {
		store, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("OpenSQLite: %v", err)
		}
		_ = store.Close(context.Background())
	}
}
