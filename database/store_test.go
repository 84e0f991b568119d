package database

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kgnconstruction/kgnbackend/config"
	"github.com/kgnconstruction/kgnbackend/models"
)

func TestPageOffset(t *testing.T) {
	tests := []struct {
		page Page
		want int
	}{
		{Page{Number: 1, Limit: 20}, 0},
		{Page{Number: 3, Limit: 20}, 40},
		{Page{Number: 0, Limit: 20}, 0},
	}
	for _, tt := range tests {
		if got := tt.page.Offset(); got != tt.want {
			t.Fatalf("%+v.Offset() = %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestRecordFromFields(t *testing.T) {
	rec := recordFromFields(models.TableQuotes, map[string]any{
		"id":         json.Number("12"),
		"created_at": "2024-06-10 06:13:20",
		"email":      "a@b.co",
	})
	if rec.ID != "12" {
		t.Fatalf("id = %q", rec.ID)
	}
	if want := time.Date(2024, 6, 10, 6, 13, 20, 0, time.UTC); !rec.CreatedAt.Equal(want) {
		t.Fatalf("created_at = %v", rec.CreatedAt)
	}
	if len(rec.Fields) != 1 || rec.Fields["email"] != "a@b.co" {
		t.Fatalf("fields = %#v", rec.Fields)
	}
}

func TestRecordFromDocument(t *testing.T) {
	oid := bson.NewObjectID()
	created := time.Date(2024, 6, 10, 6, 13, 20, 0, time.UTC)
	rec := recordFromDocument(models.TableContactMessages, bson.M{
		"_id":        oid,
		"created_at": bson.NewDateTimeFromTime(created),
		"subject":    nil,
	})
	if rec.ID != oid.Hex() {
		t.Fatalf("id = %q, want %q", rec.ID, oid.Hex())
	}
	if !rec.CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v", rec.CreatedAt)
	}
	if v, ok := rec.Fields["subject"]; !ok || v != nil {
		t.Fatalf("expected subject to stay null, got %#v", rec.Fields)
	}
	if _, ok := rec.Fields["_id"]; ok {
		t.Fatalf("_id should be removed from fields")
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(t.Context(), &config.Config{StoreDriver: "postgres"}); err == nil {
		t.Fatalf("expected an error for an unknown driver")
	}
}
