package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strconv"
	"time"

	"github.com/kgnconstruction/kgnbackend/config"
	"github.com/kgnconstruction/kgnbackend/models"
)

var ErrUnknownTable = errors.New("unknown table")

// Store persists lead records. Insert is the only write the site performs;
// List feeds the admin inbox.
type Store interface {
	Insert(ctx context.Context, table string, row models.Row) (models.StoredRecord, error)
	List(ctx context.Context, table string, page Page) ([]models.StoredRecord, int64, error)
	Close(ctx context.Context) error
}

// Page selects a window of records, newest first. Number starts at 1.
type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

var tables = map[string]bool{
	models.TableQuotes:          true,
	models.TableCustomProjects:  true,
	models.TableContactMessages: true,
}

func checkTable(table string) error {
	if !tables[table] {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return nil
}

// RemoteError is a write the store refused, for example a constraint violation.
type RemoteError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("store rejected request (%d, %s): %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("store rejected request (%d): %s", e.Status, msg)
}

// Open connects the store selected by STORE_DRIVER.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverRest:
		return NewRestStore(cfg.SupabaseURL, cfg.SupabaseKey, nil), nil
	case config.DriverMongo:
		client, err := Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(client, cfg.DatabaseName), nil
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// recordFromFields splits id and created_at out of a row returned by a store.
func recordFromFields(table string, fields map[string]any) models.StoredRecord {
	rec := models.StoredRecord{Table: table, Fields: models.Row(maps.Clone(fields))}
	if rec.Fields == nil {
		rec.Fields = models.Row{}
	}
	if id, ok := rec.Fields["id"]; ok {
		rec.ID = formatID(id)
		delete(rec.Fields, "id")
	}
	if created, ok := rec.Fields["created_at"]; ok {
		rec.CreatedAt = parseTime(created)
		delete(rec.Fields, "created_at")
	}
	return rec
}

func formatID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case int64:
		return strconv.FormatInt(id, 10)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case fmt.Stringer:
		return id.String()
	}
	return fmt.Sprint(v)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC()
			}
		}
	}
	return time.Time{}
}
