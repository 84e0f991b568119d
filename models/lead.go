package models

import (
	"maps"
	"slices"
	"strings"
	"time"
)

const (
	TableQuotes          = "quotes"
	TableCustomProjects  = "custom_projects"
	TableContactMessages = "contact_messages"
)

// Row is one record as it is written to a store: column name -> value.
// Absent optional columns hold nil, never "".
type Row map[string]any

// Columns returns the row's column names, sorted.
func (r Row) Columns() []string {
	return slices.Sorted(maps.Keys(r))
}

// StoredRecord is what a store hands back after an insert or a list.
type StoredRecord struct {
	Table     string    `json:"table"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Fields    Row       `json:"fields"`
}

// Record is a lead ready to be transmitted.
type Record interface {
	Table() string
	Row() Row
}

// Option is one allowed value of an enumerated field, with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionalString turns a blank value into the absent marker.
func OptionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func nullable[T ~string](v *T) any {
	if v == nil {
		return nil
	}
	return string(*v)
}
