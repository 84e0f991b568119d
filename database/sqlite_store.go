package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
	_ "modernc.org/sqlite"

	"github.com/kgnconstruction/kgnbackend/models"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var columnName = regexp.MustCompile(`^[a-z_]+$`)

// SQLiteStore keeps leads in a local SQLite file. It is the development
// driver and needs no external service.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens the database at path and applies the embedded migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

func applyMigrations(db *sql.DB) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	slices.Sort(names)
	for _, name := range names {
		script, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}
	return nil
}

func (s *SQLiteStore) Insert(ctx context.Context, table string, row models.Row) (models.StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredRecord{}, err
	}
	if err := checkTable(table); err != nil {
		return models.StoredRecord{}, err
	}
	cols := row.Columns()
	if bad, found := lo.Find(cols, func(c string) bool { return !columnName.MatchString(c) }); found {
		return models.StoredRecord{}, fmt.Errorf("invalid column name %q", bad)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id, created_at",
		table,
		strings.Join(cols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "),
	)
	args := lo.Map(cols, func(c string, _ int) any { return row[c] })

	var (
		id      int64
		created string
	)
	if err := s.sqlDB.QueryRowContext(ctx, query, args...).Scan(&id, &created); err != nil {
		return models.StoredRecord{}, fmt.Errorf("insert into %s: %w", table, err)
	}

	fields := make(map[string]any, len(row)+2)
	for k, v := range row {
		fields[k] = v
	}
	fields["id"] = id
	fields["created_at"] = created
	return recordFromFields(table, fields), nil
}

func (s *SQLiteStore) List(ctx context.Context, table string, page Page) ([]models.StoredRecord, int64, error) {
	if err := checkTable(table); err != nil {
		return nil, 0, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		fmt.Sprintf("SELECT * FROM %s ORDER BY id DESC LIMIT ? OFFSET ?", table),
		page.Limit, page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, 0, err
	}
	items := make([]models.StoredRecord, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", table, err)
		}
		fields := make(map[string]any, len(cols))
		for i, c := range cols {
			fields[c] = values[i]
		}
		items = append(items, recordFromFields(table, fields))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.sqlDB.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", table, err)
	}
	return items, total, nil
}

func (s *SQLiteStore) Close(context.Context) error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
