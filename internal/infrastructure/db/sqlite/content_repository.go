package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

// ContentRepository persists content rows over database/sql. Values are
// always bound as parameters; table and column names are interpolated only
// from the domain.Table enumeration, never from request input.
type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// publicQueries holds the public-safe projection per table: a reduced
// column set, the implicit status filter, newest first, capped at 50 rows.
var publicQueries = map[domain.Table]string{
	domain.TableNews:         "SELECT id, title, excerpt, image_url, date FROM news WHERE status = 'published' ORDER BY date DESC LIMIT 50",
	domain.TableEvents:       "SELECT id, title, description, image_url, date, location, status FROM events WHERE status != 'draft' ORDER BY date DESC LIMIT 50",
	domain.TablePublications: "SELECT id, title, excerpt, type, date, pages, url FROM publications ORDER BY date DESC LIMIT 50",
}

func (r *ContentRepository) ListPublic(ctx context.Context, table domain.Table) ([]domain.Record, error) {
	query, ok := publicQueries[table]
	if !ok {
		return nil, domain.ErrInvalidTable
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return records, nil
}

func (r *ContentRepository) FindByID(ctx context.Context, table domain.Table, id int64) (domain.Record, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ?",
		strings.Join(selectColumns(table), ", "), table,
	)

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("find %s %d: %w", table, id, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("find %s %d: %w", table, id, err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	return records[0], nil
}

func (r *ContentRepository) Insert(ctx context.Context, table domain.Table, fields map[string]any) (int64, error) {
	cols := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, col := range table.Columns() {
		if v, ok := fields[col]; ok {
			cols = append(cols, col)
			args = append(args, v)
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), placeholders(len(cols)),
	)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

// Update applies the fields by primary key and always refreshes updated_at.
// A missing id is indistinguishable from success.
func (r *ContentRepository) Update(ctx context.Context, table domain.Table, id int64, fields map[string]any) error {
	assignments := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	for _, col := range table.Columns() {
		if v, ok := fields[col]; ok {
			assignments = append(assignments, col+" = ?")
			args = append(args, v)
		}
	}
	assignments = append(assignments, "updated_at = datetime('now')")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ?",
		table, strings.Join(assignments, ", "),
	)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update %s %d: %w", table, id, err)
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, table domain.Table, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	return nil
}

// selectColumns is the full column set returned by single-record fetches.
func selectColumns(table domain.Table) []string {
	cols := append([]string{"id"}, table.Columns()...)
	return append(cols, "created_at", "updated_at")
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// scanRecords reads all rows into column-keyed records. Byte slices are
// converted to strings so records marshal as JSON text, not base64.
func scanRecords(rows *sql.Rows) ([]domain.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		record := make(domain.Record, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
				continue
			}
			record[col] = values[i]
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
