package ports

import (
	"context"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

// ContentRepository persists content rows. Every statement binds values as
// parameters; table and column names come exclusively from the domain.Table
// enumeration.
type ContentRepository interface {
	// ListPublic returns the public-safe projection for the table: at most
	// 50 rows ordered by date descending, with the table's implicit status
	// filter applied.
	ListPublic(ctx context.Context, table domain.Table) ([]domain.Record, error)
	// FindByID returns the full row or domain.ErrNotFound.
	FindByID(ctx context.Context, table domain.Table, id int64) (domain.Record, error)
	// Insert stores the (already whitelisted) fields and returns the
	// generated id.
	Insert(ctx context.Context, table domain.Table, fields map[string]any) (int64, error)
	// Update applies the fields by primary key and refreshes updated_at.
	// It does not report whether a row existed.
	Update(ctx context.Context, table domain.Table, id int64, fields map[string]any) error
	// Delete removes by primary key, whether or not a row existed.
	Delete(ctx context.Context, table domain.Table, id int64) error
}
