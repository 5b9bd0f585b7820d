package ports

import (
	"context"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

// ContentService defines the CRUD use-cases over the content tables.
type ContentService interface {
	ListPublic(ctx context.Context, table domain.Table) ([]domain.Record, error)
	Get(ctx context.Context, table domain.Table, id int64) (domain.Record, error)
	// Create filters body down to the table whitelist, validates the title
	// and returns the stored fields merged with the generated id.
	Create(ctx context.Context, table domain.Table, body map[string]any) (domain.Record, error)
	// Update filters body down to the whitelist and applies it by id.
	Update(ctx context.Context, table domain.Table, id int64, body map[string]any) error
	Delete(ctx context.Context, table domain.Table, id int64) error
}
