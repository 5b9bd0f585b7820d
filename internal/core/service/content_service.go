package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ddcrdc/content-api/internal/core/domain"
	"github.com/ddcrdc/content-api/internal/core/ports"
)

// ContentService orchestrates CRUD over the content tables. Column
// whitelisting happens here, before anything reaches the repository.
type ContentService struct {
	repo   ports.ContentRepository
	logger zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, logger: logger}
}

func (s *ContentService) ListPublic(ctx context.Context, table domain.Table) ([]domain.Record, error) {
	return s.repo.ListPublic(ctx, table)
}

func (s *ContentService) Get(ctx context.Context, table domain.Table, id int64) (domain.Record, error) {
	return s.repo.FindByID(ctx, table, id)
}

// Create filters body down to the table's whitelist (unknown fields are
// silently dropped), requires a non-empty title and inserts the rest.
// The returned record is the generated id merged with the filtered input.
func (s *ContentService) Create(ctx context.Context, table domain.Table, body map[string]any) (domain.Record, error) {
	fields := table.Filter(body)

	if !hasTitle(fields) {
		return nil, domain.ErrTitleRequired
	}

	id, err := s.repo.Insert(ctx, table, fields)
	if err != nil {
		s.logger.Error().Err(err).Str("table", table.String()).Msg("failed to insert record")
		return nil, err
	}

	s.logger.Info().Str("table", table.String()).Int64("id", id).Msg("record created")

	record := domain.Record{"id": id}
	for k, v := range fields {
		record[k] = v
	}
	return record, nil
}

// Update applies the whitelisted fields by primary key. At least one
// recognized column must be present. The repository refreshes updated_at on
// every call and does not verify the id previously existed; an update of a
// missing id reports success (current contract, kept deliberately).
func (s *ContentService) Update(ctx context.Context, table domain.Table, id int64, body map[string]any) error {
	fields := table.Filter(body)
	if len(fields) == 0 {
		return domain.ErrEmptyUpdate
	}
	return s.repo.Update(ctx, table, id, fields)
}

// Delete removes by primary key. Deleting a missing id is not an error.
func (s *ContentService) Delete(ctx context.Context, table domain.Table, id int64) error {
	return s.repo.Delete(ctx, table, id)
}

// hasTitle reports whether fields carries a usable title. An absent key,
// a nil value and an empty string all fail the check.
func hasTitle(fields map[string]any) bool {
	v, ok := fields["title"]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString && s == "" {
		return false
	}
	return true
}
