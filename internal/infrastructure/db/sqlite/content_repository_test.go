package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ddcrdc/content-api/internal/core/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	// One in-memory database for the whole pool.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestContentRepository_InsertAndFindByID(t *testing.T) {
	repo := NewContentRepository(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.TableNews, map[string]any{
		"title":   "Lancement du programme",
		"excerpt": "Résumé court",
		"status":  "published",
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected generated id, got 0")
	}

	record, err := repo.FindByID(ctx, domain.TableNews, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if record["title"] != "Lancement du programme" {
		t.Fatalf("unexpected title: %v", record["title"])
	}
	if record["status"] != "published" {
		t.Fatalf("unexpected status: %v", record["status"])
	}
	if record["updated_at"] == nil || record["created_at"] == nil {
		t.Fatalf("timestamps missing from full record: %v", record)
	}
}

func TestContentRepository_FindByID_NotFound(t *testing.T) {
	repo := NewContentRepository(newTestDB(t))

	if _, err := repo.FindByID(context.Background(), domain.TableEvents, 12345); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentRepository_ListPublic_News(t *testing.T) {
	repo := NewContentRepository(newTestDB(t))
	ctx := context.Background()

	seed := []map[string]any{
		{"title": "Ancienne", "date": "2024-01-10", "status": "published"},
		{"title": "Brouillon", "date": "2024-03-01", "status": "draft"},
		{"title": "Récente", "date": "2024-02-20", "status": "published"},
	}
	for _, row := range seed {
		if _, err := repo.Insert(ctx, domain.TableNews, row); err != nil {
			t.Fatalf("seed insert: %v", err)
		}
	}

	records, err := repo.ListPublic(ctx, domain.TableNews)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 published rows, got %d", len(records))
	}
	if records[0]["title"] != "Récente" || records[1]["title"] != "Ancienne" {
		t.Fatalf("rows not ordered by date descending: %v", records)
	}
	// The public projection exposes neither status nor content.
	if _, ok := records[0]["status"]; ok {
		t.Fatalf("news projection leaked status: %v", records[0])
	}
	if _, ok := records[0]["content"]; ok {
		t.Fatalf("news projection leaked content: %v", records[0])
	}
}

func TestContentRepository_ListPublic_EventsExcludesDrafts(t *testing.T) {
	repo := NewContentRepository(newTestDB(t))
	ctx := context.Background()

	for _, row := range []map[string]any{
		{"title": "Gala", "date": "2024-05-01", "status": "upcoming"},
		{"title": "Interne", "date": "2024-05-02", "status": "draft"},
		{"title": "Conférence", "date": "2024-04-01", "status": "past"},
	} {
		if _, err := repo.Insert(ctx, domain.TableEvents, row); err != nil {
			t.Fatalf("seed insert: %v", err)
		}
	}

	records, err := repo.ListPublic(ctx, domain.TableEvents)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 non-draft rows, got %d", len(records))
	}
	// Events keep status in the public projection.
	if records[0]["status"] != "upcoming" {
		t.Fatalf("unexpected first row: %v", records[0])
	}
}

func TestContentRepository_ListPublic_PublicationsUnfiltered(t *testing.T) {
	repo := NewContentRepository(newTestDB(t))
	ctx := context.Background()

	for _, row := range []map[string]any{
		{"title": "Rapport annuel", "date": "2023-12-01", "type": "rapport", "pages": 42},
		{"title": "Guide pratique", "date": "2024-06-15", "type": "guide"},
	} {
		if _, err := repo.Insert(ctx, domain.TablePublications, row); err != nil {
			t.Fatalf("seed insert: %v", err)
		}
	}

	records, err := repo.ListPublic(ctx, domain.TablePublications)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(records))
	}
	if records[0]["title"] != "Guide pratique" {
		t.Fatalf("rows not ordered by date descending: %v", records)
	}
	if records[1]["pages"] != int64(42) {
		t.Fatalf("pages not round-tripped as integer: %v (%T)", records[1]["pages"], records[1]["pages"])
	}
}

func TestContentRepository_Update_RefreshesUpdatedAt(t *testing.T) {
	repo := NewContentRepository(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.TableNews, map[string]any{"title": "Avant"})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := repo.Update(ctx, domain.TableNews, id, map[string]any{"title": "Après"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	record, err := repo.FindByID(ctx, domain.TableNews, id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if record["title"] != "Après" {
		t.Fatalf("title not updated: %v", record["title"])
	}
	if record["updated_at"] == nil || record["updated_at"] == "" {
		t.Fatalf("updated_at not set: %v", record)
	}
}

func TestContentRepository_UpdateAndDelete_MissingID(t *testing.T) {
	repo := NewContentRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Update(ctx, domain.TablePublications, 999999, map[string]any{"title": "x"}); err != nil {
		t.Fatalf("update of missing id errored: %v", err)
	}
	if err := repo.Delete(ctx, domain.TablePublications, 999999); err != nil {
		t.Fatalf("delete of missing id errored: %v", err)
	}
}
