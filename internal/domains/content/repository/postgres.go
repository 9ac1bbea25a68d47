package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mediaportal-backend/internal/domains/content/model"
	"mediaportal-backend/pkg/cache"
	"mediaportal-backend/pkg/logger"
)

const listCacheTTL = 5 * time.Minute

// postgresRepository is the generic JSONB-document repository. One instance
// serves one content kind; the schema decides the table, nothing else differs
// between kinds.
type postgresRepository struct {
	pool   *pgxpool.Pool
	cache  cache.Cache
	schema model.Schema
}

// NewPostgresRepository creates the repository for one kind.
// Dependency injection pattern - receives pool and cache from container.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache, schema model.Schema) Repository {
	return &postgresRepository{
		pool:   pool,
		cache:  c,
		schema: schema,
	}
}

func (r *postgresRepository) listCacheKey() string {
	return fmt.Sprintf("content:%s:list", r.schema.Kind)
}

// EnsureTable creates the document table for this kind if it is missing.
// Table names come from the static schema registry, never from user input.
func (r *postgresRepository) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
    CREATE TABLE IF NOT EXISTS %s (
      id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
      doc        JSONB NOT NULL,
      created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
      updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    );
    CREATE INDEX IF NOT EXISTS %s_created_at_idx ON %s (created_at DESC);
  `, r.schema.Table, r.schema.Table, r.schema.Table)

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure table %s: %w", r.schema.Table, err)
	}
	return nil
}

// List retrieves all documents ordered by creation time descending.
func (r *postgresRepository) List(ctx context.Context) ([]*model.Document, error) {
	var cached []*model.Document
	if r.cache != nil {
		found, err := r.cache.Get(ctx, r.listCacheKey(), &cached)
		if err != nil {
			logger.Warn("list cache read failed", err)
		} else if found {
			return cached, nil
		}
	}

	query := fmt.Sprintf(`
    SELECT id, doc, created_at, updated_at
    FROM %s
    ORDER BY created_at DESC
  `, r.schema.Table)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.schema.Kind, err)
	}
	defer rows.Close()

	docs := make([]*model.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.schema.Kind, err)
		}
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", r.schema.Kind, err)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, r.listCacheKey(), docs, listCacheTTL); err != nil {
			logger.Warn("list cache write failed", err)
		}
	}

	return docs, nil
}

// GetByID retrieves one document, (nil, nil) when absent.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	query := fmt.Sprintf(`
    SELECT id, doc, created_at, updated_at
    FROM %s
    WHERE id = $1
  `, r.schema.Table)

	doc, err := scanDocument(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s by id: %w", r.schema.Kind, err)
	}

	return doc, nil
}

// Create inserts a new document.
func (r *postgresRepository) Create(ctx context.Context, fields map[string]string) (*model.Document, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s fields: %w", r.schema.Kind, err)
	}

	query := fmt.Sprintf(`
    INSERT INTO %s (doc)
    VALUES ($1)
    RETURNING id, doc, created_at, updated_at
  `, r.schema.Table)

	doc, err := scanDocument(r.pool.QueryRow(ctx, query, raw))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", r.schema.Kind, err)
	}

	r.invalidateList(ctx)
	return doc, nil
}

// Update merges partial fields into the stored document (JSONB merge) and
// refreshes updated_at. Keys absent from the partial stay untouched, which is
// what keeps prior media URLs alive when no new file was uploaded.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]string) (*model.Document, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s fields: %w", r.schema.Kind, err)
	}

	query := fmt.Sprintf(`
    UPDATE %s
    SET doc = doc || $2::jsonb, updated_at = now()
    WHERE id = $1
    RETURNING id, doc, created_at, updated_at
  `, r.schema.Table)

	doc, err := scanDocument(r.pool.QueryRow(ctx, query, id, raw))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update %s: %w", r.schema.Kind, err)
	}

	r.invalidateList(ctx)
	return doc, nil
}

// Delete removes a document permanently. Referenced media is left in the
// object store untouched; orphans are an accepted consequence of delete.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.schema.Table)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", r.schema.Kind, err)
	}

	if tag.RowsAffected() == 0 {
		return false, nil
	}

	r.invalidateList(ctx)
	return true, nil
}

// invalidateList drops the cached listing after any write.
// Cache failures are not fatal; the next List simply hits the database.
func (r *postgresRepository) invalidateList(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, r.listCacheKey()); err != nil {
		logger.Warn("list cache invalidation failed", err)
	}
}

// scanDocument reads (id, doc, created_at, updated_at) from a row.
func scanDocument(row pgx.Row) (*model.Document, error) {
	var (
		doc model.Document
		raw []byte
	)

	if err := row.Scan(&doc.ID, &raw, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, &doc.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document fields: %w", err)
	}

	return &doc, nil
}
