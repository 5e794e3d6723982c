package repository

import (
	"context"
	"fmt"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PageMetaRepository interface {
	Upsert(ctx context.Context, meta *entity.PageMeta) error
	FindByPath(ctx context.Context, pagePath string) (*entity.PageMeta, error)
	FindAll(ctx context.Context) ([]*entity.PageMeta, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pageMetaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPageMetaRepository(db database.PgxIface, log *zap.Logger) PageMetaRepository {
	return &pageMetaRepository{
		db:  db,
		log: log.With(zap.String("repository", "page_meta")),
	}
}

func (r *pageMetaRepository) Upsert(ctx context.Context, meta *entity.PageMeta) error {
	query := `
		INSERT INTO page_meta (id, page_path, title, description, og_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (page_path)
		DO UPDATE SET title = EXCLUDED.title, description = EXCLUDED.description,
		              og_image_url = EXCLUDED.og_image_url, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		meta.ID,
		meta.PagePath,
		meta.Title,
		meta.Description,
		meta.OGImageURL,
		meta.CreatedAt,
		meta.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert page meta",
			zap.Error(err),
			zap.String("page_path", meta.PagePath),
		)
		return fmt.Errorf("upsert page meta %s: %w", meta.PagePath, err)
	}

	return nil
}

func (r *pageMetaRepository) FindByPath(ctx context.Context, pagePath string) (*entity.PageMeta, error) {
	query := `
		SELECT id, page_path, title, description, og_image_url, created_at, updated_at
		FROM page_meta
		WHERE page_path = $1
	`

	var meta entity.PageMeta
	err := r.db.QueryRow(ctx, query, pagePath).Scan(
		&meta.ID,
		&meta.PagePath,
		&meta.Title,
		&meta.Description,
		&meta.OGImageURL,
		&meta.CreatedAt,
		&meta.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find page meta",
			zap.Error(err),
			zap.String("page_path", pagePath),
		)
		return nil, fmt.Errorf("find page meta %s: %w", pagePath, err)
	}

	return &meta, nil
}

func (r *pageMetaRepository) FindAll(ctx context.Context) ([]*entity.PageMeta, error) {
	query := `
		SELECT id, page_path, title, description, og_image_url, created_at, updated_at
		FROM page_meta
		ORDER BY page_path
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list page meta", zap.Error(err))
		return nil, fmt.Errorf("list page meta: %w", err)
	}
	defer rows.Close()

	var metas []*entity.PageMeta
	for rows.Next() {
		var meta entity.PageMeta
		err := rows.Scan(
			&meta.ID,
			&meta.PagePath,
			&meta.Title,
			&meta.Description,
			&meta.OGImageURL,
			&meta.CreatedAt,
			&meta.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan page meta row", zap.Error(err))
			return nil, fmt.Errorf("scan page meta row: %w", err)
		}
		metas = append(metas, &meta)
	}

	return metas, nil
}

func (r *pageMetaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM page_meta WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete page meta",
			zap.Error(err),
			zap.String("page_meta_id", id.String()),
		)
		return fmt.Errorf("delete page meta %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("page meta %s not found", id.String())
	}

	return nil
}
