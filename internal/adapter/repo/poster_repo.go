package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"postergen/internal/domain"
	"postergen/internal/sqlinline"
)

// PosterRepo is the Postgres-backed ledger of generated posters.
type PosterRepo struct {
	pool *pgxpool.Pool
}

func NewPosterRepo(pool *pgxpool.Pool) *PosterRepo {
	return &PosterRepo{pool: pool}
}

// EnsureSchema creates the posters table when it does not exist yet.
func (r *PosterRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, sqlinline.QCreatePostersTable); err != nil {
		return fmt.Errorf("ensure posters table: %w", err)
	}
	return nil
}

// Insert records one generated poster.
func (r *PosterRepo) Insert(ctx context.Context, p domain.Poster) error {
	_, err := r.pool.Exec(ctx, sqlinline.QInsertPoster,
		p.ID,
		p.RequestID,
		p.TemplateID,
		p.PropertyType,
		p.Location,
		p.StorageKey,
		p.Bytes,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert poster: %w", err)
	}
	return nil
}

// ListRecent returns the newest records first, capped at limit.
func (r *PosterRepo) ListRecent(ctx context.Context, limit int) ([]domain.Poster, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, sqlinline.QListRecentPosters, limit)
	if err != nil {
		return nil, fmt.Errorf("list posters: %w", err)
	}
	defer rows.Close()

	var posters []domain.Poster
	for rows.Next() {
		var p domain.Poster
		if err := rows.Scan(
			&p.ID,
			&p.RequestID,
			&p.TemplateID,
			&p.PropertyType,
			&p.Location,
			&p.StorageKey,
			&p.Bytes,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan poster: %w", err)
		}
		posters = append(posters, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posters: %w", err)
	}
	return posters, nil
}
