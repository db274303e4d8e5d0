package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cropguru/internal/domain/entities"
	"cropguru/internal/ports/output"
)

var _ output.SchemeRepository = (*SchemeRepository)(nil)

// SchemeRepository implements output.SchemeRepository using pgx.
type SchemeRepository struct {
	pool *pgxpool.Pool
}

// NewSchemeRepository creates a SchemeRepository.
func NewSchemeRepository(pool *pgxpool.Pool) *SchemeRepository {
	return &SchemeRepository{pool: pool}
}

const schemeColumns = `id, title, description, eligibility, link, category, created_at, updated_at`

func (r *SchemeRepository) FindAll(ctx context.Context) ([]entities.Scheme, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+schemeColumns+` FROM schemes ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}
	defer rows.Close()
	return scanSchemes(rows)
}

func (r *SchemeRepository) FindByCategory(ctx context.Context, category string) ([]entities.Scheme, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+schemeColumns+` FROM schemes WHERE category = $1 ORDER BY title`, category)
	if err != nil {
		return nil, fmt.Errorf("list schemes by category: %w", err)
	}
	defer rows.Close()
	return scanSchemes(rows)
}

func (r *SchemeRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM schemes ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list scheme categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("scan scheme category: %w", err)
		}
		out = append(out, category)
	}
	return out, rows.Err()
}
