package output

import (
	"context"

	"cropguru/internal/domain/entities"
)

// SchemeRepository lists government schemes.
type SchemeRepository interface {
	FindAll(ctx context.Context) ([]entities.Scheme, error)
	FindByCategory(ctx context.Context, category string) ([]entities.Scheme, error)
	Categories(ctx context.Context) ([]string, error)
}
