package port

import (
	"context"

	"github.com/rafaelleal24/inventory/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// SnapshotPort persists and restores a full product set under a named
// destination. Load returns the complete decoded set or an error, never a
// partial result, so callers can swap state in atomically.
type SnapshotPort interface {
	Save(ctx context.Context, name string, products []domain.Product) error
	Load(ctx context.Context, name string) ([]domain.Product, error)
}
