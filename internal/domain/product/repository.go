package product

import (
	"context"
)

// Repository defines the interface for product registry access.
// Find misses are an explicit empty result (nil, nil), not an error;
// Delete reports a miss as (false, nil).
type Repository interface {
	List(ctx context.Context) ([]*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	Upsert(ctx context.Context, p *Product) error
	Delete(ctx context.Context, code string) (bool, error)
}
