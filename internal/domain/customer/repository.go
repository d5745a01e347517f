package customer

import (
	"context"
)

// Repository defines the interface for customer registry access.
// Find misses are an explicit empty result (nil, nil), not an error;
// Delete reports a miss as (false, nil).
type Repository interface {
	List(ctx context.Context) ([]*Customer, error)
	FindByID(ctx context.Context, id string) (*Customer, error)
	FindByName(ctx context.Context, name string) (*Customer, error)
	Upsert(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id string) (bool, error)
	ReplaceAll(ctx context.Context, customers []*Customer) error
}
