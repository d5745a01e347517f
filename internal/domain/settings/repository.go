package settings

import (
	"context"
)

// Repository defines the interface for the settings document
type Repository interface {
	// Get returns the stored settings, or the defaults when the
	// document is missing or unparsable
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
