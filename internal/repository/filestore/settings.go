package filestore

import (
	"context"
	"sync"

	"github.com/avbilling/avbilling/internal/domain/settings"
	"github.com/avbilling/avbilling/internal/logger"
	"github.com/avbilling/avbilling/internal/storage"
)

type settingsRepository struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

// NewSettingsRepository returns a repository over the settings document
func NewSettingsRepository(path string, log *logger.Logger) settings.Repository {
	return &settingsRepository{path: path, log: log}
}

func (r *settingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := storage.Load[*settings.Settings](r.path)
	if err != nil {
		return nil, err
	}
	// Only a missing or unparsable document falls back to the defaults; a
	// hand-edited document without a version is still the operator's data
	if doc == nil {
		return settings.Default(), nil
	}
	return doc, nil
}

func (r *settingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return storage.Save(r.path, s)
}
