package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avbilling/avbilling/internal/domain/settings"
	"github.com/avbilling/avbilling/internal/logger"
)

func TestSettingsRepositoryDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	repo := NewSettingsRepository(path, logger.NewNop())

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, settings.Default().Version, got.Version)
	assert.Equal(t, settings.Default().Company.Name, got.Company.Name)
}

func TestSettingsRepositoryKeepsHandEditedDocumentWithoutVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	edited := []byte(`{"company":{"name":"Chand Flour Mills","address":"Hardoi Road"}}`)
	require.NoError(t, os.WriteFile(path, edited, 0o644))

	repo := NewSettingsRepository(path, logger.NewNop())
	got, err := repo.Get(context.Background())
	require.NoError(t, err)

	// An operator's document is never replaced by defaults just because
	// it carries no version field
	assert.Equal(t, "Chand Flour Mills", got.Company.Name)
	assert.Equal(t, "Hardoi Road", got.Company.Address)
	assert.Empty(t, got.Version)
}

func TestSettingsRepositoryDefaultsOnCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	repo := NewSettingsRepository(path, logger.NewNop())
	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.Default().Version, got.Version)
}

func TestSettingsRepositorySaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.json")
	repo := NewSettingsRepository(path, logger.NewNop())

	st := settings.Default()
	st.Company.Name = "Chand Flour Mills"
	st.Invoice.Template = "Compact"
	require.NoError(t, repo.Save(ctx, st))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chand Flour Mills", got.Company.Name)
	assert.Equal(t, "Compact", got.Invoice.Template)
}
