package backup

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/avbilling/avbilling/internal/errors"
	"github.com/avbilling/avbilling/internal/logger"
)

func setupDataDir(t *testing.T) (dataDir, backupsDir string) {
	t.Helper()
	dataDir = t.TempDir()
	backupsDir = filepath.Join(dataDir, "backups")

	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "invoices"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "customers.json"), []byte(`{"customers":[]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "invoices", "FY_2024-2025.json"), []byte(`{"invoices":[]}`), 0o644))
	return dataDir, backupsDir
}

func archiveNames(t *testing.T, archivePath string) map[string]bool {
	t.Helper()
	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	return names
}

func TestCreateArchivesDataDirectory(t *testing.T) {
	dataDir, backupsDir := setupDataDir(t)
	m := NewManager(dataDir, backupsDir, logger.NewNop())

	archivePath, err := m.Create()
	require.NoError(t, err)
	assert.Equal(t, backupsDir, filepath.Dir(archivePath))

	names := archiveNames(t, archivePath)
	assert.True(t, names["customers.json"])
	assert.True(t, names["invoices/FY_2024-2025.json"])
}

func TestCreateSkipsBackupsDirectory(t *testing.T) {
	dataDir, backupsDir := setupDataDir(t)
	require.NoError(t, os.MkdirAll(backupsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(backupsDir, "old.zip"), []byte("zip"), 0o644))

	m := NewManager(dataDir, backupsDir, logger.NewNop())
	archivePath, err := m.Create()
	require.NoError(t, err)

	// Old archives must never be nested into new ones
	names := archiveNames(t, archivePath)
	assert.False(t, names["backups/old.zip"])
}

func TestRestoreReproducesDocuments(t *testing.T) {
	dataDir, backupsDir := setupDataDir(t)
	m := NewManager(dataDir, backupsDir, logger.NewNop())

	archivePath, err := m.Create()
	require.NoError(t, err)

	dest := t.TempDir()
	require.NoError(t, m.Restore(archivePath, dest))

	restored, err := os.ReadFile(filepath.Join(dest, "customers.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"customers":[]}`, string(restored))

	_, err = os.Stat(filepath.Join(dest, "invoices", "FY_2024-2025.json"))
	assert.NoError(t, err)
}

func TestRestoreRejectsEscapingEntries(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "evil.zip")

	f, err := os.Create(archivePath)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("../escape.json")
	require.NoError(t, err)
	_, err = w.Write([]byte("{}"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	m := NewManager(dir, filepath.Join(dir, "backups"), logger.NewNop())
	dest := filepath.Join(dir, "restore")
	require.NoError(t, os.MkdirAll(dest, 0o755))

	err = m.Restore(archivePath, dest)
	assert.Error(t, err)
	assert.True(t, ierr.IsInvalidOperation(err))

	_, statErr := os.Stat(filepath.Join(dir, "escape.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRestoreMissingArchive(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, filepath.Join(dir, "backups"), logger.NewNop())

	err := m.Restore(filepath.Join(dir, "nope.zip"), dir)
	assert.Error(t, err)
	assert.True(t, ierr.IsIO(err))
}
