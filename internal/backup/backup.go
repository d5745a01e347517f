// Package backup archives the data directory into zip files under the
// backups directory and restores from such archives.
package backup

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	ierr "github.com/avbilling/avbilling/internal/errors"
	"github.com/avbilling/avbilling/internal/logger"
)

// Manager creates and restores backup archives of the data directory
type Manager struct {
	dataDir    string
	backupsDir string
	log        *logger.Logger
}

func NewManager(dataDir, backupsDir string, log *logger.Logger) *Manager {
	return &Manager{dataDir: dataDir, backupsDir: backupsDir, log: log}
}

// Create zips the data directory, skipping the backups directory itself,
// and returns the archive path
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupsDir, 0o755); err != nil {
		return "", ierr.WithError(err).Mark(ierr.ErrIO)
	}

	name := "backup_" + time.Now().Format("20060102_150405") + ".zip"
	archivePath := filepath.Join(m.backupsDir, name)

	f, err := os.Create(archivePath)
	if err != nil {
		return "", ierr.WithError(err).
			WithHintf("Failed to create archive %s", archivePath).
			Mark(ierr.ErrIO)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	walkErr := filepath.Walk(m.dataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if samePath(path, m.backupsDir) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(m.dataDir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(w, src)
		return err
	})
	if walkErr != nil {
		zw.Close()
		os.Remove(archivePath)
		return "", ierr.WithError(walkErr).
			WithHint("Backup archive could not be completed").
			Mark(ierr.ErrIO)
	}
	if err := zw.Close(); err != nil {
		os.Remove(archivePath)
		return "", ierr.WithError(err).Mark(ierr.ErrIO)
	}

	m.log.Infow("backup created", "archive", archivePath)
	return archivePath, nil
}

// Restore unpacks an archive over dest, rejecting entries that would
// escape the destination directory
func (m *Manager) Restore(archivePath, dest string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to open archive %s", archivePath).
			Mark(ierr.ErrIO)
	}
	defer zr.Close()

	for _, entry := range zr.File {
		target := filepath.Join(dest, filepath.FromSlash(entry.Name))
		if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
			return ierr.NewError("archive entry escapes destination").
				WithHintf("Entry %q is not allowed", entry.Name).
				Mark(ierr.ErrInvalidOperation)
		}
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return ierr.WithError(err).Mark(ierr.ErrIO)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return ierr.WithError(err).Mark(ierr.ErrIO)
		}
		if err := extractFile(entry, target); err != nil {
			return err
		}
	}

	m.log.Infow("backup restored", "archive", archivePath, "dest", dest)
	return nil
}

func extractFile(entry *zip.File, target string) error {
	src, err := entry.Open()
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrIO)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrIO)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return ierr.WithError(err).Mark(ierr.ErrIO)
	}
	return nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
