// Package storage persists whole JSON documents with crash-safe
// replace-on-write semantics. A reader always observes either the old
// complete content or the new complete content, never a partial write.
package storage

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	ierr "github.com/avbilling/avbilling/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Load reads the document at path into a value of type T. A missing or
// unparsable file yields the zero value: a fresh default is always a safe
// fallback for this domain, so corruption is not fatal.
func Load[T any](path string) (T, error) {
	var doc T

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, ierr.WithError(err).
			WithHintf("Failed to read %s", path).
			Mark(ierr.ErrIO)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		// Unparsable content: start fresh rather than abort
		var fresh T
		return fresh, nil
	}
	return doc, nil
}

// Save writes the document atomically: the full content goes to a temporary
// file in the target directory first, then replaces the target in a single
// rename. The temporary file is cleaned up on every failure path.
func Save[T any](path string, doc T) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to encode document for %s", path).
			Mark(ierr.ErrSystem)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to create directory %s", dir).
			Mark(ierr.ErrIO)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to create temporary file in %s", dir).
			Mark(ierr.ErrIO)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return ierr.WithError(err).
			WithHintf("Failed to write %s", path).
			Mark(ierr.ErrIO)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return ierr.WithError(err).
			WithHintf("Failed to flush %s", path).
			Mark(ierr.ErrIO)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return ierr.WithError(err).
			WithHintf("Failed to close temporary file for %s", path).
			Mark(ierr.ErrIO)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return ierr.WithError(err).
			WithHintf("Failed to replace %s", path).
			Mark(ierr.ErrIO)
	}
	return nil
}
