// Package imagestore provides content-addressed blob storage for item images.
// A stored image is named after the sha256 hex digest of its bytes, so
// identical content always maps to the same filename and re-uploads are
// idempotent.
package imagestore

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"io"
	"itemhub/internal/config"
	"itemhub/internal/logging"
	"itemhub/internal/shared"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the fixed filename extension for stored images.
const Extension = ".jpg"

// DefaultImage is the placeholder served when a requested blob is absent.
const DefaultImage = "default" + Extension

// placeholder is the built-in fallback image, written to the image root on
// startup so the store can always serve a displayable blob.
//
//go:embed default.jpg
var placeholder []byte

// Store is a filesystem-backed content-addressed image store.
type Store struct {
	Root string
}

// New creates the image root directory if absent and seeds the default
// placeholder image.
func New(cfg *config.Config) (*Store, error) {
	s := &Store{Root: cfg.Storage.ImageRoot}
	if err := os.MkdirAll(s.Root, 0755); err != nil {
		return nil, fmt.Errorf("could not create image root: %w", err)
	}

	defaultPath := filepath.Join(s.Root, DefaultImage)
	if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
		if err := os.WriteFile(defaultPath, placeholder, 0644); err != nil {
			return nil, fmt.Errorf("could not seed placeholder image: %w", err)
		}
	}
	return s, nil
}

// Put stores the image bytes under their content hash and returns the derived
// filename. Storing the same bytes twice is a no-op that returns the same name.
func (s *Store) Put(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	name := hex.EncodeToString(sum[:]) + Extension
	path := filepath.Join(s.Root, name)

	if _, err := os.Stat(path); err == nil {
		logging.Log.Debugf("Image %s already stored, skipping write", name)
		return name, nil
	}

	// The root may have been removed since New.
	if err := os.MkdirAll(s.Root, 0755); err != nil {
		return "", fmt.Errorf("could not create image root: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("could not write image: %w", err)
	}
	return name, nil
}

// Open returns a reader for the named image. A name without the required
// extension (or containing path separators) is rejected. A well-formed name
// whose blob does not exist falls back to the default placeholder, so callers
// always get a displayable image.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	if !strings.HasSuffix(name, Extension) {
		return nil, fmt.Errorf("image name must end in %s: %w", Extension, shared.ErrInvalidName)
	}
	if filepath.Base(name) != name {
		return nil, fmt.Errorf("image name must not contain path separators: %w", shared.ErrInvalidName)
	}

	f, err := os.Open(filepath.Join(s.Root, name))
	if err == nil {
		return f, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open image: %w", err)
	}

	logging.Log.Debugf("Image not found, serving placeholder: %s", name)
	f, err = os.Open(filepath.Join(s.Root, DefaultImage))
	if err == nil {
		return f, nil
	}
	// Placeholder file was removed at runtime, serve the embedded copy.
	return io.NopCloser(bytes.NewReader(placeholder)), nil
}
