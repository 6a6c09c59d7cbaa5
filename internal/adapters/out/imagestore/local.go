// Package imagestore implements ports.ImageStorage on a local directory or on an
// S3-compatible bucket. Both stores name files with a random UUID and keep the
// extension of the detected content type.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/pkg/errs"

	"github.com/google/uuid"
)

// LocalStorage writes images into dir and builds URLs as baseURL + publicPath + "/" + name.
// The HTTP server serves dir under publicPath.
type LocalStorage struct {
	dir        string
	baseURL    string
	publicPath string
}

// NewLocalStorage creates dir if needed.
//
// Example:
//
//	store, err := NewLocalStorage("static/medication_images", "http://127.0.0.1:8000", "/static/medication_images")
func NewLocalStorage(dir, baseURL, publicPath string) (*LocalStorage, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("images dir")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("images base url", err)
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("create images dir %s: %w", dir, err)
	}

	return &LocalStorage{
		dir:        dir,
		baseURL:    baseURL,
		publicPath: path.Join("/", publicPath),
	}, nil
}

// Dir is the directory holding stored images.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// PublicPath is the URL path prefix images are served under.
func (s *LocalStorage) PublicPath() string {
	return s.publicPath
}

// Save writes the image and returns its URL. A failed write leaves no partial file behind.
func (s *LocalStorage) Save(_ context.Context, image medication.ImageUpload) (string, error) {
	if err := image.Validate(); err != nil {
		return "", err
	}

	name := uuid.NewString() + image.Extension()
	target := filepath.Join(s.dir, name)
	if err := os.WriteFile(target, image.Content(), 0o640); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("write image %s: %w", name, err)
	}

	imageURL, err := url.JoinPath(s.baseURL, s.publicPath, name)
	if err != nil {
		_ = os.Remove(target)
		return "", err
	}
	return imageURL, nil
}

// Delete removes the file named by the last path segment of imageURL.
// Only the base name is used, so a crafted URL cannot escape dir.
func (s *LocalStorage) Delete(_ context.Context, imageURL string) error {
	name, err := fileName(imageURL)
	if err != nil {
		return err
	}

	if err = os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete image %s: %w", name, err)
	}
	return nil
}

func fileName(imageURL string) (string, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("image", err)
	}

	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == ".." {
		return "", errs.NewValueIsInvalidErrorWithCause("image", fmt.Errorf("%q has no file name", imageURL))
	}
	return name, nil
}
