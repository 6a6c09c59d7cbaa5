package ports

import (
	"context"

	"medidrone/internal/core/domain/model/medication"
)

// ImageStorage stores medication images and hands back retrievable URLs.
type ImageStorage interface {
	// Save stores the upload under a fresh name and returns its public URL.
	Save(ctx context.Context, image medication.ImageUpload) (string, error)

	// Delete removes the image behind url. Deleting a missing image is not an error.
	Delete(ctx context.Context, url string) error
}
