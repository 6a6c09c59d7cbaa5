package medication

import (
	"errors"
	"fmt"
	"net/http"

	"medidrone/internal/pkg/errs"
	"medidrone/internal/pkg/guard"

	"github.com/docker/go-units"
)

var (
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrFileTooLarge     = errors.New("file too large")

	ErrImageUploadIsNotConstructed = errors.New("ImageUpload must be created via NewImageUpload constructor")
)

// Accepted image content types and the file extension used when storing them.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// UnsupportedMediaError is returned for uploads that are neither JPEG nor PNG.
type UnsupportedMediaError struct {
	ContentType string
}

func NewUnsupportedMediaError(contentType string) *UnsupportedMediaError {
	return &UnsupportedMediaError{ContentType: contentType}
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf("%s: %s, only image/jpeg and image/png are accepted", ErrUnsupportedMedia, e.ContentType)
}

func (e *UnsupportedMediaError) Unwrap() error {
	return ErrUnsupportedMedia
}

// FileTooLargeError is returned for uploads above the configured limit.
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func NewFileTooLargeError(size, limit int64) *FileTooLargeError {
	return &FileTooLargeError{Size: size, Limit: limit}
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: %s exceeds the %s limit",
		ErrFileTooLarge, units.BytesSize(float64(e.Size)), units.BytesSize(float64(e.Limit)))
}

func (e *FileTooLargeError) Unwrap() error {
	return ErrFileTooLarge
}

// ImageUpload is a validated image payload waiting to be stored.
// The content type is sniffed from the bytes; the client supplied header is ignored.
type ImageUpload struct {
	content     []byte
	contentType string
	extension   string

	guard guard.ConstructorGuard
}

// NewImageUpload validates content against the size limit (bytes) and the accepted types.
func NewImageUpload(content []byte, sizeLimit int64) (ImageUpload, error) {
	if len(content) == 0 {
		return ImageUpload{}, errs.NewValueIsRequiredError("img_file")
	}
	if size := int64(len(content)); size > sizeLimit {
		return ImageUpload{}, NewFileTooLargeError(size, sizeLimit)
	}

	contentType := http.DetectContentType(content)
	extension, ok := allowedImageTypes[contentType]
	if !ok {
		return ImageUpload{}, NewUnsupportedMediaError(contentType)
	}

	return ImageUpload{
		content:     content,
		contentType: contentType,
		extension:   extension,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (i ImageUpload) Validate() error {
	return i.guard.Validate(ErrImageUploadIsNotConstructed)
}

func (i ImageUpload) Content() []byte {
	return i.content
}

func (i ImageUpload) ContentType() string {
	return i.contentType
}

// Extension is ".jpg" or ".png".
func (i ImageUpload) Extension() string {
	return i.extension
}

func (i ImageUpload) Size() int64 {
	return int64(len(i.content))
}
