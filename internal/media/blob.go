// Package media validates uploaded binaries and relocates them into durable
// storage, returning a stable public URL.
package media

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxUploadSize caps a single upload at 5 MiB. Oversized input is rejected
// before any storage write.
const MaxUploadSize = 5 << 20

var (
	// ErrUnsupportedType reports a non-image content type.
	ErrUnsupportedType = errors.New("only image files are allowed")
	// ErrTooLarge reports an upload over MaxUploadSize.
	ErrTooLarge = errors.New("file exceeds the 5 MiB upload limit")
)

// Blob is an uploaded binary with its declared content type and original
// filename.
type Blob struct {
	Filename    string
	ContentType string
	Data        []byte
}

// FromFileHeader reads one multipart file part into a Blob. The size check
// runs against the declared part size before the body is read.
func FromFileHeader(fh *multipart.FileHeader) (*Blob, error) {
	if fh.Size > MaxUploadSize {
		return nil, ErrTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(fh.Filename)))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return &Blob{
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// Validate rejects non-image and oversized blobs.
func (b *Blob) Validate() error {
	if !strings.HasPrefix(b.ContentType, "image/") {
		return ErrUnsupportedType
	}
	if len(b.Data) > MaxUploadSize {
		return ErrTooLarge
	}
	return nil
}
