package media

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/supabase"
)

// Relocator moves a validated blob into durable storage under a logical
// folder (e.g. "projects/12/gallery") and returns a public URL that is
// immediately retrievable without auth.
type Relocator interface {
	Relocate(blob *Blob, folder string) (string, error)
}

// objectName builds a collision-resistant name: timestamp, random token and
// the original extension.
func objectName(original string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), token, strings.ToLower(filepath.Ext(original)))
}

// cleanFolder keeps folder input from escaping the storage root.
func cleanFolder(folder string) string {
	cleaned := strings.Trim(strings.ReplaceAll(folder, "..", ""), "/")
	if cleaned == "" {
		return "uploads"
	}
	return cleaned
}

// LocalRelocator writes blobs under a directory served as static assets.
type LocalRelocator struct {
	root         string
	publicPrefix string
}

// NewLocalRelocator stores files under root; URLs are publicPrefix-relative
// paths (e.g. /assets/uploads/...).
func NewLocalRelocator(root, publicPrefix string) *LocalRelocator {
	return &LocalRelocator{
		root:         root,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

func (r *LocalRelocator) Relocate(blob *Blob, folder string) (string, error) {
	if err := blob.Validate(); err != nil {
		return "", err
	}

	rel := path.Join(cleanFolder(folder), objectName(blob.Filename))
	dst := filepath.Join(r.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(dst, blob.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return r.publicPrefix + "/" + rel, nil
}

// ObjectRelocator uploads blobs to Supabase object storage.
type ObjectRelocator struct {
	storage *supabase.StorageClient
}

func NewObjectRelocator(storage *supabase.StorageClient) *ObjectRelocator {
	return &ObjectRelocator{storage: storage}
}

func (r *ObjectRelocator) Relocate(blob *Blob, folder string) (string, error) {
	if err := blob.Validate(); err != nil {
		return "", err
	}

	objectPath := path.Join(cleanFolder(folder), objectName(blob.Filename))
	err := r.storage.Upload(objectPath, blob.Data, supabase.UploadOptions{
		ContentType:  blob.ContentType,
		Upsert:       false,
		CacheControl: "3600",
	})
	if err != nil {
		return "", err
	}

	return r.storage.PublicURL(objectPath), nil
}
