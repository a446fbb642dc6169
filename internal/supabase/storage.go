package supabase

import (
	"bytes"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// StorageClient wraps Supabase object storage for one bucket. Uploaded
// objects are publicly readable; PublicURL needs no auth step.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimRight(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

type UploadOptions struct {
	ContentType  string
	Upsert       bool
	CacheControl string
}

func (s *StorageClient) Upload(objectPath string, data []byte, opts UploadOptions) error {
	fileOpts := storage.FileOptions{
		ContentType: &opts.ContentType,
		Upsert:      &opts.Upsert,
	}
	if opts.CacheControl != "" {
		fileOpts.CacheControl = &opts.CacheControl
	}
	_, err := s.client.UploadFile(s.bucket, objectPath, bytes.NewReader(data), fileOpts)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectPath, err)
	}
	return nil
}

func (s *StorageClient) Download(objectPath string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, objectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", objectPath, err)
	}
	return data, nil
}

func (s *StorageClient) Remove(objectPath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{objectPath})
	return err
}

func (s *StorageClient) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
}
