package i18n

import (
	"github.com/sirupsen/logrus"

	"portfolio-backend/internal/supabase"
)

// ObjectStore keeps the overlay document as a JSON blob in object storage,
// with a local FileStore as the resilience fallback on either transport:
// an unreadable blob loads from disk, a failed upload saves to disk.
type ObjectStore struct {
	storage    *supabase.StorageClient
	objectPath string
	fallback   *FileStore
}

func NewObjectStore(storage *supabase.StorageClient, objectPath string, fallback *FileStore) *ObjectStore {
	return &ObjectStore{
		storage:    storage,
		objectPath: objectPath,
		fallback:   fallback,
	}
}

func (s *ObjectStore) Load() Document {
	raw, err := s.storage.Download(s.objectPath)
	if err != nil {
		logrus.WithError(err).WithField("object", s.objectPath).
			Debug("translations object unavailable, falling back to local file")
		return s.fallback.Load()
	}
	return ParseDocument(raw)
}

func (s *ObjectStore) Save(doc Document) error {
	err := s.storage.Upload(s.objectPath, doc.Marshal(), supabase.UploadOptions{
		ContentType:  "application/json",
		Upsert:       true,
		CacheControl: "0",
	})
	if err == nil {
		return nil
	}
	logrus.WithError(err).WithField("object", s.objectPath).
		Warn("failed to persist translations to storage, writing local fallback")
	return s.fallback.Save(doc)
}
