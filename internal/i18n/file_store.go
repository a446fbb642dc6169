package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileStore keeps the overlay document in a local JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", s.path).
				Warn("unreadable translations file, starting fresh")
		}
		doc := NewDocument()
		// Best effort: seed the file so later loads see the full language set.
		_ = s.Save(doc)
		return doc
	}
	return ParseDocument(raw)
}

func (s *FileStore) Save(doc Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create translations dir: %w", err)
	}
	if err := os.WriteFile(s.path, doc.Marshal(), 0o644); err != nil {
		return fmt.Errorf("failed to write translations file: %w", err)
	}
	return nil
}
