package i18n_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/i18n"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "i18n", "projects.json")
	store := i18n.NewFileStore(path)

	doc := i18n.NewDocument()
	doc.Apply("3", "title", map[string]string{"id": "Judul"})
	require.NoError(t, store.Save(doc))

	loaded := store.Load()
	text, ok := loaded.Lookup("id", "3", "title")
	require.True(t, ok)
	assert.Equal(t, "Judul", text)
}

func TestFileStore_MissingFileSeedsFreshDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	store := i18n.NewFileStore(path)

	doc := store.Load()

	assert.Len(t, doc, len(i18n.Languages))

	// The load seeds the file so later loads see the full language set.
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_CorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{not json"), 0o644))

	doc := i18n.NewFileStore(path).Load()

	assert.Len(t, doc, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		assert.Empty(t, doc[lang])
	}
}
