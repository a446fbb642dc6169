package media_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/media"
)

func imageBlob(name string) *media.Blob {
	return &media.Blob{
		Filename:    name,
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}
}

func TestBlobValidate(t *testing.T) {
	assert.NoError(t, imageBlob("photo.png").Validate())

	pdf := &media.Blob{Filename: "doc.pdf", ContentType: "application/pdf", Data: []byte("x")}
	assert.ErrorIs(t, pdf.Validate(), media.ErrUnsupportedType)

	big := &media.Blob{
		Filename:    "big.png",
		ContentType: "image/png",
		Data:        make([]byte, media.MaxUploadSize+1),
	}
	assert.ErrorIs(t, big.Validate(), media.ErrTooLarge)
}

func TestLocalRelocator_WritesFileAndReturnsURL(t *testing.T) {
	root := t.TempDir()
	relocator := media.NewLocalRelocator(root, "/assets/uploads")

	url, err := relocator.Relocate(imageBlob("Photo One.PNG"), "projects/main")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "/assets/uploads/projects/main/"), "got %q", url)

	name := filepath.Base(url)
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]{12}\.png$`), name)

	data, err := os.ReadFile(filepath.Join(root, "projects", "main", name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestLocalRelocator_RejectsBeforeWrite(t *testing.T) {
	root := t.TempDir()
	relocator := media.NewLocalRelocator(root, "/assets/uploads")

	blob := &media.Blob{Filename: "doc.pdf", ContentType: "application/pdf", Data: []byte("x")}
	_, err := relocator.Relocate(blob, "projects/main")
	assert.ErrorIs(t, err, media.ErrUnsupportedType)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written for a rejected blob")
}

func TestLocalRelocator_FolderCannotEscapeRoot(t *testing.T) {
	root := t.TempDir()
	relocator := media.NewLocalRelocator(root, "/assets/uploads")

	url, err := relocator.Relocate(imageBlob("a.png"), "../../etc")
	require.NoError(t, err)
	assert.NotContains(t, url, "..")
}
