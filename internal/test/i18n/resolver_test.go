package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/i18n"
)

func TestResolve_OverlayWins(t *testing.T) {
	doc := i18n.NewDocument()
	doc.Apply("7", "title", map[string]string{"id": "Judul"})

	got := i18n.Resolve(doc, "7", "title", "id", i18n.FieldSource{
		Canonical: "Canonical Title",
		Siblings:  map[string]string{"id": "Sibling"},
		I18n:      map[string]string{"id": "Column"},
		BaseLang:  "en",
	}, "")

	assert.Equal(t, "Judul", got)
}

func TestResolve_SiblingBeatsI18nColumn(t *testing.T) {
	got := i18n.Resolve(i18n.NewDocument(), "7", "title", "id", i18n.FieldSource{
		Canonical: "Canonical Title",
		Siblings:  map[string]string{"id": "Sibling"},
		I18n:      map[string]string{"id": "Column"},
		BaseLang:  "en",
	}, "")

	assert.Equal(t, "Sibling", got)
}

func TestResolve_I18nColumnChain(t *testing.T) {
	src := i18n.FieldSource{
		Canonical: "Canonical Title",
		I18n:      map[string]string{"en": "English", "id": "Indonesian"},
		BaseLang:  "en",
	}

	// Requested language present in the column map.
	assert.Equal(t, "Indonesian", i18n.Resolve(nil, "7", "title", "id", src, ""))
	// Absent requested language falls to the base language.
	assert.Equal(t, "English", i18n.Resolve(nil, "7", "title", "ja", src, ""))
}

func TestResolve_FallsBackToCanonical(t *testing.T) {
	got := i18n.Resolve(i18n.NewDocument(), "7", "title", "fr", i18n.FieldSource{
		Canonical: "Canonical Title",
		BaseLang:  "en",
	}, "")

	assert.Equal(t, "Canonical Title", got)
}

func TestResolve_UnrelatedOverlayDoesNotLeak(t *testing.T) {
	// An overlay translation in one language must not answer a request for
	// another: "fr" with only an "id" override resolves to the canonical text.
	doc := i18n.NewDocument()
	doc.Apply("7", "title", map[string]string{"id": "Judul"})

	got := i18n.Resolve(doc, "7", "title", "fr", i18n.FieldSource{
		Canonical: "Foo",
		BaseLang:  "en",
	}, "")

	assert.Equal(t, "Foo", got)
}

func TestResolve_RegionTagNormalized(t *testing.T) {
	doc := i18n.NewDocument()
	doc.Apply("7", "title", map[string]string{"en": "Hello"})

	got := i18n.Resolve(doc, "7", "title", "en-US", i18n.FieldSource{Canonical: "x"}, "")

	assert.Equal(t, "Hello", got)
}

func TestResolve_FallbackThenFieldName(t *testing.T) {
	src := i18n.FieldSource{}

	assert.Equal(t, "placeholder", i18n.Resolve(nil, "7", "title", "fr", src, "placeholder"))
	assert.Equal(t, "title", i18n.Resolve(nil, "7", "title", "fr", src, ""))
}

func TestResolve_WhitespaceTiersSkipped(t *testing.T) {
	got := i18n.Resolve(nil, "7", "solution", "id", i18n.FieldSource{
		Canonical: "   ",
		Siblings:  map[string]string{"id": "  "},
		I18n:      map[string]string{"id": " ", "en": ""},
		BaseLang:  "en",
	}, "")

	assert.Equal(t, "solution", got)
}
