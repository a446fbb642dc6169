package i18n

import "strings"

// FieldSource carries everything a backend knows about one translatable
// field of one project. Siblings is populated only by backends that model
// translations as field_<lang> sibling columns; I18n comes from the
// field_i18n JSON column.
type FieldSource struct {
	Canonical string
	Siblings  map[string]string
	I18n      map[string]string
	BaseLang  string
}

// Resolve picks the best display text for (projectID, field) in the
// requested language. First non-empty wins:
//
//  1. overlay entry for the normalized language
//  2. field_<lang> sibling column
//  3. field_i18n column for the language, then the base language, then en,
//     then id
//  4. the canonical field value
//  5. the caller-supplied fallback, else the field name itself
//
// Resolve is pure and total: absence at every tier falls through, it never
// fails.
func Resolve(doc Document, projectID, field, lang string, src FieldSource, fallback string) string {
	code := NormalizeLang(lang)

	if doc != nil {
		if text, ok := doc.Lookup(code, projectID, field); ok {
			return strings.TrimSpace(text)
		}
	}

	if text := strings.TrimSpace(src.Siblings[code]); text != "" {
		return text
	}

	for _, candidate := range []string{code, NormalizeLang(src.BaseLang), "en", "id"} {
		if candidate == "" {
			continue
		}
		if text := strings.TrimSpace(src.I18n[candidate]); text != "" {
			return text
		}
	}

	if text := strings.TrimSpace(src.Canonical); text != "" {
		return text
	}
	if fallback != "" {
		return fallback
	}
	return field
}
