// Package i18n holds the per-field translation overlay for projects: a
// document keyed by language code, then project id, then field name. The
// overlay is stored independently of the project rows and merged in at read
// time by Resolve.
package i18n

import (
	"encoding/json"
	"errors"
	"strings"
)

// Languages is the closed set of language codes exposed through the API.
// Every one of these keys is always present at the top level of a Document,
// even when its project map is empty. Codes outside this set are still
// stored when submitted.
var Languages = []string{"en", "id", "zh", "ja", "fr", "ru", "es"}

// Translatable project fields. Only the four long-text fields carry
// per-language overrides.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldProblem     = "problem"
	FieldSolution    = "solution"
)

// Fields lists the translatable field names in display order.
var Fields = []string{FieldTitle, FieldDescription, FieldProblem, FieldSolution}

// ErrInvalidPayload reports a caller-supplied i18n map that is not a JSON
// object of language code to text.
var ErrInvalidPayload = errors.New("invalid i18n payload (must be a JSON object)")

// Document maps language -> project id (decimal string) -> field -> text.
type Document map[string]map[string]map[string]string

// NewDocument returns an empty overlay with every recognized language key
// present.
func NewDocument() Document {
	doc := make(Document, len(Languages))
	for _, lang := range Languages {
		doc[lang] = make(map[string]map[string]string)
	}
	return doc
}

// ParseDocument decodes a stored overlay. Corrupt or unreadable input is
// absorbed: the result is always a usable document with all recognized
// language keys present, starting fresh when the bytes cannot be trusted.
func ParseDocument(raw []byte) Document {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return NewDocument()
	}
	for _, lang := range Languages {
		if doc[lang] == nil {
			doc[lang] = make(map[string]map[string]string)
		}
	}
	for lang, projects := range doc {
		if projects == nil {
			doc[lang] = make(map[string]map[string]string)
		}
	}
	return doc
}

// Marshal encodes the document for storage. Save is a whole-document
// replace, so callers merge in memory first.
func (d Document) Marshal() []byte {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return []byte("{}")
	}
	return data
}

// Lookup returns the overlay text for (lang, projectID, field). The language
// tag is normalized before lookup.
func (d Document) Lookup(lang, projectID, field string) (string, bool) {
	projects, ok := d[NormalizeLang(lang)]
	if !ok {
		return "", false
	}
	entries, ok := projects[projectID]
	if !ok {
		return "", false
	}
	text, ok := entries[field]
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// Apply merges one field's language map into the document for a project.
// Values are trimmed; an empty or whitespace-only value means "no override"
// and removes any existing entry for that (lang, id, field) instead of
// storing blank text.
func (d Document) Apply(projectID, field string, entries map[string]string) {
	for lang, value := range entries {
		code := NormalizeLang(lang)
		if code == "" {
			continue
		}
		text := strings.TrimSpace(value)
		projects := d[code]
		if projects == nil {
			projects = make(map[string]map[string]string)
			d[code] = projects
		}
		fields := projects[projectID]
		if text == "" {
			if fields != nil {
				delete(fields, field)
				if len(fields) == 0 {
					delete(projects, projectID)
				}
			}
			continue
		}
		if fields == nil {
			fields = make(map[string]string)
			projects[projectID] = fields
		}
		fields[field] = text
	}
}

// NormalizeLang lower-cases a language tag and reduces region-qualified tags
// to their primary subtag ("en-US" -> "en").
func NormalizeLang(tag string) string {
	code := strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}
	return code
}

// ParseFieldMap decodes a caller-supplied JSON object mapping language code
// to translated text, as submitted in the *_i18n form fields. Keys are
// lower-cased and values trimmed. Blank values are kept so Apply can treat
// them as removals. A blank raw string yields nil (field not supplied);
// anything that is not a JSON object is ErrInvalidPayload.
func ParseFieldMap(raw string) (map[string]string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, nil
	}
	var obj map[string]string
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, ErrInvalidPayload
	}
	cleaned := make(map[string]string, len(obj))
	for lang, value := range obj {
		code := NormalizeLang(lang)
		if code == "" {
			continue
		}
		cleaned[code] = strings.TrimSpace(value)
	}
	return cleaned, nil
}
