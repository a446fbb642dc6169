package storage

import (
	"database/sql"
	"encoding/json"
)

// DecodeI18nColumn parses a *_i18n JSON column into a language map. NULL,
// empty and malformed columns all decode to nil: stored translations are an
// overlay, never a reason for a read to fail.
func DecodeI18nColumn(col sql.NullString) map[string]string {
	if !col.Valid || col.String == "" {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(col.String), &m); err != nil || len(m) == 0 {
		return nil
	}
	return m
}

// EncodeI18nColumn serializes a language map for a *_i18n column, NULL when
// the map is empty.
func EncodeI18nColumn(m map[string]string) sql.NullString {
	if len(m) == 0 {
		return sql.NullString{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}

// NullableText maps an optional text value to its column form, NULL for
// empty strings.
func NullableText(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
