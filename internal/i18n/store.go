package i18n

// Store persists the overlay document. Load never fails: corrupt or missing
// underlying storage degrades to a fresh empty document. Save replaces the
// whole document; concurrent load-save cycles are last-write-wins (a single
// admin actor is assumed).
type Store interface {
	Load() Document
	Save(doc Document) error
}
