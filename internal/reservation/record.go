package reservation

const sourceField = "text"

// record adapts a reservation request to slug.Record.
type record struct {
	scope    string
	key      string
	text     string
	existing *Reservation

	slug     string
	assigned bool
}

func (r *record) SlugTable() string { return r.scope }

func (r *record) SlugKey() (any, bool) { return r.key, r.existing != nil }

func (r *record) SlugSource(string) string { return r.text }

func (r *record) SlugSourceChanged(string) bool {
	return r.existing == nil || r.existing.SourceText != r.text
}

func (r *record) SetSlug(_, value string) {
	r.slug = value
	r.assigned = true
}
