package slug

import "context"

// Record is an entity whose slug is derived from one of its fields.
type Record interface {
	// SlugTable names the table or collection the record is stored in.
	SlugTable() string
	// SlugKey returns the primary key and whether the record is already persisted.
	SlugKey() (key any, persisted bool)
	// SlugSource returns the current value of the named source field.
	SlugSource(field string) string
	// SlugSourceChanged reports whether the source field changed since load.
	SlugSourceChanged(field string) bool
	// SetSlug stores the generated slug in the named column.
	SetSlug(column, value string)
}

// Overridable is implemented by records that customize slug settings.
type Overridable interface {
	SlugOverrides() Overrides
}

// Defaults are the process-wide slug settings.
type Defaults struct {
	SourceField        string
	Separator          string
	Column             string
	RegenerateOnUpdate bool
}

// Overrides are per-record settings. Zero values fall through to Defaults.
type Overrides struct {
	RegenerateOnUpdate *bool
	SourceField        string
	Separator          string
	Column             string
}

// Settings are the effective slug settings for one record.
type Settings struct {
	SourceField        string
	Separator          string
	Column             string
	RegenerateOnUpdate bool
}

// DefaultDefaults mirrors the configuration defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		SourceField:        "name",
		Separator:          DefaultSeparator,
		Column:             "slug",
		RegenerateOnUpdate: true,
	}
}

// Resolve applies overrides on top of the defaults: a set override wins,
// otherwise the default is used.
func (d Defaults) Resolve(o Overrides) Settings {
	s := Settings{
		SourceField:        d.SourceField,
		Separator:          d.Separator,
		Column:             d.Column,
		RegenerateOnUpdate: d.RegenerateOnUpdate,
	}
	if o.SourceField != "" {
		s.SourceField = o.SourceField
	}
	if o.Separator != "" {
		s.Separator = o.Separator
	}
	if o.Column != "" {
		s.Column = o.Column
	}
	if o.RegenerateOnUpdate != nil {
		s.RegenerateOnUpdate = *o.RegenerateOnUpdate
	}
	return s
}

// Hook assigns slugs from a record's save path. The host calls
// BeforeCreate or BeforeUpdate right before persisting.
type Hook struct {
	resolver *Resolver
	defaults Defaults
}

// NewHook creates a Hook. Empty default fields are filled from DefaultDefaults.
func NewHook(r *Resolver, d Defaults) *Hook {
	base := DefaultDefaults()
	if d.SourceField == "" {
		d.SourceField = base.SourceField
	}
	if d.Separator == "" {
		d.Separator = base.Separator
	}
	if d.Column == "" {
		d.Column = base.Column
	}
	return &Hook{resolver: r, defaults: d}
}

// Settings returns the effective settings for rec.
func (h *Hook) Settings(rec Record) Settings {
	var o Overrides
	if ov, ok := rec.(Overridable); ok {
		o = ov.SlugOverrides()
	}
	return h.defaults.Resolve(o)
}

// BeforeCreate always generates a slug for a new record.
func (h *Hook) BeforeCreate(ctx context.Context, rec Record) error {
	if rec == nil {
		return ErrNilRecord
	}
	return h.assign(ctx, rec, h.Settings(rec))
}

// BeforeUpdate regenerates the slug only when regeneration is enabled and
// the source field changed.
func (h *Hook) BeforeUpdate(ctx context.Context, rec Record) error {
	if rec == nil {
		return ErrNilRecord
	}
	s := h.Settings(rec)
	if !s.RegenerateOnUpdate || !rec.SlugSourceChanged(s.SourceField) {
		return nil
	}
	return h.assign(ctx, rec, s)
}

// Regenerate unconditionally recomputes the slug.
func (h *Hook) Regenerate(ctx context.Context, rec Record) error {
	if rec == nil {
		return ErrNilRecord
	}
	return h.assign(ctx, rec, h.Settings(rec))
}

// assign leaves the record untouched when the source value is empty.
func (h *Hook) assign(ctx context.Context, rec Record, s Settings) error {
	source := rec.SlugSource(s.SourceField)
	if source == "" {
		return nil
	}

	var exclude any
	if key, persisted := rec.SlugKey(); persisted {
		exclude = key
	}

	value, err := h.resolver.GenerateUnique(ctx, source, Target{
		Table:     rec.SlugTable(),
		Column:    s.Column,
		Separator: s.Separator,
	}, exclude)
	if err != nil {
		return err
	}

	rec.SetSlug(s.Column, value)
	return nil
}
