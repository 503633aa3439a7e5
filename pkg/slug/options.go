package slug

import (
	"time"

	"github.com/dmitrymomot/slugkit/pkg/id"
)

const (
	// DefaultSeparator joins words when no separator is configured.
	DefaultSeparator = "-"
	// DefaultFallbackPrefix starts every generated fallback slug.
	DefaultFallbackPrefix = "item"
)

// Option configures a Normalizer.
type Option func(*options)

type options struct {
	separator        string
	preserveOriginal bool
	useIntl          bool
	fallbackPrefix   string
	charMaps         []CharacterMap
	transliterator   Transliterator
	stripMarkup      func(string) string
	now              func() time.Time
	token            func() string
}

func defaultOptions() *options {
	return &options{
		separator:        DefaultSeparator,
		preserveOriginal: true,
		useIntl:          true,
		fallbackPrefix:   DefaultFallbackPrefix,
		stripMarkup:      stripTags,
		now:              time.Now,
		token:            id.NewToken,
	}
}

// Separator sets the default separator used when Generate is called with
// an empty one. Empty values and values containing whitespace are ignored.
// Default: "-"
func Separator(sep string) Option {
	return func(o *options) {
		if validSeparator(sep) {
			o.separator = sep
		}
	}
}

// PreserveOriginal keeps letters in their original script instead of
// transliterating to ASCII. Only non-Latin digits are converted.
// Default: true
func PreserveOriginal(enabled bool) Option {
	return func(o *options) {
		o.preserveOriginal = enabled
	}
}

// UseIntl enables the general-purpose transliteration tables when
// PreserveOriginal is off. Falls back to manual maps when unavailable.
// Default: true
func UseIntl(enabled bool) Option {
	return func(o *options) {
		o.useIntl = enabled
	}
}

// FallbackPrefix sets the prefix of generated fallback slugs. Words of a
// prefix containing whitespace are joined by the separator.
// Default: "item"
func FallbackPrefix(prefix string) Option {
	return func(o *options) {
		o.fallbackPrefix = prefix
	}
}

// WithCharacterMap adds letter substitutions that take precedence over the
// built-in transliteration tables. May be given multiple times.
func WithCharacterMap(m CharacterMap) Option {
	return func(o *options) {
		if len(m) > 0 {
			o.charMaps = append(o.charMaps, m)
		}
	}
}

// WithTransliterator forces a specific strategy, bypassing availability probing.
func WithTransliterator(t Transliterator) Option {
	return func(o *options) {
		o.transliterator = t
	}
}

// WithMarkupStripper replaces the built-in tag stripper.
func WithMarkupStripper(fn func(string) string) Option {
	return func(o *options) {
		if fn != nil {
			o.stripMarkup = fn
		}
	}
}

// WithClock sets the time source used for fallback slugs.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithTokenGenerator sets the source of the unique token in fallback slugs.
// Generated tokens should only contain lowercase ASCII letters and digits.
func WithTokenGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.token = fn
		}
	}
}
