package slug

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// Mode identifies the transliteration strategy in use.
type Mode int

const (
	// ModeIntl converts any script to Latin, then to ASCII, then lowercases.
	ModeIntl Mode = iota
	// ModeManual uses the built-in character maps only.
	ModeManual
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIntl:
		return "intl"
	case ModeManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Transliterator converts text to Latin script.
// Implementations must be safe for concurrent use.
type Transliterator interface {
	Transliterate(s string) string
	Mode() Mode
}

// IntlTransliterator performs "any script to Latin, Latin to ASCII, lowercase"
// in a single pass using unidecode tables. Overrides are substituted before
// the tables run.
type IntlTransliterator struct {
	Overrides CharacterMap
}

// Transliterate implements Transliterator.
func (t IntlTransliterator) Transliterate(s string) string {
	s = t.Overrides.Apply(norm.NFKC.String(s))
	return strings.ToLower(unidecode.Unidecode(s))
}

// Mode implements Transliterator.
func (IntlTransliterator) Mode() Mode { return ModeIntl }

// ManualTransliterator substitutes script letters first, then Latin diacritics.
type ManualTransliterator struct {
	script CharacterMap
	latin  CharacterMap
}

// NewManualTransliterator builds the manual strategy. Extra maps are merged
// over the built-in script table, so they can add scripts or override letters.
func NewManualTransliterator(extra ...CharacterMap) *ManualTransliterator {
	script := arabicTransliteration
	if len(extra) > 0 {
		script = arabicTransliteration.Merge(extra...)
	}
	return &ManualTransliterator{script: script, latin: latinTransliteration}
}

// Transliterate implements Transliterator.
func (t *ManualTransliterator) Transliterate(s string) string {
	return t.latin.Apply(t.script.Apply(s))
}

// Mode implements Transliterator.
func (t *ManualTransliterator) Mode() Mode { return ModeManual }

var (
	intlProbeOnce sync.Once
	intlAvailable bool
)

// IntlAvailable reports whether the general transliteration tables are usable.
// The probe runs once per process.
func IntlAvailable() bool {
	intlProbeOnce.Do(func() {
		intlAvailable = probeIntl(IntlTransliterator{})
	})
	return intlAvailable
}

// probeIntl checks that the transliterator turns a non-Latin sample into
// non-empty lowercase ASCII.
func probeIntl(t Transliterator) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	const sample = "Привет"
	out := strings.TrimSpace(t.Transliterate(sample))
	if out == "" || out == sample {
		return false
	}
	for i := 0; i < len(out); i++ {
		if out[i] >= utf8.RuneSelf || (out[i] >= 'A' && out[i] <= 'Z') {
			return false
		}
	}
	return true
}

// NewTransliterator picks the strategy once: Intl when requested and
// available, manual otherwise. Extra maps take precedence over the
// built-in tables in both strategies.
func NewTransliterator(useIntl bool, extra ...CharacterMap) Transliterator {
	if useIntl && IntlAvailable() {
		return IntlTransliterator{Overrides: CharacterMap{}.Merge(extra...)}
	}
	return NewManualTransliterator(extra...)
}
