package slug

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Normalizer turns arbitrary text into slugs.
// It holds no mutable state after New returns and is safe for concurrent use.
type Normalizer struct {
	translit         Transliterator
	stripMarkup      func(string) string
	now              func() time.Time
	token            func() string
	separator        string
	fallbackPrefix   string
	preserveOriginal bool
}

// New creates a Normalizer. The transliteration strategy is chosen here,
// once, and never re-evaluated per call.
func New(opts ...Option) *Normalizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	n := &Normalizer{
		stripMarkup:      o.stripMarkup,
		now:              o.now,
		token:            o.token,
		separator:        o.separator,
		fallbackPrefix:   o.fallbackPrefix,
		preserveOriginal: o.preserveOriginal,
	}

	if !o.preserveOriginal {
		n.translit = o.transliterator
		if n.translit == nil {
			n.translit = NewTransliterator(o.useIntl, o.charMaps...)
		}
	}

	return n
}

// Make is a shortcut for New(opts...).Generate(text, "").
func Make(text string, opts ...Option) string {
	return New(opts...).Generate(text, "")
}

// Mode reports the transliteration strategy. ok is false in preserve mode.
func (n *Normalizer) Mode() (mode Mode, ok bool) {
	if n.translit == nil {
		return 0, false
	}
	return n.translit.Mode(), true
}

// PreservesOriginal reports whether letters are kept in their source script.
func (n *Normalizer) PreservesOriginal() bool {
	return n.preserveOriginal
}

// Separator returns the default separator.
func (n *Normalizer) Separator() string {
	return n.separator
}

// Generate converts text to a slug joined by separator (the configured
// default when empty or containing whitespace). Blank input, or input that normalizes to nothing,
// yields a generated fallback slug. Never fails.
func (n *Normalizer) Generate(text, separator string) string {
	return n.generate(text, separator, "")
}

// GenerateWithFallback is Generate but returns fallback verbatim instead of a
// generated fallback slug. An empty fallback behaves like Generate.
func (n *Normalizer) GenerateWithFallback(text, separator, fallback string) string {
	return n.generate(text, separator, fallback)
}

func (n *Normalizer) generate(text, sep, fallback string) string {
	sep = n.effectiveSeparator(sep)
	orFallback := func() string {
		if fallback != "" {
			return fallback
		}
		return n.fallback(sep)
	}

	if strings.TrimSpace(text) == "" {
		return orFallback()
	}

	s := repairEncoding(text)
	s = n.stripMarkup(s)
	s = quoteStripper.Replace(s)

	if n.preserveOriginal {
		s = digitTransliteration.Apply(s)
	} else {
		s = n.translit.Transliterate(s)
		s = digitTransliteration.Apply(s)
	}

	s = punctuationReplacer.Replace(s)
	s = scrub(s, !n.preserveOriginal)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, " ", sep)

	double := sep + sep
	for strings.Contains(s, double) {
		s = strings.ReplaceAll(s, double, sep)
	}
	s = trimSeparator(s, sep)

	if !n.preserveOriginal {
		s = lowerASCII(s)
	}

	if s == "" || s == sep {
		return orFallback()
	}
	return s
}

// effectiveSeparator falls back to the configured separator when sep
// cannot be used.
func (n *Normalizer) effectiveSeparator(sep string) string {
	if !validSeparator(sep) {
		return n.separator
	}
	return sep
}

// validSeparator rejects empty separators and those containing whitespace,
// which would leave raw whitespace in the slug.
func validSeparator(sep string) bool {
	return sep != "" && !strings.ContainsFunc(sep, unicode.IsSpace)
}

// repairEncoding re-decodes bytes that are not valid UTF-8 as Windows-1252,
// which maps every byte, then composes the result to NFC so precomposed
// table keys match decomposed input.
func repairEncoding(s string) string {
	if !utf8.ValidString(s) {
		var b strings.Builder
		b.Grow(len(s) + 8)
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size <= 1 {
				b.WriteRune(charmap.Windows1252.DecodeByte(s[i]))
				i++
				continue
			}
			b.WriteRune(r)
			i += size
		}
		s = b.String()
	}
	return norm.NFC.String(s)
}

// stripTags removes <...> sequences without understanding nesting.
// A '<' opens a tag only when followed by a letter, '/', '!' or '?';
// an unterminated tag swallows the rest of the input.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '<' && i+1 < len(s) && isTagStart(s[i+1]) {
			end := strings.IndexByte(s[i+1:], '>')
			if end < 0 {
				break
			}
			i += end + 1
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isTagStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '/' || c == '!' || c == '?'
}

// scrub turns runes that cannot appear in a slug into spaces.
// In ASCII mode only [A-Za-z0-9] survive. Otherwise only control and
// format runes are dropped, so symbols and separator characters in the
// source text are kept as written.
func scrub(s string, asciiOnly bool) string {
	return strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) || unicode.IsSpace(r) {
			return r
		}
		if asciiOnly {
			return ' '
		}
		if unicode.In(r, unicode.Cc, unicode.Cf) || r == utf8.RuneError {
			return ' '
		}
		return r
	}, s)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func trimSeparator(s, sep string) string {
	for strings.HasPrefix(s, sep) {
		s = s[len(sep):]
	}
	for strings.HasSuffix(s, sep) {
		s = s[:len(s)-len(sep)]
	}
	return s
}

func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
