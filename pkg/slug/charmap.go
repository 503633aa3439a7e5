package slug

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// CharacterMap maps a single source rune to its replacement.
// A lookup miss leaves the rune unchanged.
type CharacterMap map[rune]string

// Apply substitutes every mapped rune in s.
func (m CharacterMap) Apply(s string) string {
	if len(m) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := m[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Merge returns a new map containing m overlaid with others, later maps winning.
func (m CharacterMap) Merge(others ...CharacterMap) CharacterMap {
	out := make(CharacterMap, len(m))
	maps.Copy(out, m)
	for _, o := range others {
		maps.Copy(out, o)
	}
	return out
}

// LoadCharacterMap reads a YAML mapping of single characters to replacements:
//
//	"Ж": "zh"
//	"Щ": "shch"
//
// Keys that are not exactly one character are rejected.
func LoadCharacterMap(r io.Reader) (CharacterMap, error) {
	raw := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidCharacterMap, err)
	}

	m := make(CharacterMap, len(raw))
	for k, v := range raw {
		if utf8.RuneCountInString(k) != 1 {
			return nil, errors.Join(ErrInvalidCharacterMap, fmt.Errorf("key %q must be a single character", k))
		}
		r, _ := utf8.DecodeRuneInString(k)
		if r == utf8.RuneError {
			return nil, errors.Join(ErrInvalidCharacterMap, fmt.Errorf("key %q is not valid UTF-8", k))
		}
		m[r] = v
	}
	return m, nil
}
