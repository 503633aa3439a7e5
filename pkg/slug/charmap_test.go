package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugkit/pkg/slug"
)

func TestLoadCharacterMap(t *testing.T) {
	t.Parallel()

	t.Run("valid map", func(t *testing.T) {
		t.Parallel()

		m, err := slug.LoadCharacterMap(strings.NewReader(`
"Ж": "zh"
"ж": "zh"
"Щ": "shch"
`))
		require.NoError(t, err)
		assert.Equal(t, slug.CharacterMap{'Ж': "zh", 'ж': "zh", 'Щ': "shch"}, m)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		m, err := slug.LoadCharacterMap(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("multi-character key", func(t *testing.T) {
		t.Parallel()

		_, err := slug.LoadCharacterMap(strings.NewReader(`"ab": "x"`))
		require.ErrorIs(t, err, slug.ErrInvalidCharacterMap)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := slug.LoadCharacterMap(strings.NewReader("- just\n- a list"))
		require.ErrorIs(t, err, slug.ErrInvalidCharacterMap)
	})
}

func TestCharacterMap(t *testing.T) {
	t.Parallel()

	t.Run("apply", func(t *testing.T) {
		t.Parallel()

		m := slug.CharacterMap{'ж': "zh", 'я': "ya"}
		assert.Equal(t, "zhaba ya", m.Apply("жaba я"))
		assert.Equal(t, "untouched", slug.CharacterMap(nil).Apply("untouched"))
	})

	t.Run("merge later wins", func(t *testing.T) {
		t.Parallel()

		a := slug.CharacterMap{'ж': "zh", 'ш': "sh"}
		b := slug.CharacterMap{'ж': "j"}
		merged := a.Merge(b)

		assert.Equal(t, slug.CharacterMap{'ж': "j", 'ш': "sh"}, merged)
		assert.Equal(t, "zh", a['ж'], "receiver is not modified")
	})
}

func TestWithCharacterMap(t *testing.T) {
	t.Parallel()

	m := slug.CharacterMap{'Ж': "Zh", 'ж': "zh", 'у': "u", 'к': "k"}

	t.Run("manual strategy", func(t *testing.T) {
		t.Parallel()

		n := slug.New(slug.PreserveOriginal(false), slug.UseIntl(false), slug.WithCharacterMap(m))
		assert.Equal(t, "zhuk", n.Generate("Жук", "-"))
	})

	t.Run("overrides built-in letters", func(t *testing.T) {
		t.Parallel()

		n := slug.New(slug.PreserveOriginal(false), slug.UseIntl(false),
			slug.WithCharacterMap(slug.CharacterMap{'ü': "ue", 'ö': "oe"}))
		assert.Equal(t, "muenchen-koeln", n.Generate("München Köln", "-"))
	})

	t.Run("intl strategy", func(t *testing.T) {
		t.Parallel()

		if !slug.IntlAvailable() {
			t.Skip("general transliteration tables unavailable")
		}
		n := slug.New(slug.PreserveOriginal(false), slug.UseIntl(true),
			slug.WithCharacterMap(slug.CharacterMap{'ü': "ue"}))
		assert.Equal(t, "muenchen", n.Generate("München", "-"))
	})
}

func TestTransliterators(t *testing.T) {
	t.Parallel()

	m := slug.NewManualTransliterator()
	assert.Equal(t, slug.ModeManual, m.Mode())
	assert.Equal(t, "Cafe", m.Transliterate("Café"))
	assert.Equal(t, "slam", m.Transliterate("سلام"))

	assert.Equal(t, "intl", slug.ModeIntl.String())
	assert.Equal(t, "manual", slug.ModeManual.String())

	tr := slug.NewTransliterator(false)
	assert.Equal(t, slug.ModeManual, tr.Mode())

	if slug.IntlAvailable() {
		assert.Equal(t, slug.ModeIntl, slug.NewTransliterator(true).Mode())
		assert.Equal(t, "privet", slug.IntlTransliterator{}.Transliterate("Привет"))
	}
}
