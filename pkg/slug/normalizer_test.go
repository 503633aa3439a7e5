package slug_test

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugkit/pkg/slug"
)

var fixedTime = time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

func fixedFallback() []slug.Option {
	return []slug.Option{
		slug.WithClock(func() time.Time { return fixedTime }),
		slug.WithTokenGenerator(func() string { return "tok123" }),
	}
}

func manual(opts ...slug.Option) *slug.Normalizer {
	return slug.New(append([]slug.Option{slug.PreserveOriginal(false), slug.UseIntl(false)}, opts...)...)
}

func TestGenerate_Transliterate(t *testing.T) {
	t.Parallel()

	n := manual(fixedFallback()...)

	tests := []struct {
		name     string
		input    string
		sep      string
		expected string
	}{
		{name: "simple text", input: "Hello World", expected: "hello-world"},
		{name: "punctuation", input: "Hello, World!", expected: "hello-world"},
		{name: "price", input: "Price: $100 (50% off)", expected: "price-100-50-off"},
		{name: "separator run", input: "a---b", expected: "a-b"},
		{name: "multiple spaces", input: "Too    Many     Spaces", expected: "too-many-spaces"},
		{name: "leading and trailing spaces", input: "  Trim Me  ", expected: "trim-me"},
		{name: "tabs and newlines", input: "Line1\nLine2\tTabbed", expected: "line1-line2-tabbed"},
		{name: "french diacritics", input: "Café résumé naïve", expected: "cafe-resume-naive"},
		{name: "german letters", input: "Über Größe straße", expected: "uber-grosse-strasse"},
		{name: "polish letters", input: "Zażółć gęślą jaźń", expected: "zazolc-gesla-jazn"},
		{name: "quotes are deleted not spaced", input: "Côte d'Ivoire 2024", expected: "cote-divoire-2024"},
		{name: "typographic quotes", input: "«Le “grand” jour»", expected: "le-grand-jour"},
		{name: "markup", input: "<p>Hello <strong>world</strong></p>", expected: "hello-world"},
		{name: "ellipsis", input: "Wait... what?", expected: "wait-what"},
		{name: "unicode ellipsis", input: "Wait… what", expected: "wait-what"},
		{name: "arabic letters", input: "مرحبا بالعالم", expected: "mrhba-balaalm"},
		{name: "arabic digits", input: "٢٠٢٤ عام", expected: "2024-aam"},
		{name: "arabic punctuation", input: "سلام، عالم؟", expected: "slam-aalm"},
		{name: "emoji", input: "Hello 😀 World 🌍", expected: "hello-world"},
		{name: "path like", input: "path/to/file.txt", expected: "path-to-file-txt"},
		{name: "email", input: "user@example.com", expected: "user-example-com"},
		{name: "underscores", input: "snake_case_name", expected: "snake-case-name"},
		{name: "em dash", input: "One — Two – Three", expected: "one-two-three"},
		{name: "numbers only", input: "123456789", expected: "123456789"},
		{name: "custom separator", input: "Hello World", sep: "_", expected: "hello_world"},
		{name: "multi-char separator", input: "Multi Sep Test", sep: "---", expected: "multi---sep---test"},
		{name: "separator chars in input", input: "__a__b__", sep: "_", expected: "a_b"},
		{name: "dot separator", input: "a.b c", sep: ".", expected: "a.b.c"},
		{name: "invalid utf-8 repaired", input: "caf\xe9 cr\xe8me", expected: "cafe-creme"},
		{name: "decomposed input", input: "Cafe\u0301", expected: "cafe"},
		{name: "unsupported script", input: "Привет", expected: "item-2024-03-05-07-08-09-tok123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, n.Generate(tt.input, tt.sep))
		})
	}
}

func TestGenerate_Preserve(t *testing.T) {
	t.Parallel()

	n := slug.New(fixedFallback()...)

	tests := []struct {
		name     string
		input    string
		sep      string
		expected string
	}{
		{name: "french", input: "café français", expected: "café-français"},
		{name: "case kept", input: "Café Français", expected: "Café-Français"},
		{name: "arabic", input: "مقالات تقنية", expected: "مقالات-تقنية"},
		{name: "persian", input: "سلام دنیا", expected: "سلام-دنیا"},
		{name: "arabic digits converted", input: "الفصل ٣", expected: "الفصل-3"},
		{name: "persian digits converted", input: "فصل ۱۲", expected: "فصل-12"},
		{name: "cyrillic", input: "Привет, мир!", expected: "Привет-мир"},
		{name: "ascii punctuation", input: "Hello, World!", expected: "Hello-World"},
		{name: "quotes", input: "l'été «chaud»", expected: "lété-chaud"},
		{name: "symbols kept", input: "Tom & Jerry ©", expected: "Tom-Jerry-©"},
		{name: "emoji kept", input: "I ❤ Go", expected: "I-❤-Go"},
		{name: "underscore kept", input: "foo_bar", expected: "foo_bar"},
		{name: "dash kept with other separator", input: "a-b", sep: "_", expected: "a-b"},
		{name: "dash and separator", input: "a-b c", sep: "_", expected: "a-b_c"},
		{name: "hyphenated word", input: "well-known fact", expected: "well-known-fact"},
		{name: "control and format runes dropped", input: "a\u0007b\u200bc", expected: "a-b-c"},
		{name: "only punctuation", input: "!!! ??? ...", expected: "item-2024-03-05-07-08-09-tok123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sep := tt.sep
			if sep == "" {
				sep = "-"
			}
			assert.Equal(t, tt.expected, n.Generate(tt.input, sep))
		})
	}
}

func TestGenerate_Intl(t *testing.T) {
	t.Parallel()

	if !slug.IntlAvailable() {
		t.Skip("general transliteration tables unavailable")
	}

	n := slug.New(slug.PreserveOriginal(false), slug.UseIntl(true))

	mode, ok := n.Mode()
	require.True(t, ok)
	require.Equal(t, slug.ModeIntl, mode)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "cyrillic", input: "Привет мир", expected: "privet-mir"},
		{name: "latin diacritics", input: "Café Résumé", expected: "cafe-resume"},
		{name: "sharp s", input: "Straße", expected: "strasse"},
		{name: "chinese", input: "北京", expected: "bei-jing"},
		{name: "arabic digits", input: "٣٤٥", expected: "345"},
		{name: "punctuation", input: "Hello, World!", expected: "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, n.Generate(tt.input, "-"))
		})
	}
}

func TestGenerate_Fallback(t *testing.T) {
	t.Parallel()

	t.Run("blank inputs", func(t *testing.T) {
		t.Parallel()

		n := manual(fixedFallback()...)
		for _, in := range []string{"", "   ", "\t\n", "!!!", `"'«»„‚‹›`, "<br/>", "---"} {
			assert.Equal(t, "item-2024-03-05-07-08-09-tok123", n.Generate(in, "-"), "input %q", in)
		}
	})

	t.Run("explicit fallback returned verbatim", func(t *testing.T) {
		t.Parallel()

		n := manual()
		assert.Equal(t, "untitled", n.GenerateWithFallback("   ", "-", "untitled"))
		assert.Equal(t, "untitled", n.GenerateWithFallback("?!", "-", "untitled"))
		assert.Equal(t, "hello", n.GenerateWithFallback("Hello", "-", "untitled"))
	})

	t.Run("uses call separator", func(t *testing.T) {
		t.Parallel()

		n := manual(fixedFallback()...)
		assert.Equal(t, "item_2024_03_05_07_08_09_tok123", n.Generate("", "_"))
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()

		n := manual(append(fixedFallback(), slug.FallbackPrefix("post"))...)
		assert.Equal(t, "post-2024-03-05-07-08-09-tok123", n.Generate("", "-"))
	})

	t.Run("empty prefix", func(t *testing.T) {
		t.Parallel()

		n := manual(append(fixedFallback(), slug.FallbackPrefix(""))...)
		assert.Equal(t, "2024-03-05-07-08-09-tok123", n.Generate("", "-"))
	})

	t.Run("generated fallbacks do not collide", func(t *testing.T) {
		t.Parallel()

		n := manual()
		pattern := regexp.MustCompile(`^item-\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}-[0-9a-z]{13}$`)

		seen := make(map[string]struct{}, 100)
		for range 100 {
			s := n.Generate("   ", "-")
			require.Regexp(t, pattern, s)
			_, dup := seen[s]
			require.False(t, dup, "duplicate fallback %s", s)
			seen[s] = struct{}{}
		}
	})
}

func TestGenerate_DefaultSeparator(t *testing.T) {
	t.Parallel()

	n := manual(slug.Separator("_"))
	assert.Equal(t, "_", n.Separator())
	assert.Equal(t, "hello_world", n.Generate("Hello World", ""))
	assert.Equal(t, "hello-world", n.Generate("Hello World", "-"))

	assert.Equal(t, "-", manual(slug.Separator("")).Separator())
}

func TestGenerate_WhitespaceSeparator(t *testing.T) {
	t.Parallel()

	n := manual(fixedFallback()...)
	for _, sep := range []string{" ", "\t", " - ", "\u00a0"} {
		assert.Equal(t, "hello-world", n.Generate("Hello World", sep), "separator %q", sep)
		assert.Equal(t, "item-2024-03-05-07-08-09-tok123", n.Generate("", sep), "separator %q", sep)
	}

	assert.Equal(t, "-", manual(slug.Separator(" ")).Separator())
	assert.Equal(t, "my-post-2024-03-05-07-08-09-tok123",
		manual(append(fixedFallback(), slug.FallbackPrefix(" my  post "))...).Generate("", "-"))
}

func TestGenerate_DigitNormalization(t *testing.T) {
	t.Parallel()

	normalizers := map[string]*slug.Normalizer{
		"preserve":    slug.New(),
		"manual":      manual(),
		"intl-or-any": slug.New(slug.PreserveOriginal(false)),
	}

	for name, n := range normalizers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "0123456789", n.Generate("٠١٢٣٤٥٦٧٨٩", "-"))
			assert.Equal(t, "0123456789", n.Generate("۰۱۲۳۴۵۶۷۸۹", "-"))
			assert.Equal(t, "1-2", n.Generate("١ ٢", "-"))
		})
	}
}

var propertyInputs = []string{
	"",
	"   ",
	"Hello, World!",
	"a---b",
	"--leading and trailing--",
	"Price: $100 (50% off)",
	"...",
	"!!!???",
	`"'«»`,
	"<div><p>nested <span>tags</span></p></div>",
	"Wait.....what",
	"A  -  B  -  C",
	"مرحبا ٣ عالم",
	"Café résumé naïve",
	"Привет мир",
	"北京 2008",
	"Ends with separator-",
	"x",
	"x-y_z~w",
	"\xff\xfe broken bytes",
	"Tom & Jerry © 2024 ™",
}

func TestGenerate_Properties(t *testing.T) {
	t.Parallel()

	normalizers := map[string]*slug.Normalizer{
		"preserve": slug.New(),
		"manual":   manual(),
		"intl":     slug.New(slug.PreserveOriginal(false)),
	}

	for name, n := range normalizers {
		for _, sep := range []string{"-", "_", "~", "--", "."} {
			t.Run(name+"/"+sep, func(t *testing.T) {
				t.Parallel()

				caseInvariant := regexp.MustCompile(
					`^[a-z0-9]+(` + regexp.QuoteMeta(sep) + `[a-z0-9]+)*$`)

				for _, in := range propertyInputs {
					out := n.Generate(in, sep)

					require.NotEmpty(t, out, "input %q", in)
					assert.NotContains(t, out, sep+sep, "input %q", in)
					assert.False(t, strings.HasPrefix(out, sep), "leading separator for %q: %q", in, out)
					assert.False(t, strings.HasSuffix(out, sep), "trailing separator for %q: %q", in, out)
					assert.NotContains(t, out, " ", "input %q", in)

					if !n.PreservesOriginal() {
						assert.Regexp(t, caseInvariant, out, "input %q", in)
					}

					assert.Equal(t, out, n.Generate(out, sep), "not idempotent for %q", in)
				}
			})
		}
	}
}

func TestNormalizer_Mode(t *testing.T) {
	t.Parallel()

	_, ok := slug.New().Mode()
	assert.False(t, ok, "preserve mode has no transliterator")
	assert.True(t, slug.New().PreservesOriginal())

	mode, ok := manual().Mode()
	require.True(t, ok)
	assert.Equal(t, slug.ModeManual, mode)

	forced := slug.New(slug.PreserveOriginal(false), slug.WithTransliterator(upperTransliterator{}))
	mode, ok = forced.Mode()
	require.True(t, ok)
	assert.Equal(t, slug.ModeManual, mode)
	assert.Equal(t, "abc", forced.Generate("abc", "-"), "output is lowercased after the strategy")
}

type upperTransliterator struct{}

func (upperTransliterator) Transliterate(s string) string { return strings.ToUpper(s) }
func (upperTransliterator) Mode() slug.Mode { return slug.ModeManual }

func TestNormalizer_MarkupStripper(t *testing.T) {
	t.Parallel()

	t.Run("naive stripper keeps bare angle brackets", func(t *testing.T) {
		t.Parallel()

		n := manual()
		assert.Equal(t, "a-b", n.Generate("a < b", "-"))
		assert.Equal(t, "1-2", n.Generate("1 <> 2", "-"))
		assert.Equal(t, "hello", n.Generate("hello <unterminated tag", "-"))
		assert.Equal(t, "x", n.Generate("<!-- note -->x", "-"))
	})

	t.Run("custom stripper", func(t *testing.T) {
		t.Parallel()

		n := manual(slug.WithMarkupStripper(func(s string) string {
			return strings.ReplaceAll(s, "[b]", "")
		}))
		assert.Equal(t, "bold-p", n.Generate("[b]bold <p>", "-"))
	})
}

func TestMake(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello-World", slug.Make("Hello, World!"))
	assert.Equal(t, "hello_world", slug.Make("Hello, World!",
		slug.PreserveOriginal(false), slug.UseIntl(false), slug.Separator("_")))
}

func TestGenerate_Concurrent(t *testing.T) {
	t.Parallel()

	n := manual()
	inputs := []string{"Hello, World!", "Café résumé naïve", "مرحبا بالعالم", "Price: $100 (50% off)"}
	expected := make([]string, len(inputs))
	for i, in := range inputs {
		expected[i] = n.Generate(in, "-")
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				assert.Equal(t, expected[i], n.Generate(in, "-"))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkGenerate(b *testing.B) {
	cases := map[string]*slug.Normalizer{
		"preserve": slug.New(),
		"manual":   manual(),
		"intl":     slug.New(slug.PreserveOriginal(false)),
	}
	input := "Ñoño español año château façade über größe — مرحبا ٢٠٢٤"

	for name, n := range cases {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = n.Generate(input, "-")
			}
		})
	}
}
