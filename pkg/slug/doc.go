// Package slug turns human-authored text into URL-safe identifiers and,
// optionally, makes them unique against existing records.
//
// The package has three parts:
//
//   - [Normalizer]: a pure, deterministic pipeline from raw Unicode to a slug.
//   - [Resolver]: appends -1, -2, ... to a base slug until an [ExistenceChecker]
//     reports the candidate free.
//   - [Hook]: the create/update extension point a persistence layer calls
//     before saving a record.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugkit/pkg/slug"
//
//	n := slug.New(slug.PreserveOriginal(false))
//	n.Generate("Hello, World!", "-")          // "hello-world"
//	n.Generate("Price: $100 (50% off)", "-")  // "price-100-50-off"
//	n.Generate("a---b", "-")                  // "a-b"
//
//	p := slug.New() // preserve mode is the default
//	p.Generate("café français", "-")          // "café-français"
//	p.Generate("مقالات تقنية", "-")           // "مقالات-تقنية"
//
// # Pipeline
//
// Generate runs these stages in order:
//
//  1. Blank input returns the fallback immediately.
//  2. Invalid UTF-8 bytes are re-decoded as Windows-1252; the text is NFC composed.
//  3. Markup tags are removed (naive <...> matching by default).
//  4. Straight and typographic quotes are deleted.
//  5. Preserve mode converts non-Latin digits only. Transliterate mode runs
//     the [Transliterator] and then converts digits.
//  6. Punctuation, symbols and (in transliterate mode) any non-ASCII leftovers
//     become spaces.
//  7. Whitespace runs collapse to one space and the ends are trimmed.
//  8. Spaces become the separator.
//  9. Doubled separators collapse until none remain.
//  10. Separators are trimmed from both ends.
//  11. ASCII letters are lowercased (transliterate mode only).
//  12. An empty result returns the fallback.
//
// The fallback is either the caller-supplied literal or a generated slug of
// the form "item-YYYY-MM-DD-HH-mm-ss-<token>", unique per call without
// consulting any store.
//
// # Transliteration
//
// With PreserveOriginal(false) a [Transliterator] is chosen once in [New]:
// [IntlTransliterator] (unidecode tables, any script) when UseIntl is on and
// the tables pass a startup probe, otherwise [ManualTransliterator]
// (Arabic/Persian letters and Latin diacritics). Extra letters can be added
// with [WithCharacterMap] or loaded from YAML with [LoadCharacterMap].
//
// # Uniqueness
//
//	r := slug.NewResolver(n, checker, slug.WithMaxAttempts(50))
//	s, err := r.GenerateUnique(ctx, "Hello World", slug.Target{
//		Table:  "articles",
//		Column: "slug",
//	}, nil)
//	// "hello-world", or "hello-world-1" if taken, and so on.
//
// Pass the record's key as excludeKey when updating so the record does not
// collide with its own slug. After the sequential attempts a few random
// suffixes are tried; if those collide too, [ErrExhaustedUniquenessAttempts]
// is returned. Errors from the checker are returned unchanged.
//
// The resolver does not lock anything. Two concurrent callers may both see a
// candidate as free, so storage must enforce a unique constraint.
//
// # Record hooks
//
//	hook := slug.NewHook(resolver, cfg.Defaults())
//	if err := hook.BeforeCreate(ctx, article); err != nil { ... }
//	if err := hook.BeforeUpdate(ctx, article); err != nil { ... }
//
// Records implement [Record]; per-record settings come from [Overridable]
// and fall back to [Defaults] field by field.
package slug
