package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripTags removes all HTML and returns plain text with entities decoded,
// so "Fish &amp; Chips" becomes "Fish & Chips".
// Unlike a naive tag stripper it understands the HTML grammar: script and
// style contents are dropped and a bare "<" in text is kept.
func StripTags(s string) string {
	initPolicies()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
