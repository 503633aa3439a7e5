package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/slugkit/pkg/sanitizer"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script content",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: "Hello",
		},
		{
			name:     "strips nested tags",
			input:    `<div><p>nested <span>content</span></p></div>`,
			expected: "nested content",
		},
		{
			name:     "keeps link text",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: "click",
		},
		{
			name:     "drops void elements",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: "",
		},
		{
			name:     "strips style content",
			input:    `Hello <STYLE>.XSS{background-image:url("javascript:alert('XSS')");}</STYLE>World`,
			expected: "Hello World",
		},
		{
			name:     "decodes entities",
			input:    `<b>Fish &amp; Chips</b>`,
			expected: "Fish & Chips",
		},
		{
			name:     "keeps bare angle bracket",
			input:    "a < b",
			expected: "a < b",
		},
		{
			name:     "plain text",
			input:    "normal text without HTML",
			expected: "normal text without HTML",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}
