package slug

import "errors"

// Sentinel errors for slug operations.
var (
	// ErrExhaustedUniquenessAttempts is returned by the resolver when every
	// numeric and random candidate collided with an existing slug.
	ErrExhaustedUniquenessAttempts = errors.New("slug: exhausted uniqueness attempts")

	// ErrInvalidCharacterMap is returned when a custom character map cannot be parsed.
	ErrInvalidCharacterMap = errors.New("slug: invalid character map")

	// ErrNilRecord is returned by hook methods called with a nil record.
	ErrNilRecord = errors.New("slug: nil record")
)
