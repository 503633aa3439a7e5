package slugstore

import "errors"

var (
	ErrInvalidIdentifier = errors.New("slugstore: table and column names are required")
	ErrCheckFailed       = errors.New("slugstore: existence check failed")
)
