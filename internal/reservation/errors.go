package reservation

import "errors"

var (
	ErrNotFound       = errors.New("reservation: not found")
	ErrConflict       = errors.New("reservation: slug taken by a concurrent writer")
	ErrInvalidRequest = errors.New("reservation: scope, key and text are required")
	ErrStore          = errors.New("reservation: store operation failed")
)
