package mongo

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("mongo: empty connection URL")
	ErrFailedToParseURL   = errors.New("mongo: failed to parse connection URL")
	ErrConnectionFailed   = errors.New("mongo: failed to connect")
	ErrHealthcheckFailed  = errors.New("mongo: healthcheck failed")
)
