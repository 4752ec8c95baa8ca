package apperr

import "errors"

var (
	ErrUsage          = errors.New("usage")
	ErrSourceNotFound = errors.New("source folder not found")
)
