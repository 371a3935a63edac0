package errmsg

import "errors"

var (
	ErrUnknownSource = errors.New("unknown catalog source")
	ErrNoLocales     = errors.New("no locales configured")
	ErrInvalidConfig = errors.New("invalid configuration")
)
