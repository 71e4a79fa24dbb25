package config

import "errors"

// ErrInvalidLogLevel is returned by [GetStructuredConfig] when the merged log
// level is not a zerolog level name.
var ErrInvalidLogLevel = errors.New("invalid log level")
