package domain

import "errors"

// ErrInvalidInput marks failures caused by the request itself: missing or
// empty uploads, unreadable image bytes, out-of-range dimensions, or an
// unrecognized output format token. Handlers translate it to a 400.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnsupportedFormat is returned when a format outside the supported set
// reaches the encoder. Upstream validation should make this unreachable, but
// the encoder guards it rather than assuming.
var ErrUnsupportedFormat = errors.New("unsupported output format")
