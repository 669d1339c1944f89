package domain

import (
	"fmt"
	"strings"
)

// OutputFormat is the closed set of encodings the service produces.
type OutputFormat string

const (
	FormatJPEG OutputFormat = "jpeg"
	FormatPNG  OutputFormat = "png"
	FormatWEBP OutputFormat = "webp"
)

// ParseOutputFormat normalizes a user-supplied format token. Matching is
// case-insensitive and "jpg" is an alias for JPEG; anything else is rejected
// before any decoding work happens.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWEBP, nil
	default:
		return "", fmt.Errorf("output format must be JPG, PNG, or WEBP: %w", ErrInvalidInput)
	}
}

// Ext returns the filename extension for the format, dot included.
func (f OutputFormat) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return "." + string(f)
}

// MIME returns the format's content type.
func (f OutputFormat) MIME() string {
	return "image/" + string(f)
}
