package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/faizandev1/image-resizer-compressor-pro/processing/domain"
)

// requestOptions is the strongly-typed form of the shared multipart fields.
// It is constructed once at the boundary; the pipeline never sees raw form
// strings.
type requestOptions struct {
	dims    domain.DimensionSpec
	quality int
	format  domain.OutputFormat
}

// parseOptions validates the shared form fields. The output format and the
// dimension range are checked before any uploaded bytes are decoded.
func parseOptions(c *gin.Context) (requestOptions, error) {
	format, err := domain.ParseOutputFormat(c.DefaultPostForm("out_format", "jpeg"))
	if err != nil {
		return requestOptions{}, err
	}

	dims := domain.DimensionSpec{
		Width:     parseOptionalInt(c.PostForm("width")),
		Height:    parseOptionalInt(c.PostForm("height")),
		KeepRatio: parseBoolDefault(c.PostForm("keep_ratio"), true),
	}
	if err := dims.Validate(); err != nil {
		return requestOptions{}, err
	}

	return requestOptions{
		dims:    dims,
		quality: parseIntDefault(c.PostForm("quality"), domain.DefaultQuality),
		format:  format,
	}, nil
}

// parseOptionalInt treats blank or non-numeric form input as "not set",
// mirroring the loosely-typed fields the form sends.
func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func parseBoolDefault(s string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
