package application

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/faizandev1/image-resizer-compressor-pro/processing/domain"
)

// webpMethod is libwebp's maximum-effort compression method: best
// size/quality tradeoff at extra CPU cost.
const webpMethod = 6

// Encode serializes a prepared raster in the requested format. The quality
// knob is clamped to [10, 100]; JPEG and WEBP encode lossily at that quality,
// while PNG is always lossless and maps the knob to compression effort
// instead. A format outside the supported set returns ErrUnsupportedFormat.
func Encode(r domain.Raster, f domain.OutputFormat, quality int) ([]byte, error) {
	q := domain.ClampQuality(quality)
	var buf bytes.Buffer

	switch f {
	case domain.FormatJPEG:
		if err := imaging.Encode(&buf, r.Img, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
			return nil, fmt.Errorf("jpeg encode failed: %w", err)
		}
	case domain.FormatPNG:
		level := domain.PNGEncoderLevel(domain.PNGEffort(q))
		if err := imaging.Encode(&buf, r.Img, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
			return nil, fmt.Errorf("png encode failed: %w", err)
		}
	case domain.FormatWEBP:
		opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(q))
		if err != nil {
			return nil, fmt.Errorf("webp encoder options: %w", err)
		}
		opts.Method = webpMethod
		if err := webp.Encode(&buf, asNRGBA(r), opts); err != nil {
			return nil, fmt.Errorf("webp encode failed: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", string(f), domain.ErrUnsupportedFormat)
	}

	return buf.Bytes(), nil
}

// asNRGBA hands the WEBP encoder a pixel layout it accepts.
func asNRGBA(r domain.Raster) *image.NRGBA {
	if img, ok := r.Img.(*image.NRGBA); ok {
		return img
	}
	return imaging.Clone(r.Img)
}
