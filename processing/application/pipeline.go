package application

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers WEBP with image.Decode

	"github.com/faizandev1/image-resizer-compressor-pro/processing/domain"
)

// ProcessOptions are the fully parsed knobs for one pipeline invocation.
// The pipeline never sees raw form strings.
type ProcessOptions struct {
	Dims    domain.DimensionSpec
	Quality int
	Format  domain.OutputFormat
}

// Result is the encoded output plus its final pixel dimensions.
type Result struct {
	Bytes  []byte
	Width  int
	Height int
}

// Processor runs the decode, resize, prepare and encode stages for a single
// image. It holds no per-request state; one instance serves all requests.
type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// Process transforms one uploaded image end to end: decode with orientation
// normalization, resolve target dimensions, resize, adapt the color mode to
// the output format, and encode.
func (p *Processor) Process(data []byte, opts ProcessOptions) (*Result, error) {
	r, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return p.ProcessRaster(r, opts)
}

// ProcessRaster runs the pipeline on an already decoded raster. The batch
// orchestrator uses this to decode once per file even when a percentage
// preset needs the file's original size up front.
func (p *Processor) ProcessRaster(r domain.Raster, opts ProcessOptions) (*Result, error) {
	if err := opts.Dims.Validate(); err != nil {
		return nil, err
	}

	nw, nh := opts.Dims.Resolve(r.Width(), r.Height())
	r = Resize(r, nw, nh)
	r = PrepareForFormat(r, opts.Format)

	out, err := Encode(r, opts.Format, opts.Quality)
	if err != nil {
		return nil, err
	}
	return &Result{Bytes: out, Width: r.Width(), Height: r.Height()}, nil
}

// Decode turns raw upload bytes into a raster with the EXIF orientation baked
// into the pixel layout, so every later stage sees the image upright.
// Unreadable bytes are an input error, not a server fault.
func Decode(data []byte) (domain.Raster, error) {
	if len(data) == 0 {
		return domain.Raster{}, fmt.Errorf("empty file: %w", domain.ErrInvalidInput)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return domain.Raster{}, fmt.Errorf("could not read image (%v): %w", err, domain.ErrInvalidInput)
	}
	return domain.NewRaster(img), nil
}

// Resize scales the raster to exactly (w, h) using Lanczos resampling.
// A target equal to the current size is returned untouched.
func Resize(r domain.Raster, w, h int) domain.Raster {
	if w == r.Width() && h == r.Height() {
		return r
	}
	return domain.NewRaster(imaging.Resize(r.Img, w, h, imaging.Lanczos))
}

// PrepareForFormat adapts the raster's color mode to what the output format
// can express. Targeting JPEG composites any transparency onto an opaque
// white background, discarding the alpha channel for good; other non-RGB
// modes are converted to RGB. Targeting PNG or WEBP expands palette images to
// full RGBA and passes everything else through.
func PrepareForFormat(r domain.Raster, f domain.OutputFormat) domain.Raster {
	switch f {
	case domain.FormatJPEG:
		if r.HasTransparency() {
			bg := imaging.New(r.Width(), r.Height(), color.White)
			return domain.NewRaster(imaging.Overlay(bg, r.Img, image.Pt(0, 0), 1.0))
		}
		if r.Mode == domain.ModePalette || r.Mode == domain.ModeCMYK {
			return domain.NewRaster(imaging.Clone(r.Img))
		}
		return r
	case domain.FormatPNG, domain.FormatWEBP:
		if r.Mode == domain.ModePalette {
			return domain.NewRaster(imaging.Clone(r.Img))
		}
		return r
	}
	return r
}
