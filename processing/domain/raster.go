package domain

import "image"

// ColorMode is the closed set of pixel layouts the pipeline distinguishes.
// It is derived once from the decoded image's concrete type; conversions
// between modes are explicit operations, never implicit checks.
type ColorMode int

const (
	ModeRGB ColorMode = iota
	ModeRGBA
	ModeGray
	ModeGrayAlpha
	ModePalette
	ModeCMYK
	ModeYCbCr
)

func (m ColorMode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeRGBA:
		return "rgba"
	case ModeGray:
		return "gray"
	case ModeGrayAlpha:
		return "gray+alpha"
	case ModePalette:
		return "palette"
	case ModeCMYK:
		return "cmyk"
	case ModeYCbCr:
		return "ycbcr"
	}
	return "unknown"
}

// Raster is a decoded image together with its color mode. A raster is owned
// by the single pipeline invocation that decoded it and is never shared
// across requests.
type Raster struct {
	Img  image.Image
	Mode ColorMode
}

// NewRaster wraps a decoded image, detecting its color mode.
func NewRaster(img image.Image) Raster {
	return Raster{Img: img, Mode: DetectColorMode(img)}
}

// DetectColorMode maps a decoded image's concrete type to a ColorMode.
func DetectColorMode(img image.Image) ColorMode {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64:
		return ModeRGBA
	case *image.Gray, *image.Gray16:
		return ModeGray
	case *image.Paletted:
		return ModePalette
	case *image.CMYK:
		return ModeCMYK
	case *image.YCbCr:
		return ModeYCbCr
	default:
		return ModeRGB
	}
}

func (r Raster) Width() int {
	return r.Img.Bounds().Dx()
}

func (r Raster) Height() int {
	return r.Img.Bounds().Dy()
}

// HasTransparency reports whether the raster can contain non-opaque pixels.
// Paletted images are checked entry by entry; other images use their own
// Opaque scan when available, falling back to the color mode.
func (r Raster) HasTransparency() bool {
	if p, ok := r.Img.(*image.Paletted); ok {
		for _, c := range p.Palette {
			if _, _, _, a := c.RGBA(); a < 0xffff {
				return true
			}
		}
		return false
	}
	if o, ok := r.Img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return r.Mode == ModeRGBA || r.Mode == ModeGrayAlpha
}
