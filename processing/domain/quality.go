package domain

import (
	"image/png"
	"math"
)

const (
	MinQuality     = 10
	MaxQuality     = 100
	DefaultQuality = 85
)

// ClampQuality forces the quality knob into [MinQuality, MaxQuality].
func ClampQuality(q int) int {
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}

// PNGEffort maps the quality knob onto a compression effort level in [0, 9],
// where 0 is fastest/largest and 9 is slowest/smallest. PNG is always
// lossless, so a higher quality request buys faster encoding rather than
// pixel fidelity.
func PNGEffort(q int) int {
	q = ClampQuality(q)
	e := int(math.Round(float64(100-q) * 9 / 90))
	if e < 0 {
		return 0
	}
	if e > 9 {
		return 9
	}
	return e
}

// PNGEncoderLevel buckets an effort level onto the levels the PNG encoder
// actually exposes.
func PNGEncoderLevel(effort int) png.CompressionLevel {
	switch {
	case effort <= 0:
		return png.NoCompression
	case effort <= 3:
		return png.BestSpeed
	case effort <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
