package domain

import (
	"fmt"
	"math"
)

// MaxDimension caps explicit resize targets as a safety guard.
const MaxDimension = 20000

// DimensionSpec captures the requested target size. Width and Height are nil
// when the corresponding form field was absent or blank. A spec is built once
// at the request boundary and never mutated.
type DimensionSpec struct {
	Width     *int
	Height    *int
	KeepRatio bool
}

// Validate rejects explicit dimensions outside (0, MaxDimension]. A violation
// fails the whole request; there is no partial processing.
func (s DimensionSpec) Validate() error {
	for _, d := range []*int{s.Width, s.Height} {
		if d == nil {
			continue
		}
		if *d <= 0 {
			return fmt.Errorf("width/height must be positive: %w", ErrInvalidInput)
		}
		if *d > MaxDimension {
			return fmt.Errorf("max dimension is %dpx: %w", MaxDimension, ErrInvalidInput)
		}
	}
	return nil
}

// Resolve computes the target size for an original of (ow, oh). With
// KeepRatio set and both targets present it fits inside the box using the
// smaller scale factor, never exceeding either bound and never cropping.
// Without KeepRatio the targets are used verbatim, with unset axes defaulting
// to the original value. Results are clamped to at least 1px per axis.
func (s DimensionSpec) Resolve(ow, oh int) (int, int) {
	if s.Width == nil && s.Height == nil {
		return ow, oh
	}

	if !s.KeepRatio {
		nw, nh := ow, oh
		if s.Width != nil {
			nw = *s.Width
		}
		if s.Height != nil {
			nh = *s.Height
		}
		return atLeastOne(nw), atLeastOne(nh)
	}

	var scale float64
	switch {
	case s.Height == nil:
		scale = float64(*s.Width) / float64(ow)
	case s.Width == nil:
		scale = float64(*s.Height) / float64(oh)
	default:
		scale = math.Min(float64(*s.Width)/float64(ow), float64(*s.Height)/float64(oh))
	}

	nw := atLeastOne(int(math.Round(float64(ow) * scale)))
	nh := atLeastOne(int(math.Round(float64(oh) * scale)))
	return nw, nh
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
