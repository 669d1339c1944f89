package domain

import (
	"strconv"
	"strings"
)

// PresetKind tags how a batch preset token was interpreted.
type PresetKind int

const (
	PresetNone PresetKind = iota
	PresetPercentage
	PresetFixed
)

// Preset is the parsed form of a batch preset token. Percentage presets are
// recomputed against each file's own original size; fixed presets apply the
// same box to every file.
type Preset struct {
	Kind   PresetKind
	Pct    int
	Width  int
	Height int
}

// ParsePreset parses "NNN%" or "WxH" tokens ("x" is case-insensitive).
// Malformed or non-positive tokens degrade to PresetNone so the batch falls
// back to the request's explicit width/height.
func ParsePreset(s string) Preset {
	s = strings.TrimSpace(s)
	if s == "" {
		return Preset{}
	}

	if strings.HasSuffix(s, "%") {
		pct, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
		if err != nil || pct <= 0 {
			return Preset{}
		}
		return Preset{Kind: PresetPercentage, Pct: pct}
	}

	a, b, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return Preset{}
	}
	w, werr := strconv.Atoi(a)
	h, herr := strconv.Atoi(b)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return Preset{}
	}
	return Preset{Kind: PresetFixed, Width: w, Height: h}
}
