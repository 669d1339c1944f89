package domain

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Preset
	}{
		{name: "Percentage", input: "50%", want: Preset{Kind: PresetPercentage, Pct: 50}},
		{name: "Percentage over 100", input: "150%", want: Preset{Kind: PresetPercentage, Pct: 150}},
		{name: "Fixed size", input: "1024x768", want: Preset{Kind: PresetFixed, Width: 1024, Height: 768}},
		{name: "Fixed size capital X", input: "800X600", want: Preset{Kind: PresetFixed, Width: 800, Height: 600}},
		{name: "Whitespace trimmed", input: "  25%  ", want: Preset{Kind: PresetPercentage, Pct: 25}},
		{name: "Empty", input: "", want: Preset{}},
		{name: "Zero percentage", input: "0%", want: Preset{}},
		{name: "Negative percentage", input: "-5%", want: Preset{}},
		{name: "Non-numeric percentage", input: "abc%", want: Preset{}},
		{name: "Missing height", input: "800x", want: Preset{}},
		{name: "Missing width", input: "x600", want: Preset{}},
		{name: "Zero dimension", input: "0x600", want: Preset{}},
		{name: "Negative dimension", input: "800x-600", want: Preset{}},
		{name: "Gibberish", input: "large", want: Preset{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePreset(tt.input); got != tt.want {
				t.Errorf("ParsePreset(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
