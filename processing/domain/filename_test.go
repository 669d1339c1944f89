package domain

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Clean name untouched", input: "photo.png", want: "photo.png"},
		{name: "Unix path stripped", input: "../../etc/passwd", want: "passwd"},
		{name: "Windows path stripped", input: `C:\Users\me\pic.jpg`, want: "pic.jpg"},
		{name: "Spaces and parens replaced", input: "my photo (1).png", want: "my_photo_1_.png"},
		{name: "Replacement runs collapsed", input: "a   @@@   b.png", want: "a_b.png"},
		{name: "Leading and trailing underscores trimmed", input: "!!photo!!", want: "photo"},
		{name: "Empty falls back", input: "", want: "image"},
		{name: "Only unsafe characters falls back", input: "###", want: "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitNameExt(t *testing.T) {
	tests := []struct {
		input    string
		wantBase string
		wantExt  string
	}{
		{"photo.png", "photo", ".png"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"noext", "noext", ""},
		{"trailingdot.", "trailingdot.", ""},
		{".hidden", "", ".hidden"},
	}

	for _, tt := range tests {
		base, ext := SplitNameExt(tt.input)
		if base != tt.wantBase || ext != tt.wantExt {
			t.Errorf("SplitNameExt(%q) = (%q, %q), want (%q, %q)", tt.input, base, ext, tt.wantBase, tt.wantExt)
		}
	}
}
