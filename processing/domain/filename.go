package domain

import (
	"regexp"
	"strings"
)

var (
	unsafeChars    = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	underscoreRuns = regexp.MustCompile(`_+`)
	nameExtPattern = regexp.MustCompile(`^(.*?)(\.[A-Za-z0-9]+)?$`)
)

// SanitizeFilename strips path components from an upload's filename and
// reduces it to a safe character set, collapsing runs of replacements.
// Names that sanitize to nothing become "image".
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = unsafeChars.ReplaceAllString(name, "_")
	name = underscoreRuns.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "image"
	}
	return name
}

// SplitNameExt splits a filename into base and extension, dot included.
// Only a trailing dot plus alphanumerics counts as an extension.
func SplitNameExt(name string) (base, ext string) {
	m := nameExtPattern.FindStringSubmatch(name)
	if m == nil {
		return name, ""
	}
	return m[1], m[2]
}
