package util

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: transliterate to ASCII,
// lowercase, collapse everything else into single dashes.
func Slugify(s string) string {
	s = unidecode.Unidecode(s)
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
