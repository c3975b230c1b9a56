package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Innovation":                 "innovation",
		"Hello, World!":              "hello-world",
		"  Spaces   everywhere  ":    "spaces-everywhere",
		"Événement à Paris":          "evenement-a-paris",
		"Go 1.24 Release":            "go-1-24-release",
		"already-a-slug":             "already-a-slug",
		"UPPER_case & symbols (v2)":  "upper-case-symbols-v2",
		"---":                        "",
		"":                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input=%q", in)
	}
}
