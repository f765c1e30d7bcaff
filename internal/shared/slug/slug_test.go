package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	cases := map[string]string{
		"Wireless Mouse":      "wireless-mouse",
		"  Trimmed  Name  ":   "trimmed-name",
		"Ünïcode & Symbols!!": "n-code-symbols",
		"":                    "item",
		"---":                 "item",
	}
	for in, want := range cases {
		assert.Equal(t, want, FromName(in), "input %q", in)
	}
}
