package trigger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Sanitize("  a \t b\n\n c  "))
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("x", 1000)
	out := Sanitize(long)
	assert.Len(t, out, 300)
}

func TestSanitizeEmptyInputs(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"spaces":          "   ",
		"tabs and breaks": "\t\n\r ",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			out := Sanitize(input)
			assert.Equal(t, "Faaaaaaah", out)
			assert.NotEmpty(t, out)
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"plain text",
		"  lots \t of \n whitespace ",
		strings.Repeat("word ", 200),
		"unicode héllo wörld",
	}
	for _, input := range inputs {
		once := Sanitize(input)
		assert.Equal(t, once, Sanitize(once), "input %q", input)
	}
}

func TestSanitizePreservesShortText(t *testing.T) {
	assert.Equal(t, "undefined: foo", Sanitize("undefined: foo"))
}
