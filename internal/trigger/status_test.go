package trigger

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateMessagePreservesShortText(t *testing.T) {
	assert.Equal(t, "pytest failed", truncateMessage("  pytest failed  "))
}

func TestTruncateMessageCapsLongText(t *testing.T) {
	got := truncateMessage(strings.Repeat("x", 2000))
	assert.Equal(t, 803, len(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateMessageNeverSplitsRunes(t *testing.T) {
	got := truncateMessage(strings.Repeat("é", 900))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("é", 800)+"...", got)
}
