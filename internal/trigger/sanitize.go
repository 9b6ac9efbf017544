package trigger

import (
	"regexp"
	"strings"

	"github.com/morshedulmunna/faaaa-sound/internal/config"
)

// maxSpokenLength bounds what reaches the speech engine.
const maxSpokenLength = 300

var whitespaceRun = regexp.MustCompile(`\s+`)

// Sanitize normalizes text bound for speech synthesis: whitespace runs
// collapse to a single space, the result is trimmed and truncated to 300
// characters, and an empty result becomes the default phrase so the
// speech engine never receives an empty string. Idempotent.
func Sanitize(s string) string {
	out := strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
	if runes := []rune(out); len(runes) > maxSpokenLength {
		out = strings.TrimSpace(string(runes[:maxSpokenLength]))
	}
	if out == "" {
		return config.DefaultPhrase
	}
	return out
}
