package trigger

import (
	"os"
	"strings"

	"github.com/gen2brain/beeep"
	"golang.org/x/term"

	"github.com/morshedulmunna/faaaa-sound/internal/logging"
)

// DesktopNotifier posts the transient status notification through the
// host notification system. Notifications are suppressed in CI and in
// non-interactive sessions; failures degrade to a log line.
type DesktopNotifier struct {
	Title string
}

// Notify posts the reason as a desktop notification.
func (n *DesktopNotifier) Notify(reason string) {
	if isCI() || !isInteractive() {
		return
	}
	title := n.Title
	if title == "" {
		title = "faaah"
	}
	if err := beeep.Notify(title, truncateMessage(reason), ""); err != nil {
		logging.Logf("notify: %v", err)
	}
}

// truncateMessage trims and caps the notification body. Truncation is
// rune-based so a multi-byte character is never split.
func truncateMessage(reason string) string {
	message := strings.TrimSpace(reason)
	if runes := []rune(message); len(runes) > 800 {
		message = string(runes[:800]) + "..."
	}
	return message
}

// isCI checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// isInteractive reports whether a terminal is attached. Stdout is
// checked first because stdin is often piped while stdout stays on the
// terminal.
func isInteractive() bool {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return true
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}
