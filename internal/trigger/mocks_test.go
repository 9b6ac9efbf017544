package trigger

import (
	"github.com/morshedulmunna/faaaa-sound/internal/config"
)

// mockPlayer records every playback call and returns configured results.
type mockPlayer struct {
	playResult  bool
	speakResult bool

	PlayCalls  []string
	SpeakCalls []string
	BellCount  int

	// onPlay runs inside PlayFile, letting tests re-enter the
	// coordinator mid-playback.
	onPlay func()
}

func newMockPlayer() *mockPlayer {
	return &mockPlayer{playResult: true, speakResult: true}
}

func (m *mockPlayer) withPlayResult(ok bool) *mockPlayer {
	m.playResult = ok
	return m
}

func (m *mockPlayer) withSpeakResult(ok bool) *mockPlayer {
	m.speakResult = ok
	return m
}

func (m *mockPlayer) PlayFile(path string) bool {
	m.PlayCalls = append(m.PlayCalls, path)
	if m.onPlay != nil {
		m.onPlay()
	}
	return m.playResult
}

func (m *mockPlayer) Speak(text string) bool {
	m.SpeakCalls = append(m.SpeakCalls, text)
	return m.speakResult
}

func (m *mockPlayer) Bell() {
	m.BellCount++
}

// mockNotifier records status notifications.
type mockNotifier struct {
	Reasons []string
}

func (m *mockNotifier) Notify(reason string) {
	m.Reasons = append(m.Reasons, reason)
}

// staticLoader returns the same config on every load, mimicking a config
// file that is not being edited.
func staticLoader(cfg *config.Config) config.Loader {
	return func() (*config.Config, error) {
		copied := *cfg
		return &copied, nil
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Enabled:       true,
		OnTestFailure: true,
		CooldownMs:    2500,
		CustomPhrase:  "Faaaaaaah",
	}
}
