package playback

import (
	"fmt"
	"os"
	"runtime"

	"github.com/morshedulmunna/faaaa-sound/internal/chain"
	"github.com/morshedulmunna/faaaa-sound/internal/logging"
)

// Player runs the audio and speech chains for one platform. The zero
// fallbacks live in the caller: PlayFile and Speak only report whether
// their chain succeeded.
type Player struct {
	GOOS   string
	Runner chain.Runner
}

// NewPlayer returns a Player for the current platform using os/exec.
func NewPlayer() *Player {
	return &Player{GOOS: runtime.GOOS, Runner: chain.ExecRunner{}}
}

// PlayFile attempts the platform audio chain for path. False means the
// chain was exhausted.
func (p *Player) PlayFile(path string) bool {
	index, ok := chain.Run(p.Runner, AudioCandidates(p.GOOS, path))
	if ok {
		logging.Logf("audio: played %s (candidate %d)", path, index)
	} else {
		logging.Logf("audio: no candidate could play %s", path)
	}
	return ok
}

// Speak attempts the platform speech chain for text. False means the
// chain was exhausted.
func (p *Player) Speak(text string) bool {
	index, ok := chain.Run(p.Runner, SpeechCandidates(p.GOOS, text))
	if ok {
		logging.Logf("speech: spoke via candidate %d", index)
	} else {
		logging.Logf("speech: no candidate available")
	}
	return ok
}

// Bell emits the terminal bell character, the absolute last resort when
// both chains are exhausted.
func (p *Player) Bell() {
	fmt.Fprint(os.Stdout, "\a")
}
