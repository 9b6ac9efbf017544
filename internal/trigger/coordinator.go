package trigger

import (
	"time"

	"github.com/google/uuid"

	"github.com/morshedulmunna/faaaa-sound/internal/config"
	"github.com/morshedulmunna/faaaa-sound/internal/logging"
	"github.com/morshedulmunna/faaaa-sound/internal/pathutil"
)

// Player is the playback surface the coordinator drives.
type Player interface {
	PlayFile(path string) bool
	Speak(text string) bool
	Bell()
}

// Notifier posts the transient status message after a trigger.
type Notifier interface {
	Notify(reason string)
}

// Coordinator owns the trigger state machine. One trigger runs to
// completion before the method returns; playback waits are the only
// suspension points and there is no cancellation.
type Coordinator struct {
	State     *State
	Player    Player
	Notifier  Notifier
	AppDir    string
	Workspace string

	// Now is injectable so cooldown behavior is testable without
	// sleeping.
	Now func() time.Time
}

// NewCoordinator wires a coordinator around the given state.
func NewCoordinator(state *State, player Player, notifier Notifier, appDir, workspace string) *Coordinator {
	return &Coordinator{
		State:     state,
		Player:    player,
		Notifier:  notifier,
		AppDir:    appDir,
		Workspace: workspace,
		Now:       time.Now,
	}
}

// Trigger runs one complete notification cycle.
//
// The cooldown gate measures from the start of the previous successful
// trigger, and the timestamp is written before any playback begins. That
// ordering is the sole concurrency safety mechanism: a second event
// arriving while a long playback is still running hits the already
// updated timestamp and is suppressed. Do not reorder it.
func (c *Coordinator) Trigger(reason string, cfg *config.Config, errorMessage string) {
	now := c.Now()
	if now.Sub(c.State.LastTriggerAt) < cfg.Cooldown() {
		logging.Logf("trigger: suppressed by cooldown: %s", reason)
		return
	}
	c.State.LastTriggerAt = now

	id := uuid.NewString()
	logging.Logf("trigger %s: %s", id, reason)

	if cfg.ReadErrorMessage && errorMessage != "" {
		c.Player.Speak(Sanitize(errorMessage))
	}

	played := false
	if path, ok := pathutil.Resolve(cfg.SoundFilePath, c.AppDir, c.Workspace); ok {
		if pathutil.Exists(path) {
			played = c.Player.PlayFile(path)
		} else {
			logging.Logf("trigger %s: sound file missing: %s", id, path)
		}
	}
	if !played {
		if !c.Player.Speak(Sanitize(cfg.CustomPhrase)) {
			c.Player.Bell()
			logging.Logf("trigger %s: playback and speech unavailable, rang bell", id)
		}
	}

	if c.Notifier != nil {
		c.Notifier.Notify(reason)
	}
}
