package trigger

import (
	"fmt"

	"github.com/morshedulmunna/faaaa-sound/internal/classify"
	"github.com/morshedulmunna/faaaa-sound/internal/config"
	"github.com/morshedulmunna/faaaa-sound/internal/diagnostics"
	"github.com/morshedulmunna/faaaa-sound/internal/events"
	"github.com/morshedulmunna/faaaa-sound/internal/logging"
)

// Handler receives host events and decides whether they reach the
// coordinator. Each entry point re-loads configuration and gates on the
// master switch plus its own feature flag before classification runs, so
// runtime config edits apply to the very next event.
type Handler struct {
	Load        config.Loader
	Coordinator *Coordinator

	// Snapshot provides the current workspace diagnostics. Nil when the
	// diagnostics capability is unavailable; the diagnostics entry point
	// then degrades to a no-op.
	Snapshot func() diagnostics.Snapshot
}

// SeedErrorCount initializes the diagnostics baseline from the current
// snapshot so errors that existed before startup never fire.
func (h *Handler) SeedErrorCount() {
	if h.Snapshot == nil {
		return
	}
	h.Coordinator.State.LastErrorCount = diagnostics.CurrentErrorCount(h.Snapshot())
}

// HandleEvent routes a source event to the matching entry point.
func (h *Handler) HandleEvent(event events.Event) {
	switch e := event.(type) {
	case events.TaskCompleted:
		h.OnTaskCompleted(e)
	case events.TerminalCommandCompleted:
		h.OnTerminalCommandCompleted(e)
	case events.DiagnosticsChanged:
		h.OnDiagnosticsChanged()
	}
}

func (h *Handler) loadConfig() (*config.Config, bool) {
	cfg, err := h.Load()
	if err != nil {
		logging.Logf("config: load failed: %v", err)
		return nil, false
	}
	return cfg, true
}

// OnTaskCompleted fires when a failing task looks like a test run.
func (h *Handler) OnTaskCompleted(ev events.TaskCompleted) {
	cfg, ok := h.loadConfig()
	if !ok || !cfg.Enabled || !cfg.OnTestFailure {
		return
	}
	if ev.ExitCode == 0 {
		return
	}
	if !classify.IsTestTask(ev.Name, ev.Source, ev.DefinitionType) {
		return
	}
	reason := fmt.Sprintf("Test task %q failed (exit %d)", ev.Name, ev.ExitCode)
	h.Coordinator.Trigger(reason, cfg, "")
}

// OnTerminalCommandCompleted fires when a failing shell command looks
// like a test invocation. A nil exit code is indeterminate, not a
// failure, and never fires.
func (h *Handler) OnTerminalCommandCompleted(ev events.TerminalCommandCompleted) {
	cfg, ok := h.loadConfig()
	if !ok || !cfg.Enabled || !cfg.OnTestFailure {
		return
	}
	if ev.ExitCode == nil || *ev.ExitCode == 0 {
		return
	}
	if !classify.IsTestCommand(ev.CommandLine) {
		return
	}
	reason := fmt.Sprintf("Test command failed (exit %d)", *ev.ExitCode)
	h.Coordinator.Trigger(reason, cfg, "")
}

// OnDiagnosticsChanged re-scans the snapshot and fires when the error
// count grew. The recorded count updates on every call, whether or not
// the on_errors gate is open, so the baseline is never stale when the
// feature is enabled later.
func (h *Handler) OnDiagnosticsChanged() {
	if h.Snapshot == nil {
		return
	}
	snap := h.Snapshot()
	count := diagnostics.CurrentErrorCount(snap)
	previous := h.Coordinator.State.LastErrorCount
	h.Coordinator.State.LastErrorCount = count

	cfg, ok := h.loadConfig()
	if !ok || !cfg.Enabled || !cfg.OnErrors {
		return
	}
	if count <= previous {
		return
	}
	latest, found := diagnostics.LatestError(snap)
	if !found {
		return
	}
	h.Coordinator.Trigger("New problem detected", cfg, latest.Message)
}

// PlayNow forces a trigger with a manual reason, skipping failure
// classification. The cooldown gate still applies.
func (h *Handler) PlayNow(reason string) {
	cfg, ok := h.loadConfig()
	if !ok {
		return
	}
	if reason == "" {
		reason = "Manual trigger"
	}
	h.Coordinator.Trigger(reason, cfg, "")
}
