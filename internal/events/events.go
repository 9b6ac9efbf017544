// Package events defines the harness-agnostic event model consumed by
// the trigger handler, plus the sources that produce those events. The
// core never sees host-specific types: sources translate whatever they
// watch into these three event kinds.
package events

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event is the tagged union of signals the engine consumes.
type Event interface {
	Kind() string
}

// TaskCompleted reports a finished task with its descriptor and exit
// code.
type TaskCompleted struct {
	Name           string `json:"name"`
	Source         string `json:"source"`
	DefinitionType string `json:"definition_type"`
	ExitCode       int    `json:"exit_code"`
}

func (TaskCompleted) Kind() string { return "task_completed" }

// TerminalCommandCompleted reports a finished terminal command. ExitCode
// is nil when the termination was indeterminate (no exit code reported).
type TerminalCommandCompleted struct {
	CommandLine string `json:"command_line"`
	ExitCode    *int   `json:"exit_code"`
}

func (TerminalCommandCompleted) Kind() string { return "terminal_command_completed" }

// DiagnosticsChanged carries no payload: the handler re-scans the full
// current diagnostic snapshot itself.
type DiagnosticsChanged struct{}

func (DiagnosticsChanged) Kind() string { return "diagnostics_changed" }

// Source produces events until ctx is cancelled.
type Source interface {
	Run(ctx context.Context, emit func(Event)) error
}

// Decode parses one JSONL event line into its concrete event type.
func Decode(line []byte) (Event, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(line, &head); err != nil {
		return nil, fmt.Errorf("parsing event: %w", err)
	}
	switch head.Type {
	case "task_completed":
		var ev TaskCompleted
		if err := json.Unmarshal(line, &ev); err != nil {
			return nil, fmt.Errorf("parsing task event: %w", err)
		}
		return ev, nil
	case "terminal_command_completed":
		var ev TerminalCommandCompleted
		if err := json.Unmarshal(line, &ev); err != nil {
			return nil, fmt.Errorf("parsing terminal event: %w", err)
		}
		return ev, nil
	case "diagnostics_changed":
		return DiagnosticsChanged{}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", head.Type)
	}
}
