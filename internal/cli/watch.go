package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/morshedulmunna/faaaa-sound/internal/events"
	"github.com/morshedulmunna/faaaa-sound/internal/logging"
)

var (
	watchEventsFile      string
	watchDiagnosticsFile string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch event sources and notify on failures",
	Long: `Watch the event and diagnostics files and fire a notification when a
failing test task or command is seen, or (with on_errors enabled) when a
new error-severity diagnostic appears.

The events file is JSONL, one event per line:
  {"type":"task_completed","name":"test","source":"npm","exit_code":1}
  {"type":"terminal_command_completed","command_line":"pytest","exit_code":1}
  {"type":"diagnostics_changed"}

The diagnostics file is a JSON array of resources with their current
diagnostics; it is re-read whenever a diagnostics_changed event arrives
or the file itself is written.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchEventsFile, "events-file",
		filepath.Join(".faaah", "events.jsonl"), "JSONL file of host events to follow")
	watchCmd.Flags().StringVar(&watchDiagnosticsFile, "diagnostics-file",
		filepath.Join(".faaah", "diagnostics.json"), "JSON snapshot of workspace diagnostics")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := logging.Init(logging.DefaultPath()); err != nil {
		return err
	}

	provider := &events.FileDiagnostics{Path: watchDiagnosticsFile}
	handler := newHandler(cmd)
	handler.Snapshot = provider.Snapshot
	handler.SeedErrorCount()

	// An unavailable source is logged and skipped; the others keep
	// working. Only having no sources at all is an error.
	var sources []events.Source
	if src, err := events.NewTailSource(watchEventsFile); err != nil {
		logging.Logf("watch: event source unavailable: %v", err)
	} else {
		sources = append(sources, src)
	}
	if src, err := events.NewWatchSource(watchDiagnosticsFile); err != nil {
		logging.Logf("watch: diagnostics source unavailable: %v", err)
	} else {
		sources = append(sources, src)
	}
	if len(sources) == 0 {
		return errors.New("no event sources available")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logf("watch: started (events=%s diagnostics=%s)", watchEventsFile, watchDiagnosticsFile)
	// Sources run concurrently but events reach the handler one at a
	// time, keeping the trigger state single-threaded.
	if err := events.RunAll(ctx, sources, handler.HandleEvent); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logging.Logf("watch: stopped")
	return nil
}
