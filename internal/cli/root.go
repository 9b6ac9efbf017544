// Package cli provides the cobra commands for the faaah notification
// engine: watching event sources, forcing a trigger, self-testing
// playback, and inspecting logs and configuration.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/morshedulmunna/faaaa-sound/internal/config"
	"github.com/morshedulmunna/faaaa-sound/internal/pathutil"
	"github.com/morshedulmunna/faaaa-sound/internal/playback"
	"github.com/morshedulmunna/faaaa-sound/internal/trigger"
)

var rootCmd = &cobra.Command{
	Use:   "faaah",
	Short: "Audible notifications for failing tests and new errors",
	Long: `faaah watches task, terminal and diagnostics events and plays a sound
when a test run fails or a new error appears. When the configured audio
file cannot be played it falls back to speech synthesis, and failing
that, the terminal bell.

The default sound_file_path is ${appDir}/assets/faaah.mp3, resolved
next to the faaah binary. Install an audio file at <binary
dir>/assets/faaah.mp3 or point sound_file_path somewhere else;
otherwise every trigger uses the speech fallback.`,
	Example: `  # Watch the default event and diagnostics files
  faaah watch

  # Hear what a failure sounds like right now
  faaah play

  # Verify playback tools are available on this machine
  faaah selftest

  # Show the notification log
  faaah logs --tail 20`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to local config file (default .faaah/config.json)")
	rootCmd.PersistentFlags().String("workspace", "", "Workspace folder substituted for ${workspaceFolder}")
}

// loaderFromFlags builds a config loader bound to the --config flag. The
// loader is called on every trigger evaluation, never cached.
func loaderFromFlags(cmd *cobra.Command) config.Loader {
	path, _ := cmd.Flags().GetString("config")
	return func() (*config.Config, error) {
		return config.Load(path)
	}
}

func workspaceFromFlags(cmd *cobra.Command) string {
	workspace, _ := cmd.Flags().GetString("workspace")
	return workspace
}

// newHandler wires the full trigger pipeline for a command invocation.
func newHandler(cmd *cobra.Command) *trigger.Handler {
	coordinator := trigger.NewCoordinator(
		&trigger.State{},
		playback.NewPlayer(),
		&trigger.DesktopNotifier{Title: "faaah"},
		pathutil.AppDir(),
		workspaceFromFlags(cmd),
	)
	return &trigger.Handler{
		Load:        loaderFromFlags(cmd),
		Coordinator: coordinator,
	}
}
