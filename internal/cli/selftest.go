package cli

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/morshedulmunna/faaaa-sound/internal/health"
	"github.com/morshedulmunna/faaaa-sound/internal/logging"
	"github.com/morshedulmunna/faaaa-sound/internal/pathutil"
	"github.com/morshedulmunna/faaaa-sound/internal/playback"
	"github.com/morshedulmunna/faaaa-sound/internal/trigger"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check playback tools and play the configured sound",
	Long: `Check that the playback and speech tools for this platform are
installed, then attempt to play the configured sound. If audio playback
fails, the fallback phrase is spoken instead; if that also fails, the
terminal bell is rung and the command exits non-zero.`,
	Run: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, _ []string) {
	if err := logging.Init(logging.DefaultPath()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}

	cfg, err := loaderFromFlags(cmd)()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}

	soundPath := ""
	if path, ok := pathutil.Resolve(cfg.SoundFilePath, pathutil.AppDir(), workspaceFromFlags(cmd)); ok {
		soundPath = path
	}

	report := health.RunChecks(runtime.GOOS, soundPath)
	fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " playing..."
	s.Start()

	player := playback.NewPlayer()
	played := soundPath != "" && pathutil.Exists(soundPath) && player.PlayFile(soundPath)
	spoke := false
	if !played {
		spoke = player.Speak(trigger.Sanitize(cfg.CustomPhrase))
	}
	s.Stop()

	switch {
	case played:
		fmt.Fprintf(cmd.OutOrStdout(), "%s audio playback succeeded\n", color.GreenString("✓"))
	case spoke:
		fmt.Fprintf(cmd.OutOrStdout(), "%s audio unavailable, spoke the fallback phrase\n", color.YellowString("!"))
	default:
		player.Bell()
		fmt.Fprintf(cmd.OutOrStdout(), "%s no playback mechanism available, rang the bell\n", color.RedString("✗"))
		os.Exit(1)
	}
}
