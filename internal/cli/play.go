package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/morshedulmunna/faaaa-sound/internal/logging"
)

var playCmd = &cobra.Command{
	Use:   "play [reason]",
	Short: "Trigger a notification now",
	Long: `Force a notification trigger with a manual reason. Failure
classification is skipped, but the cooldown window still applies.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(logging.DefaultPath()); err != nil {
			return err
		}
		handler := newHandler(cmd)
		handler.PlayNow(strings.Join(args, " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
