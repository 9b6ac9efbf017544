package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morshedulmunna/faaaa-sound/internal/logging"
)

var logsTail int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the notification log",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := logging.DefaultPath()
		lines, err := logging.Tail(path, logsTail)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(cmd.OutOrStdout(), "no log yet at %s\n", path)
				return nil
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	logsCmd.Flags().IntVar(&logsTail, "tail", 50, "Number of trailing lines to print (0 for all)")
	rootCmd.AddCommand(logsCmd)
}
