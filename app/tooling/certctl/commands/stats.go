package commands

import (
	"log"

	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a snapshot of the ledger",
	Run: func(cmd *cobra.Command, args []string) {
		if err := getJSON("/v1/stats"); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
