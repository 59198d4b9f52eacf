package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify <certificate-hash>",
	Short: "Verify a certificate by its hash",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := postJSON(fmt.Sprintf("/v1/certificates/verify/%s", args[0]), nil); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
