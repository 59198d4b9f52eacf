package commands

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	instName    string
	instContact string
	instEmail   string
)

// registerCmd represents the register command.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register an institution",
	Run: func(cmd *cobra.Command, args []string) {
		body := struct {
			Name           string `json:"name"`
			ContactAddress string `json:"contact_address"`
			Email          string `json:"email"`
		}{
			Name:           instName,
			ContactAddress: instContact,
			Email:          instEmail,
		}

		if err := postJSON("/v1/institutions", body); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&instName, "name", "n", "", "Name of the institution.")
	registerCmd.Flags().StringVarP(&instContact, "contact", "c", "", "Contact address of the institution.")
	registerCmd.Flags().StringVarP(&instEmail, "email", "e", "", "Email of the institution.")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("contact")
	registerCmd.MarkFlagRequired("email")
}
