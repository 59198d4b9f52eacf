package commands

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	certRecipient   string
	certCourse      string
	certDate        string
	certGrade       string
	certInstitution string
	certWallet      string
)

// issueCmd represents the issue command.
var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a certificate",
	Run: func(cmd *cobra.Command, args []string) {
		body := struct {
			RecipientName  string `json:"recipient_name"`
			CourseName     string `json:"course_name"`
			CompletionDate string `json:"completion_date"`
			Grade          string `json:"grade,omitempty"`
			InstitutionID  string `json:"institution_id"`
			IssuerWallet   string `json:"issuer_wallet"`
		}{
			RecipientName:  certRecipient,
			CourseName:     certCourse,
			CompletionDate: certDate,
			Grade:          certGrade,
			InstitutionID:  certInstitution,
			IssuerWallet:   certWallet,
		}

		if err := postJSON("/v1/certificates", body); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(issueCmd)
	issueCmd.Flags().StringVarP(&certRecipient, "recipient", "r", "", "Name of the recipient.")
	issueCmd.Flags().StringVarP(&certCourse, "course", "c", "", "Name of the course.")
	issueCmd.Flags().StringVarP(&certDate, "date", "d", "", "Completion date.")
	issueCmd.Flags().StringVarP(&certGrade, "grade", "g", "", "Grade, optional.")
	issueCmd.Flags().StringVarP(&certInstitution, "institution", "i", "", "Id of the issuing institution.")
	issueCmd.Flags().StringVarP(&certWallet, "wallet", "w", "", "Wallet address of the issuer.")
	issueCmd.MarkFlagRequired("recipient")
	issueCmd.MarkFlagRequired("course")
	issueCmd.MarkFlagRequired("date")
	issueCmd.MarkFlagRequired("institution")
	issueCmd.MarkFlagRequired("wallet")
}
