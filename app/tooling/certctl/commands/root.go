// Package commands contains the certctl command line tool.
package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var url string

var rootCmd = &cobra.Command{
	Use:   "certctl",
	Short: "Drive the certificate ledger service",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the service.")
}

// postJSON sends the value as a JSON body and prints the indented response.
func postJSON(path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := http.Post(fmt.Sprintf("%s%s", url, path), "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(resp.Body)
}

// getJSON performs a GET and prints the indented response.
func getJSON(path string) error {
	resp, err := http.Get(fmt.Sprintf("%s%s", url, path))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(resp.Body)
}

func printResponse(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(out.String())
	return nil
}
