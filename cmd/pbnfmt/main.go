// Command pbnfmt parses, validates, and canonically reformats puzzleset
// XML documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkgrid/pbn/internal/pbnconfig"
)

// Exit codes: 0 the document is valid (and, for render, was written), 1
// the document parsed but carried at least one diagnostic (or, for render
// with strict set, was not already in canonical form), 2 the document
// could not be parsed at all or a system error occurred.
const (
	exitOK      = 0
	exitInvalid = 1
	exitSystem  = 2
)

var cfg pbnconfig.Config

var rootCmd = &cobra.Command{
	Use:   "pbnfmt",
	Short: "pbnfmt validates and reformats puzzleset XML documents",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := pbnconfig.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSystem)
	}
}
