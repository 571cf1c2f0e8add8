package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkgrid/pbn"
	"github.com/inkgrid/pbn/diagnostics"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "report every diagnostic found in a puzzleset document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runValidate(args[0]))
	},
}

func runValidate(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitSystem
	}

	_, diags, err := pbn.Parse(data)
	printDiagnostics(diags)

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, diagnostics.ErrInvalidPBN):
		return exitInvalid
	default:
		fmt.Fprintln(os.Stderr, err)
		return exitSystem
	}
}
