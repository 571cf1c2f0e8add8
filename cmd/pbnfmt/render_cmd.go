package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkgrid/pbn"
	"github.com/inkgrid/pbn/diagnostics"
)

var renderCmd = &cobra.Command{
	Use:   "render <path>",
	Short: "parse a puzzleset document and re-emit it in canonical form",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runRender(args[0]))
	},
}

func runRender(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitSystem
	}

	ps, diags, err := pbn.Parse(data)
	if err != nil {
		printDiagnostics(diags)
		if errors.Is(err, diagnostics.ErrInvalidPBN) {
			return exitInvalid
		}
		fmt.Fprintln(os.Stderr, err)
		return exitSystem
	}

	var out bytes.Buffer
	if err := pbn.Render(ps, &out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitSystem
	}

	if cfg.Strict && !bytes.Equal(bytes.TrimSpace(data), bytes.TrimSpace(out.Bytes())) {
		fmt.Fprintln(os.Stderr, "document is not already in canonical form")
		return exitInvalid
	}

	os.Stdout.Write(out.Bytes())
	return exitOK
}
