package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/de-tools/macro-report/pkg/runtime/terminal"
	"github.com/de-tools/macro-report/pkg/services/report"
)

func main() {
	registry, err := report.NewRegistry(map[string]report.Factory{
		report.AverageGDPName: report.NewAverageGDP,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry:  registry,
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		var argErr *terminal.ArgumentError
		if !errors.As(err, &argErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(terminal.ExitCode(err))
	}
}
