package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/macro-report/pkg/runtime/terminal/commands"
	"github.com/de-tools/macro-report/pkg/runtime/terminal/export"

	"github.com/de-tools/macro-report/pkg/services/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	ProgramName = "macro-report"
	usageLine   = "usage: macro-report [-h] [--files FILES [FILES ...]] --report REPORT"
)

type ArgumentError = commands.ArgumentError

// CLI represents the command-line interface
type CLI struct {
	registry  report.Registry
	reporter  *export.Reporter
	errOutput io.Writer
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry  report.Registry
	Fs        afero.Fs
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	cli := &CLI{
		registry:  opts.Registry,
		reporter:  export.NewReporter(opts.Output),
		errOutput: opts.ErrOutput,
	}

	cli.rootCmd = commands.NewReportCmd(cli.registry, cli.reporter, opts.Fs)
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	cli.rootCmd.InitDefaultHelpFlag()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteArgs(os.Args[1:])
}

// ExecuteArgs runs the command with args. Argument errors are printed to the
// error output together with the usage line before being returned.
func (cli *CLI) ExecuteArgs(args []string) error {
	expanded, err := expandLongFlags(args, cli.rootCmd.Flags())
	if err == nil {
		expanded, err = splitFileValues(expanded)
	}
	if err == nil {
		cli.rootCmd.SetArgs(expanded)
		err = cli.rootCmd.Execute()
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		fmt.Fprintln(cli.errOutput, usageLine)
		fmt.Fprintf(cli.errOutput, "%s: error: %s\n", ProgramName, argErr.Msg)
	}
	return err
}

// ExitCode maps an Execute error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return 2
	}
	return 1
}
