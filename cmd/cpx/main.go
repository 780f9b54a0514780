// Command cpx formats and parses locale-aware complex-number literals.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lattice-substrate/cpx-text/cpxerr"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return writeClassifiedError(stderr, err)
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpx",
		Short: "Format and parse locale-aware complex-number literals",
		Long: `cpx converts between complex values and textual literals such as
"1,23 + 1,43i", honoring a locale's decimal and grouping conventions and a
configurable imaginary-unit symbol.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newFormatCmd(), newParseCmd())
	return cmd
}

// writeClassifiedError prints err and maps it to a process exit code via
// the failure taxonomy. Unclassified errors are internal.
func writeClassifiedError(stderr io.Writer, err error) int {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(stderr, "%s %v\n", red("error:"), err)

	var ce *cpxerr.Error
	if errors.As(err, &ce) {
		return ce.Class.ExitCode()
	}
	// Unclassified errors out of Execute are cobra's own flag and
	// argument complaints.
	return cpxerr.CLIUsage.ExitCode()
}
