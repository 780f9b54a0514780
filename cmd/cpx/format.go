package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lattice-substrate/cpx-text/cpxerr"
	"github.com/lattice-substrate/cpx-text/cpxnum"
)

func newFormatCmd() *cobra.Command {
	var flags codecFlags
	cmd := &cobra.Command{
		Use:   "format REAL [IMAG]",
		Short: "Render a complex value as a localized literal",
		Long: `Render a complex value as a localized literal.

With two arguments the pair is rendered as a complex literal; with one, the
bare real number is rendered through the same locale configuration.

Examples:
  cpx format 1.23 1.43
  cpx format --locale fr 1234567.89 -2.5
  cpx format --symbol j 1 1
  cpx format 3.14159`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := flags.codec()
			if err != nil {
				return err
			}

			components := make([]float64, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return cpxerr.Wrap(cpxerr.CLIUsage, -1,
						fmt.Sprintf("invalid number %q", arg), err)
				}
				components[i] = v
			}

			var out string
			if len(components) == 1 {
				out = codec.FormatFloat(components[0])
			} else {
				out = codec.Format(cpxnum.New(components[0], components[1]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}
