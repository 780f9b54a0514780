package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lattice-substrate/cpx-text/cpxerr"
	"github.com/lattice-substrate/cpx-text/cpxfmt"
)

func newParseCmd() *cobra.Command {
	var flags codecFlags
	cmd := &cobra.Command{
		Use:   "parse [LITERAL...]",
		Short: "Parse complex literals into real/imaginary pairs",
		Long: `Parse complex literals into tab-separated real/imaginary pairs.

Literals come from the arguments, or one per line from stdin when no
arguments are given. Inputs that do not match the grammar are reported to
stderr with a caret at the offending offset; the command keeps going and
exits non-zero if any input failed.

Examples:
  cpx parse "1.23 + 1.43i"
  cpx parse --locale de "1.234.567,89 - 2,5i"
  echo "3 - 4i" | cpx parse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := flags.codec()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return parseAll(codec, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			return parseStream(codec, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags.bind(cmd)
	return cmd
}

func parseAll(codec *cpxfmt.Codec, inputs []string, stdout, stderr io.Writer) error {
	failures := 0
	for _, input := range inputs {
		z, err := codec.Parse(input)
		if err != nil {
			writeMismatch(stderr, input, err)
			failures++
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n",
			strconv.FormatFloat(z.Real, 'g', -1, 64),
			strconv.FormatFloat(z.Imag, 'g', -1, 64))
	}
	if failures > 0 {
		return cpxerr.New(cpxerr.ParseMismatch, -1,
			fmt.Sprintf("%d of %d inputs did not parse", failures, len(inputs)))
	}
	return nil
}

func parseStream(codec *cpxfmt.Codec, stdin io.Reader, stdout, stderr io.Writer) error {
	var inputs []string
	s := bufio.NewScanner(stdin)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := s.Err(); err != nil {
		return cpxerr.Wrap(cpxerr.InternalIO, -1, "reading stdin", err)
	}
	return parseAll(codec, inputs, stdout, stderr)
}

// writeMismatch reports one failed input with a caret under the offset
// where matching stopped.
func writeMismatch(stderr io.Writer, input string, err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(stderr, "%s %v\n", red("✗"), err)

	var ce *cpxerr.Error
	if errors.As(err, &ce) && ce.Offset >= 0 && ce.Offset <= len(input) {
		fmt.Fprintf(stderr, "  %s\n", input)
		fmt.Fprintf(stderr, "  %s%s\n", strings.Repeat(" ", ce.Offset), red("^"))
	}
}
