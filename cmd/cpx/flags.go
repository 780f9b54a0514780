package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/lattice-substrate/cpx-text/cpxerr"
	"github.com/lattice-substrate/cpx-text/cpxfmt"
	"github.com/lattice-substrate/cpx-text/numfmt"
)

// codecFlags are the flags shared by the format and parse commands.
type codecFlags struct {
	locale     string
	symbol     string
	digits     int
	noGrouping bool
}

func (f *codecFlags) bind(cmd *cobra.Command) {
	// Flags come before the literals: negative numbers like "-2.5" must
	// stay positional.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&f.locale, "locale", "", "BCP 47 locale tag (default: from the environment)")
	cmd.Flags().StringVar(&f.symbol, "symbol", cpxfmt.DefaultSymbol, "imaginary-unit symbol")
	cmd.Flags().IntVar(&f.digits, "digits", numfmt.DefaultMaxFractionDigits, "maximum fraction digits (0 rounds to integers)")
	cmd.Flags().BoolVar(&f.noGrouping, "no-grouping", false, "disable digit grouping")
}

func (f *codecFlags) codec() (*cpxfmt.Codec, error) {
	tag := numfmt.DefaultTag()
	if f.locale != "" {
		var err error
		tag, err = language.Parse(f.locale)
		if err != nil {
			return nil, cpxerr.Wrap(cpxerr.CLIUsage, -1,
				fmt.Sprintf("invalid locale %q", f.locale), err)
		}
	}
	if f.digits < 0 {
		return nil, cpxerr.New(cpxerr.CLIUsage, -1, "--digits must not be negative")
	}

	maxFrac := f.digits
	if maxFrac == 0 {
		maxFrac = -1 // DecimalOptions: negative means zero fraction digits
	}
	dec := numfmt.NewDecimal(tag, &numfmt.DecimalOptions{
		MaxFractionDigits: maxFrac,
		DisableGrouping:   f.noGrouping,
	})
	return cpxfmt.New(cpxfmt.WithFormatter(dec), cpxfmt.WithSymbol(f.symbol))
}
