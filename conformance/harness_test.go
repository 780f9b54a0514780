package conformance_test

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// xtextDecimal renders v through the x/text CLDR printer, the independent
// oracle this suite diffs against.
func xtextDecimal(t *testing.T, tag language.Tag, v float64, opts ...number.Option) string {
	t.Helper()
	return message.NewPrinter(tag).Sprint(number.Decimal(v, opts...))
}

// normalizeSpaces folds the narrow no-break space onto U+00A0 so that
// assertions do not depend on which CLDR revision the oracle carries.
func normalizeSpaces(s string) string {
	return strings.ReplaceAll(s, " ", " ")
}
