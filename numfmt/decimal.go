package numfmt

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// DefaultMaxFractionDigits is the rounding precision used when
// DecimalOptions does not override it. It matches the default the
// complex-number codec has always shipped with.
const DefaultMaxFractionDigits = 2

// Fixed tokens for the values a decimal rendering cannot express.
// These are locale-independent in both directions.
const (
	NaNToken         = "NaN"
	InfinityToken    = "Infinity"
	NegInfinityToken = "-Infinity"
)

// DecimalOptions controls a Decimal's rendering. A nil *DecimalOptions is
// valid and means all defaults.
type DecimalOptions struct {
	// MinFractionDigits is the number of fraction digits always kept.
	// Default 0: whole values render without a decimal separator.
	MinFractionDigits int

	// MaxFractionDigits is the rounding precision. 0 means
	// DefaultMaxFractionDigits; negative means round to an integer.
	MaxFractionDigits int

	// DisableGrouping suppresses group separators when formatting and
	// stops Parse from accepting them.
	DisableGrouping bool
}

func (o *DecimalOptions) minFrac() int {
	if o != nil && o.MinFractionDigits > 0 {
		return o.MinFractionDigits
	}
	return 0
}

func (o *DecimalOptions) maxFrac() int {
	if o == nil || o.MaxFractionDigits == 0 {
		return DefaultMaxFractionDigits
	}
	if o.MaxFractionDigits < 0 {
		return 0
	}
	return o.MaxFractionDigits
}

func (o *DecimalOptions) grouping() bool {
	return o == nil || !o.DisableGrouping
}

// Decimal is the locale-aware Formatter implementation. It is immutable
// after construction and safe for concurrent use.
//
// Formatting rounds half-to-even at the configured precision, trims
// trailing fraction zeros down to the minimum, groups integer digits, and
// localizes the decimal separator. NaN and the infinities render as the
// fixed ASCII tokens. Values whose magnitude rounds to zero render as an
// unsigned zero, negative zero included.
//
// Parsing is the lenient inverse: an optional sign, integer digits with
// group separators accepted between digits (group sizes are not
// validated), an optional decimal separator with fraction digits, or one
// of the bare special tokens. Exponent notation is not recognized.
type Decimal struct {
	sep      separators
	minFrac  int
	maxFrac  int
	grouping bool
}

// NewDecimal builds a Decimal for the given locale. Unknown tags resolve
// to English conventions. opts may be nil.
func NewDecimal(tag language.Tag, opts *DecimalOptions) *Decimal {
	minFrac := opts.minFrac()
	maxFrac := opts.maxFrac()
	if minFrac > maxFrac {
		minFrac = maxFrac
	}
	return &Decimal{
		sep:      lookupSeparators(tag),
		minFrac:  minFrac,
		maxFrac:  maxFrac,
		grouping: opts.grouping(),
	}
}

// DecimalSeparator returns the separator between integer and fraction
// digits, e.g. "," for French.
func (d *Decimal) DecimalSeparator() string { return d.sep.decimal }

// GroupSeparator returns the integer group separator, e.g. "." for German.
func (d *Decimal) GroupSeparator() string { return d.sep.group }

// Format renders f at the configured precision with localized separators.
func (d *Decimal) Format(f float64) string {
	switch {
	case math.IsNaN(f):
		return NaNToken
	case math.IsInf(f, 1):
		return InfinityToken
	case math.IsInf(f, -1):
		return NegInfinityToken
	}

	neg := f < 0
	if neg {
		f = -f
	}

	// strconv rounds half-to-even.
	s := strconv.FormatFloat(f, 'f', d.maxFrac, 64)

	intDigits, fracDigits := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intDigits, fracDigits = s[:i], s[i+1:]
	}
	for len(fracDigits) > d.minFrac && strings.HasSuffix(fracDigits, "0") {
		fracDigits = fracDigits[:len(fracDigits)-1]
	}
	if neg && allZeros(intDigits) && allZeros(fracDigits) {
		// The magnitude rounded away; a signed zero rendering would not
		// survive a parse/format round trip.
		neg = false
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	d.writeGrouped(&b, intDigits)
	if len(fracDigits) > 0 {
		b.WriteString(d.sep.decimal)
		b.WriteString(fracDigits)
	}
	return b.String()
}

// writeGrouped writes integer digits with group separators inserted per
// the locale's group sizes (least significant group first).
func (d *Decimal) writeGrouped(b *strings.Builder, digits string) {
	if !d.grouping || d.sep.group == "" {
		b.WriteString(digits)
		return
	}

	// Compute group boundaries right to left, then emit left to right.
	var cuts []int
	i := len(digits)
	sizeIdx := 0
	for {
		size := d.sep.sizes[sizeIdx]
		if sizeIdx < len(d.sep.sizes)-1 {
			sizeIdx++
		}
		if i-size <= 0 {
			break
		}
		i -= size
		cuts = append(cuts, i)
	}
	prev := 0
	for j := len(cuts) - 1; j >= 0; j-- {
		b.WriteString(digits[prev:cuts[j]])
		b.WriteString(d.sep.group)
		prev = cuts[j]
	}
	b.WriteString(digits[prev:])
}

// Parse implements Formatter. See the package and type documentation for
// the accepted grammar and the cursor contract.
func (d *Decimal) Parse(s string, pos *Position) (float64, bool) {
	start := pos.Index

	for _, sp := range []struct {
		token string
		value float64
	}{
		{NegInfinityToken, math.Inf(-1)},
		{InfinityToken, math.Inf(1)},
		{NaNToken, math.NaN()},
	} {
		if strings.HasPrefix(s[start:], sp.token) {
			pos.Index = start + len(sp.token)
			return sp.value, true
		}
	}

	// Normalize into an ASCII buffer for strconv.
	var buf []byte
	i := start
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			buf = append(buf, '-')
		}
		i++
	}

	intDigits := 0
	for i < len(s) {
		if isDigit(s[i]) {
			buf = append(buf, s[i])
			intDigits++
			i++
			continue
		}
		if d.grouping && intDigits > 0 && strings.HasPrefix(s[i:], d.sep.group) &&
			digitAt(s, i+len(d.sep.group)) {
			i += len(d.sep.group)
			continue
		}
		break
	}

	fracDigits := 0
	if strings.HasPrefix(s[i:], d.sep.decimal) && digitAt(s, i+len(d.sep.decimal)) {
		buf = append(buf, '.')
		i += len(d.sep.decimal)
		for i < len(s) && isDigit(s[i]) {
			buf = append(buf, s[i])
			fracDigits++
			i++
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		pos.ErrorIndex = i
		return 0, false
	}

	v, err := strconv.ParseFloat(string(buf), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		pos.ErrorIndex = start
		return 0, false
	}
	pos.Index = i
	return v, true
}

func allZeros(digits string) bool {
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func digitAt(s string, i int) bool { return i < len(s) && isDigit(s[i]) }
