// Package cpxfmt formats and parses locale-sensitive complex-number
// literals such as "1,23 + 1,43i".
//
// A Codec composes two numfmt.Formatter instances, one per component, with
// fixed separator tokens and a configurable imaginary-unit symbol. The
// grammar it speaks, in both directions, is
//
//	<real> [ (" + " | " - ") <magnitude> <symbol> ]
//
// where either component may also be a special value, rendered
// parenthesized: "(NaN)", "(Infinity)", "(-Infinity)". A value with a zero
// imaginary part renders as the bare real string.
//
// A Codec is immutable after construction and safe for concurrent use
// provided its formatters are side-effect-free per call (see
// numfmt.Formatter).
package cpxfmt

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/lattice-substrate/cpx-text/cpxerr"
	"github.com/lattice-substrate/cpx-text/cpxnum"
	"github.com/lattice-substrate/cpx-text/numfmt"
)

// DefaultSymbol is the imaginary-unit symbol used unless WithSymbol
// overrides it.
const DefaultSymbol = "i"

const (
	plusSeparator  = " + "
	minusSeparator = " - "
)

// Codec converts cpxnum.Complex values to and from text.
type Codec struct {
	realFmt numfmt.Formatter
	imagFmt numfmt.Formatter
	symbol  string
}

type config struct {
	tag        language.Tag
	hasTag     bool
	realFmt    numfmt.Formatter
	imagFmt    numfmt.Formatter
	formatters bool
	symbol     string
}

// Option configures a Codec under construction.
type Option func(*config)

// WithLocale derives both sub-formatters from the given BCP 47 tag.
func WithLocale(tag language.Tag) Option {
	return func(c *config) {
		c.tag = tag
		c.hasTag = true
	}
}

// WithSymbol sets the imaginary-unit symbol, e.g. "j". The symbol must be
// non-empty.
func WithSymbol(symbol string) Option {
	return func(c *config) {
		c.symbol = symbol
	}
}

// WithFormatter supplies one pre-built sub-formatter shared by both
// components, overriding any locale-derived default.
func WithFormatter(f numfmt.Formatter) Option {
	return func(c *config) {
		c.realFmt = f
		c.imagFmt = f
		c.formatters = true
	}
}

// WithFormatters supplies distinct pre-built sub-formatters for the real
// and imaginary components.
func WithFormatters(re, im numfmt.Formatter) Option {
	return func(c *config) {
		c.realFmt = re
		c.imagFmt = im
		c.formatters = true
	}
}

// New constructs a Codec. Without options, both components use a
// numfmt.Decimal for the process default locale (numfmt.DefaultTag, read
// once here) and the symbol is "i".
//
// Construction fails with a BAD_CONFIG error when the symbol is empty or
// a supplied formatter is nil.
func New(opts ...Option) (*Codec, error) {
	cfg := config{symbol: DefaultSymbol}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.symbol == "" {
		return nil, cpxerr.New(cpxerr.BadConfig, -1, "imaginary-unit symbol must not be empty")
	}
	if cfg.formatters {
		if cfg.realFmt == nil || cfg.imagFmt == nil {
			return nil, cpxerr.New(cpxerr.BadConfig, -1, "sub-formatter must not be nil")
		}
	} else {
		tag := cfg.tag
		if !cfg.hasTag {
			tag = numfmt.DefaultTag()
		}
		d := numfmt.NewDecimal(tag, nil)
		cfg.realFmt, cfg.imagFmt = d, d
	}

	return &Codec{realFmt: cfg.realFmt, imagFmt: cfg.imagFmt, symbol: cfg.symbol}, nil
}

// RealFormatter returns the sub-formatter for the real component.
func (c *Codec) RealFormatter() numfmt.Formatter { return c.realFmt }

// ImagFormatter returns the sub-formatter for the imaginary component.
func (c *Codec) ImagFormatter() numfmt.Formatter { return c.imagFmt }

// Symbol returns the imaginary-unit symbol.
func (c *Codec) Symbol() string { return c.symbol }

// Format renders z. It is total: finite, NaN, and infinite components all
// have a rendering.
//
// The imaginary term carries the sign in the separator and renders the
// magnitude, so (2, -3) is "2 - 3i" and (-Inf, -Inf) is
// "(-Infinity) - (Infinity)i". An exactly-zero imaginary part, negative
// zero included, omits the term entirely.
func (c *Codec) Format(z cpxnum.Complex) string {
	var b strings.Builder
	writeComponent(&b, z.Real, c.realFmt)

	im := z.Imag
	switch {
	case im < 0:
		b.WriteString(minusSeparator)
		writeComponent(&b, -im, c.imagFmt)
		b.WriteString(c.symbol)
	case im > 0 || math.IsNaN(im):
		b.WriteString(plusSeparator)
		writeComponent(&b, im, c.imagFmt)
		b.WriteString(c.symbol)
	}
	return b.String()
}

// FormatFloat renders a bare real number through the real sub-formatter,
// with the same parenthesized rendering for special values. Callers use it
// for single-number output consistent with the complex format's locale.
func (c *Codec) FormatFloat(f float64) string {
	var b strings.Builder
	writeComponent(&b, f, c.realFmt)
	return b.String()
}

// writeComponent renders one component. Specials bypass the sub-formatter
// and use the fixed tokens, wrapped in parentheses.
func writeComponent(b *strings.Builder, v float64, f numfmt.Formatter) {
	switch {
	case math.IsNaN(v):
		b.WriteString("(" + numfmt.NaNToken + ")")
	case math.IsInf(v, 1):
		b.WriteString("(" + numfmt.InfinityToken + ")")
	case math.IsInf(v, -1):
		b.WriteString("(" + numfmt.NegInfinityToken + ")")
	default:
		b.WriteString(f.Format(v))
	}
}

// Parse is the convenience entry point: it parses source as a single
// complex literal occupying the whole input (trailing whitespace allowed)
// and converts any mismatch into a PARSE_MISMATCH error carrying the
// original text and the offset where matching stopped.
func (c *Codec) Parse(source string) (cpxnum.Complex, error) {
	pos := numfmt.NewPosition(0)
	z, ok := c.ParseAt(source, pos)
	if !ok {
		idx := pos.ErrorIndex
		if idx < 0 {
			idx = pos.Index
		}
		return cpxnum.Complex{}, cpxerr.New(cpxerr.ParseMismatch, idx,
			fmt.Sprintf("cannot parse %q as a complex number", source))
	}
	skipWhitespace(source, pos)
	if pos.Index != len(source) {
		return cpxnum.Complex{}, cpxerr.New(cpxerr.ParseMismatch, pos.Index,
			fmt.Sprintf("trailing text after complex number in %q", source))
	}
	return z, nil
}

// ParseAt is the low-level entry point. It attempts a single left-to-right
// match starting at pos.Index, with no backtracking past a committed
// token.
//
// On success it returns the value, advances pos.Index past the literal,
// and leaves pos.ErrorIndex untouched. On any mismatch it returns ok=false
// with pos.Index reset to where it started and pos.ErrorIndex at the
// offset where matching stopped; it never returns a partially-populated
// value and never panics. A real part followed by clean end of input is a
// success with imaginary part zero; a real part followed by anything other
// than a sign token is a mismatch reported at the first offset past the
// real part.
func (c *Codec) ParseAt(source string, pos *numfmt.Position) (cpxnum.Complex, bool) {
	initial := pos.Index

	skipWhitespace(source, pos)
	re, ok := c.parseComponent(source, c.realFmt, pos)
	if !ok {
		pos.Index = initial
		return cpxnum.Complex{}, false
	}

	signIndex := pos.Index
	var sign float64
	switch nextChar(source, pos) {
	case 0:
		// Clean end of input: a bare real literal.
		return cpxnum.Complex{Real: re}, true
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		pos.Index = initial
		pos.ErrorIndex = signIndex
		return cpxnum.Complex{}, false
	}

	skipWhitespace(source, pos)
	im, ok := c.parseComponent(source, c.imagFmt, pos)
	if !ok {
		pos.Index = initial
		return cpxnum.Complex{}, false
	}

	if !parseFixedString(source, c.symbol, pos) {
		pos.Index = initial
		return cpxnum.Complex{}, false
	}
	return cpxnum.Complex{Real: re, Imag: sign * im}, true
}

// parseComponent matches one component: a parenthesized special token, or
// whatever the sub-formatter accepts (which includes the bare special
// tokens for numfmt.Decimal).
func (c *Codec) parseComponent(source string, f numfmt.Formatter, pos *numfmt.Position) (float64, bool) {
	for _, sp := range []struct {
		token string
		value float64
	}{
		{"(" + numfmt.NaNToken + ")", math.NaN()},
		{"(" + numfmt.InfinityToken + ")", math.Inf(1)},
		{"(" + numfmt.NegInfinityToken + ")", math.Inf(-1)},
	} {
		if strings.HasPrefix(source[pos.Index:], sp.token) {
			pos.Index += len(sp.token)
			return sp.value, true
		}
	}
	return f.Parse(source, pos)
}

// parseFixedString matches expected exactly at pos.Index.
func parseFixedString(source, expected string, pos *numfmt.Position) bool {
	if !strings.HasPrefix(source[pos.Index:], expected) {
		pos.ErrorIndex = pos.Index
		return false
	}
	pos.Index += len(expected)
	return true
}

// skipWhitespace advances past Unicode whitespace.
func skipWhitespace(source string, pos *numfmt.Position) {
	for pos.Index < len(source) {
		r, size := utf8.DecodeRuneInString(source[pos.Index:])
		if !unicode.IsSpace(r) {
			return
		}
		pos.Index += size
	}
}

// nextChar skips whitespace and consumes the next byte, returning 0 at end
// of input.
func nextChar(source string, pos *numfmt.Position) byte {
	skipWhitespace(source, pos)
	if pos.Index >= len(source) {
		return 0
	}
	b := source[pos.Index]
	pos.Index++
	return b
}
