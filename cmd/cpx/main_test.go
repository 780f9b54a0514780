package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	color.NoColor = true
	var out, errBuf bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestFormatCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"pair", []string{"format", "--locale", "en", "1.23", "1.43"}, "1.23 + 1.43i\n"},
		{"negative_imaginary", []string{"format", "--locale", "en", "1", "-2"}, "1 - 2i\n"},
		{"bare_real_rounds", []string{"format", "--locale", "en", "3.14159"}, "3.14\n"},
		{"french_locale", []string{"format", "--locale", "fr", "1.23", "1.43"}, "1,23 + 1,43i\n"},
		{"german_grouping", []string{"format", "--locale", "de", "1234567.89", "0"}, "1.234.567,89\n"},
		{"custom_symbol", []string{"format", "--symbol", "j", "--locale", "en", "1", "1"}, "1 + 1j\n"},
		{"specials", []string{"format", "--locale", "en", "NaN", "Inf"}, "(NaN) + (Infinity)i\n"},
		{"digits", []string{"format", "--locale", "en", "--digits", "4", "3.14159", "0"}, "3.1416\n"},
		{"integer_digits", []string{"format", "--locale", "en", "--digits", "0", "3.14159"}, "3\n"},
		{"no_grouping", []string{"format", "--locale", "en", "--no-grouping", "1234567.89"}, "1234567.89\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "", tc.args...)
			require.Equal(t, 0, code, "stderr: %s", stderr)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestFormatCommandUsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"bad_number", []string{"format", "--locale", "en", "bogus"}},
		{"bad_locale", []string{"format", "--locale", "not a locale!", "1"}},
		{"negative_digits", []string{"format", "--locale", "en", "--digits", "-1", "1"}},
		{"no_args", []string{"format"}},
		{"unknown_flag", []string{"format", "--bogus", "1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tc.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, stderr, "error:")
		})
	}
}

func TestParseCommandArgs(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "parse", "--locale", "en", "1.23 + 1.43i", "-4 - 0.5i")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Equal(t, "1.23\t1.43\n-4\t-0.5\n", stdout)
}

func TestParseCommandStdin(t *testing.T) {
	stdin := "1 + 1i\n\n  3,5 - 2i\n"
	code, stdout, stderr := runCLI(t, stdin, "parse", "--locale", "fr")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Equal(t, "1\t1\n3.5\t-2\n", stdout)
}

func TestParseCommandMismatchCaret(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "parse", "--locale", "en", "1 + 1")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "1 + 1")
	assert.Contains(t, stderr, "     ^", "caret sits at index 5")
}

func TestParseCommandKeepsGoing(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", "parse", "--locale", "en", "bogus", "2 + 2i")
	assert.Equal(t, 2, code)
	assert.Equal(t, "2\t2\n", stdout, "good inputs still produce output")
	assert.Contains(t, stderr, "1 of 2 inputs did not parse")
}

func TestParseCommandCustomSymbol(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "parse", "--locale", "en", "--symbol", "j", "1 + 2j")
	require.Equal(t, 0, code)
	assert.Equal(t, "1\t2\n", stdout)
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "", "bogus")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, stderr)
}
