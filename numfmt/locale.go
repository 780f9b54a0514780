package numfmt

import "golang.org/x/text/language"

// separators holds the locale-dependent pieces of a decimal rendering:
// the decimal separator, the integer group separator, and the group sizes
// counted from the least significant digit (en-IN groups 3 then 2:
// 12,34,567).
type separators struct {
	decimal string
	group   string
	sizes   []int
}

var (
	sepPoint      = separators{decimal: ".", group: ",", sizes: []int{3}}
	sepComma      = separators{decimal: ",", group: ".", sizes: []int{3}}
	sepCommaSpace = separators{decimal: ",", group: " ", sizes: []int{3}}
)

// supported lists the locales in the built-in table. The first entry is
// the matcher's fallback. Data follows CLDR; only the separator subset a
// decimal formatter needs is carried, not full pattern data.
var supported = []struct {
	tag language.Tag
	sep separators
}{
	{language.English, sepPoint},
	{language.MustParse("en-IN"), separators{decimal: ".", group: ",", sizes: []int{3, 2}}},
	{language.German, sepComma},
	{language.French, sepCommaSpace},
	{language.Spanish, sepComma},
	{language.Italian, sepComma},
	{language.Dutch, sepComma},
	{language.Portuguese, sepComma},
	{language.Danish, sepComma},
	{language.Swedish, sepCommaSpace},
	{language.Norwegian, sepCommaSpace},
	{language.Finnish, sepCommaSpace},
	{language.Polish, sepCommaSpace},
	{language.Czech, sepCommaSpace},
	{language.Russian, sepCommaSpace},
	{language.Ukrainian, sepCommaSpace},
	{language.Turkish, sepComma},
	{language.Japanese, sepPoint},
	{language.Korean, sepPoint},
	{language.Chinese, sepPoint},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	matcher = language.NewMatcher(tags)
}

// lookupSeparators resolves a tag against the built-in table. Unknown
// locales resolve to the English (point-decimal) conventions.
func lookupSeparators(tag language.Tag) separators {
	_, idx, _ := matcher.Match(tag)
	return supported[idx].sep
}
