package market

import (
	"encoding/json"
	"strings"
)

// Resolution is the outcome of resolving a market input.
type Resolution struct {
	MarketGroup string   `json:"marketGroup" yaml:"market_group"`
	Markets     []Locale `json:"markets" yaml:"markets"`
}

// Resolve maps a group code, a locale code, or free text to a Resolution.
//
// Lookup order, first match wins:
//  1. exact group code
//  2. locale code in any group, in catalogue order
//  3. a synthesized single-locale group built from the input
//
// Resolve never fails and is case-insensitive. Empty input falls through to
// step 3 and yields a single locale with an empty code; callers that take
// user input reject that before resolving.
func Resolve(input string) Resolution {
	upper := normalize(input)

	if g := findGroup(upper); g != nil {
		return Resolution{
			MarketGroup: g.Code,
			Markets:     append([]Locale(nil), g.Countries...),
		}
	}

	for _, g := range catalogue {
		for _, l := range g.Countries {
			if strings.ToUpper(l.Code) == upper {
				return Resolution{MarketGroup: g.Code, Markets: []Locale{l}}
			}
		}
	}

	return Resolution{
		MarketGroup: upper,
		Markets: []Locale{{
			Code:    upper,
			URLPath: strings.ToLower(input),
			Name:    upper,
		}},
	}
}

// Codes returns the locale codes of the resolution in order.
func (r Resolution) Codes() []string {
	codes := make([]string, len(r.Markets))
	for i, m := range r.Markets {
		codes[i] = m.Code
	}
	return codes
}

// FormatCodes joins locale codes with ", " in input order.
func FormatCodes(locales []Locale) string {
	codes := make([]string, len(locales))
	for i, l := range locales {
		codes[i] = l.Code
	}
	return strings.Join(codes, ", ")
}

// MarketsJSON renders locales as a JSON array suitable for embedding in a
// generated JavaScript config file.
func MarketsJSON(locales []Locale) string {
	if len(locales) == 0 {
		return "[]"
	}
	data, err := json.MarshalIndent(locales, "\t", "\t")
	if err != nil {
		// Locale holds only strings; marshalling cannot fail.
		return "[]"
	}
	return string(data)
}

func normalize(s string) string {
	return strings.ToUpper(s)
}
