// Package market holds the market catalogue and resolves user input to locales.
package market

// Locale is a single country variant inside a market group.
type Locale struct {
	Code    string `json:"code" yaml:"code"`
	URLPath string `json:"urlPath" yaml:"url_path"`
	Name    string `json:"name" yaml:"name"`
}

// Group is a named collection of locales selectable as a unit.
// Countries keep declaration order; display and resolution follow it.
type Group struct {
	Code      string
	Name      string
	Countries []Locale
}

// catalogue is the static market table. Codes and order are part of the
// generated test contract and must not be renamed or reordered.
var catalogue = []Group{
	// Multi-country market groups
	{Code: "SEBN", Name: "Benelux", Countries: []Locale{
		{Code: "BE", URLPath: "be", Name: "Belgium (NL)"},
		{Code: "BE_FR", URLPath: "be_fr", Name: "Belgium (FR)"},
		{Code: "NL", URLPath: "nl", Name: "Netherlands"},
	}},
	{Code: "SENA", Name: "Nordics", Countries: []Locale{
		{Code: "SE", URLPath: "se", Name: "Sweden"},
		{Code: "NO", URLPath: "no", Name: "Norway"},
		{Code: "DK", URLPath: "dk", Name: "Denmark"},
		{Code: "FI", URLPath: "fi", Name: "Finland"},
	}},
	{Code: "SEIB", Name: "Iberia", Countries: []Locale{
		{Code: "ES", URLPath: "es", Name: "Spain"},
		{Code: "PT", URLPath: "pt", Name: "Portugal"},
	}},

	// Single-country market groups
	single("SEUK", "UK", "UK", "uk", "United Kingdom"),
	single("SEF", "France", "FR", "fr", "France"),
	single("SEG", "Germany", "DE", "de", "Germany"),
	single("SEI", "Italy", "IT", "it", "Italy"),
	single("SEPOL", "Poland", "PL", "pl", "Poland"),
	single("SECA", "Canada", "CA", "ca", "Canada"),

	// Additional European markets
	single("EUROPE_AL", "Albania", "AL", "al", "Albania"),
	single("EUROPE_AT", "Austria", "AT", "at", "Austria"),
	single("EUROPE_BA", "Bosnia", "BA", "ba", "Bosnia"),
	single("EUROPE_BG", "Bulgaria", "BG", "bg", "Bulgaria"),
	single("EUROPE_HR", "Croatia", "HR", "hr", "Croatia"),
	single("EUROPE_CZ", "Czech Republic", "CZ", "cz", "Czech Republic"),
	single("EUROPE_EE", "Estonia", "EE", "ee", "Estonia"),
	single("EUROPE_GR", "Greece", "GR", "gr", "Greece"),
	single("EUROPE_HU", "Hungary", "HU", "hu", "Hungary"),
	single("EUROPE_IE", "Ireland", "IE", "ie", "Ireland"),
	single("EUROPE_LV", "Latvia", "LV", "lv", "Latvia"),
	single("EUROPE_LT", "Lithuania", "LT", "lt", "Lithuania"),
	single("EUROPE_MK", "Macedonia", "MK", "mk", "Macedonia"),
	single("EUROPE_RO", "Romania", "RO", "ro", "Romania"),
	single("EUROPE_RS", "Serbia", "RS", "rs", "Serbia"),
	single("EUROPE_SK", "Slovakia", "SK", "sk", "Slovakia"),
	single("EUROPE_SI", "Slovenia", "SI", "si", "Slovenia"),
	single("EUROPE_CH", "Switzerland", "CH", "ch", "Switzerland"),
}

func single(group, name, code, urlPath, country string) Group {
	return Group{
		Code:      group,
		Name:      name,
		Countries: []Locale{{Code: code, URLPath: urlPath, Name: country}},
	}
}

// Groups returns a copy of the catalogue in declaration order.
func Groups() []Group {
	out := make([]Group, len(catalogue))
	for i, g := range catalogue {
		out[i] = g.clone()
	}
	return out
}

// Lookup returns the group with the given code (case-insensitive).
func Lookup(code string) (Group, bool) {
	g := findGroup(normalize(code))
	if g == nil {
		return Group{}, false
	}
	return g.clone(), true
}

// IsMulti reports whether the group holds more than one locale.
func (g Group) IsMulti() bool {
	return len(g.Countries) > 1
}

func (g Group) clone() Group {
	g.Countries = append([]Locale(nil), g.Countries...)
	return g
}

func findGroup(upper string) *Group {
	for i := range catalogue {
		if catalogue[i].Code == upper {
			return &catalogue[i]
		}
	}
	return nil
}
