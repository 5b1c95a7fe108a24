package market

import (
	"fmt"
	"strings"
)

// Choice is one entry of the market selection prompt.
type Choice struct {
	Title       string
	Value       string
	Description string
}

var (
	multiGroups  = []string{"SEBN", "SENA", "SEIB"}
	majorMarkets = []string{"SEUK", "SEF", "SEG", "SEI", "SEPOL", "SECA"}
)

const europePrefix = "EUROPE_"

// Choices builds the prompt entries: multi-country groups first, then the
// major single-country markets, then the remaining European markets.
func Choices() []Choice {
	choices := make([]Choice, 0, len(catalogue))

	for _, code := range multiGroups {
		g := findGroup(code)
		codes := FormatCodes(g.Countries)
		choices = append(choices, Choice{
			Title:       fmt.Sprintf("%s - %s (%s)", g.Code, g.Name, codes),
			Value:       g.Code,
			Description: "Includes: " + codes,
		})
	}

	for _, code := range majorMarkets {
		g := findGroup(code)
		country := g.Countries[0]
		choices = append(choices, Choice{
			Title:       fmt.Sprintf("%s - %s (%s)", g.Code, g.Name, country.Code),
			Value:       g.Code,
			Description: country.Name,
		})
	}

	for _, g := range catalogue {
		if !strings.HasPrefix(g.Code, europePrefix) {
			continue
		}
		country := g.Countries[0]
		choices = append(choices, Choice{
			Title:       fmt.Sprintf("%s - %s", country.Code, g.Name),
			Value:       g.Code,
			Description: country.Name,
		})
	}

	return choices
}

// Matches reports whether the choice matches a case-insensitive search term
// against its title or value.
func (c Choice) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Value), term)
}

// Suggest filters choices by term, keeping order.
func Suggest(choices []Choice, term string) []Choice {
	var out []Choice
	for _, c := range choices {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out
}
