package market

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue_MultiCountryGroups(t *testing.T) {
	tests := map[string][]string{
		"SEBN": {"BE", "BE_FR", "NL"},
		"SENA": {"SE", "NO", "DK", "FI"},
		"SEIB": {"ES", "PT"},
	}
	for code, want := range tests {
		g, ok := Lookup(code)
		require.True(t, ok, code)
		assert.True(t, g.IsMulti())
		assert.Equal(t, want, Resolve(code).Codes(), code)
	}
}

func TestCatalogue_Invariants(t *testing.T) {
	seenGroups := map[string]bool{}
	for _, g := range Groups() {
		assert.False(t, seenGroups[g.Code], "duplicate group %s", g.Code)
		seenGroups[g.Code] = true
		assert.Equal(t, strings.ToUpper(g.Code), g.Code)
		assert.NotEmpty(t, g.Name)
		require.NotEmpty(t, g.Countries, g.Code)

		seenCodes := map[string]bool{}
		for _, l := range g.Countries {
			assert.NotEmpty(t, l.Code)
			assert.NotEmpty(t, l.URLPath)
			assert.NotEmpty(t, l.Name)
			assert.Equal(t, strings.ToUpper(l.Code), l.Code)
			assert.Equal(t, strings.ToLower(l.URLPath), l.URLPath)
			assert.False(t, seenCodes[l.Code], "duplicate locale %s in %s", l.Code, g.Code)
			seenCodes[l.Code] = true
		}
	}
}

func TestGroups_ReturnsCopy(t *testing.T) {
	groups := Groups()
	groups[0].Countries[0].Code = "XX"
	assert.Equal(t, "BE", Resolve("SEBN").Markets[0].Code)
}

func TestResolve_EveryGroupCode(t *testing.T) {
	for _, g := range Groups() {
		got := Resolve(g.Code)
		assert.Equal(t, g.Code, got.MarketGroup)
		if diff := cmp.Diff(g.Countries, got.Markets); diff != "" {
			t.Errorf("Resolve(%q) markets mismatch (-want +got):\n%s", g.Code, diff)
		}
	}
}

func TestResolve_EveryLocaleCode(t *testing.T) {
	for _, g := range Groups() {
		for _, l := range g.Countries {
			got := Resolve(l.Code)
			assert.Equal(t, g.Code, got.MarketGroup, l.Code)
			assert.Equal(t, []Locale{l}, got.Markets, l.Code)
		}
	}
}

func TestResolve_SingleCountryGroup(t *testing.T) {
	got := Resolve("SEUK")
	assert.Equal(t, "SEUK", got.MarketGroup)
	assert.Equal(t, []Locale{{Code: "UK", URLPath: "uk", Name: "United Kingdom"}}, got.Markets)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Resolve("SEBN"), Resolve("sebn"))
	assert.Equal(t, Resolve("SeBn"), Resolve("sebn"))

	got := Resolve("be_fr")
	assert.Equal(t, "SEBN", got.MarketGroup)
	assert.Equal(t, "BE_FR", got.Markets[0].Code)
}

func TestResolve_EuropePrefixedGroup(t *testing.T) {
	got := Resolve("europe_at")
	assert.Equal(t, "EUROPE_AT", got.MarketGroup)
	assert.Equal(t, []string{"AT"}, got.Codes())
}

func TestResolve_UnknownInput(t *testing.T) {
	got := Resolve("xx_Custom")
	assert.Equal(t, "XX_CUSTOM", got.MarketGroup)
	require.Len(t, got.Markets, 1)
	assert.Equal(t, Locale{Code: "XX_CUSTOM", URLPath: "xx_custom", Name: "XX_CUSTOM"}, got.Markets[0])
}

func TestResolve_EmptyInput(t *testing.T) {
	res := Resolve("")
	assert.Equal(t, "", res.MarketGroup)
	require.Len(t, res.Markets, 1)
	assert.Equal(t, Locale{}, res.Markets[0])
}

func TestResolve_ResultIsIndependentOfCatalogue(t *testing.T) {
	first := Resolve("SENA")
	first.Markets[0].Code = "ZZ"
	assert.Equal(t, "SE", Resolve("SENA").Markets[0].Code)
}

func TestFormatCodes(t *testing.T) {
	assert.Equal(t, "", FormatCodes(nil))
	assert.Equal(t, "", FormatCodes([]Locale{}))
	assert.Equal(t, "NL", FormatCodes([]Locale{{Code: "NL"}}))
	assert.Equal(t, "BE, NL", FormatCodes([]Locale{{Code: "BE"}, {Code: "NL"}}))
}

func TestMarketsJSON(t *testing.T) {
	assert.Equal(t, "[]", MarketsJSON(nil))

	out := MarketsJSON(Resolve("SEIB").Markets)
	var decoded []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "ES", decoded[0]["code"])
	assert.Equal(t, "pt", decoded[1]["urlPath"])
}

func TestChoices(t *testing.T) {
	choices := Choices()
	require.NotEmpty(t, choices)

	t.Run("starts with multi-country groups", func(t *testing.T) {
		assert.Equal(t, "SEBN", choices[0].Value)
		assert.Equal(t, "SENA", choices[1].Value)
		assert.Equal(t, "SEIB", choices[2].Value)
		assert.Equal(t, "SEBN - Benelux (BE, BE_FR, NL)", choices[0].Title)
		assert.Equal(t, "Includes: BE, BE_FR, NL", choices[0].Description)
	})

	t.Run("includes major single-country markets", func(t *testing.T) {
		values := make([]string, 0, len(choices))
		for _, c := range choices {
			values = append(values, c.Value)
		}
		assert.Equal(t, []string{"SEUK", "SEF", "SEG", "SEI", "SEPOL", "SECA"}, values[3:9])
		assert.Equal(t, "SEUK - UK (UK)", choices[3].Title)
	})

	t.Run("includes European markets", func(t *testing.T) {
		var europe []Choice
		for _, c := range choices {
			if strings.HasPrefix(c.Value, "EUROPE_") {
				europe = append(europe, c)
			}
		}
		assert.Len(t, europe, 18)
		assert.Equal(t, "AL - Albania", europe[0].Title)
		assert.Equal(t, "CH - Switzerland", europe[len(europe)-1].Title)
	})

	t.Run("every choice has title, value and description", func(t *testing.T) {
		for _, c := range choices {
			assert.NotEmpty(t, c.Title)
			assert.NotEmpty(t, c.Value)
			assert.NotEmpty(t, c.Description)
		}
	})
}

func TestSuggest(t *testing.T) {
	got := Suggest(Choices(), "nordic")
	require.Len(t, got, 1)
	assert.Equal(t, "SENA", got[0].Value)

	got = Suggest(Choices(), "europe_c")
	values := []string{}
	for _, c := range got {
		values = append(values, c.Value)
	}
	assert.Equal(t, []string{"EUROPE_CZ", "EUROPE_CH"}, values)

	assert.Empty(t, Suggest(Choices(), "nothing-like-this"))
}
