package pagepath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue(t *testing.T) {
	entries := Entries()
	require.GreaterOrEqual(t, len(entries), 60)

	types := map[Type]bool{}
	values := map[string]bool{}
	for _, e := range entries {
		assert.NotEmpty(t, e.Title, e.Value)
		assert.NotEmpty(t, e.Value)
		assert.True(t, strings.HasPrefix(e.Path, "/"), "path must start with / on %s", e.Value)
		assert.True(t, strings.HasPrefix(e.Title, string(e.Type)+" · "), e.Title)
		assert.False(t, values[e.Value], "duplicate value %s", e.Value)
		values[e.Value] = true
		types[e.Type] = true
	}
	assert.Equal(t, map[Type]bool{TypePFP: true, TypePCD: true, TypePDP: true, TypeBUY: true}, types)
}

func TestPromptChoices(t *testing.T) {
	choices := PromptChoices()
	require.Len(t, choices, len(Entries())+4)

	first := choices[0]
	assert.True(t, first.Disabled)
	assert.Equal(t, "__sep_PFP", first.Value)
	assert.Equal(t, "All Smartphones", choices[1].Title)
	assert.Equal(t, "pfpSmartphonesAll", choices[1].Value)

	var headers []string
	for _, c := range choices {
		if c.Disabled {
			headers = append(headers, c.Value)
			continue
		}
		assert.NotContains(t, c.Title, " · ")
	}
	assert.Equal(t, []string{"__sep_PFP", "__sep_PCD", "__sep_PDP", "__sep_BUY"}, headers)
}

func TestLookup(t *testing.T) {
	e := Lookup("pfpTvsAll")
	assert.Equal(t, "/tvs/all-tvs/", e.Path)
	assert.Equal(t, TypePFP, e.Type)

	unknown := Lookup("customPage")
	assert.Equal(t, Entry{Title: "customPage", Value: "customPage", Path: "/customPage/", Type: TypePFP}, unknown)

	all := LookupAll([]string{"pcdTvs", "buyGalaxyS25"})
	require.Len(t, all, 2)
	assert.Equal(t, TypePCD, all[0].Type)
	assert.Equal(t, "/smartphones/galaxy-s25/buy/", all[1].Path)
}

func TestBuildJS(t *testing.T) {
	t.Run("renders selections", func(t *testing.T) {
		got := BuildJS([]Entry{
			{Value: "pfpTvsAll", Path: "/tvs/all-tvs/", Type: TypePFP},
			{Value: "pfpTvsOled", Path: "/tvs/oled-tvs/", Type: TypePFP},
		})
		assert.Equal(t, "export const pagePaths = {\n\tpfpTvsAll: '/tvs/all-tvs/',\n\tpfpTvsOled: '/tvs/oled-tvs/',\n};", got)
	})

	t.Run("placeholder when empty", func(t *testing.T) {
		got := BuildJS(nil)
		assert.True(t, strings.HasPrefix(got, "export const pagePaths = {"))
		assert.Contains(t, got, "// TODO")
		assert.True(t, strings.HasSuffix(got, "};"))
	})
}
