package pagepath

import (
	"fmt"
	"strings"
)

var typeLabels = map[Type]string{
	TypePFP: "── PFP (Filter/Listing pages)",
	TypePCD: "── PCD (Category hubs)",
	TypePDP: "── PDP (Product Detail pages)",
	TypeBUY: "── BUY (Purchase pages)",
}

// Choice is one row of the page path multiselect. Header rows are disabled
// and only separate runs of the same Type.
type Choice struct {
	Title    string
	Value    string
	Disabled bool
}

// HeaderValuePrefix marks the value of a disabled header row.
const HeaderValuePrefix = "__sep_"

// PromptChoices returns the catalogue as multiselect rows, with a header row
// before every change of Type and the "<TYPE> · " prefix stripped from titles.
func PromptChoices() []Choice {
	choices := make([]Choice, 0, len(catalogue)+len(typeLabels))
	var last Type
	for _, e := range catalogue {
		if e.Type != last {
			choices = append(choices, Choice{
				Title:    typeLabels[e.Type],
				Value:    HeaderValuePrefix + string(e.Type),
				Disabled: true,
			})
			last = e.Type
		}
		choices = append(choices, Choice{Title: shortTitle(e), Value: e.Value})
	}
	return choices
}

func shortTitle(e Entry) string {
	return strings.TrimPrefix(e.Title, string(e.Type)+" · ")
}

// BuildJS renders selections as the pagePaths module injected into templates.
// An empty selection produces a commented placeholder.
func BuildJS(selections []Entry) string {
	if len(selections) == 0 {
		return strings.Join([]string{
			"export const pagePaths = {",
			"\t// TODO: add page paths your experiment targets",
			"\t// pfpTvsAll: '/tvs/all-tvs/',",
			"};",
		}, "\n")
	}

	lines := make([]string, 0, len(selections)+2)
	lines = append(lines, "export const pagePaths = {")
	for _, s := range selections {
		lines = append(lines, fmt.Sprintf("\t%s: '%s',", s.Value, s.Path))
	}
	lines = append(lines, "};")
	return strings.Join(lines, "\n")
}
