package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"expgen/internal/generator"
	"expgen/internal/market"
	"expgen/internal/pagepath"
	"expgen/internal/selector"

	tea "github.com/charmbracelet/bubbletea"
)

// PlaceholderTitle labels the selector option that leaves the selector blank.
const PlaceholderTitle = "Use placeholder (add manually later)"

type cancellable interface {
	Cancelled() bool
}

// TeaPrompter implements generator.Prompter with one bubbletea program per
// question.
type TeaPrompter struct {
	Styles Styles
	In     io.Reader
	Out    io.Writer
}

// NewTeaPrompter creates a prompter on the given streams. Nil streams fall
// back to the terminal.
func NewTeaPrompter(styles Styles, in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{Styles: styles, In: in, Out: out}
}

func (p *TeaPrompter) run(m tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	if c, ok := final.(cancellable); ok && c.Cancelled() {
		return nil, generator.ErrCancelled
	}
	return final, nil
}

// Confirm asks a yes/no question.
func (p *TeaPrompter) Confirm(message string, initial bool) (bool, error) {
	final, err := p.run(NewConfirmModel(p.Styles, message, initial, "Yes", "No"))
	if err != nil {
		return false, err
	}
	return final.(ConfirmModel).Value(), nil
}

// Text asks for one line of input.
func (p *TeaPrompter) Text(message, initial string, validate func(string) error) (string, error) {
	final, err := p.run(NewTextModel(p.Styles, message, initial, validate))
	if err != nil {
		return "", err
	}
	return final.(TextModel).Value(), nil
}

// Market asks for a market code or group.
func (p *TeaPrompter) Market(message string, choices []market.Choice, initial string) (string, error) {
	final, err := p.run(NewAutocompleteModel(p.Styles, message, MarketSuggester(choices), initial))
	if err != nil {
		return "", err
	}
	return final.(AutocompleteModel).Value(), nil
}

// PagePaths asks which page paths to target.
func (p *TeaPrompter) PagePaths(message string, choices []pagepath.Choice) ([]string, error) {
	final, err := p.run(NewMultiSelectModel(p.Styles, message, PageOptions(choices)))
	if err != nil {
		return nil, err
	}
	return final.(MultiSelectModel).Values(), nil
}

// Selector offers scanned candidates plus a placeholder option. With no
// candidates it returns nil without asking.
func (p *TeaPrompter) Selector(message string, candidates []selector.Candidate) (*string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	final, err := p.run(NewSelectModel(p.Styles, message, SelectorOptions(candidates)))
	if err != nil {
		return nil, err
	}
	chosen := final.(SelectModel).Chosen()
	if chosen == nil || chosen.Value == "" {
		return nil, nil
	}
	v := chosen.Value
	return &v, nil
}

// MarketOptions converts market choices to prompt options.
func MarketOptions(choices []market.Choice) []Option {
	out := make([]Option, len(choices))
	for i, c := range choices {
		out[i] = Option{Title: c.Title, Value: c.Value, Description: c.Description}
	}
	return out
}

// MarketSuggester filters market choices by a search term.
func MarketSuggester(choices []market.Choice) func(string) []Option {
	return func(term string) []Option {
		if term == "" {
			return MarketOptions(choices)
		}
		return MarketOptions(market.Suggest(choices, term))
	}
}

// PageOptions converts page path choices to prompt options.
func PageOptions(choices []pagepath.Choice) []Option {
	out := make([]Option, len(choices))
	for i, c := range choices {
		out[i] = Option{Title: c.Title, Value: c.Value, Disabled: c.Disabled}
	}
	return out
}

// SelectorOptions lists candidates followed by the placeholder option, whose
// value is empty.
func SelectorOptions(candidates []selector.Candidate) []Option {
	out := make([]Option, 0, len(candidates)+1)
	for _, c := range candidates {
		out = append(out, Option{
			Title:       c.Value,
			Value:       c.Value,
			Description: fmt.Sprintf("[%s] %s:%d", c.Kind, filepath.Base(c.File), c.Line),
		})
	}
	return append(out, Option{Title: PlaceholderTitle})
}
