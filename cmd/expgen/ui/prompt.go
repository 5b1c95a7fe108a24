package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// TEXT
// =============================================================================

// TextModel asks for one line of input.
type TextModel struct {
	styles    Styles
	message   string
	input     textinput.Model
	validate  func(string) error
	err       error
	done      bool
	cancelled bool
}

// NewTextModel creates a text prompt prefilled with initial.
func NewTextModel(styles Styles, message, initial string, validate func(string) error) TextModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.PromptStyle = styles.Prompt
	ti.CharLimit = 256
	ti.Width = 60
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()

	return TextModel{styles: styles, message: message, input: ti, validate: validate}
}

// Init initializes the model.
func (m TextModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m TextModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.input.Value()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.err = nil
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m TextModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s %s\n", m.styles.Success.Render("✔"), m.message, m.styles.Selected.Render(m.input.Value()))
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render("?") + " " + m.styles.Bold.Render(m.message) + "\n")
	sb.WriteString(m.input.View() + "\n")
	if m.err != nil {
		sb.WriteString(m.styles.Error.Render("✖ "+m.err.Error()) + "\n")
	}
	return sb.String()
}

// Value returns the current input.
func (m TextModel) Value() string { return m.input.Value() }

// Cancelled reports whether the user aborted.
func (m TextModel) Cancelled() bool { return m.cancelled }

// =============================================================================
// CONFIRM
// =============================================================================

// ConfirmModel is a yes/no toggle.
type ConfirmModel struct {
	styles    Styles
	message   string
	active    string
	inactive  string
	value     bool
	done      bool
	cancelled bool
}

// NewConfirmModel creates a toggle. active and inactive label the two states.
func NewConfirmModel(styles Styles, message string, initial bool, active, inactive string) ConfirmModel {
	if active == "" {
		active = "Yes"
	}
	if inactive == "" {
		inactive = "No"
	}
	return ConfirmModel{styles: styles, message: message, active: active, inactive: inactive, value: initial}
}

// Init initializes the model.
func (m ConfirmModel) Init() tea.Cmd { return nil }

// Update handles messages.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "left", "right", "tab", "h", "l", " ":
		m.value = !m.value
	case "y", "Y":
		m.value = true
	case "n", "N":
		m.value = false
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the toggle.
func (m ConfirmModel) View() string {
	if m.done {
		label := m.inactive
		if m.value {
			label = m.active
		}
		return fmt.Sprintf("%s %s %s\n", m.styles.Success.Render("✔"), m.message, m.styles.Selected.Render(label))
	}
	yes, no := m.styles.Muted.Render(m.active), m.styles.Muted.Render(m.inactive)
	if m.value {
		yes = m.styles.Cursor.Underline(true).Render(m.active)
	} else {
		no = m.styles.Cursor.Underline(true).Render(m.inactive)
	}
	return fmt.Sprintf("%s %s %s / %s\n", m.styles.Prompt.Render("?"), m.styles.Bold.Render(m.message), no, yes)
}

// Value returns the current state.
func (m ConfirmModel) Value() bool { return m.value }

// Cancelled reports whether the user aborted.
func (m ConfirmModel) Cancelled() bool { return m.cancelled }

// =============================================================================
// AUTOCOMPLETE
// =============================================================================

// Option is one row in a choice prompt.
type Option struct {
	Title       string
	Value       string
	Description string
	Disabled    bool
}

const autocompleteRows = 10

// AutocompleteModel filters options as the user types. Enter picks the
// highlighted option or, when nothing matches, the typed text upper-cased.
type AutocompleteModel struct {
	styles    Styles
	message   string
	suggest   func(term string) []Option
	filtered  []Option
	filter    textinput.Model
	cursor    int
	value     string
	done      bool
	cancelled bool
}

// NewAutocompleteModel creates an autocomplete prompt. suggest returns the
// options matching the typed term; an empty term lists everything. The
// cursor starts on the option whose value equals initial, if any.
func NewAutocompleteModel(styles Styles, message string, suggest func(term string) []Option, initial string) AutocompleteModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = "type to search"
	ti.Focus()

	m := AutocompleteModel{styles: styles, message: message, suggest: suggest, filter: ti}
	m.refilter()
	for i, o := range m.filtered {
		if initial != "" && strings.EqualFold(o.Value, initial) {
			m.cursor = i
			break
		}
	}
	return m
}

func (m *AutocompleteModel) refilter() {
	m.filtered = m.suggest(strings.TrimSpace(m.filter.Value()))
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// Init initializes the model.
func (m AutocompleteModel) Init() tea.Cmd { return textinput.Blink }

// Update handles messages.
func (m AutocompleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n", "tab":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.filtered) > 0 {
				m.value = m.filtered[m.cursor].Value
			} else if typed := strings.TrimSpace(m.filter.Value()); typed != "" {
				m.value = strings.ToUpper(typed)
			} else {
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.cursor = 0
		m.refilter()
	}
	return m, cmd
}

// View renders the prompt.
func (m AutocompleteModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s %s\n", m.styles.Success.Render("✔"), m.message, m.styles.Selected.Render(m.value))
	}
	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render("?") + " " + m.styles.Bold.Render(m.message) + "\n")
	sb.WriteString(m.filter.View() + "\n")

	if len(m.filtered) == 0 {
		if typed := strings.TrimSpace(m.filter.Value()); typed != "" {
			sb.WriteString(m.styles.Hint.Render(fmt.Sprintf("  Enter to use custom code %s", strings.ToUpper(typed))) + "\n")
		}
		return sb.String()
	}

	start := 0
	if m.cursor >= autocompleteRows {
		start = m.cursor - autocompleteRows + 1
	}
	end := min(start+autocompleteRows, len(m.filtered))
	for i := start; i < end; i++ {
		o := m.filtered[i]
		if i == m.cursor {
			sb.WriteString(m.styles.Cursor.Render("❯ "+o.Title))
			if o.Description != "" {
				sb.WriteString(m.styles.Hint.Render("  " + o.Description))
			}
		} else {
			sb.WriteString("  " + m.styles.Body.Render(o.Title))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Value returns the chosen value.
func (m AutocompleteModel) Value() string { return m.value }

// Cancelled reports whether the user aborted.
func (m AutocompleteModel) Cancelled() bool { return m.cancelled }

// =============================================================================
// SELECT
// =============================================================================

type optionItem struct{ opt Option }

func (i optionItem) Title() string       { return i.opt.Title }
func (i optionItem) Description() string { return i.opt.Description }
func (i optionItem) FilterValue() string { return i.opt.Title }

// SelectModel picks one option from a list.
type SelectModel struct {
	list      list.Model
	styles    Styles
	message   string
	chosen    *Option
	cancelled bool
}

// NewSelectModel creates a single-choice list.
func NewSelectModel(styles Styles, message string, options []Option) SelectModel {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = optionItem{opt: o}
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 20)
	l.Title = message
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = styles.Title

	return SelectModel{list: l, styles: styles, message: message}
}

// Init initializes the model.
func (m SelectModel) Init() tea.Cmd { return nil }

// Update handles messages.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, min(msg.Height, 20))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(optionItem); ok {
				opt := item.opt
				m.chosen = &opt
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m SelectModel) View() string {
	if m.chosen != nil {
		return fmt.Sprintf("%s %s %s\n", m.styles.Success.Render("✔"), m.message, m.styles.Selected.Render(m.chosen.Title))
	}
	return m.list.View()
}

// Chosen returns the selected option, or nil.
func (m SelectModel) Chosen() *Option { return m.chosen }

// Cancelled reports whether the user aborted.
func (m SelectModel) Cancelled() bool { return m.cancelled }

// =============================================================================
// MULTISELECT
// =============================================================================

// MultiSelectModel toggles any number of options. Disabled options render as
// section headers and cannot be focused.
type MultiSelectModel struct {
	styles    Styles
	message   string
	options   []Option
	selected  map[int]bool
	cursor    int
	height    int
	done      bool
	cancelled bool
}

// NewMultiSelectModel creates a multiselect with nothing selected.
func NewMultiSelectModel(styles Styles, message string, options []Option) MultiSelectModel {
	m := MultiSelectModel{styles: styles, message: message, options: options, selected: map[int]bool{}, height: 15, cursor: -1}
	m.cursor = m.next(-1, 1)
	return m
}

// next returns the first enabled index after from in direction dir, or from
// when there is none.
func (m MultiSelectModel) next(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.options); i += dir {
		if !m.options[i].Disabled {
			return i
		}
	}
	return from
}

// Init initializes the model.
func (m MultiSelectModel) Init() tea.Cmd { return nil }

// Update handles messages.
func (m MultiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(5, msg.Height-4)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			m.cursor = m.next(m.cursor, -1)
		case "down", "j":
			m.cursor = m.next(m.cursor, 1)
		case " ", "space":
			if m.cursor >= 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}
		case "a":
			all := true
			for i, o := range m.options {
				if !o.Disabled && !m.selected[i] {
					all = false
					break
				}
			}
			for i, o := range m.options {
				if !o.Disabled {
					m.selected[i] = !all
				}
			}
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the options around the cursor.
func (m MultiSelectModel) View() string {
	if m.done {
		n := len(m.Values())
		return fmt.Sprintf("%s %s %s\n", m.styles.Success.Render("✔"), m.message, m.styles.Selected.Render(fmt.Sprintf("%d selected", n)))
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Prompt.Render("?") + " " + m.styles.Bold.Render(m.message) + "\n")
	sb.WriteString(m.styles.Hint.Render("  space to select, a to toggle all, enter to submit") + "\n")

	start := 0
	if m.cursor >= m.height {
		start = m.cursor - m.height + 1
	}
	end := min(start+m.height, len(m.options))
	for i := start; i < end; i++ {
		o := m.options[i]
		if o.Disabled {
			sb.WriteString(m.styles.Disabled.Render(o.Title) + "\n")
			continue
		}
		box := "◯"
		if m.selected[i] {
			box = m.styles.Success.Render("◉")
		}
		line := fmt.Sprintf("%s %s", box, o.Title)
		if i == m.cursor {
			sb.WriteString(m.styles.Cursor.Render("❯ ") + line + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	return sb.String()
}

// Values returns the selected option values in display order.
func (m MultiSelectModel) Values() []string {
	var out []string
	for i, o := range m.options {
		if m.selected[i] && !o.Disabled {
			out = append(out, o.Value)
		}
	}
	return out
}

// Cancelled reports whether the user aborted.
func (m MultiSelectModel) Cancelled() bool { return m.cancelled }
