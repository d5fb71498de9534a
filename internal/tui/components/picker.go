// Package components provides reusable TUI components for lintkit.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/lintkit/internal/tui/styles"
)

// PickerKeyMap defines the key bindings of an OptionPicker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

// DefaultPickerKeyMap returns the standard bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// OptionPicker is a single-choice list. Digits 1-9 jump to an option.
type OptionPicker struct {
	title    string
	options  []string
	selected int
	done     bool
	width    int
	keys     PickerKeyMap
	help     help.Model
}

// NewOptionPicker creates a picker over options with the first one highlighted.
func NewOptionPicker(title string, options []string) *OptionPicker {
	return &OptionPicker{
		title:   title,
		options: options,
		width:   50,
		keys:    DefaultPickerKeyMap(),
		help:    help.New(),
	}
}

// SetWidth sets the rendered width.
func (p *OptionPicker) SetWidth(width int) {
	p.width = width
}

// Selected returns the highlighted index.
func (p *OptionPicker) Selected() int {
	return p.selected
}

// Done reports whether the picker has emitted a selection or cancellation.
func (p *OptionPicker) Done() bool {
	return p.done
}

// MoveUp moves the selection up.
func (p *OptionPicker) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves the selection down.
func (p *OptionPicker) MoveDown() {
	if p.selected < len(p.options)-1 {
		p.selected++
	}
}

// Update handles input messages.
func (p *OptionPicker) Update(msg tea.Msg) tea.Cmd {
	if p.done {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Up):
		p.MoveUp()
	case key.Matches(keyMsg, p.keys.Down):
		p.MoveDown()
	case key.Matches(keyMsg, p.keys.Select):
		if len(p.options) == 0 {
			return nil
		}
		return p.finish(OptionSelectedMsg{Index: p.selected, Option: p.options[p.selected]})
	case key.Matches(keyMsg, p.keys.Cancel):
		return p.finish(PickerCancelledMsg{})
	default:
		if n, err := strconv.Atoi(keyMsg.String()); err == nil && n >= 1 && n <= len(p.options) {
			p.selected = n - 1
		}
	}
	return nil
}

func (p *OptionPicker) finish(msg tea.Msg) tea.Cmd {
	p.done = true
	return func() tea.Msg { return msg }
}

// View renders the picker.
func (p *OptionPicker) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(p.title))
	b.WriteString("\n\n")

	if len(p.options) == 0 {
		b.WriteString(styles.MutedTextStyle.Italic(true).Render("  No options available"))
		b.WriteString("\n")
	}
	for i, option := range p.options {
		b.WriteString(p.renderOption(i, option))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.help.View(p.keys))

	return styles.FocusedBoxStyle.Width(p.width - 2).Render(b.String())
}

func (p *OptionPicker) renderOption(i int, option string) string {
	indicator := "  "
	nameStyle := lipgloss.NewStyle().Foreground(styles.Foreground)
	if i == p.selected {
		indicator = lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Bold(true).
			Render("▶ ")
		nameStyle = nameStyle.Bold(true)
	}
	number := styles.MutedTextStyle.Render(strconv.Itoa(i+1) + ". ")
	return indicator + number + nameStyle.Render(option)
}

// OptionSelectedMsg is sent when an option is chosen.
type OptionSelectedMsg struct {
	Index  int
	Option string
}

// PickerCancelledMsg is sent when the picker is closed without a choice.
type PickerCancelledMsg struct{}
