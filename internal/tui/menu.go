// Package tui implements lintkit's interactive menus: a bubbletea picker for
// terminals and a plain numbered prompt for everything else.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/wexinc/lintkit/internal/tui/components"
)

var (
	// ErrInvalidChoice is returned when the answer is not a listed number.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrCancelled is returned when the user leaves the picker without choosing.
	ErrCancelled = errors.New("selection cancelled")
)

// Chooser asks the user to pick one of options and returns its index.
type Chooser interface {
	Choose(title string, options []string) (int, error)
}

// InvalidChoiceMessage is printed after ErrInvalidChoice for a menu of n options.
func InvalidChoiceMessage(n int) string {
	return fmt.Sprintf("Invalid choice. Please select a number between 1 and %d.", n)
}

// LineMenu prints numbered options and reads one answer line.
type LineMenu struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineMenu creates a LineMenu. Keep one per input stream: the reader
// buffers ahead, so answers for later questions must come from the same menu.
func NewLineMenu(in io.Reader, out io.Writer) *LineMenu {
	return &LineMenu{in: bufio.NewReader(in), out: out}
}

// Choose prints the menu and parses the answer as a 1-based option number.
func (m *LineMenu) Choose(_ string, options []string) (int, error) {
	fmt.Fprintln(m.out, "Please select one of the following options:")
	for i, option := range options {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, option)
	}
	fmt.Fprint(m.out, "Enter the number of your choice: ")

	line, err := m.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return -1, fmt.Errorf("failed to read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the next output off the prompt line.
		fmt.Fprintln(m.out)
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || n < 1 || n > len(options) {
		return -1, ErrInvalidChoice
	}
	return n - 1, nil
}

// PickerMenu asks each question with an inline bubbletea picker.
type PickerMenu struct {
	in   io.Reader
	out  io.Writer
	opts []tea.ProgramOption
}

// NewPickerMenu creates a PickerMenu reading keys from in and drawing to out.
func NewPickerMenu(in io.Reader, out io.Writer, opts ...tea.ProgramOption) *PickerMenu {
	return &PickerMenu{in: in, out: out, opts: opts}
}

// Choose runs the picker until the user selects or cancels.
func (m *PickerMenu) Choose(title string, options []string) (int, error) {
	model := newPickerModel(title, options)

	opts := append([]tea.ProgramOption{tea.WithInput(m.in), tea.WithOutput(m.out)}, m.opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return -1, fmt.Errorf("menu failed: %w", err)
	}

	result := final.(pickerModel)
	if result.cancelled || result.choice < 0 {
		return -1, ErrCancelled
	}
	return result.choice, nil
}

// pickerModel adapts OptionPicker to a standalone tea.Model.
type pickerModel struct {
	picker    *components.OptionPicker
	choice    int
	cancelled bool
}

func newPickerModel(title string, options []string) pickerModel {
	return pickerModel{
		picker: components.NewOptionPicker(title, options),
		choice: -1,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.OptionSelectedMsg:
		m.choice = msg.Index
		return m, tea.Quit
	case components.PickerCancelledMsg:
		m.cancelled = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		if msg.Width > 4 && msg.Width < 60 {
			m.picker.SetWidth(msg.Width - 2)
		}
		return m, nil
	}
	return m, m.picker.Update(msg)
}

func (m pickerModel) View() string {
	if m.picker.Done() {
		return ""
	}
	return m.picker.View()
}

// IsInteractive reports whether both streams are terminals.
func IsInteractive(in, out any) bool {
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewChooser returns a PickerMenu when in and out are terminals and plain is
// false, otherwise a LineMenu.
func NewChooser(in io.Reader, out io.Writer, plain bool) Chooser {
	if !plain && IsInteractive(in, out) {
		return NewPickerMenu(in, out)
	}
	return NewLineMenu(in, out)
}
