package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextField is a single free-text question. Enter submits the value once
// the validator accepts it.
type TextField struct {
	label     string
	input     textinput.Model
	validator func(string) error
	err       error
	submit    key.Binding
	styles    textFieldStyles
	submitted bool
}

type textFieldStyles struct {
	Label  lipgloss.Style
	Input  lipgloss.Style
	Answer lipgloss.Style
	Error  lipgloss.Style
}

func defaultTextFieldStyles() textFieldStyles {
	return textFieldStyles{
		Label:  lipgloss.NewStyle().Bold(true),
		Input:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Answer: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// NewTextField creates a focused text field.
func NewTextField(label string) TextField {
	ti := textinput.New()
	ti.CharLimit = 0
	ti.Width = 60
	ti.Prompt = "> "
	ti.Focus()

	return TextField{
		label: label,
		input: ti,
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		styles: defaultTextFieldStyles(),
	}
}

// WithValue sets the initial value.
func (t TextField) WithValue(value string) TextField {
	t.input.SetValue(value)
	return t
}

// WithPlaceholder sets the text shown while the field is empty.
func (t TextField) WithPlaceholder(placeholder string) TextField {
	t.input.Placeholder = placeholder
	return t
}

// WithValidator sets a validation function.
func (t TextField) WithValidator(fn func(string) error) TextField {
	t.validator = fn
	return t
}

// WithWidth sets the width of the input.
func (t TextField) WithWidth(width int) TextField {
	t.input.Width = width
	return t
}

// Init implements tea.Model.
func (t TextField) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (t TextField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, t.submit) {
		if err := t.Validate(); err != nil {
			return t, nil
		}
		t.submitted = true
		t.input.Blur()
		return t, tea.Quit
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	// a new keystroke clears the previous rejection
	if _, ok := msg.(tea.KeyMsg); ok {
		t.err = nil
	}
	return t, cmd
}

// View implements tea.Model.
func (t TextField) View() string {
	var b strings.Builder

	b.WriteString(t.styles.Label.Render("? " + t.label))
	if t.submitted {
		b.WriteString(" ")
		b.WriteString(t.styles.Answer.Render(t.Value()))
		return b.String()
	}
	b.WriteString("\n")
	b.WriteString(t.styles.Input.Render(t.input.View()))

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(t.styles.Error.Render("✗ " + t.err.Error()))
	}

	return b.String()
}

// Value returns the current value, trimmed.
func (t TextField) Value() string {
	return strings.TrimSpace(t.input.Value())
}

// Error returns the current validation error.
func (t TextField) Error() error {
	return t.err
}

// Submitted returns true once the value has been accepted.
func (t TextField) Submitted() bool {
	return t.submitted
}

// Validate runs validation and returns any error.
func (t *TextField) Validate() error {
	t.err = nil
	if t.validator != nil {
		t.err = t.validator(t.Value())
	}
	return t.err
}
