package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/readmegen/internal/tui/components"
	"github.com/vvka-141/readmegen/pkg/readmegen"
)

// ErrInterrupted is returned when the user presses Ctrl+C during a prompt.
var ErrInterrupted = fmt.Errorf("prompt interrupted: %w", context.Canceled)

var yesNo = []string{"Yes", "No"}

// promptModel wraps one component with the prompt-level key bindings.
type promptModel struct {
	inner       tea.Model
	keys        KeyMap
	help        string
	skipped     bool
	interrupted bool
}

func (m promptModel) Init() tea.Cmd {
	return m.inner.Init()
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Interrupt):
			m.interrupted = true
			return m, tea.Quit
		case key.Matches(k, m.keys.Skip):
			m.skipped = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inner, cmd = m.inner.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.skipped || m.interrupted {
		return m.inner.View() + "\n"
	}
	if s, ok := m.inner.(interface{ Submitted() bool }); ok && s.Submitted() {
		return m.inner.View() + "\n"
	}
	return m.inner.View() + "\n" + HelpStyle.Render(m.help) + "\n"
}

// Prompter implements readmegen.Prompter with one bubbletea program per
// question. Programs draw on stderr unless options say otherwise.
type Prompter struct {
	keys KeyMap
	opts []tea.ProgramOption
}

// NewPrompter creates a Prompter. opts are appended to the defaults, so
// tests can substitute input and output.
func NewPrompter(opts ...tea.ProgramOption) *Prompter {
	return &Prompter{keys: DefaultKeyMap(), opts: opts}
}

func (p *Prompter) run(ctx context.Context, inner tea.Model, help string) (tea.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(os.Stderr)}, p.opts...)
	final, err := tea.NewProgram(promptModel{inner: inner, keys: p.keys, help: help}, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return finish(final)
}

// finish maps the final program state to the component or a prompt error.
func finish(final tea.Model) (tea.Model, error) {
	m, ok := final.(promptModel)
	if !ok {
		return nil, errors.New("unexpected prompt model")
	}
	switch {
	case m.interrupted:
		return nil, ErrInterrupted
	case m.skipped:
		return nil, readmegen.ErrInputExhausted
	}
	if s, ok := m.inner.(interface{ Submitted() bool }); ok && !s.Submitted() {
		// the program ended without an answer, e.g. its input closed
		return nil, readmegen.ErrInputExhausted
	}
	return m.inner, nil
}

// Text asks a free-text question.
func (p *Prompter) Text(ctx context.Context, q readmegen.TextPrompt) (string, error) {
	field := components.NewTextField(q.Message).WithValue(q.Initial).WithValidator(q.Validate)

	final, err := p.run(ctx, field, p.keys.InputHelpText())
	if err != nil {
		return "", err
	}
	return final.(components.TextField).Value(), nil
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(ctx context.Context, message string, initial bool) (bool, error) {
	start := 1
	if initial {
		start = 0
	}
	idx, err := p.Select(ctx, message, yesNo, start)
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

// Select asks the user to pick one of options.
func (p *Prompter) Select(ctx context.Context, message string, options []string, initial int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("select requires at least one option")
	}
	selector := components.NewSelector(message, options).WithInitial(initial)

	final, err := p.run(ctx, selector, p.keys.ChoiceHelpText())
	if err != nil {
		return 0, err
	}
	return final.(components.Selector).Selected(), nil
}

// Verify Prompter implements the Prompter interface at compile time
var _ readmegen.Prompter = (*Prompter)(nil)
