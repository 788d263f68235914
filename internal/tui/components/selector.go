package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Selector asks the user to pick one of a few labelled choices, such as
// the Yes/No questions for the logo and preview sections. Choices are laid
// out on one line; arrows move the cursor, a digit picks directly.
type Selector struct {
	question  string
	choices   []string
	cursor    int
	picked    int
	showHelp  bool
	keys      selectorKeys
	styles    selectorStyles
	submitted bool
}

type selectorKeys struct {
	Prev   key.Binding
	Next   key.Binding
	Submit key.Binding
}

type selectorStyles struct {
	Question lipgloss.Style
	Current  lipgloss.Style
	Other    lipgloss.Style
	Help     lipgloss.Style
	Answer   lipgloss.Style
}

func newSelectorStyles() selectorStyles {
	return selectorStyles{
		Question: lipgloss.NewStyle().Bold(true),
		Current:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).Underline(true),
		Other:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Answer:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func newSelectorKeys() selectorKeys {
	return selectorKeys{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "up", "k", "shift+tab"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "down", "j", "tab"),
			key.WithHelp("→/l", "next"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

// NewSelector creates a selector over choices with the cursor on the first.
func NewSelector(question string, choices []string) Selector {
	return Selector{
		question: question,
		choices:  choices,
		picked:   -1,
		keys:     newSelectorKeys(),
		styles:   newSelectorStyles(),
	}
}

// WithInitial places the cursor on choice i. Out-of-range values are ignored.
func (s Selector) WithInitial(i int) Selector {
	if i >= 0 && i < len(s.choices) {
		s.cursor = i
	}
	return s
}

// WithShowHelp toggles the key help line.
func (s Selector) WithShowHelp(show bool) Selector {
	s.showHelp = show
	return s
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Prev):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, s.keys.Next):
		if s.cursor < len(s.choices)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, s.keys.Submit):
		return s.pick(s.cursor)
	default:
		if n, err := strconv.Atoi(keyMsg.String()); err == nil && n >= 1 && n <= len(s.choices) {
			return s.pick(n - 1)
		}
	}
	return s, nil
}

func (s Selector) pick(i int) (tea.Model, tea.Cmd) {
	s.cursor = i
	s.picked = i
	s.submitted = true
	return s, tea.Quit
}

// View implements tea.Model.
func (s Selector) View() string {
	var b strings.Builder
	b.WriteString(s.styles.Question.Render("? " + s.question))

	if s.submitted {
		b.WriteString(" ")
		b.WriteString(s.styles.Answer.Render(s.Choice()))
		return b.String()
	}

	b.WriteString("  ")
	for i, c := range s.choices {
		if i > 0 {
			b.WriteString(" / ")
		}
		if i == s.cursor {
			b.WriteString(s.styles.Current.Render(c))
		} else {
			b.WriteString(s.styles.Other.Render(c))
		}
	}

	if s.showHelp {
		b.WriteString("\n")
		b.WriteString(s.styles.Help.Render(fmt.Sprintf("←/→ move • 1-%d pick • enter confirm", len(s.choices))))
	}
	return b.String()
}

// Selected returns the picked index, or -1 before submission.
func (s Selector) Selected() int {
	return s.picked
}

// Choice returns the picked label, or "" before submission.
func (s Selector) Choice() string {
	if s.picked >= 0 && s.picked < len(s.choices) {
		return s.choices[s.picked]
	}
	return ""
}

// Submitted reports whether a choice was made.
func (s Selector) Submitted() bool {
	return s.submitted
}
