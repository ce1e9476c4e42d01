package issuetable

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/stefanpenner/gh-explorer/pkg/issues"
	"github.com/stefanpenner/gh-explorer/pkg/selection"
)

// Model is the interactive issue table. Selection lives in the store; the
// model only owns the hover cursor and the viewport.
type Model struct {
	issues []issues.Issue
	store  *selection.Store
	cursor int
	width  int
	height int
	keys   KeyMap
}

// NewModel builds the table over list. opts are applied to the store after
// the mode, so an observer sees every toggle the table makes.
func NewModel(list []issues.Issue, mode selection.Mode, opts ...selection.Option) Model {
	opts = append([]selection.Option{selection.WithMode(mode)}, opts...)
	return Model{
		issues: list,
		store:  selection.NewStore(issues.ToItems(list), opts...),
		keys:   DefaultKeyMap(),
		width:  100,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.issues)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if len(m.issues) > 0 && m.store.IsEligible(m.cursor) {
				m.store.ToggleRow(m.cursor)
			}

		case key.Matches(msg, m.keys.ToggleAll):
			m.store.ToggleAll(!m.store.Aggregate().Checkbox().Checked())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m Model) Cursor() int { return m.cursor }

func (m Model) Store() *selection.Store { return m.store }

// Selected returns the selected issues in table order.
func (m Model) Selected() []issues.Issue {
	var out []issues.Issue
	for i, issue := range m.issues {
		if m.store.IsSelected(i) {
			out = append(out, issue)
		}
	}
	return out
}

// Run shows the table and returns the issues selected when the user quit.
func Run(list []issues.Issue, mode selection.Mode, selectAll bool, opts ...tea.ProgramOption) ([]issues.Issue, error) {
	m := NewModel(list, mode)
	if selectAll {
		m.store.ToggleAll(true)
	}
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	final, err := p.Run()
	if err != nil {
		return nil, errors.Wrap(err, "tea.Program.Run failed")
	}
	return final.(Model).Selected(), nil
}
