package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
	queryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065"))
)

// Progress shows a spinner on a side channel (usually stderr) while a
// non-interactive command waits on the network.
type Progress struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

type setQueryMsg struct {
	query string
	page  int
}

type finishMsg struct{}

type progressModel struct {
	query   string
	page    int
	done    bool
	spinner spinner.Model
}

func NewProgress(output io.Writer, opts ...tea.ProgramOption) *Progress {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	opts = append([]tea.ProgramOption{tea.WithOutput(output), tea.WithInput(nil)}, opts...)
	return &Progress{
		program: tea.NewProgram(progressModel{spinner: s}, opts...),
		done:    make(chan struct{}),
	}
}

func (p *Progress) Start() {
	go func() {
		defer close(p.done)
		_, _ = p.program.Run()
	}()
}

func (p *Progress) Wait() {
	<-p.done
}

func (p *Progress) SetQuery(query string, page int) {
	p.program.Send(setQueryMsg{query: query, page: page})
}

func (p *Progress) Finish() {
	p.program.Send(finishMsg{})
	p.once.Do(func() {
		p.program.Quit()
	})
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case setQueryMsg:
		m.query = typed.query
		m.page = typed.page
		return m, nil
	case finishMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}

	header := headerStyle.Render("GitHub Repository Explorer")
	line := ""
	if m.query != "" {
		line = fmt.Sprintf("\n%s %s%s", m.spinner.View(), queryStyle.Render(m.query), infoStyle.Render(fmt.Sprintf(" (page %d)", m.page)))
	}
	return "\n" + header + line + "\n"
}
