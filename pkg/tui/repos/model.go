package repos

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/stefanpenner/gh-explorer/pkg/githubapi"
	"github.com/stefanpenner/gh-explorer/pkg/logging"
	"github.com/stefanpenner/gh-explorer/pkg/pagination"
	"github.com/stefanpenner/gh-explorer/pkg/utils"
)

type Options struct {
	Query     string
	Qualifier string
	Page      int
	PerPage   int
}

// resultMsg carries one search response. id ties it to the request that
// produced it.
type resultMsg struct {
	id     int
	page   int
	result *githubapi.SearchResult
	err    error
}

type Model struct {
	ctx       context.Context
	searcher  githubapi.RepositorySearcher
	input     textinput.Model
	spinner   spinner.Model
	keys      KeyMap
	query     string
	qualifier string
	perPage   int
	pager     pagination.Pager
	repos     []githubapi.Repository
	cursor    int
	loading   bool
	err       error
	requestID int
	width     int
	height    int
	openURL   func(string) error
	logger    *slog.Logger
}

func NewModel(ctx context.Context, searcher githubapi.RepositorySearcher, opts Options) Model {
	if opts.PerPage < 1 {
		opts.PerPage = githubapi.DefaultPerPage
	}

	input := textinput.New()
	input.Placeholder = "Search repositories..."
	input.Prompt = "/ "
	input.CharLimit = 256
	input.SetValue(opts.Query)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return Model{
		ctx:       ctx,
		searcher:  searcher,
		input:     input,
		spinner:   sp,
		keys:      DefaultKeyMap(),
		query:     opts.Query,
		qualifier: opts.Qualifier,
		perPage:   opts.PerPage,
		pager:     pagination.New(opts.Page, 0, opts.PerPage),
		loading:   true,
		requestID: 1,
		width:     80,
		height:    24,
		openURL:   utils.OpenBrowser,
		logger:    logging.Default(),
	}
}

// Init fetches the initial page. NewModel already reserved request id 1.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd(m.requestID, m.pager.Current))
}

func (m Model) fetchCmd(id, page int) tea.Cmd {
	ctx := m.ctx
	searcher := m.searcher
	query := githubapi.BuildQuery(m.query, m.qualifier)
	perPage := m.perPage
	return func() tea.Msg {
		result, err := searcher.SearchRepositories(ctx, query, page, perPage)
		return resultMsg{id: id, page: page, result: result, err: err}
	}
}

// fetch starts a request for page, superseding any in flight.
func (m *Model) fetch(page int) tea.Cmd {
	m.requestID++
	m.loading = true
	m.err = nil
	return tea.Batch(m.spinner.Tick, m.fetchCmd(m.requestID, page))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)

	case resultMsg:
		if msg.id != m.requestID {
			m.logger.Debug("dropping stale search response", slog.Int("id", msg.id), slog.Int("current", m.requestID))
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.logger.Warn("repository search failed", logging.ErrAttr(msg.err))
			return m, nil
		}
		m.repos = msg.result.Items
		m.pager = pagination.New(msg.page, msg.result.TotalCount, m.perPage)
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width-4)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.input.Blur()
		m.query = m.input.Value()
		cmd := m.fetch(1)
		return m, cmd

	case key.Matches(msg, m.keys.Cancel):
		m.input.Blur()
		m.input.SetValue(m.query)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.repos)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Next):
		if m.pager.HasNext() {
			cmd := m.fetch(m.pager.Next().Current)
			return m, cmd
		}

	case key.Matches(msg, m.keys.Prev):
		if m.pager.HasPrev() {
			cmd := m.fetch(m.pager.Prev().Current)
			return m, cmd
		}

	case key.Matches(msg, m.keys.Reload):
		cmd := m.fetch(m.pager.Current)
		return m, cmd

	case key.Matches(msg, m.keys.Open):
		if repo, ok := m.Current(); ok && repo.HTMLURL != "" {
			if err := m.openURL(repo.HTMLURL); err != nil {
				m.err = errors.Wrapf(err, "opening %s", repo.HTMLURL)
			}
		}
	}

	return m, nil
}

// Current is the repository under the cursor.
func (m Model) Current() (githubapi.Repository, bool) {
	if m.cursor < 0 || m.cursor >= len(m.repos) {
		return githubapi.Repository{}, false
	}
	return m.repos[m.cursor], true
}

func (m Model) Pager() pagination.Pager { return m.pager }

func (m Model) Loading() bool { return m.loading }

func (m Model) Err() error { return m.err }

func (m Model) Query() string { return m.query }

func (m Model) Repositories() []githubapi.Repository { return m.repos }

// Run starts the browser on the terminal.
func Run(ctx context.Context, searcher githubapi.RepositorySearcher, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, searcher, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "tea.Program.Run failed")
	}
	return nil
}
