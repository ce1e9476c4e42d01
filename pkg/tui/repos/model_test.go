package repos

import (
	"context"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/stefanpenner/gh-explorer/pkg/githubapi"
	"github.com/stefanpenner/gh-explorer/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) SearchRepositories(ctx context.Context, query string, page, perPage int) (*githubapi.SearchResult, error) {
	args := m.Called(ctx, query, page, perPage)
	result, _ := args.Get(0).(*githubapi.SearchResult)
	return result, args.Error(1)
}

func page(total int, names ...string) *githubapi.SearchResult {
	result := &githubapi.SearchResult{TotalCount: total}
	for i, name := range names {
		result.Items = append(result.Items, githubapi.Repository{
			ID:              int64(i + 1),
			Name:            name,
			FullName:        "owner/" + name,
			Owner:           githubapi.Owner{Login: "owner"},
			HTMLURL:         "https://github.com/owner/" + name,
			StargazersCount: 10000 + i,
		})
	}
	return result
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

// runFetch executes the fetch command directly, skipping the spinner tick
// that tea.Batch bundles with it.
func runFetch(m Model, page int) tea.Msg {
	return m.fetchCmd(m.requestID, page)()
}

func TestInitialFetch(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("SearchRepositories", mock.Anything, "stars:>5000", 1, 30).Return(page(90, "a", "b"), nil).Once()

	m := NewModel(context.Background(), searcher, Options{Qualifier: githubapi.DefaultQualifier})
	assert.True(t, m.Loading())
	require.NotNil(t, m.Init())

	m, _ = update(t, m, runFetch(m, 1))
	assert.False(t, m.Loading())
	assert.NoError(t, m.Err())
	assert.Len(t, m.Repositories(), 2)
	assert.Equal(t, 3, m.Pager().TotalPages())
	assert.Contains(t, utils.StripANSI(m.View()), "Found 90 repositories")
	searcher.AssertExpectations(t)
}

func TestSearchSubmitResetsToFirstPage(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("SearchRepositories", mock.Anything, "react stars:>5000", 1, 30).Return(page(1, "react"), nil).Once()

	m := NewModel(context.Background(), searcher, Options{Qualifier: githubapi.DefaultQualifier, Page: 3})
	m.loading = false

	m, _ = update(t, m, keyRune('/'))
	require.True(t, m.input.Focused())

	m.input.SetValue("react")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, m.input.Focused())
	assert.Equal(t, "react", m.Query())
	assert.True(t, m.Loading())

	m, _ = update(t, m, runFetch(m, 1))
	assert.Equal(t, 1, m.Pager().Current)
	repo, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "react", repo.Name)
	searcher.AssertExpectations(t)
}

func TestTypingQDoesNotQuitWhileSearching(t *testing.T) {
	m := NewModel(context.Background(), &mockSearcher{}, Options{})
	m, _ = update(t, m, keyRune('/'))

	m, _ = update(t, m, keyRune('q'))
	assert.Equal(t, "q", m.input.Value())
	assert.True(t, m.input.Focused())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.input.Focused())
	assert.Empty(t, m.input.Value())
}

func TestStaleResponsesAreDropped(t *testing.T) {
	m := NewModel(context.Background(), &mockSearcher{}, Options{})

	m, _ = update(t, m, resultMsg{id: 1, page: 1, result: page(100, "first")})
	require.Len(t, m.Repositories(), 1)

	// Two page changes in quick succession: only the last response counts.
	m, _ = update(t, m, keyRune('n'))
	m, _ = update(t, m, keyRune('r'))
	assert.Equal(t, 3, m.requestID)

	m, _ = update(t, m, resultMsg{id: 2, page: 2, result: page(100, "stale")})
	assert.True(t, m.Loading())
	assert.Equal(t, "first", m.Repositories()[0].Name)

	m, _ = update(t, m, resultMsg{id: 3, page: 1, result: page(100, "fresh")})
	assert.False(t, m.Loading())
	assert.Equal(t, "fresh", m.Repositories()[0].Name)
}

func TestPagingBounds(t *testing.T) {
	m := NewModel(context.Background(), &mockSearcher{}, Options{})
	m, _ = update(t, m, resultMsg{id: 1, page: 1, result: page(30, "only")})

	// single page: neither direction fetches
	m, cmd := update(t, m, keyRune('n'))
	assert.Nil(t, cmd)
	m, cmd = update(t, m, keyRune('p'))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.requestID)

	m, _ = update(t, m, resultMsg{id: 1, page: 1, result: page(61, "x")})
	m, cmd = update(t, m, keyRune('n'))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.requestID)
}

func TestFetchErrorIsShownWithHints(t *testing.T) {
	searcher := &mockSearcher{}
	apiErr := errors.WithHint(&githubapi.StatusError{StatusCode: http.StatusUnprocessableEntity, Message: "Validation Failed"}, "The search query is invalid.")
	searcher.On("SearchRepositories", mock.Anything, "stars:>5000", 1, 30).Return(nil, apiErr).Once()

	m := NewModel(context.Background(), searcher, Options{Qualifier: githubapi.DefaultQualifier})
	m, _ = update(t, m, runFetch(m, 1))

	require.Error(t, m.Err())
	assert.Equal(t, http.StatusUnprocessableEntity, githubapi.StatusCode(m.Err()))
	view := utils.StripANSI(m.View())
	assert.Contains(t, view, "GitHub API error: 422 - Validation Failed")
	assert.Contains(t, view, "The search query is invalid.")
}

func TestCursorAndOpen(t *testing.T) {
	m := NewModel(context.Background(), &mockSearcher{}, Options{})
	var opened []string
	m.openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	m, _ = update(t, m, resultMsg{id: 1, page: 1, result: page(3, "a", "b", "c")})

	m, _ = update(t, m, keyRune('j'))
	m, _ = update(t, m, keyRune('j'))
	m, _ = update(t, m, keyRune('j'))
	repo, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "c", repo.Name)

	m, _ = update(t, m, keyRune('o'))
	assert.Equal(t, []string{"https://github.com/owner/c"}, opened)

	m, _ = update(t, m, keyRune('k'))
	repo, _ = m.Current()
	assert.Equal(t, "b", repo.Name)
}

func TestOpenFailureSetsError(t *testing.T) {
	m := NewModel(context.Background(), &mockSearcher{}, Options{})
	m.openURL = func(string) error { return errors.New("no browser") }
	m, _ = update(t, m, resultMsg{id: 1, page: 1, result: page(1, "a")})

	m, _ = update(t, m, keyRune('o'))
	require.Error(t, m.Err())
	assert.Contains(t, m.Err().Error(), "no browser")
}

func TestQuit(t *testing.T) {
	m := NewModel(context.Background(), &mockSearcher{}, Options{})
	m.loading = false
	_, cmd := update(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEmptyResults(t *testing.T) {
	m := NewModel(context.Background(), &mockSearcher{}, Options{})
	m, _ = update(t, m, resultMsg{id: 1, page: 1, result: page(0)})

	_, ok := m.Current()
	assert.False(t, ok)
	view := utils.StripANSI(m.View())
	assert.Contains(t, view, "No repositories matched.")
	assert.Contains(t, view, "Page 1 of 0")
}

func TestVisibleRangeFollowsCursor(t *testing.T) {
	m := NewModel(context.Background(), &mockSearcher{}, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 22})
	m, _ = update(t, m, resultMsg{id: 1, page: 1, result: page(5, "a", "b", "c", "d", "e")})

	start, end := m.visibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	for range 4 {
		m, _ = update(t, m, keyRune('j'))
	}
	start, end = m.visibleRange()
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, end)
}

// resultFrom runs a batched fetch command and returns its search response.
func resultFrom(t *testing.T, cmd tea.Cmd) resultMsg {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(resultMsg); ok {
			return msg
		}
	}
	t.Fatal("no search response in batch")
	return resultMsg{}
}

func TestPagingRequestsAdjacentPages(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("SearchRepositories", mock.Anything, "stars:>5000", 3, 30).Return(page(90, "c"), nil).Once()
	searcher.On("SearchRepositories", mock.Anything, "stars:>5000", 2, 30).Return(page(90, "b"), nil).Once()

	m := NewModel(context.Background(), searcher, Options{Qualifier: githubapi.DefaultQualifier})
	m, _ = update(t, m, resultMsg{id: 1, page: 2, result: page(90, "a")})
	require.Equal(t, 2, m.Pager().Current)

	m, cmd := update(t, m, keyRune('n'))
	m, _ = update(t, m, resultFrom(t, cmd))
	assert.Equal(t, 3, m.Pager().Current)
	assert.False(t, m.Pager().HasNext())

	m, cmd = update(t, m, keyRune('p'))
	m, _ = update(t, m, resultFrom(t, cmd))
	assert.Equal(t, 2, m.Pager().Current)
	searcher.AssertExpectations(t)
}
