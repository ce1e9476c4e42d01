package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
)

func TestProgressModel(t *testing.T) {
	m := progressModel{spinner: spinner.New()}

	next, _ := m.Update(setQueryMsg{query: "cli stars:>5000", page: 2})
	m = next.(progressModel)
	assert.Contains(t, m.View(), "cli stars:>5000")
	assert.Contains(t, m.View(), "(page 2)")

	next, cmd := m.Update(finishMsg{})
	m = next.(progressModel)
	assert.Empty(t, m.View())
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
