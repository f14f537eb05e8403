package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()

	view := NewView(s)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.items, 7)
	assert.Equal(t, 0, view.selected)
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	// Should create default styles
	assert.NotNil(t, view.styles)
}

func TestView_Init(t *testing.T) {
	view := NewView(nil)

	cmd := view.Init()

	assert.Nil(t, cmd)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	msg := tea.WindowSizeMsg{Width: 100, Height: 50}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_KeyMsg_NavigateDown(t *testing.T) {
	view := NewView(nil)
	view.selected = 0

	// Test down key
	msg := tea.KeyMsg{Type: tea.KeyDown}
	view.Update(msg)
	assert.Equal(t, 1, view.selected)

	// Test j key
	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(msg)
	assert.Equal(t, 2, view.selected)

	// Navigate to the last item
	for i := 0; i < len(view.items); i++ {
		view.Update(msg)
	}

	// Test boundary - can't go past last item
	assert.Equal(t, len(view.items)-1, view.selected)
}

func TestView_Update_KeyMsg_NavigateUp(t *testing.T) {
	view := NewView(nil)
	view.selected = 2

	// Test up key
	msg := tea.KeyMsg{Type: tea.KeyUp}
	view.Update(msg)
	assert.Equal(t, 1, view.selected)

	// Test k key
	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(msg)
	assert.Equal(t, 0, view.selected)

	// Test boundary - can't go before first item
	view.Update(msg)
	assert.Equal(t, 0, view.selected)
}

func TestView_Update_KeyMsg_Enter_Catalog(t *testing.T) {
	view := NewView(nil)
	view.selected = 0 // Catalog

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := view.Update(msg)

	require.NotNil(t, cmd)
	result := cmd()
	changed, ok := result.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewCatalog, changed.View)
}

func TestView_Update_KeyMsg_Enter_Journal(t *testing.T) {
	view := NewView(nil)
	view.selected = 1 // Orders

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := view.Update(msg)

	require.NotNil(t, cmd)
	result := cmd()
	selected, ok := result.(messages.JournalSelected)
	require.True(t, ok)
	assert.Equal(t, messages.JournalOrders, selected.Kind)
}

func TestView_Update_KeyMsg_Enter_Quit(t *testing.T) {
	view := NewView(nil)
	view.selected = len(view.items) - 1 // Quit

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := view.Update(msg)

	// Should return tea.Quit
	require.NotNil(t, cmd)
}

func TestView_Update_KeyMsg_Q(t *testing.T) {
	view := NewView(nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	_, cmd := view.Update(msg)

	// Should return tea.Quit
	require.NotNil(t, cmd)
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil)
	view.ready = false

	output := view.View()

	assert.Contains(t, output, "Initialising")
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil)
	view.width = 80
	view.height = 24
	view.ready = true

	output := view.View()

	assert.Contains(t, output, "tally")
	assert.Contains(t, output, "Catalog")
	assert.Contains(t, output, "Orders")
	assert.Contains(t, output, "Fraud cases")
	assert.Contains(t, output, "Check-ins")
	assert.Contains(t, output, "Quit")
	assert.Contains(t, output, ">") // Selection indicator
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil)
	view.ready = false

	view.SetDimensions(120, 60)

	assert.Equal(t, 120, view.width)
	assert.Equal(t, 60, view.height)
	assert.True(t, view.ready)
}

func TestMenuItem_Properties(t *testing.T) {
	view := NewView(nil)

	// Catalog item
	assert.Equal(t, "Catalog", view.items[0].Label)
	assert.Equal(t, messages.ViewCatalog, view.items[0].View)
	assert.False(t, view.items[0].Quit)

	// Journal items carry their kind
	assert.Equal(t, "Orders", view.items[1].Label)
	assert.Equal(t, messages.ViewJournal, view.items[1].View)
	assert.Equal(t, messages.JournalOrders, view.items[1].Journal)

	assert.Equal(t, "Leads", view.items[2].Label)
	assert.Equal(t, messages.JournalLeads, view.items[2].Journal)

	assert.Equal(t, "Fraud cases", view.items[3].Label)
	assert.Equal(t, messages.JournalCases, view.items[3].Journal)

	assert.Equal(t, "Game sessions", view.items[4].Label)
	assert.Equal(t, messages.JournalGames, view.items[4].Journal)

	assert.Equal(t, "Check-ins", view.items[5].Label)
	assert.Equal(t, messages.JournalCheckIns, view.items[5].Journal)

	// Quit item
	assert.Equal(t, "Quit", view.items[6].Label)
	assert.True(t, view.items[6].Quit)
}
