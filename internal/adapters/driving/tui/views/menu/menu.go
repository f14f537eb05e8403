// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label   string
	View    messages.ViewType
	Journal messages.JournalKind // Set for journal entries
	Quit    bool                 // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Catalog", View: messages.ViewCatalog},
			{Label: "Orders", View: messages.ViewJournal, Journal: messages.JournalOrders},
			{Label: "Leads", View: messages.ViewJournal, Journal: messages.JournalLeads},
			{Label: "Fraud cases", View: messages.ViewJournal, Journal: messages.JournalCases},
			{Label: "Game sessions", View: messages.ViewJournal, Journal: messages.JournalGames},
			{Label: "Check-ins", View: messages.ViewJournal, Journal: messages.JournalCheckIns},
			{Label: "Quit", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// SetDimensions updates the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				if item.View == messages.ViewJournal {
					return messages.JournalSelected{Kind: item.Journal}
				}
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("tally"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("session ledger and journals"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		label := v.styles.Normal.Render(item.Label)
		if i == v.selected {
			cursor = v.styles.Selected.Render("> ")
			label = v.styles.Selected.Render(item.Label)
		}
		b.WriteString(cursor + label + "\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("up/down navigate - enter select - q quit"))
	return b.String()
}
