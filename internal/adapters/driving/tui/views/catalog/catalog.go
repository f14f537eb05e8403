// Package catalog provides the catalog search view for the TUI.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/styles"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
)

// View represents the catalog search view.
type View struct {
	styles  *styles.Styles
	input   textinput.Model
	catalog driving.CatalogService
	ctx     context.Context

	results  []messages.Entry
	selected int
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new catalog view.
func NewView(s *styles.Styles, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "search the catalog..."
	ti.CharLimit = 120
	ti.Width = 50

	return &View{
		styles:  s,
		input:   ti,
		catalog: catalog,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetDimensions updates the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset clears the view state for a fresh visit.
func (v *View) Reset() {
	v.input.SetValue("")
	v.results = nil
	v.selected = 0
	v.err = nil
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Focus()
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case tea.KeyEnter:
			query := strings.TrimSpace(v.input.Value())
			if query == "" {
				return v, nil
			}
			return v, v.searchCmd(query)
		case tea.KeyUp:
			if v.selected > 0 {
				v.selected--
			}
			return v, nil
		case tea.KeyDown:
			if v.selected < len(v.results)-1 {
				v.selected++
			}
			return v, nil
		}

	case messages.SearchCompleted:
		v.results = msg.Results
		v.err = msg.Err
		v.selected = 0
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// searchCmd performs the catalog search as a Bubbletea command.
func (v *View) searchCmd(query string) tea.Cmd {
	return func() tea.Msg {
		items, err := v.catalog.Search(v.ctx, query)
		if err != nil {
			return messages.SearchCompleted{Err: err}
		}
		results := make([]messages.Entry, len(items))
		for i := range items {
			results[i] = messages.Entry{
				Summary: fmt.Sprintf("%-14s %-24s %8s  %s",
					items[i].ID, items[i].Name, items[i].Price.StringFixed(2), items[i].Category),
			}
		}
		return messages.SearchCompleted{Results: results}
	}
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Catalog"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case len(v.results) == 0:
		b.WriteString(v.styles.Muted.Render("No results. Type a query and press enter."))
		b.WriteString("\n")
	default:
		for i, r := range v.results {
			line := v.styles.Normal.Render("  " + r.Summary)
			if i == v.selected {
				line = v.styles.Selected.Render("> " + r.Summary)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("enter search - esc back"))
	return b.String()
}
