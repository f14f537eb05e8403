// Package journal provides the journal browser view for the TUI.
package journal

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/styles"
)

// Loader fetches a journal's entries. The app wires one in so the view
// stays free of service dependencies.
type Loader func(kind messages.JournalKind) tea.Msg

// View represents the journal browser: a list of committed entries
// with a JSON detail pane behind enter.
type View struct {
	styles *styles.Styles
	loader Loader

	kind     messages.JournalKind
	entries  []messages.Entry
	selected int
	err      error

	detail     viewport.Model
	showDetail bool

	width  int
	height int
	ready  bool
}

// NewView creates a new journal view.
func NewView(s *styles.Styles, loader Loader) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		loader: loader,
		detail: viewport.New(78, 20),
		width:  80,
		height: 24,
	}
}

// SetDimensions updates the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.detail.Width = width - 2
	v.detail.Height = height - 6
	v.ready = true
}

// Load starts loading the given journal kind.
func (v *View) Load(kind messages.JournalKind) tea.Cmd {
	v.kind = kind
	v.entries = nil
	v.selected = 0
	v.err = nil
	v.showDetail = false
	return func() tea.Msg {
		return v.loader(kind)
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.EntriesLoaded:
		if msg.Kind != v.kind {
			return v, nil
		}
		v.entries = msg.Entries
		v.err = msg.Err
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		if v.showDetail {
			return v.updateDetail(msg)
		}
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil
		case "down", "j":
			if v.selected < len(v.entries)-1 {
				v.selected++
			}
			return v, nil
		case "enter":
			if v.selected < len(v.entries) {
				v.detail.SetContent(v.entries[v.selected].Detail)
				v.detail.GotoTop()
				v.showDetail = true
			}
			return v, nil
		case "r":
			return v, v.Load(v.kind)
		}
	}
	return v, nil
}

func (v *View) updateDetail(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" || msg.String() == "q" {
		v.showDetail = false
		return v, nil
	}
	var cmd tea.Cmd
	v.detail, cmd = v.detail.Update(msg)
	return v, cmd
}

// View renders the journal browser.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Journal: " + string(v.kind)))
	b.WriteString("\n\n")

	if v.showDetail {
		b.WriteString(v.styles.Border.Render(v.detail.View()))
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("up/down scroll - esc back"))
		return b.String()
	}

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case len(v.entries) == 0:
		b.WriteString(v.styles.Muted.Render("No entries committed yet."))
		b.WriteString("\n")
	default:
		for i, e := range v.entries {
			line := v.styles.Normal.Render("  " + e.Summary)
			if i == v.selected {
				line = v.styles.Selected.Render("> " + e.Summary)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("enter detail - r reload - esc back"))
	return b.String()
}
