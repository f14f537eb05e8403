package tui

import (
	"context"
	"encoding/json"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/messages"
	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/styles"
	catalogview "github.com/quill-labs/tally-cli/internal/adapters/driving/tui/views/catalog"
	journalview "github.com/quill-labs/tally-cli/internal/adapters/driving/tui/views/journal"
	"github.com/quill-labs/tally-cli/internal/adapters/driving/tui/views/menu"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// catalogView is the catalog search view.
	catalogView *catalogview.View

	// journalView is the journal browser view.
	journalView *journalview.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	app := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		catalogView: catalogview.NewView(s, ports.Catalog),
		currentView: messages.ViewMenu,
	}
	app.journalView = journalview.NewView(s, app.loadJournal)
	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.catalogView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("tally - Session Ledger"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.catalogView.SetDimensions(msg.Width, msg.Height)
		a.journalView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd
		case messages.ViewCatalog:
			a.catalogView, cmd = a.catalogView.Update(msg)
			return a, cmd
		case messages.ViewJournal:
			a.journalView, cmd = a.journalView.Update(msg)
			return a, cmd
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewCatalog {
			a.catalogView.Reset()
			return a, a.catalogView.Init()
		}
		return a, nil

	case messages.JournalSelected:
		a.currentView = messages.ViewJournal
		return a, a.journalView.Load(msg.Kind)

	case messages.EntriesLoaded:
		a.journalView, cmd = a.journalView.Update(msg)
		return a, cmd

	case messages.SearchCompleted:
		a.catalogView, cmd = a.catalogView.Update(msg)
		return a, cmd
	}

	// Forward everything else to the active view.
	switch a.currentView {
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
	case messages.ViewJournal:
		a.journalView, cmd = a.journalView.Update(msg)
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCatalog:
		return a.catalogView.View()
	case messages.ViewJournal:
		return a.journalView.View()
	default:
		return a.menuView.View()
	}
}

// loadJournal fetches one journal and prepares its entries for display.
func (a *App) loadJournal(kind messages.JournalKind) tea.Msg {
	switch kind {
	case messages.JournalOrders:
		orders, err := a.ports.Cart.Orders(a.ctx)
		if err != nil {
			return messages.EntriesLoaded{Kind: kind, Err: err}
		}
		entries := make([]messages.Entry, len(orders))
		for i, o := range orders {
			entries[i] = entry(fmt.Sprintf("%s  %d items  %.2f  %s",
				o.Timestamp, len(o.Items), o.TotalAmount, o.Status), o)
		}
		return messages.EntriesLoaded{Kind: kind, Entries: entries}

	case messages.JournalLeads:
		leads, err := a.ports.Lead.Leads(a.ctx)
		if err != nil {
			return messages.EntriesLoaded{Kind: kind, Err: err}
		}
		entries := make([]messages.Entry, len(leads))
		for i, l := range leads {
			entries[i] = entry(fmt.Sprintf("%s  %s  score %d", l.Timestamp, l.Name, l.Score), l)
		}
		return messages.EntriesLoaded{Kind: kind, Entries: entries}

	case messages.JournalCases:
		if a.ports.Verification == nil {
			return messages.EntriesLoaded{Kind: kind}
		}
		cases, err := a.ports.Verification.Cases(a.ctx)
		if err != nil {
			return messages.EntriesLoaded{Kind: kind, Err: err}
		}
		entries := make([]messages.Entry, len(cases))
		for i, c := range cases {
			// Strip the challenge secret before rendering.
			c.SecurityAnswer = ""
			entries[i] = entry(fmt.Sprintf("%s  %s  %s", c.CaseID, c.Subject, c.Status), c)
		}
		return messages.EntriesLoaded{Kind: kind, Entries: entries}

	case messages.JournalGames:
		if a.ports.Game == nil {
			return messages.EntriesLoaded{Kind: kind}
		}
		games, err := a.ports.Game.Sessions(a.ctx)
		if err != nil {
			return messages.EntriesLoaded{Kind: kind, Err: err}
		}
		entries := make([]messages.Entry, len(games))
		for i, g := range games {
			entries[i] = entry(fmt.Sprintf("%s  %s  %d/%d rounds",
				g.EndTime, g.PlayerName, g.TotalRounds, g.MaxRounds), g)
		}
		return messages.EntriesLoaded{Kind: kind, Entries: entries}

	case messages.JournalCheckIns:
		if a.ports.Wellness == nil {
			return messages.EntriesLoaded{Kind: kind}
		}
		checkins, err := a.ports.Wellness.CheckIns(a.ctx)
		if err != nil {
			return messages.EntriesLoaded{Kind: kind, Err: err}
		}
		entries := make([]messages.Entry, len(checkins))
		for i, c := range checkins {
			entries[i] = entry(fmt.Sprintf("%s  %s  %d activities",
				c.Timestamp, c.Mood, len(c.Activities)), c)
		}
		return messages.EntriesLoaded{Kind: kind, Entries: entries}
	}
	return messages.EntriesLoaded{Kind: kind}
}

func entry(summary string, v any) messages.Entry {
	detail, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		detail = []byte(err.Error())
	}
	return messages.Entry{Summary: summary, Detail: string(detail)}
}
