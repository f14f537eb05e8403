// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCatalog is the catalog search view.
	ViewCatalog
	// ViewJournal is the journal browser view.
	ViewJournal
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// JournalKind names one of the durable journals.
type JournalKind string

const (
	JournalOrders   JournalKind = "orders"
	JournalLeads    JournalKind = "leads"
	JournalCases    JournalKind = "cases"
	JournalGames    JournalKind = "games"
	JournalCheckIns JournalKind = "checkins"
)

// JournalSelected is sent when the user picks a journal to browse.
type JournalSelected struct {
	Kind JournalKind
}

// EntriesLoaded carries a loaded journal back to the journal view.
// Each entry is pre-rendered: a one-line summary plus its full JSON.
type EntriesLoaded struct {
	Kind    JournalKind
	Entries []Entry
	Err     error
}

// Entry is one journal entry prepared for display.
type Entry struct {
	Summary string
	Detail  string
}

// SearchCompleted carries catalog search results back to the view.
type SearchCompleted struct {
	Results []Entry
	Err     error
}
