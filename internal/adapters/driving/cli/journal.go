package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/quill-labs/tally-cli/internal/logger"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the durable journals",
}

var journalListCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List committed journal entries",
	Long: `Prints the committed entries of one journal as JSON, oldest first.

Kinds: orders, leads, cases, games, checkins.`,
	Args: cobra.ExactArgs(1),
	RunE: runJournalList,
}

var journalWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the data directory for journal writes",
	Long: `Watches the journal data directory and reports every write as it
happens. Useful while an MCP front end is driving the server from
another process. Only meaningful with the JSON file backend.`,
	RunE: runJournalWatch,
}

func init() {
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalWatchCmd)
	rootCmd.AddCommand(journalCmd)
}

// loadJournal returns the named journal's entries as a JSON-ready value.
func loadJournal(ctx context.Context, kind string) (any, error) {
	switch strings.ToLower(kind) {
	case "orders":
		return orderJournal.LoadAll(ctx)
	case "leads":
		return leadJournal.LoadAll(ctx)
	case "cases":
		return caseJournal.LoadAll(ctx)
	case "games":
		return gameJournal.LoadAll(ctx)
	case "checkins":
		return checkInJournal.LoadAll(ctx)
	}
	return nil, fmt.Errorf("unknown journal kind %q (want orders, leads, cases, games or checkins)", kind)
}

func runJournalList(cmd *cobra.Command, args []string) error {
	entries, err := loadJournal(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runJournalWatch(cmd *cobra.Command, _ []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(settings.DataDir); err != nil {
		return fmt.Errorf("watching %s: %w", settings.DataDir, err)
	}
	cmd.Printf("Watching %s (ctrl-c to stop)\n", settings.DataDir)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, okCh := <-watcher.Events:
			if !okCh {
				return nil
			}
			// Journal writes land as a rename of the temp file onto
			// the target; creates cover first writes.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				cmd.Printf("%s %s\n", event.Op, event.Name)
			}
		case watchErr, okCh := <-watcher.Errors:
			if !okCh {
				return nil
			}
			logger.Warn("watch error: %v", watchErr)
		}
	}
}
