// Package cli implements the tally command line interface.
// Commands share a set of package-level services wired once before the
// first command runs; journals and settings live under ~/.tally unless
// --config-dir points elsewhere.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	catalogfile "github.com/quill-labs/tally-cli/internal/adapters/driven/catalog/file"
	configfile "github.com/quill-labs/tally-cli/internal/adapters/driven/config/file"
	"github.com/quill-labs/tally-cli/internal/adapters/driven/seed"
	"github.com/quill-labs/tally-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/quill-labs/tally-cli/internal/adapters/driven/storage/memory"
	"github.com/quill-labs/tally-cli/internal/adapters/driven/storage/sqlite"
	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
	"github.com/quill-labs/tally-cli/internal/core/services"
	"github.com/quill-labs/tally-cli/internal/logger"
)

var version = "dev"

// SetVersion sets the version string printed by the version command.
// Called from main with the build-time value.
func SetVersion(v string) {
	version = v
}

var (
	verboseFlag bool
	configDir   string
)

// Package-level services shared by all commands. Wired by initServices
// before the first RunE executes.
var (
	settingsStore *configfile.Store
	settings      *configfile.Settings

	sessionStore *memory.SessionStore
	sqliteStore  *sqlite.Store

	catalogService      *services.CatalogService
	cartService         *services.CartService
	leadService         *services.LeadService
	verificationService *services.VerificationService
	gameService         *services.GameService
	wellnessService     *services.WellnessService

	orderJournal   driven.Journal[domain.OrderEntry]
	leadJournal    driven.Journal[domain.LeadEntry]
	caseJournal    driven.Journal[domain.CaseEntry]
	gameJournal    driven.Journal[domain.GameSessionEntry]
	checkInJournal driven.Journal[domain.CheckInEntry]
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Session ledger and durable journal for conversational agents",
	Long: `Tally keeps the working state of a conversational agent session
(carts, leads, fraud case reviews, game rounds, health logs) and commits
finalized snapshots to durable journals.

Run 'tally mcp serve' to expose the tools over the Model Context
Protocol, or use the subcommands to inspect the catalog and journals
directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices(cmd)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if sqliteStore != nil {
			return sqliteStore.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.tally)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initServices builds the full service graph from settings. Journals
// come from the configured backend; session state is always in memory.
func initServices(cmd *cobra.Command) error {
	var err error
	settingsStore, err = configfile.NewStore(configDir)
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}
	settings, err = settingsStore.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	if err := openJournals(); err != nil {
		return err
	}

	ctx := cmd.Context()
	catalogService, err = services.NewCatalogService(ctx, catalogfile.NewSource(settings.CatalogPath))
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if err := seed.EnsureCases(ctx, caseJournal); err != nil {
		return fmt.Errorf("seeding cases: %w", err)
	}

	sessionStore = memory.NewSessionStore()
	catalog := catalogService.Catalog()
	cartService = services.NewCartService(sessionStore, catalog, orderJournal)
	leadService = services.NewLeadService(sessionStore, leadJournal)
	verificationService = services.NewVerificationService(sessionStore, caseJournal)
	gameService = services.NewGameService(sessionStore, gameJournal)
	wellnessService = services.NewWellnessService(sessionStore, catalog, checkInJournal)
	return nil
}

func openJournals() error {
	switch settings.Journal.Backend {
	case configfile.BackendSQLite:
		store, err := sqlite.NewStore(settings.DataDir)
		if err != nil {
			return fmt.Errorf("opening sqlite store: %w", err)
		}
		sqliteStore = store
		orderJournal = sqlite.NewJournal[domain.OrderEntry](store, "orders")
		leadJournal = sqlite.NewJournal[domain.LeadEntry](store, "leads")
		caseJournal = sqlite.NewJournal[domain.CaseEntry](store, "cases")
		gameJournal = sqlite.NewJournal[domain.GameSessionEntry](store, "games")
		checkInJournal = sqlite.NewJournal[domain.CheckInEntry](store, "checkins")
		return nil
	case configfile.BackendJSON, "":
		var err error
		if orderJournal, err = jsonfile.NewJournal[domain.OrderEntry](settings.JournalPath(settings.Journal.OrdersFile)); err != nil {
			return fmt.Errorf("opening order journal: %w", err)
		}
		if leadJournal, err = jsonfile.NewJournal[domain.LeadEntry](settings.JournalPath(settings.Journal.LeadsFile)); err != nil {
			return fmt.Errorf("opening lead journal: %w", err)
		}
		if caseJournal, err = jsonfile.NewJournal[domain.CaseEntry](settings.JournalPath(settings.Journal.CasesFile)); err != nil {
			return fmt.Errorf("opening case journal: %w", err)
		}
		if gameJournal, err = jsonfile.NewJournal[domain.GameSessionEntry](settings.JournalPath(settings.Journal.GamesFile)); err != nil {
			return fmt.Errorf("opening game journal: %w", err)
		}
		if checkInJournal, err = jsonfile.NewJournal[domain.CheckInEntry](settings.JournalPath(settings.Journal.CheckInsFile)); err != nil {
			return fmt.Errorf("opening check-in journal: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown journal backend %q", settings.Journal.Backend)
	}
}
