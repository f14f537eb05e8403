// Package file provides the TOML-based settings store.
// Settings live in ~/.tally/config.toml and cover only process
// bootstrap concerns: data locations and the journal backend. Domain
// state never goes through this package.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Backend selects the journal persistence implementation.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Settings is the persisted application configuration.
type Settings struct {
	// DataDir is where journals live. Defaults to ~/.tally/data.
	DataDir string `toml:"data_dir"`

	// CatalogPath overrides the embedded default catalog when set.
	CatalogPath string `toml:"catalog_path"`

	Journal JournalSettings `toml:"journal"`
}

// JournalPath resolves a journal file name against the data directory.
func (s *Settings) JournalPath(name string) string {
	return filepath.Join(s.DataDir, name)
}

// JournalSettings configures the durable journal layer.
type JournalSettings struct {
	// Backend is "json" (flat files, default) or "sqlite".
	Backend string `toml:"backend"`

	// File names for the JSON backend, one per entry kind.
	OrdersFile   string `toml:"orders_file"`
	LeadsFile    string `toml:"leads_file"`
	CasesFile    string `toml:"cases_file"`
	GamesFile    string `toml:"games_file"`
	CheckInsFile string `toml:"checkins_file"`
}

// Store loads and saves settings from a TOML file.
type Store struct {
	path string
}

// NewStore creates a settings store rooted at configDir. If configDir
// is empty, defaults to ~/.tally.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".tally")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	return &Store{path: filepath.Join(configDir, "config.toml")}, nil
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing file yields the defaults.
func (s *Store) Load() (*Settings, error) {
	settings := defaultSettings(filepath.Dir(s.path))

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	settings.applyDefaults(filepath.Dir(s.path))
	return settings, nil
}

// Save persists the settings with restricted permissions.
func (s *Store) Save(settings *Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

func defaultSettings(configDir string) *Settings {
	settings := &Settings{}
	settings.applyDefaults(configDir)
	return settings
}

// applyDefaults fills unset fields so partially written config files
// keep working.
func (s *Settings) applyDefaults(configDir string) {
	if s.DataDir == "" {
		s.DataDir = filepath.Join(configDir, "data")
	}
	if s.Journal.Backend == "" {
		s.Journal.Backend = BackendJSON
	}
	if s.Journal.OrdersFile == "" {
		s.Journal.OrdersFile = "orders.json"
	}
	if s.Journal.LeadsFile == "" {
		s.Journal.LeadsFile = "leads.json"
	}
	if s.Journal.CasesFile == "" {
		s.Journal.CasesFile = "fraud_cases.json"
	}
	if s.Journal.GamesFile == "" {
		s.Journal.GamesFile = "game_sessions.json"
	}
	if s.Journal.CheckInsFile == "" {
		s.Journal.CheckInsFile = "checkins.json"
	}
}
