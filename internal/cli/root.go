// Package cli implements the command-line interface for rubik.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik"
	"github.com/SeamusWaldron/rubik/internal/config"
	"github.com/SeamusWaldron/rubik/internal/logging"
	"github.com/SeamusWaldron/rubik/internal/session"
	"github.com/SeamusWaldron/rubik/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbosity  int
	quiet      bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubik",
	Short: "N×N×N Rubik's cube workbench",
	Long: `rubik - turn, scramble and inspect Rubik's cubes of any size from the terminal.

Cubes live in sessions stored in a local SQLite database, so a cube created
with 'rubik new' keeps its state across invocations. Moves use slice notation:
an axis (X, Y, Z), a slice index and an optional inverse marker, e.g. "X0 Y2i".`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubik/rubik.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.rubik/config.json)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all logs")
}

// env is what every command needs: configuration, a logger and sessions.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *storage.DB
	sessions *session.Manager
}

// Close releases the database.
func (e *env) Close() {
	if e.db != nil {
		e.db.Close()
	}
}

// openEnv loads configuration, applies flag overrides and opens the
// session store.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	level := cfg.Level()
	if verbosity > 0 || quiet {
		level = logging.LevelFromVerbosity(verbosity, quiet)
	}
	logger := logging.NewLogger(cmd.ErrOrStderr(), level)

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	stateFile, err := session.NewStateFile(filepath.Join(filepath.Dir(cfg.DBPath), "state.json"))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	tables := rubik.NewTableCache(cfg.Workers)
	logger.Debug("opened database", "path", cfg.DBPath)

	return &env{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		sessions: session.NewManager(db, stateFile, tables, logger),
	}, nil
}

// withSession opens the environment and the active session, or the session
// named by id when it is not empty.
func withSession(cmd *cobra.Command, id string, fn func(*env, *session.Session) error) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	var s *session.Session
	if id != "" {
		s, err = e.sessions.Open(id)
	} else {
		s, err = e.sessions.Active()
	}
	if err != nil {
		return err
	}
	return fn(e, s)
}
