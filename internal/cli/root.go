// Package cli implements the command-line interface for cubetimer.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubetimer/internal/config"
	"github.com/SeamusWaldron/cubetimer/internal/storage"
)

const version = "0.1.0"

// app carries global flag values and the loaded configuration.
type app struct {
	configPath string
	dbPath     string
	verbose    bool

	cfg *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cubetimer",
		Short: "Speedcubing scramble generator and cube simulator",
		Long: `cubetimer - scramble generation, validation and 3x3 cube simulation
for speedcubing practice.

Generate WCA-style scrambles, check imported scrambles, apply move
sequences to a virtual cube and practice solving in the terminal.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default: ~/.cubetimer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database file path (default: ~/.cubetimer/scrambles.db)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(
		newScrambleCmd(a),
		newValidateCmd(),
		newFormatCmd(),
		newApplyCmd(),
		newSetsCmd(a),
		newPracticeCmd(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Debug().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load reads the configuration and applies the verbosity flag.
func (a *app) load(cmd *cobra.Command, args []string) error {
	if a.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	path := a.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log.Debug().Str("config", path).Str("kind", cfg.Scramble.Kind).Msg("configuration loaded")
	return nil
}

// openDB opens the scramble-set database from flag, config or default.
func (a *app) openDB() (*storage.DB, error) {
	path := a.dbPath
	if path == "" && a.cfg != nil {
		path = a.cfg.DBPath
	}

	var (
		db  *storage.DB
		err error
	)
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.Debug().Str("db", db.Path()).Msg("opened database")
	return db, nil
}
