// Package commands contains the command line interface of the expenses
// backend.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/envelope-zero/expenses/internal/config"
	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// loader returns the configuration for a command.
type loader func() (*config.Config, error)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(version string) *cobra.Command {
	var envFiles []string

	rootCmd := &cobra.Command{
		Use:     "expenses",
		Short:   "Track expenses against your income and monthly budgets",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "files to load environment variables from (default .env)")

	load := func() (*config.Config, error) {
		return config.Load(envFiles...)
	}

	rootCmd.AddCommand(newServeCommand(version, load))
	rootCmd.AddCommand(newUserCommand(load))
	rootCmd.AddCommand(newIncomeCommand(load))

	return rootCmd
}

// Execute runs the root command and exits with 1 on errors.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}

// openLedger connects to the database of the configuration.
func openLedger(cfg *config.Config) (*ledger.Ledger, *gorm.DB, error) {
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := models.Connect(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	return ledger.New(db, ledger.WithDefaultCategories(cfg.DefaultCategories)), db, nil
}

// closeDB closes the connection pool of db.
func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
