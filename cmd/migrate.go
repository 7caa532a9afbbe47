package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/websearch-api/internal/database"
	"github.com/killallgit/websearch-api/internal/models"
	"github.com/killallgit/websearch-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Web Search API.

Available subcommands:
  up      - Apply schema migrations
  status  - Show current schema status`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply schema migrations",
	Long: `Apply database schema migrations.

This brings the quota tracking schema up to date using GORM
auto-migration.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func openDatabase() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("no database path configured")
	}
	return database.Initialize(database.Config{
		Path:               cfg.Database.Path,
		MaxConnections:     cfg.Database.MaxConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		LogQueries:         cfg.Database.LogQueries,
	})
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.QuotaRecord{}); err != nil {
		return err
	}

	fmt.Println("Migrations applied")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Database Migration Status")
	fmt.Println(strings.Repeat("=", 40))

	hasTable := db.Migrator().HasTable(&models.QuotaRecord{})
	fmt.Printf("quota_records table: present=%v\n", hasTable)

	return nil
}
