package cmd

import (
	"fmt"
	"reflect"

	"github.com/killallgit/editor-api/internal/database"
	"github.com/killallgit/editor-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Video Editor API.

The schema is managed by GORM AutoMigrate. The videos table holds the
uploaded library and the jobs table holds export jobs.

Available subcommands:
  up      - Create or update all tables
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update all tables",
	Long: `Create or update every table used by the Video Editor API.

AutoMigrate only adds missing tables, columns and indexes. It never drops
data.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of database migrations.

This command lists every table the API needs and whether it exists in the
configured database.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().String("db", "", "database path (overrides config)")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

// openMigrationDB opens the database named by --db or the configuration
func openMigrationDB(cmd *cobra.Command) (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		cfg.Database.Path = path
	}

	db, err := database.Open(cfg.Database.Path, database.OptionsFromConfig(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, model := range database.Models() {
			fmt.Fprintf(out, "  would migrate %s\n", modelName(model))
		}
		return nil
	}

	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Fprintf(out, "Migrated %d table(s)\n", len(database.Models()))
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openMigrationDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, repeatString("=", 50))

	migrator := db.Migrator()
	pending := 0
	for _, model := range database.Models() {
		state := "applied"
		if !migrator.HasTable(model) {
			state = "pending"
			pending++
		}
		fmt.Fprintf(out, "  %-20s %s\n", modelName(model), state)
	}

	fmt.Fprintln(out, repeatString("=", 50))
	if pending > 0 {
		fmt.Fprintf(out, "%d table(s) pending, run 'editor-api migrate up'\n", pending)
	} else {
		fmt.Fprintln(out, "Schema is up to date")
	}
	return nil
}

func modelName(model any) string {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
