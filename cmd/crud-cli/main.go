// Package main is the entry point for the crud-cli application.
// It registers the database, country and person sub-commands and executes them.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/annuyadav31/CRUDExample/cmd/crud-cli/internal/commands"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "crud-cli",
		Short: "Persons and countries administration tool",
		Long: `crud-cli manages the persons and countries database used by crud-rest-api.
It can migrate and seed the schema, import countries from an Excel workbook,
list persons and export them as CSV, PDF or Excel files.

The database is taken from the same YAML config as the server (--config),
with CRUD_* environment variables taking precedence.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitRootFlags(rootCmd); err != nil {
		return err
	}

	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}

	if err := commands.InitCountryCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize country commands: %w", err)
	}

	if err := commands.InitPersonCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize person commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
