package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd creates or updates the schema
func MigrateCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
	return err
}

// SeedCmd migrates the schema and inserts the sample countries and persons
func SeedCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Sample data is in place")
	return err
}

// InitDatabaseCommands registers schema related commands
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  MigrateCmd,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert the sample countries and persons into empty tables",
		RunE:  SeedCmd,
	})

	return nil
}
