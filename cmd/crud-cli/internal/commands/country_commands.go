package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/annuyadav31/CRUDExample/internal/domain/countries"

	"github.com/spf13/cobra"
)

// ListCountriesCmd prints every country
func ListCountriesCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	list, err := s.services.Countries.GetCountryList(commandContext(cmd))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\n", c.CountryID, c.CountryName)
	}
	return tw.Flush()
}

// AddCountryCmd adds a single country
func AddCountryCmd(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	country, err := s.services.Countries.AddCountry(commandContext(cmd), &countries.CountryAddRequest{CountryName: &name})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added country %s (%s)\n", country.CountryName, country.CountryID)
	return err
}

// ImportCountriesCmd imports the country names of an xlsx workbook
func ImportCountriesCmd(cmd *cobra.Command, _ []string) error {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return fmt.Errorf("invalid input-file flag: %w", err)
	}

	file, err := os.Open(filepath.Clean(inputFile))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", inputFile, err)
	}
	defer func() { _ = file.Close() }()

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	inserted, err := s.services.Countries.UploadCountriesFromExcel(commandContext(cmd), file)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d Countries Uploaded\n", inserted)
	return err
}

// InitCountryCommands registers country related commands
func InitCountryCommands(rootCmd *cobra.Command) error {
	countriesCmd := &cobra.Command{
		Use:   "countries",
		Short: "Manage countries",
	}

	countriesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all countries",
		RunE:  ListCountriesCmd,
	})

	addCountryCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a country",
		RunE:  AddCountryCmd,
	}
	addCountryCmd.Flags().StringP("name", "", "", "Name of the country")
	if err := addCountryCmd.MarkFlagRequired("name"); err != nil {
		return err
	}
	countriesCmd.AddCommand(addCountryCmd)

	importCountriesCmd := &cobra.Command{
		Use:   "import",
		Short: "Import countries from the first column of an xlsx workbook",
		RunE:  ImportCountriesCmd,
	}
	importCountriesCmd.Flags().StringP("input-file", "", "", "Path to the xlsx workbook")
	if err := importCountriesCmd.MarkFlagRequired("input-file"); err != nil {
		return err
	}
	countriesCmd.AddCommand(importCountriesCmd)

	rootCmd.AddCommand(countriesCmd)
	return nil
}
