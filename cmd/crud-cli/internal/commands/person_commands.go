package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/annuyadav31/CRUDExample/internal/domain/persons"

	"github.com/spf13/cobra"
)

// ListPersonsCmd prints persons filtered and sorted like the index page
func ListPersonsCmd(cmd *cobra.Command, _ []string) error {
	searchBy, _ := cmd.Flags().GetString("search-by")
	searchString, _ := cmd.Flags().GetString("search-string")
	sortBy, _ := cmd.Flags().GetString("sort-by")
	sortOrder, _ := cmd.Flags().GetString("sort-order")

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := commandContext(cmd)
	filtered, err := s.services.Persons.GetFilteredPersons(ctx, searchBy, searchString)
	if err != nil {
		return err
	}
	sorted, err := s.services.Persons.GetSortedPersons(ctx, filtered, sortBy, persons.ParseSortOrder(sortOrder))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tDATE OF BIRTH\tAGE\tGENDER\tCOUNTRY\tNEWSLETTERS")
	for _, p := range sorted {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%t\n",
			p.PersonName, p.Email, p.DateOfBirthString(persons.DateLayout), p.AgeString(),
			p.Gender, p.CountryName(), p.ReceiveNewsLetters)
	}
	return tw.Flush()
}

// ExportPersonsCmd writes every person to a CSV, PDF or Excel file
func ExportPersonsCmd(cmd *cobra.Command, _ []string) error {
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("invalid format flag: %w", err)
	}
	format, err := persons.ParseExportFormat(formatFlag)
	if err != nil {
		return err
	}

	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	if outputFile == "" {
		outputFile = format.FileName()
	}

	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	file, err := os.OpenFile(filepath.Clean(outputFile), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}

	if err := s.services.PersonExport.Export(commandContext(cmd), format, file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	s.logger.Info("Exported persons path ", outputFile)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported persons to %s\n", outputFile)
	return err
}

// InitPersonCommands registers person related commands
func InitPersonCommands(rootCmd *cobra.Command) error {
	personsCmd := &cobra.Command{
		Use:   "persons",
		Short: "Query and export persons",
	}

	listPersonsCmd := &cobra.Command{
		Use:   "list",
		Short: "List persons",
		RunE:  ListPersonsCmd,
	}
	listPersonsCmd.Flags().StringP("search-by", "", "", "Field to search (PersonName, Email, DateOfBirth, Gender, CountryID, Address)")
	listPersonsCmd.Flags().StringP("search-string", "", "", "Text to search for")
	listPersonsCmd.Flags().StringP("sort-by", "", persons.SortByPersonName, "Field to sort by")
	listPersonsCmd.Flags().StringP("sort-order", "", string(persons.SortOrderASC), "ASC or DESC")
	personsCmd.AddCommand(listPersonsCmd)

	exportPersonsCmd := &cobra.Command{
		Use:   "export",
		Short: "Export persons as csv, pdf or xlsx",
		RunE:  ExportPersonsCmd,
	}
	exportPersonsCmd.Flags().StringP("format", "f", string(persons.ExportFormatCSV), "Export format (csv, pdf, xlsx)")
	exportPersonsCmd.Flags().StringP("output-file", "o", "", "Path of the exported file (default persons.<format>)")
	personsCmd.AddCommand(exportPersonsCmd)

	rootCmd.AddCommand(personsCmd)
	return nil
}
