package cmd

import (
	"fmt"
	"os"

	"github.com/nvasilyev/growcalc/internal/projection"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the yearly projection as CSV",
	Long:  "Export the year-by-year projection as CSV to a file, or stdout if no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	_, rows, _, err := runProjection(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return projection.WriteCSV(os.Stdout, rows)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := projection.WriteCSV(f, rows); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	fmt.Fprintf(os.Stderr, "  Wrote %d rows to %s\n", len(rows), args[0])
	return nil
}
