package main

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnflora/internal/iodata"
	"github.com/gnames/gnflora/internal/ioexport"
	"github.com/spf13/cobra"
)

func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dataset to a SQLite database",
		Long: `Export materializes the floral formula dataset into a SQLite file.
Each row holds the order, family, flower sex, the rendered formula,
and its plain-language explanation, so other tools can query formulae
without going through gnflora.`,
		Example: "  gnflora export --db gnflora.db",
		RunE:    runExport,
	}

	exportCmd.Flags().String("db", "gnflora.db",
		"path of the SQLite file to write")
	return exportCmd
}

func runExport(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")

	records, err := iodata.Load(cfg.DataFile)
	if err != nil {
		return err
	}

	count, err := ioexport.Export(cmd.Context(), dbPath, records)
	if err != nil {
		return err
	}

	slog.Info("dataset exported",
		"records", humanize.Comma(int64(count)), "file", dbPath)
	return nil
}
