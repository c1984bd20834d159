package main

import (
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnflora/internal/ioconfig"
	"github.com/gnames/gnflora/internal/iodata"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/floral"
	"github.com/gnames/gnflora/pkg/logger"
	"github.com/gnames/gnflora/pkg/search"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gnflora [flags] <name>",
		Short: "GNflora looks up floral formulae of flowering plants",
		Long: `GNflora looks up the floral formula of a flowering plant family
(or, with --order, a plant order) in a bundled dataset and prints it as
compact symbolic notation. With --explain every symbol is expanded into
plain language.

The notation follows Floral Diagrams (Ronse De Craene, 2010) and Plant
Systematics, A Phylogenetic Approach (Judd et al., 4th Ed 2016).

Configuration precedence (highest to lowest):
  1. CLI flags (--format, etc.)
  2. Environment variables (GNFLORA_*)
  3. Config file (~/.config/gnflora/gnflora.yaml)
  4. Built-in defaults`,
		Example: `  gnflora orchidaceae
  gnflora -e fabaceae
  gnflora -o Asparagales
  gnflora -a -f csv`,
		Version:           Version,
		Args:              cobra.MaximumNArgs(1),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	// Version on -V, consistent with other gn projects.
	rootCmd.Flags().BoolP("version", "V", false, "version for gnflora")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default ~/.config/gnflora/gnflora.yaml)")
	rootCmd.PersistentFlags().String("data", "",
		"CSV file overriding the bundled dataset")

	rootCmd.Flags().BoolP("all", "a", false,
		"print every family in the dataset")
	rootCmd.Flags().BoolP("explain", "e", false,
		"explain each symbol of the formula")
	rootCmd.Flags().BoolP("order", "o", false,
		"search plant orders instead of families")
	rootCmd.Flags().StringP("format", "f", "",
		"output format: compact, csv, tsv, compact-json, pretty-json")

	rootCmd.AddCommand(getExportCmd())
	return rootCmd
}

// bootstrap loads configuration and wires logging before any command
// runs. A config file is generated on first run so users can discover
// the settings.
func bootstrap(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		if path, err := ioconfig.GenerateDefaultConfig(); err == nil {
			slog.Debug("config file", "path", path)
		}
	}

	result, err := ioconfig.Load(cfgFile)
	if err != nil {
		return err
	}

	cfg = config.New()
	cfg.Update(result.Config.ToOptions())
	cfg.Update(flagOptions(cmd))

	slog.SetDefault(logger.New(&cfg.Logging))
	slog.Debug("configuration loaded",
		"source", result.Source, "file", result.SourcePath)
	return nil
}

// flagOptions converts persistent and command flags the user actually
// set into config options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var opts []config.Option
	if s, _ := cmd.Flags().GetString("data"); s != "" {
		opts = append(opts, config.OptDataFile(s))
	}
	if cmd.Flags().Changed("format") {
		s, _ := cmd.Flags().GetString("format")
		opts = append(opts, config.OptOutputFormat(s))
	}
	return opts
}

func runRoot(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	explain, _ := cmd.Flags().GetBool("explain")
	byOrder, _ := cmd.Flags().GetBool("order")

	if !all && len(args) == 0 {
		return cmd.Help()
	}

	records, err := iodata.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	slog.Debug("dataset loaded",
		"records", humanize.Comma(int64(len(records))))

	mode := search.ByFamily
	switch {
	case all:
		mode = search.All
	case byOrder:
		mode = search.ByOrder
	}

	var key string
	if len(args) > 0 {
		key = args[0]
	}

	matches := search.Match(records, key, mode)
	if len(matches) == 0 {
		notFound(records, key, mode)
		return nil
	}

	return writeRecords(os.Stdout, matches, explain)
}

// notFound reports a missing key, with a "did you mean" hint when a
// dataset name is close enough. Absence of data is not a failure.
func notFound(records []floral.Record, key string, mode search.Mode) {
	gn.Info("No data found for <em>%s</em>", key)
	name, dist, ok := search.Suggest(records, key, mode)
	if ok && dist > 0 && dist <= cfg.Search.MaxSuggestDistance {
		gn.Info("Did you mean <em>%s</em>?", name)
	}
}
