package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/apperr"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxio"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved collection to a JSON file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := resolveLogLevel("export", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		data, err := s.Export(ctx)
		if err != nil {
			return err
		}
		st, err := s.Stats(ctx)
		if err != nil {
			return err
		}
		path := strings.TrimSpace(viper.GetString("export.output"))
		if path == "" {
			path = taxio.DefaultExportName(time.Now())
		}
		if err := taxio.WriteExport(data, path); err != nil {
			return apperr.Userf("export: %v", err)
		}
		ui.NewTransferUI(cmd.OutOrStdout(), level == "quiet").PrintExported(path, st.Total)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import taxonomies from an exported JSON file",
	Long: "Merge the records of an exported collection into the saved collection. Records whose id already " +
		"exists replace the saved copy. Malformed records are skipped.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := resolveLogLevel("import", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		path := strings.TrimSpace(viper.GetString("import.input"))
		if path == "" {
			return apperr.User("--input is required")
		}
		data, err := taxio.ReadExport(path)
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		before, err := s.Stats(ctx)
		if err != nil {
			return err
		}
		ok, err := s.Import(ctx, data)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Userf("%s holds no valid saved taxonomies", path)
		}
		after, err := s.Stats(ctx)
		if err != nil {
			return err
		}
		ui.NewTransferUI(cmd.OutOrStdout(), level == "quiet").PrintImported(path, after.Total, after.Total-before.Total)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default taxonomy-export-<date>.json)")
	addLogLevelFlag(exportCmd, "export")
	viper.BindPFlag("export.output", exportCmd.Flags().Lookup("output"))

	importCmd.Flags().StringP("input", "i", "", "Exported JSON file to import (required)")
	addLogLevelFlag(importCmd, "import")
	viper.BindPFlag("import.input", importCmd.Flags().Lookup("input"))
}
