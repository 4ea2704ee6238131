package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/apperr"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/comparison"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/store"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/ui"
)

var compareCmd = &cobra.Command{
	Use:   "compare [id...]",
	Short: "Compare saved taxonomies dimension by dimension",
	Long: "Compare two to five saved taxonomies as a heat map of their dimension scores. Ids past the " +
		"fifth are ignored. Scores are recomputed from each taxonomy; a stored result that disagrees is flagged.",
	Example: `  dt-taxonomy-cli compare taxonomy_1718000000000_ab12cd34e taxonomy_1718000500000_f9e8d7c6b
  dt-taxonomy-cli compare --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := resolveLogLevel("compare", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		interactive := viper.GetBool("compare.interactive")
		// ids past the cap are dropped by the selection
		ids := comparison.NewSelection(args...).IDs()
		if !interactive && len(ids) < comparison.MinSelected {
			return apperr.Userf("pass at least %d distinct ids or use --interactive", comparison.MinSelected)
		}

		ctx := commandContext(cmd)
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		if interactive {
			all, err := s.List(ctx)
			if err != nil {
				return err
			}
			if len(all) < comparison.MinSelected {
				return apperr.Userf("at least %d saved taxonomies are needed to compare, found %d", comparison.MinSelected, len(all))
			}
			if ids, err = ui.RunSelector(all, ids...); err != nil {
				return err
			}
		}

		records := make([]store.SavedTaxonomy, 0, len(ids))
		for _, id := range ids {
			rec, err := getRecord(ctx, s, id)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}

		m := comparison.Build(records)
		if level == "quiet" {
			ui.NewComparisonUI(cmd.OutOrStdout()).PrintSimpleMatrix(m)
			return nil
		}
		ui.NewComparisonUI(cmd.OutOrStdout()).PrintMatrix(m)
		return nil
	},
}

func init() {
	compareCmd.Flags().Bool("interactive", false, "Pick the taxonomies to compare from a list")
	addLogLevelFlag(compareCmd, "compare")
	viper.BindPFlag("compare.interactive", compareCmd.Flags().Lookup("interactive"))
}
