package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/apperr"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/evaluator"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/form"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxio"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/ui"
	"github.com/idlab-discover/dt-taxonomy-cli/pkg/dttaxonomy/assess"
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a taxonomy and recommend improvements",
	Long: "Evaluate a digital twin taxonomy read from a YAML or JSON document (--input), built from --set " +
		"assignments or filled in interactively. Prints dimension scores, recommendations and improvements " +
		"and can save the taxonomy with its result.",
	Example: `  dt-taxonomy-cli evaluate -i plant.yaml
  dt-taxonomy-cli evaluate --set dataLink=BiDirectional --set applicationDomain=Generation,DemandResponse
  dt-taxonomy-cli evaluate --interactive --save "Substation twin"`,
	RunE: runEvaluate,
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	level, err := resolveLogLevel("evaluate", cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	interactive := viper.GetBool("evaluate.interactive")
	inputPath := strings.TrimSpace(viper.GetString("evaluate.input"))
	// --set is read from the flag directly: viper splits bound string
	// arrays on commas, which would break multi-value assignments.
	assignments, _ := cmd.Flags().GetStringArray("set")
	if !cmd.Flags().Changed("set") {
		assignments = viper.GetStringSlice("evaluate.set")
	}
	if !interactive && inputPath == "" && len(assignments) == 0 {
		return apperr.User("either --input, --set or --interactive is required")
	}
	if viper.GetBool("evaluate.json") && viper.GetBool("evaluate.plain-summary") {
		return apperr.User("--json cannot be used with --plain-summary")
	}

	var doc taxio.Document
	if inputPath != "" {
		doc, err = taxio.ReadDocument(inputPath, viper.GetString("evaluate.format"))
		if err != nil {
			return err
		}
	}
	tx, err := applyAssignments(doc.Taxonomy, assignments)
	if err != nil {
		return err
	}
	if interactive {
		tx, err = form.BuildTaxonomy(tx)
		if err != nil {
			return err
		}
	}

	res := evaluator.Evaluate(tx)

	out := cmd.OutOrStdout()
	switch {
	case viper.GetBool("evaluate.json"):
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(out, string(b))
	case viper.GetBool("evaluate.plain-summary"):
		ui.NewResultUI(out, false).PrintSummary(res)
	default:
		ui.NewResultUI(out, level == "quiet").PrintReport(res)
	}

	title := strings.TrimSpace(viper.GetString("evaluate.save"))
	description := viper.GetString("evaluate.description")
	if description == "" {
		description = doc.Description
	}
	if title == "" && interactive {
		save, err := form.Confirm("Save this taxonomy?", "Saved taxonomies can be listed, compared and exported later.")
		if err != nil {
			return err
		}
		if save {
			if title, description, err = form.AskSaveDetails(doc.Title, description); err != nil {
				return err
			}
		}
	}
	if title != "" {
		if err := saveEvaluation(cmd, title, description, tx, res); err != nil {
			return err
		}
	}
	return gateEvaluation(cmd, level, tx, res)
}

// gateEvaluation applies --min-score and --strict. It is a no-op when
// neither is set.
func gateEvaluation(cmd *cobra.Command, level string, tx taxonomy.Taxonomy, res result.Result) error {
	opts := assess.Options{
		StrictMode:      viper.GetBool("evaluate.strict"),
		MinOverallScore: viper.GetFloat64("evaluate.min-score"),
	}
	if !opts.StrictMode && opts.MinOverallScore <= 0 {
		return nil
	}
	if opts.MinOverallScore > 100 {
		return apperr.Userf("--min-score %.1f is out of range (0-100)", opts.MinOverallScore)
	}

	a := assess.Check(tx, res, opts)
	ui.NewResultUI(cmd.ErrOrStderr(), level == "quiet").PrintFindings(a.Warnings, a.Errors)
	if !a.Valid {
		return apperr.Userf("assessment failed with %d error(s)", len(a.Errors))
	}
	return nil
}

func saveEvaluation(cmd *cobra.Command, title, description string, tx taxonomy.Taxonomy, res result.Result) error {
	ctx := commandContext(cmd)
	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.Save(ctx, title, tx, &res, description)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatStatus("success", "Saved as "+ui.Highlight.Render(id)))
	return nil
}

// applyAssignments applies "dimension=value[,value...]" pairs to t in order.
// An empty value list unsets the dimension.
func applyAssignments(t taxonomy.Taxonomy, assignments []string) (taxonomy.Taxonomy, error) {
	for _, a := range assignments {
		name, raw, ok := strings.Cut(a, "=")
		if !ok {
			return t, apperr.Userf("invalid --set %q (expected dimension=value[,value])", a)
		}
		d, known := taxonomy.ParseDimension(strings.TrimSpace(name))
		if !known {
			return t, apperr.Userf("unknown dimension %q (see 'dt-taxonomy-cli dimensions')", name)
		}
		var values []string
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		next, err := t.With(d, values...)
		if err != nil {
			return t, apperr.Userf("--set %s: %v", d, err)
		}
		t = next
	}
	return t, nil
}

func init() {
	evaluateCmd.Flags().StringP("input", "i", "", "Path to a taxonomy document (YAML or JSON)")
	evaluateCmd.Flags().StringP("format", "f", "", "Input format: json|yaml|auto")
	evaluateCmd.Flags().StringArray("set", nil, "Set a dimension: dimension=value[,value] (repeatable)")
	evaluateCmd.Flags().Bool("interactive", false, "Fill in the taxonomy with an interactive form")
	evaluateCmd.Flags().Bool("json", false, "Print the result as JSON")
	evaluateCmd.Flags().Bool("plain-summary", false, "Print the plain-text summary only (no styling)")
	evaluateCmd.Flags().String("save", "", "Save the taxonomy and its result under this title")
	evaluateCmd.Flags().String("description", "", "Description stored with --save")
	evaluateCmd.Flags().Float64("min-score", 0, "Fail when the overall maturity is below this score (0-100)")
	evaluateCmd.Flags().Bool("strict", false, "Fail on unset dimensions and critical recommendations")
	addLogLevelFlag(evaluateCmd, "evaluate")

	// Bind all flags to viper for config file support
	viper.BindPFlag("evaluate.input", evaluateCmd.Flags().Lookup("input"))
	viper.BindPFlag("evaluate.format", evaluateCmd.Flags().Lookup("format"))
	viper.BindPFlag("evaluate.interactive", evaluateCmd.Flags().Lookup("interactive"))
	viper.BindPFlag("evaluate.json", evaluateCmd.Flags().Lookup("json"))
	viper.BindPFlag("evaluate.plain-summary", evaluateCmd.Flags().Lookup("plain-summary"))
	viper.BindPFlag("evaluate.save", evaluateCmd.Flags().Lookup("save"))
	viper.BindPFlag("evaluate.description", evaluateCmd.Flags().Lookup("description"))
	viper.BindPFlag("evaluate.min-score", evaluateCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("evaluate.strict", evaluateCmd.Flags().Lookup("strict"))
}
