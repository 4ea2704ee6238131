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
	"github.com/idlab-discover/dt-taxonomy-cli/internal/store"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxio"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved taxonomies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := resolveLogLevel("list", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		items, err := s.List(ctx)
		if err != nil {
			return err
		}
		if viper.GetBool("list.json") {
			return printJSON(cmd, items)
		}
		ui.NewListUI(cmd.OutOrStdout(), level == "quiet").PrintList(items)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved taxonomy and its result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := resolveLogLevel("show", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := getRecord(ctx, s, args[0])
		if err != nil {
			return err
		}
		if path := strings.TrimSpace(viper.GetString("show.output")); path != "" {
			doc := taxio.Document{Title: rec.Title, Description: rec.Description, Taxonomy: rec.Taxonomy}
			if err := taxio.WriteDocument(doc, path, viper.GetString("show.format")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatStatus("success", "Wrote "+ui.Highlight.Render(path)))
			return nil
		}
		if viper.GetBool("show.json") {
			return printJSON(cmd, rec)
		}

		out := cmd.OutOrStdout()
		ui.NewListUI(out, false).PrintRecord(rec)
		if rec.Result != nil {
			ui.NewResultUI(out, level == "quiet").PrintReport(*rec.Result)
		}
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a saved taxonomy or replace its selections",
	Long: "Update the title or description of a saved taxonomy. Replacing the taxonomy (--input, --set " +
		"or --interactive) re-evaluates it and stores the new result.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := resolveLogLevel("update", cmd.ErrOrStderr()); err != nil {
			return err
		}
		ctx := commandContext(cmd)
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := getRecord(ctx, s, args[0])
		if err != nil {
			return err
		}

		var patch store.Patch
		if cmd.Flags().Changed("title") {
			title := viper.GetString("update.title")
			patch.Title = &title
		}
		if cmd.Flags().Changed("description") {
			description := viper.GetString("update.description")
			patch.Description = &description
		}

		tx := rec.Taxonomy
		replaced := false
		if path := strings.TrimSpace(viper.GetString("update.input")); path != "" {
			doc, err := taxio.ReadDocument(path, viper.GetString("update.format"))
			if err != nil {
				return err
			}
			tx, replaced = doc.Taxonomy, true
		}
		if assignments, _ := cmd.Flags().GetStringArray("set"); len(assignments) > 0 {
			if tx, err = applyAssignments(tx, assignments); err != nil {
				return err
			}
			replaced = true
		}
		if viper.GetBool("update.interactive") {
			if tx, err = form.BuildTaxonomy(tx); err != nil {
				return err
			}
			replaced = true
		}
		if replaced {
			res := evaluator.Evaluate(tx)
			patch.Taxonomy = &tx
			patch.Result = &res
		}

		if patch == (store.Patch{}) {
			return apperr.User("nothing to update: pass --title, --description, --input, --set or --interactive")
		}

		found, err := s.Update(ctx, rec.ID, patch)
		if err != nil {
			return err
		}
		if !found {
			return apperr.Userf("no saved taxonomy with id %q", rec.ID)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatStatus("success", "Updated "+ui.Highlight.Render(rec.ID)))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved taxonomy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := resolveLogLevel("delete", cmd.ErrOrStderr()); err != nil {
			return err
		}
		ctx := commandContext(cmd)
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		found, err := s.Delete(ctx, args[0])
		if err != nil {
			return err
		}
		if !found {
			return apperr.Userf("no saved taxonomy with id %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatStatus("success", "Deleted "+ui.Highlight.Render(args[0])))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved taxonomy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := resolveLogLevel("clear", cmd.ErrOrStderr()); err != nil {
			return err
		}
		ctx := commandContext(cmd)
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		if !viper.GetBool("clear.yes") {
			st, err := s.Stats(ctx)
			if err != nil {
				return err
			}
			ok, err := form.Confirm(
				fmt.Sprintf("Delete all %d saved taxonomies?", st.Total),
				"This cannot be undone. Export the collection first to keep a copy.",
			)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.ErrCancelled
			}
		}

		if err := s.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatStatus("success", "Cleared all saved taxonomies"))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the saved collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := resolveLogLevel("stats", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		st, err := s.Stats(ctx)
		if err != nil {
			return err
		}
		if viper.GetBool("stats.json") {
			return printJSON(cmd, st)
		}
		ui.NewListUI(cmd.OutOrStdout(), level == "quiet").PrintStats(st)
		return nil
	},
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func init() {
	for name, c := range map[string]*cobra.Command{"list": listCmd, "show": showCmd, "stats": statsCmd} {
		c.Flags().Bool("json", false, "Print JSON instead of the styled view")
		viper.BindPFlag(name+".json", c.Flags().Lookup("json"))
		addLogLevelFlag(c, name)
	}

	showCmd.Flags().StringP("output", "o", "", "Write the taxonomy as a document that evaluate --input accepts")
	showCmd.Flags().StringP("format", "f", "", "Document format for --output: json|yaml|auto")
	viper.BindPFlag("show.output", showCmd.Flags().Lookup("output"))
	viper.BindPFlag("show.format", showCmd.Flags().Lookup("format"))

	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().String("description", "", "New description")
	updateCmd.Flags().StringP("input", "i", "", "Replace the taxonomy with this document (YAML or JSON)")
	updateCmd.Flags().StringP("format", "f", "", "Input format: json|yaml|auto")
	updateCmd.Flags().StringArray("set", nil, "Change a dimension: dimension=value[,value] (repeatable)")
	updateCmd.Flags().Bool("interactive", false, "Edit the taxonomy with an interactive form")
	addLogLevelFlag(updateCmd, "update")
	viper.BindPFlag("update.title", updateCmd.Flags().Lookup("title"))
	viper.BindPFlag("update.description", updateCmd.Flags().Lookup("description"))
	viper.BindPFlag("update.input", updateCmd.Flags().Lookup("input"))
	viper.BindPFlag("update.format", updateCmd.Flags().Lookup("format"))
	viper.BindPFlag("update.interactive", updateCmd.Flags().Lookup("interactive"))

	addLogLevelFlag(deleteCmd, "delete")

	clearCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	addLogLevelFlag(clearCmd, "clear")
	viper.BindPFlag("clear.yes", clearCmd.Flags().Lookup("yes"))
}
