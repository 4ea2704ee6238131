package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/apperr"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/comparison"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/evaluator"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/rules"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/scoring"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/store"
)

// addLogLevelFlag registers --log-level on cmd and binds it to
// "<name>.log-level".
func addLogLevelFlag(cmd *cobra.Command, name string) {
	cmd.Flags().String("log-level", "", "Log level: quiet|standard|debug")
	viper.BindPFlag(name+".log-level", cmd.Flags().Lookup("log-level"))
}

// resolveLogLevel reads "<name>.log-level" from config, env or flag and
// wires the internal package loggers to w when it is debug.
func resolveLogLevel(name string, w io.Writer) (string, error) {
	level := strings.ToLower(strings.TrimSpace(viper.GetString(name + ".log-level")))
	if level == "" {
		level = "standard"
	}
	switch level {
	case "quiet", "standard", "debug":
		// ok
	default:
		return "", fmt.Errorf("invalid --log-level %q (expected quiet|standard|debug)", level)
	}

	var sink io.Writer
	if level == "debug" {
		sink = w
	}
	scoring.SetLogger(sink)
	rules.SetLogger(sink)
	evaluator.SetLogger(sink)
	store.SetLogger(sink)
	comparison.SetLogger(sink)
	return level, nil
}

// commandContext returns the context the command was executed with.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// storageConfig resolves the storage section of the configuration.
func storageConfig() store.Config {
	return store.Config{
		Driver: viper.GetString("storage.driver"),
		URL:    viper.GetString("storage.url"),
		Path:   viper.GetString("storage.path"),
		Key:    viper.GetString("storage.key"),
	}
}

// openStore opens the configured store. Callers close it.
func openStore(ctx context.Context) (*store.Store, error) {
	s, err := store.Open(ctx, storageConfig())
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return s, nil
}

// getRecord loads id, turning a missing record into an error for commands
// that need one.
func getRecord(ctx context.Context, s *store.Store, id string) (store.SavedTaxonomy, error) {
	rec, ok, err := s.Get(ctx, id)
	if err != nil {
		return store.SavedTaxonomy{}, err
	}
	if !ok {
		return store.SavedTaxonomy{}, apperr.Userf("no saved taxonomy with id %q", id)
	}
	return rec, nil
}
