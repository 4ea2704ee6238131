package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/logging"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/store"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/ui"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dt-taxonomy-cli",
	Short: "Evaluate, save and compare digital twin taxonomies",
	Long:  longDescription,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(viper.GetBool("no-color"))
		initUIAndBanner(cmd)
	},

	// When invoked without a subcommand, show help (with banner) instead of
	// printing a plain usage output.
	RunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return cmd.Help()
	},
}

var cfgFile string
var version string

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dt-taxonomy-cli.yaml or ./config/defaults.yaml)")
	rootCmd.PersistentFlags().String("storage-driver", "", "Storage driver: blob|sqlite|memory")
	rootCmd.PersistentFlags().String("storage-url", "", "Bucket URL for the blob driver (file://, mem://)")
	rootCmd.PersistentFlags().String("storage-path", "", "Database file for the sqlite driver")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored log prefixes")

	viper.BindPFlag("storage.driver", rootCmd.PersistentFlags().Lookup("storage-driver"))
	viper.BindPFlag("storage.url", rootCmd.PersistentFlags().Lookup("storage-url"))
	viper.BindPFlag("storage.path", rootCmd.PersistentFlags().Lookup("storage-path"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Ensure `--help` (and help subcommands) show the banner consistently.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})

	rootCmd.AddCommand(
		evaluateCmd,
		listCmd, showCmd, updateCmd, deleteCmd, clearCmd, statsCmd,
		exportCmd, importCmd,
		compareCmd,
		dimensionsCmd,
	)
}

func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	dataDir := filepath.Join(home, ".dt-taxonomy")
	viper.SetDefault("storage.driver", store.DriverBlob)
	viper.SetDefault("storage.url", "file://"+filepath.ToSlash(dataDir))
	viper.SetDefault("storage.path", filepath.Join(dataDir, "taxonomies.db"))

	// Environment variables override the config file, e.g.
	// storage.driver -> DTTAXONOMY_STORAGE_DRIVER
	viper.SetEnvPrefix("DTTAXONOMY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	notFound := &viper.ConfigFileNotFoundError{}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		err = viper.ReadInConfig()
	} else {
		viper.SetConfigType("yaml")
		viper.AddConfigPath(home)
		viper.AddConfigPath("./config")

		// Try .dt-taxonomy-cli first, then defaults.yaml
		viper.SetConfigName(".dt-taxonomy-cli")
		err = viper.ReadInConfig()
		if err != nil && errors.As(err, notFound) {
			viper.SetConfigName("defaults")
			err = viper.ReadInConfig()
		}
	}

	switch {
	case err != nil && !errors.As(err, notFound):
		cobra.CheckErr(err)
	case err != nil:
		// The config file is optional
	default:
		configMsg := ui.Dim.Render("Using config file: ") + ui.Secondary.Render(viper.ConfigFileUsed())
		fmt.Fprintln(os.Stderr, configMsg)
	}
}

const longDescription = "Evaluate digital twin configurations against a ten-dimension taxonomy. " +
	"Scores each dimension, recommends interventions, keeps a local collection of saved taxonomies and compares them side by side."

func initUIAndBanner(cmd *cobra.Command) {
	if cmd == nil {
		return
	}
	cmd.Root().Long = ui.RenderGradientBanner(ui.BannerASCII) + "\n" + longDescription
}
