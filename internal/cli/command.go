package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/langswitch/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "langswitch [catalog]",
		Short: "Catalog-driven UI text localization",
		Long: `langswitch loads a comma-delimited translation catalog and switches
the language of an application's visible text at run time.

Without an action flag it opens the demo window. Action flags inspect or
convert the catalog from the command line.

Examples:
  langswitch strings.csv                         # Open the demo window
  langswitch --catalog strings.csv --list        # List catalog languages
  langswitch -c strings.csv --translate Hello --from en --to fr
  langswitch -c strings.csv --batch menu.txt --from en --to de
  langswitch -c strings.csv --export-db strings.db`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.langswitch.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.CatalogFile, "catalog", "c", "", "Translation catalog file")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "Startup language (default is the first catalog language)")
	cmd.Flags().BoolVar(&flags.GUIMode, "gui", false, "Open the demo window even when an action flag is given")

	// Action flags
	cmd.Flags().BoolVar(&flags.List, "list", false, "List catalog languages in declaration order")
	cmd.Flags().StringVar(&flags.Translate, "translate", "", "Translate one text and print the result")
	cmd.Flags().StringVar(&flags.From, "from", "", "Source language for --translate/--batch")
	cmd.Flags().StringVar(&flags.To, "to", "", "Target language for --translate/--batch")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate phrases from file (one per line)")
	cmd.Flags().BoolVar(&flags.Check, "check", false, "Validate the catalog and report problems")
	cmd.Flags().StringVar(&flags.ExportDB, "export-db", "", "Write the catalog into a SQLite database")
	cmd.Flags().StringVar(&flags.ImportDB, "import-db", "", "Print the catalog stored in a SQLite database")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("catalog.path", cmd.Flags().Lookup("catalog"))
	viper.BindPFlag("language.default", cmd.Flags().Lookup("language"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".langswitch" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".langswitch")
	}

	// Environment variables
	viper.SetEnvPrefix("LANGSWITCH")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetCatalogPath returns the catalog path from flags, environment or config
func GetCatalogPath(flags *Flags) string {
	if flags.CatalogFile != "" {
		return flags.CatalogFile
	}
	return viper.GetString("catalog.path")
}

// GetDefaultLanguage returns the startup language from flags, environment
// or config. An empty result means "use the first catalog language".
func GetDefaultLanguage(flags *Flags) string {
	if flags.Language != "" {
		return flags.Language
	}
	return viper.GetString("language.default")
}
