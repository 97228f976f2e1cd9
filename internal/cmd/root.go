// Package cmd implements the todomvc command line: the terminal UI and
// headless commands that drive the same controller.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/todomvc/internal/config"
	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "todomvc",
	Short: "A TodoMVC task list for the terminal",
	Long: `todomvc keeps a task list and shows it in an interactive terminal UI.

Run without a subcommand to open the UI. The other commands change or print
the list without it, so they can be used from scripts.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runStart,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// Exit statuses returned by ExitCode.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps an error returned by Execute to a process exit status.
// Errors the user can fix by changing the input, such as a missing task or
// an invalid title or configuration, exit with ExitUsage.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case apperrors.IsUserFacing(err), apperrors.Is(err, apperrors.ErrInvalidInput):
		return ExitUsage
	default:
		return ExitError
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/todomvc/config.yaml)")
	rootCmd.PersistentFlags().String("driver", "", "store driver: memory, file, sqlite or mysql")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for the task store and logs")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("store.driver", rootCmd.PersistentFlags().Lookup("driver"))
	_ = viper.BindPFlag("paths.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TODOMVC")
	// TODOMVC_STORE_DRIVER for store.driver
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
