// Package cmd wires the logview CLI: configuration loading and the
// commands that bootstrap the capture pipeline and console.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/logview/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "logview",
	Short: "In-process log capture with an interactive filter console",
	Long: `logview intercepts every slog emission in the process, keeps it in
bounded in-memory buffers, and lets you inspect the capture live with
runtime-adjustable severity and source filters.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/logview/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
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
		viper.AddConfigPath("$HOME/.config/logview")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LOGVIEW")
	// Replace dots with underscores for nested keys in env vars
	// e.g., LOGVIEW_CAPTURE_CAPACITY for capture.capacity
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
