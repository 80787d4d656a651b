// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/repo-insights/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "repo-insights",
	Short: "A dashboard of GitHub repository metadata.",
	Long: `repo-insights loads a CSV of GitHub repository metadata (name, language,
stars, forks, license, open issues, creation date) and shows a fixed set of
charts, filtered by programming language. Charts can be printed to the terminal,
served over HTTP, and the dataset itself can be collected from GitHub.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
}

// newLogger discards all logs unless --verbose is set, then logs to standard error.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// loadConfig reads --config, falling back to defaults when it is unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.LoadOrDefault(path)
}

// dataPath is --data when given, otherwise the configured path.
func dataPath(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("data") {
		path, _ := cmd.Flags().GetString("data")
		return path
	}
	return cfg.Data.Path
}
