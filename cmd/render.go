package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/repo-insights/internal/domain"
	"github.com/naka-gawa/repo-insights/internal/gateway"
	"github.com/naka-gawa/repo-insights/internal/render"
	"github.com/naka-gawa/repo-insights/internal/usecase"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Prints the dashboard for a language selection",
	Long: `Loads the dataset, keeps the repositories written in the selected languages
and prints every chart of the dashboard, as styled text or as JSON.
Without --language every language in the dataset is selected.`,
	Example: `  repo-insights render --data github_repos.csv
  repo-insights render -l Go -l Rust --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("invalid --format %q, expected text or json", format)
		}
		languages, _ := cmd.Flags().GetStringSlice("language")
		none, _ := cmd.Flags().GetBool("none")

		path := dataPath(cmd, cfg)
		logger.Printf("Loading dataset from %s...", path)
		repos, err := gateway.LoadCSV(path)
		if err != nil {
			return err
		}

		sel := domain.AllLanguages()
		switch {
		case none:
			sel = domain.SelectLanguages()
		case len(languages) > 0:
			sel = domain.SelectLanguages(languages...)
		}

		vm := usecase.NewDashboard(repos, logger).Recompute(sel)

		out := cmd.OutOrStdout()
		if format == "json" {
			jsonData, err := json.MarshalIndent(vm, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal view to JSON: %w", err)
			}
			fmt.Fprintln(out, string(jsonData))
			return nil
		}
		return render.NewTerminal(out).Render(vm)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("data", "d", "", "Path to the repository CSV (default from config: github_repos.csv)")
	renderCmd.Flags().StringSliceP("language", "l", nil, "Programming language to include (repeatable)")
	renderCmd.Flags().Bool("none", false, "Select no language at all")
	renderCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	renderCmd.MarkFlagsMutuallyExclusive("language", "none")
}
