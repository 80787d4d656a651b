package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/repo-insights/internal/gateway"
	"github.com/naka-gawa/repo-insights/internal/usecase"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Collects a repository dataset from GitHub and writes it as CSV",
	Long: `Runs GitHub repository searches (REST API) and looks up individual
repositories (GraphQL API) concurrently, then writes the merged result in the
CSV format read by render and serve. Requires the GITHUB_TOKEN environment variable.`,
	Example: `  repo-insights fetch -q "language:go stars:>5000" -q "language:rust stars:>5000" -o repos.csv
  repo-insights fetch -r golang/go -r rust-lang/rust`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		req := usecase.CollectRequest{
			Queries: cfg.GitHub.Queries,
			Repos:   cfg.GitHub.Repos,
			Limit:   cfg.GitHub.MaxResults,
		}
		if cmd.Flags().Changed("query") {
			req.Queries, _ = cmd.Flags().GetStringArray("query")
		}
		if cmd.Flags().Changed("repo") {
			req.Repos, _ = cmd.Flags().GetStringSlice("repo")
		}
		if cmd.Flags().Changed("limit") {
			req.Limit, _ = cmd.Flags().GetInt("limit")
		}
		output := cfg.GitHub.Output
		if cmd.Flags().Changed("output") {
			output, _ = cmd.Flags().GetString("output")
		}
		if len(req.Queries) == 0 && len(req.Repos) == 0 {
			return fmt.Errorf("nothing to fetch: pass --query or --repo, or set github.queries in the config")
		}
		if req.Limit < 0 {
			return fmt.Errorf("--limit must be >= 0")
		}

		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			return fmt.Errorf("GITHUB_TOKEN environment variable is not set")
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, cfg.GitHub.RateLimitWait, logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		collector := usecase.NewCollector(githubGateway, logger)

		repos, err := collector.Collect(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to collect repositories: %w", err)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		if err := gateway.WriteCSV(f, repos); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d repositories to %s\n", len(repos), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringArrayP("query", "q", nil, "GitHub repository search query (repeatable)")
	fetchCmd.Flags().StringSliceP("repo", "r", nil, "Repository to include, as owner/name (repeatable)")
	fetchCmd.Flags().Int("limit", 100, "Maximum repositories per query, 0 for no limit")
	fetchCmd.Flags().StringP("output", "o", "github_repos.csv", "Output CSV path")
}
