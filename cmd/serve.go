package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/repo-insights/internal/gateway"
	"github.com/naka-gawa/repo-insights/internal/server"
	"github.com/naka-gawa/repo-insights/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the dashboard over HTTP",
	Long: `Loads the dataset once and serves the dashboard: an HTML page with the
language filter at /, and the JSON view at /api/view?language=...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		path := dataPath(cmd, cfg)
		logger.Printf("Loading dataset from %s...", path)
		repos, err := gateway.LoadCSV(path)
		if err != nil {
			return err
		}

		srv, err := server.New(usecase.NewDashboard(repos, logger), logger)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
		httpServer := &http.Server{
			Addr:              addr,
			Handler:           srv,
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		eg, egCtx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %d repositories on http://%s\n", len(repos), addr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to serve: %w", err)
			}
			return nil
		})
		eg.Go(func() error {
			<-egCtx.Done()
			logger.Println("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
		return eg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("data", "d", "", "Path to the repository CSV (default from config: github_repos.csv)")
	serveCmd.Flags().String("addr", "", "Listen address (default from config: 127.0.0.1:8080)")
}
