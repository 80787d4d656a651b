// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/naka-gawa/repo-insights/internal/domain"
	"github.com/naka-gawa/repo-insights/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the number of GitHub requests in flight.
const maxConcurrentFetches = 4

// Collector is the use case for building a repository dataset from GitHub.
// It orchestrates the fetching and combining of data.
type Collector struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewCollector creates a new Collector instance.
func NewCollector(fetcher gateway.Fetcher, logger *log.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		logger:  logger,
	}
}

// CollectRequest describes which repositories to collect.
type CollectRequest struct {
	Queries []string // GitHub search queries
	Repos   []string // explicit "owner/name" repositories
	Limit   int      // maximum results per query, 0 for no limit
}

// Collect fetches all requested repositories concurrently and merges them.
// Results keep request order (queries first, then explicit repositories)
// and a repository returned more than once, matched by its owner/name full
// name, is kept only the first time.
func (c *Collector) Collect(ctx context.Context, req CollectRequest) ([]domain.Repository, error) {
	c.logger.Println("Usecase: Starting data collection...")

	type ownerName struct{ owner, name string }
	targets := make([]ownerName, len(req.Repos))
	for i, full := range req.Repos {
		owner, name, ok := strings.Cut(full, "/")
		if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
			return nil, fmt.Errorf("invalid repository %q, expected owner/name", full)
		}
		targets[i] = ownerName{owner, name}
	}

	searched := make([][]domain.Repository, len(req.Queries))
	fetched := make([]domain.Repository, len(targets))

	// Use an errgroup to fetch all data concurrently.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentFetches)

	for i, query := range req.Queries {
		eg.Go(func() error {
			repos, err := c.fetcher.SearchRepositories(egCtx, query, req.Limit)
			if err != nil {
				return err
			}
			searched[i] = repos
			return nil
		})
	}
	for i, t := range targets {
		eg.Go(func() error {
			repo, err := c.fetcher.FetchRepository(egCtx, t.owner, t.name)
			if err != nil {
				return err
			}
			fetched[i] = repo
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	c.logger.Println("Usecase: All data fetched successfully.")

	seen := make(map[string]struct{})
	merged := make([]domain.Repository, 0)
	add := func(r domain.Repository) {
		k := r.Key()
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		merged = append(merged, r)
	}
	for _, repos := range searched {
		for _, r := range repos {
			add(r)
		}
	}
	for _, r := range fetched {
		add(r)
	}

	c.logger.Printf("Usecase: Collection complete, %d repositories.", len(merged))
	return merged, nil
}
