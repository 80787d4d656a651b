// Package gateway provides access to the repository dataset: the CSV file the
// dashboard reads, and the GitHub API the dataset is collected from.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/repo-insights/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching repository metadata from GitHub.
type Fetcher interface {
	// SearchRepositories returns up to limit repositories matching a GitHub search query.
	SearchRepositories(ctx context.Context, query string, limit int) ([]domain.Repository, error)
	// FetchRepository returns a single repository by owner and name.
	FetchRepository(ctx context.Context, owner, name string) (domain.Repository, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// repositoryQuery looks up the dashboard fields of one repository.
type repositoryQuery struct {
	Repository struct {
		Name            string
		NameWithOwner   string
		PrimaryLanguage struct {
			Name string
		}
		StargazerCount int
		ForkCount      int
		LicenseInfo    struct {
			Name string
		}
		Issues struct {
			TotalCount int
		} `graphql:"issues(states: OPEN)"`
		PullRequests struct {
			TotalCount int
		} `graphql:"pullRequests(states: OPEN)"`
		CreatedAt githubv4.DateTime
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// DefaultRateLimitWait is the longest single sleep on a secondary rate limit.
const DefaultRateLimitWait = time.Hour

// NewGitHubGateway creates a GitHubGateway authenticated with token.
// A request hitting GitHub's secondary rate limit sleeps up to maxWait before
// failing; maxWait <= 0 uses DefaultRateLimitWait.
func NewGitHubGateway(token string, maxWait time.Duration, logger *log.Logger) (*GitHubGateway, error) {
	if maxWait <= 0 {
		maxWait = DefaultRateLimitWait
	}
	onLimit := func(*github_ratelimit.CallbackContext) {
		logger.Printf("Secondary rate limit would sleep longer than %s, giving up on this request.", maxWait)
	}
	waiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(maxWait, onLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   waiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		},
	}
	logger.Printf("GitHub gateway ready, rate limit wait up to %s.", maxWait)
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

func (g *GitHubGateway) SearchRepositories(ctx context.Context, query string, limit int) ([]domain.Repository, error) {
	g.logger.Printf("Searching repositories using REST API: %s", query)
	perPage := 100
	if limit > 0 && limit < perPage {
		perPage = limit
	}
	opts := &github.SearchOptions{
		Sort:        "stars",
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	var repos []domain.Repository
	for {
		result, resp, err := g.restClient.Search.Repositories(ctx, query, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to search repositories with REST API: %w", err)
		}
		for _, r := range result.Repositories {
			repos = append(repos, fromREST(r))
			if limit > 0 && len(repos) >= limit {
				g.logger.Printf("Reached limit of %d repositories for query: %s", limit, query)
				return repos, nil
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Completed search, %d repositories for query: %s", len(repos), query)
	return repos, nil
}

func (g *GitHubGateway) FetchRepository(ctx context.Context, owner, name string) (domain.Repository, error) {
	g.logger.Printf("Fetching repository %s/%s using GraphQL API...", owner, name)
	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
	}
	var q repositoryQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return domain.Repository{}, fmt.Errorf("failed to execute GraphQL query for %s/%s: %w", owner, name, err)
	}
	repo := domain.Repository{
		Name:     q.Repository.Name,
		Language: q.Repository.PrimaryLanguage.Name,
		Forks:    q.Repository.ForkCount,
		Stars:    q.Repository.StargazerCount,
		License:  optionalString(q.Repository.LicenseInfo.Name),
		// Open pull requests are added so the count matches the REST
		// open_issues_count, which GitHub reports with pull requests included.
		OpenIssues: q.Repository.Issues.TotalCount + q.Repository.PullRequests.TotalCount,
		CreatedAt:  q.Repository.CreatedAt.Time,
		FullName:   q.Repository.NameWithOwner,
	}
	return repo, nil
}

// fromREST converts a REST search hit into a domain record.
func fromREST(r *github.Repository) domain.Repository {
	return domain.Repository{
		Name:       r.GetName(),
		Language:   r.GetLanguage(),
		Forks:      r.GetForksCount(),
		Stars:      r.GetStargazersCount(),
		License:    optionalString(r.GetLicense().GetName()),
		OpenIssues: r.GetOpenIssuesCount(),
		CreatedAt:  r.GetCreatedAt().Time,
		FullName:   r.GetFullName(),
	}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
