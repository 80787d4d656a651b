package usecase

import (
	"log"

	"github.com/naka-gawa/repo-insights/internal/domain"
	"github.com/naka-gawa/repo-insights/internal/render"
)

// Dashboard is the filter-aggregate-render pipeline over one loaded dataset.
// The dataset is read-only, so a Dashboard is safe for concurrent use.
type Dashboard struct {
	repos     []domain.Repository
	languages []string
	logger    *log.Logger
}

// NewDashboard creates a Dashboard over a copy of repos.
func NewDashboard(repos []domain.Repository, logger *log.Logger) *Dashboard {
	owned := make([]domain.Repository, len(repos))
	copy(owned, repos)
	return &Dashboard{
		repos:     owned,
		languages: Languages(owned),
		logger:    logger,
	}
}

// Languages returns every language in the dataset, the default selection.
func (d *Dashboard) Languages() []string {
	out := make([]string, len(d.languages))
	copy(out, d.languages)
	return out
}

// Len is the number of records in the dataset.
func (d *Dashboard) Len() int {
	return len(d.repos)
}

// Recompute runs the whole pipeline for sel and returns the resulting view.
// It never fails: an empty selection produces a view with empty charts.
func (d *Dashboard) Recompute(sel domain.Selection) domain.ViewModel {
	filtered := Filter(d.repos, sel)
	d.logger.Printf("Usecase: %d of %d repositories match the selection.", len(filtered), len(d.repos))

	selected := sel.Languages()
	if sel.IsAll() {
		selected = d.Languages()
	}
	if selected == nil {
		selected = []string{}
	}

	return domain.ViewModel{
		AllLanguages: sel.IsAll(),
		Selected:     selected,
		Languages:    d.Languages(),
		RecordCount:  len(filtered),
		TotalCount:   len(d.repos),
		Summaries: []domain.Summary{
			Summarize(filtered, domain.MetricStars),
			Summarize(filtered, domain.MetricForks),
			Summarize(filtered, domain.MetricOpenIssues),
		},
		Charts: render.Charts(Aggregate(filtered)),
	}
}
