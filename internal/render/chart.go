// Package render maps aggregated views to chart specifications and displays them.
package render

import "github.com/naka-gawa/repo-insights/internal/domain"

// Chart identifiers, in dashboard order.
const (
	ChartTopForked     = "top-forked"
	ChartTopStarred    = "top-starred"
	ChartForksDist     = "forks-distribution"
	ChartTopLicenses   = "top-licenses"
	ChartLanguages     = "languages"
	ChartStarsDist     = "stars-distribution"
	ChartCreatedByYear = "created-by-year"
	ChartStarsVsForks  = "stars-vs-forks"
	ChartTopOpenIssues = "top-open-issues"
)

// Charts maps aggregates to the dashboard's chart specifications.
func Charts(agg domain.Aggregates) []domain.Chart {
	return []domain.Chart{
		rankedBar(ChartTopForked, "Top 10 Most Forked Repositories", domain.MetricForks, ScaleRainbow, agg.TopForked),
		rankedBar(ChartTopStarred, "Top 10 Most Bookmarked Repositories", domain.MetricStars, ScaleRainbow, agg.TopStarred),
		histogram(ChartForksDist, "Distribution of Forks Across Repositories", domain.MetricForks, agg.ForkBins),
		{
			ID:         ChartTopLicenses,
			Kind:       domain.ChartBar,
			Title:      "Top 10 Most Used License Types",
			XLabel:     "License Type",
			YLabel:     "Number of Repositories",
			ColorScale: ScaleViridis,
			Points:     colorByValue(agg.Licenses, ScaleViridis),
		},
		{
			ID:         ChartLanguages,
			Kind:       domain.ChartPie,
			Title:      "Programming Language Distribution",
			ColorScale: ScalePlotly,
			Points:     colorByCategory(agg.Languages),
		},
		histogram(ChartStarsDist, "Distribution of Stars Across Repositories", domain.MetricStars, agg.StarBins),
		{
			ID:      ChartCreatedByYear,
			Kind:    domain.ChartLine,
			Title:   "Number of Repositories Created Over Time",
			XLabel:  "Year",
			YLabel:  "Number of Repositories",
			Markers: true,
			Points:  agg.Years,
		},
		{
			ID:         ChartStarsVsForks,
			Kind:       domain.ChartScatter,
			Title:      "Stars vs Forks by Programming Language",
			XLabel:     domain.MetricStars.Label(),
			YLabel:     domain.MetricForks.Label(),
			ColorScale: ScalePlotly,
			Scatter:    colorByGroup(agg.Scatter),
		},
		rankedBar(ChartTopOpenIssues, "Top 10 Repositories with Most Open Issues", domain.MetricOpenIssues, ScalePlasma, agg.TopOpenIssues),
	}
}

func rankedBar(id, title string, metric domain.Metric, scale string, points []domain.Point) domain.Chart {
	return domain.Chart{
		ID:         id,
		Kind:       domain.ChartBar,
		Title:      title,
		XLabel:     metric.Label(),
		YLabel:     "Repository Name",
		ColorScale: scale,
		Horizontal: true,
		Points:     colorByValue(points, scale),
	}
}

func histogram(id, title string, metric domain.Metric, bins []domain.Bin) domain.Chart {
	return domain.Chart{
		ID:     id,
		Kind:   domain.ChartHistogram,
		Title:  title,
		XLabel: metric.Label(),
		YLabel: "Probability Density",
		Bins:   bins,
	}
}

func colorByValue(points []domain.Point, scale string) []domain.Point {
	if len(points) == 0 {
		return nil
	}
	lo, hi := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}
	out := make([]domain.Point, len(points))
	for i, p := range points {
		p.Color = ContinuousColor(scale, p.Value, lo, hi)
		out[i] = p
	}
	return out
}

func colorByCategory(points []domain.Point) []domain.Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]domain.Point, len(points))
	for i, p := range points {
		p.Color = CategoryColor(i)
		out[i] = p
	}
	return out
}

// colorByGroup assigns one colour per group in first-appearance order.
func colorByGroup(points []domain.ScatterPoint) []domain.ScatterPoint {
	if len(points) == 0 {
		return nil
	}
	groups := make(map[string]int)
	out := make([]domain.ScatterPoint, len(points))
	for i, p := range points {
		idx, ok := groups[p.Group]
		if !ok {
			idx = len(groups)
			groups[p.Group] = idx
		}
		p.Color = CategoryColor(idx)
		out[i] = p
	}
	return out
}
