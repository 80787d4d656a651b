package usecase

import (
	"testing"
	"time"

	"github.com/naka-gawa/repo-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStars(stars ...int) []domain.Repository {
	repos := make([]domain.Repository, len(stars))
	for i, s := range stars {
		repos[i] = domain.Repository{Name: string(rune('a' + i)), Language: "Go", Stars: s, Forks: s / 2}
	}
	return repos
}

func values(points []domain.Point) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		out = append(out, p.Value)
	}
	return out
}

func TestTopN(t *testing.T) {
	t.Run("orders descending by the metric", func(t *testing.T) {
		got := TopN(withStars(5, 100, 50), domain.MetricStars, DefaultTopN)
		assert.Equal(t, []float64{100, 50, 5}, values(got))
		assert.Equal(t, "b", got[0].Label)
	})

	t.Run("never returns more than n rows", func(t *testing.T) {
		got := TopN(withStars(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12), domain.MetricStars, DefaultTopN)
		require.Len(t, got, DefaultTopN)
		assert.Equal(t, 12.0, got[0].Value)
		assert.Equal(t, 3.0, got[9].Value)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Value, got[i].Value)
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		got := TopN(withStars(7, 9, 7, 7), domain.MetricStars, 3)
		assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].Label, got[1].Label, got[2].Label})
	})

	t.Run("uses the chosen metric", func(t *testing.T) {
		repos := []domain.Repository{
			{Name: "x", Forks: 1, OpenIssues: 9},
			{Name: "y", Forks: 8, OpenIssues: 2},
		}
		assert.Equal(t, "y", TopN(repos, domain.MetricForks, 1)[0].Label)
		assert.Equal(t, "x", TopN(repos, domain.MetricOpenIssues, 1)[0].Label)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, TopN(nil, domain.MetricStars, DefaultTopN))
	})
}

func TestFrequency(t *testing.T) {
	mit, apache := "MIT", "Apache-2.0"
	repos := []domain.Repository{
		{Language: "Go", License: &apache},
		{Language: "Rust", License: &mit},
		{Language: "Go", License: &mit},
		{Language: "Python"},
		{Language: "Go", License: &mit},
		{Language: "Rust"},
	}

	t.Run("counts descending with first-appearance ties", func(t *testing.T) {
		got := Frequency(repos, domain.FieldLanguage, DefaultTopN)
		assert.Equal(t, []domain.Point{
			{Label: "Go", Value: 3},
			{Label: "Rust", Value: 2},
			{Label: "Python", Value: 1},
		}, got)
	})

	t.Run("missing licenses are counted under None", func(t *testing.T) {
		got := Frequency(repos, domain.FieldLicense, 0)
		assert.Equal(t, []domain.Point{
			{Label: "MIT", Value: 3},
			{Label: domain.NoLicense, Value: 2},
			{Label: "Apache-2.0", Value: 1},
		}, got)
	})

	t.Run("counts sum to the record count", func(t *testing.T) {
		for _, field := range []domain.Field{domain.FieldLanguage, domain.FieldLicense} {
			total := 0.0
			for _, p := range Frequency(repos, field, 0) {
				total += p.Value
			}
			assert.Equal(t, float64(len(repos)), total)
		}
	})

	t.Run("limit", func(t *testing.T) {
		assert.Len(t, Frequency(repos, domain.FieldLanguage, 2), 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Frequency(nil, domain.FieldLanguage, DefaultTopN))
	})
}

func TestHistogram(t *testing.T) {
	t.Run("equal width bins over the range", func(t *testing.T) {
		bins := Histogram(withStars(0, 10, 20, 40, 100), domain.MetricStars, DefaultBins)
		require.Len(t, bins, DefaultBins)
		assert.Equal(t, 0.0, bins[0].Lower)
		assert.InDelta(t, 5.0, bins[0].Width(), 1e-9)
		assert.InDelta(t, 100.0, bins[DefaultBins-1].Upper, 1e-9)
		assert.Equal(t, 1, bins[0].Count)
		assert.Equal(t, 1, bins[2].Count)
		assert.Equal(t, 1, bins[4].Count)
		assert.Equal(t, 1, bins[8].Count)
		assert.Equal(t, 1, bins[DefaultBins-1].Count, "maximum falls in the last bin")
	})

	t.Run("probabilities sum to one and density integrates to one", func(t *testing.T) {
		bins := Histogram(withStars(3, 3, 8, 15, 16, 23, 42, 42, 42, 99, 1000), domain.MetricStars, DefaultBins)
		var prob, area float64
		count := 0
		for _, b := range bins {
			prob += b.Probability
			area += b.Density * b.Width()
			count += b.Count
		}
		assert.InDelta(t, 1.0, prob, 1e-9)
		assert.InDelta(t, 1.0, area, 1e-9)
		assert.Equal(t, 11, count)
	})

	t.Run("constant values use a unit width", func(t *testing.T) {
		bins := Histogram(withStars(7, 7, 7), domain.MetricStars, DefaultBins)
		require.Len(t, bins, DefaultBins)
		assert.Equal(t, 3, bins[0].Count)
		assert.Equal(t, 1.0, bins[0].Width())
		assert.Equal(t, 1.0, bins[0].Density)
	})

	t.Run("empty input has no bins", func(t *testing.T) {
		assert.Empty(t, Histogram(nil, domain.MetricForks, DefaultBins))
	})
}

func TestYearCounts(t *testing.T) {
	repos := []domain.Repository{
		{CreatedAt: time.Date(2019, 12, 31, 23, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2019, 3, 3, 0, 0, 0, 0, time.UTC)},
	}
	assert.Equal(t, []domain.Point{
		{Label: "2012", Value: 1},
		{Label: "2019", Value: 2},
	}, YearCounts(repos))
	assert.Empty(t, YearCounts(nil))
}

func TestScatter(t *testing.T) {
	got := Scatter([]domain.Repository{{Name: "a", Language: "Go", Stars: 3, Forks: 1}})
	assert.Equal(t, []domain.ScatterPoint{{Name: "a", Group: "Go", X: 3, Y: 1}}, got)
}

func TestSummarize(t *testing.T) {
	s := Summarize(withStars(5, 100, 50), domain.MetricStars)
	assert.Equal(t, domain.MetricStars, s.Metric)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 155.0, s.Sum)
	assert.InDelta(t, 51.666, s.Mean, 1e-3)
	assert.Equal(t, 50.0, s.Median)
	assert.Equal(t, 5.0, s.Min)
	assert.Equal(t, 100.0, s.Max)

	empty := Summarize(nil, domain.MetricForks)
	assert.Equal(t, domain.Summary{Metric: domain.MetricForks}, empty)
}
