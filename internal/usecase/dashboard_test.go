package usecase

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/naka-gawa/repo-insights/internal/domain"
	"github.com/naka-gawa/repo-insights/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(repos []domain.Repository) *Dashboard {
	return NewDashboard(repos, log.New(io.Discard, "", 0))
}

func chartByID(t *testing.T, vm domain.ViewModel, id string) domain.Chart {
	t.Helper()
	for _, c := range vm.Charts {
		if c.ID == id {
			return c
		}
	}
	require.Failf(t, "chart not found", "no chart with id %q", id)
	return domain.Chart{}
}

func TestDashboard_Recompute(t *testing.T) {
	mit := "MIT"
	repos := []domain.Repository{
		{Name: "small", Language: "Go", Stars: 5, Forks: 1, OpenIssues: 4, License: &mit, CreatedAt: time.Date(2016, 4, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "huge", Language: "Go", Stars: 100, Forks: 30, OpenIssues: 0, CreatedAt: time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "mid", Language: "Rust", Stars: 50, Forks: 12, OpenIssues: 9, License: &mit, CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	d := newTestDashboard(repos)

	t.Run("all languages", func(t *testing.T) {
		vm := d.Recompute(domain.AllLanguages())
		assert.True(t, vm.AllLanguages)
		assert.Equal(t, []string{"Go", "Rust"}, vm.Selected)
		assert.Equal(t, []string{"Go", "Rust"}, vm.Languages)
		assert.Equal(t, 3, vm.RecordCount)
		assert.Equal(t, 3, vm.TotalCount)
		require.Len(t, vm.Charts, 9)

		stars := chartByID(t, vm, render.ChartTopStarred)
		assert.Equal(t, []float64{100, 50, 5}, values(stars.Points))
		assert.Equal(t, []string{"huge", "mid", "small"}, []string{stars.Points[0].Label, stars.Points[1].Label, stars.Points[2].Label})

		years := chartByID(t, vm, render.ChartCreatedByYear)
		assert.Equal(t, []domain.Point{{Label: "2016", Value: 2}, {Label: "2020", Value: 1}}, years.Points)

		licenses := chartByID(t, vm, render.ChartTopLicenses)
		assert.Equal(t, []float64{2, 1}, values(licenses.Points))

		require.Len(t, vm.Summaries, 3)
		assert.Equal(t, 155.0, vm.Summaries[0].Sum)
	})

	t.Run("single language", func(t *testing.T) {
		vm := d.Recompute(domain.SelectLanguages("Rust"))
		assert.False(t, vm.AllLanguages)
		assert.Equal(t, []string{"Rust"}, vm.Selected)
		assert.Equal(t, 1, vm.RecordCount)
		issues := chartByID(t, vm, render.ChartTopOpenIssues)
		assert.Equal(t, []float64{9}, values(issues.Points))
	})

	t.Run("empty selection yields empty charts without error", func(t *testing.T) {
		vm := d.Recompute(domain.SelectLanguages())
		assert.Equal(t, 0, vm.RecordCount)
		assert.Equal(t, []string{}, vm.Selected)
		require.Len(t, vm.Charts, 9)
		for _, c := range vm.Charts {
			assert.True(t, c.Empty(), "chart %s should be empty", c.ID)
		}
		for _, s := range vm.Summaries {
			assert.Equal(t, 0, s.Count)
		}
	})

	t.Run("recompute is repeatable", func(t *testing.T) {
		sel := domain.SelectLanguages("Go")
		assert.Equal(t, d.Recompute(sel), d.Recompute(sel))
	})
}

func TestNewDashboard_CopiesInput(t *testing.T) {
	repos := []domain.Repository{{Name: "a", Language: "Go"}}
	d := newTestDashboard(repos)
	repos[0].Language = "Rust"
	assert.Equal(t, []string{"Go"}, d.Languages())
	assert.Equal(t, 1, d.Len())
}
