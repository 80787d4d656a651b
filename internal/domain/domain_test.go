package domain

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelection(t *testing.T) {
	all := AllLanguages()
	assert.True(t, all.IsAll())
	assert.True(t, all.Contains("anything"))
	assert.Nil(t, all.Languages())

	sel := SelectLanguages("Go", "Rust", "Go")
	assert.False(t, sel.IsAll())
	assert.True(t, sel.Contains("Go"))
	assert.False(t, sel.Contains("go"))
	assert.Equal(t, []string{"Go", "Rust"}, sel.Languages())

	var zero Selection
	assert.False(t, zero.Contains("Go"))
	assert.Empty(t, zero.Languages())
}

func TestRepositoryAccessors(t *testing.T) {
	gpl := "GPL-3.0"
	r := Repository{Name: "x", Language: "C", Stars: 3, Forks: 2, OpenIssues: 1, License: &gpl,
		CreatedAt: time.Date(2011, 5, 5, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, 2011, r.CreationYear())
	assert.Equal(t, 3, MetricStars.Value(r))
	assert.Equal(t, 2, MetricForks.Value(r))
	assert.Equal(t, 1, MetricOpenIssues.Value(r))
	assert.Equal(t, "C", FieldLanguage.Value(r))
	assert.Equal(t, "GPL-3.0", FieldLicense.Value(r))

	r.License = nil
	assert.Equal(t, NoLicense, FieldLicense.Value(r))

	assert.Equal(t, "x", r.Key())
	r.FullName = "someone/x"
	assert.Equal(t, "someone/x", r.Key())
}

func TestDataFormatError(t *testing.T) {
	err := &DataFormatError{Source: "repos.csv", Line: 4, Column: "Creation_Date", Reason: `"x" is not a valid date`}
	assert.Equal(t, `invalid dataset repos.csv (line 4, column Creation_Date): "x" is not a valid date`, err.Error())

	missing := &DataFormatError{Source: "repos.csv", Column: "Number_of_Stars", Reason: "missing required column"}
	assert.Equal(t, "invalid dataset repos.csv (column Number_of_Stars): missing required column", missing.Error())

	wrapped := &DataFormatError{Source: "repos.csv", Reason: "failed to open file", Err: fs.ErrNotExist}
	assert.True(t, errors.Is(wrapped, fs.ErrNotExist))
	assert.Contains(t, wrapped.Error(), "file does not exist")
}
