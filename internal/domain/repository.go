// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Repository holds the metadata of a single GitHub repository.
// It is the core domain entity of this application and is never mutated after loading.
type Repository struct {
	Name       string    `json:"name"`
	Language   string    `json:"language"`
	Forks      int       `json:"forks"`
	Stars      int       `json:"stars"`
	License    *string   `json:"license"`
	OpenIssues int       `json:"open_issues"`
	CreatedAt  time.Time `json:"created_at"`
	// FullName is "owner/name" when the record was collected from GitHub.
	// It is not part of the CSV dataset.
	FullName string `json:"full_name,omitempty"`
}

// Key identifies the repository: its full name when known, its short name otherwise.
func (r Repository) Key() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.Name
}

// CreationYear is the calendar year the repository was created in.
func (r Repository) CreationYear() int {
	return r.CreatedAt.Year()
}

// LicenseName returns the license type, or NoLicense when the record has none.
func (r Repository) LicenseName() string {
	if r.License == nil {
		return NoLicense
	}
	return *r.License
}

// NoLicense labels records whose license type is empty.
const NoLicense = "None"

// Metric selects one of the numeric fields of a Repository.
type Metric string

const (
	MetricStars      Metric = "stars"
	MetricForks      Metric = "forks"
	MetricOpenIssues Metric = "open_issues"
)

// Value returns the value of the metric for r.
func (m Metric) Value(r Repository) int {
	switch m {
	case MetricForks:
		return r.Forks
	case MetricOpenIssues:
		return r.OpenIssues
	default:
		return r.Stars
	}
}

// Label is the human readable axis label of the metric.
func (m Metric) Label() string {
	switch m {
	case MetricForks:
		return "Number of Forks"
	case MetricOpenIssues:
		return "Number of Open Issues"
	default:
		return "Number of Stars"
	}
}

// Field selects one of the categorical fields of a Repository.
type Field string

const (
	FieldLanguage Field = "language"
	FieldLicense  Field = "license"
)

// Value returns the value of the field for r.
func (f Field) Value(r Repository) string {
	if f == FieldLicense {
		return r.LicenseName()
	}
	return r.Language
}
