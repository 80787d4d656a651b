package gateway

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/naka-gawa/repo-insights/internal/domain"
)

// Column names of the repository dataset.
const (
	ColName       = "Repository_Name"
	ColLanguage   = "Programming_Language"
	ColForks      = "Number_of_Forks"
	ColStars      = "Number_of_Stars"
	ColLicense    = "License_Type"
	ColOpenIssues = "Number_of_Open_Issues"
	ColCreated    = "Creation_Date"
)

// Columns lists the required columns in the order WriteCSV emits them.
var Columns = []string{ColName, ColLanguage, ColForks, ColStars, ColLicense, ColOpenIssues, ColCreated}

// dateLayouts are tried in order when parsing Creation_Date.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05-07:00",
}

// LoadCSV reads the repository dataset at path.
// Any failure is reported as a *domain.DataFormatError and no records are returned.
func LoadCSV(path string) ([]domain.Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.DataFormatError{Source: path, Reason: "failed to open file", Err: err}
	}
	defer f.Close()
	return ReadCSV(f, path)
}

// ReadCSV parses the repository dataset from r. source names the data in errors.
func ReadCSV(r io.Reader, source string) ([]domain.Repository, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.DataFormatError{Source: source, Line: 1, Reason: "file is empty"}
	}
	if err != nil {
		return nil, &domain.DataFormatError{Source: source, Line: 1, Reason: "failed to read CSV header", Err: err}
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, &domain.DataFormatError{Source: source, Column: col, Reason: "missing required column"}
		}
	}

	var repos []domain.Repository
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			return nil, &domain.DataFormatError{Source: source, Line: line, Reason: "malformed CSV", Err: err}
		}
		line, _ := reader.FieldPos(0)

		p := rowParser{row: row, index: index, source: source, line: line}
		repo := domain.Repository{
			Name:       p.text(ColName),
			Language:   p.text(ColLanguage),
			Forks:      p.count(ColForks),
			Stars:      p.count(ColStars),
			License:    p.optional(ColLicense),
			OpenIssues: p.count(ColOpenIssues),
			CreatedAt:  p.date(ColCreated),
		}
		if p.err != nil {
			return nil, p.err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// rowParser extracts typed fields from one CSV row, keeping the first error.
type rowParser struct {
	row    []string
	index  map[string]int
	source string
	line   int
	err    error
}

func (p *rowParser) fail(col, reason string, err error) {
	if p.err == nil {
		p.err = &domain.DataFormatError{Source: p.source, Line: p.line, Column: col, Reason: reason, Err: err}
	}
}

func (p *rowParser) text(col string) string {
	i := p.index[col]
	if i >= len(p.row) {
		p.fail(col, "missing value", nil)
		return ""
	}
	return strings.TrimSpace(p.row[i])
}

func (p *rowParser) optional(col string) *string {
	v := p.text(col)
	if v == "" {
		return nil
	}
	return &v
}

func (p *rowParser) count(col string) int {
	raw := p.text(col)
	if raw == "" {
		p.fail(col, "missing value", nil)
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Exported spreadsheets sometimes carry counts as "12.0".
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			p.fail(col, fmt.Sprintf("%q is not an integer", raw), err)
			return 0
		}
		n = int(f)
	}
	if n < 0 {
		p.fail(col, fmt.Sprintf("%d is negative", n), nil)
		return 0
	}
	return n
}

func (p *rowParser) date(col string) time.Time {
	raw := p.text(col)
	if raw == "" {
		p.fail(col, "missing value", nil)
		return time.Time{}
	}
	t, err := ParseDate(raw)
	if err != nil {
		p.fail(col, fmt.Sprintf("%q is not a valid date", raw), err)
	}
	return t
}

// ParseDate parses a creation date in any of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// WriteCSV writes repos in the dataset format read by ReadCSV.
func WriteCSV(w io.Writer, repos []domain.Repository) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range repos {
		license := ""
		if r.License != nil {
			license = *r.License
		}
		record := []string{
			r.Name,
			r.Language,
			strconv.Itoa(r.Forks),
			strconv.Itoa(r.Stars),
			license,
			strconv.Itoa(r.OpenIssues),
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", r.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
