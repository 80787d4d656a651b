package usecase

import (
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/repo-insights/internal/domain"
)

const (
	// DefaultTopN is the number of entries shown by ranked charts.
	DefaultTopN = 10
	// DefaultBins is the number of histogram bins.
	DefaultBins = 20
)

// TopN returns the n records with the largest metric, descending.
// Ties keep their input order.
func TopN(records []domain.Repository, metric domain.Metric, n int) []domain.Point {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	sorted := make([]domain.Repository, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metric.Value(sorted[i]) > metric.Value(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	points := make([]domain.Point, len(sorted))
	for i, r := range sorted {
		points[i] = domain.Point{Label: r.Name, Value: float64(metric.Value(r))}
	}
	return points
}

// Frequency counts records per distinct value of field, descending by count.
// Ties keep first-appearance order. n <= 0 returns every value.
func Frequency(records []domain.Repository, field domain.Field, n int) []domain.Point {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		v := field.Value(r)
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if n > 0 && len(order) > n {
		order = order[:n]
	}
	points := make([]domain.Point, len(order))
	for i, v := range order {
		points[i] = domain.Point{Label: v, Value: float64(counts[v])}
	}
	return points
}

// Histogram partitions the range of metric into equal-width bins.
// The last bin is closed on the right. A constant metric uses a unit bin width.
func Histogram(records []domain.Repository, metric domain.Metric, bins int) []domain.Bin {
	if len(records) == 0 || bins <= 0 {
		return nil
	}
	data := metricData(records, metric)
	lo, _ := stats.Min(data)
	hi, _ := stats.Max(data)
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1
	}

	out := make([]domain.Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	for _, v := range data {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	n := float64(len(data))
	for i := range out {
		p := float64(out[i].Count) / n
		out[i].Probability = p
		out[i].Density = p / width
	}
	return out
}

// YearCounts counts records per creation year, ascending by year.
func YearCounts(records []domain.Repository) []domain.Point {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.CreationYear()]++
	}
	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)
	points := make([]domain.Point, len(years))
	for i, y := range years {
		points[i] = domain.Point{Label: strconv.Itoa(y), Value: float64(counts[y])}
	}
	return points
}

// Scatter returns one stars/forks point per record, grouped by language.
func Scatter(records []domain.Repository) []domain.ScatterPoint {
	points := make([]domain.ScatterPoint, len(records))
	for i, r := range records {
		points[i] = domain.ScatterPoint{
			Name:  r.Name,
			Group: r.Language,
			X:     float64(r.Stars),
			Y:     float64(r.Forks),
		}
	}
	return points
}

// Summarize computes descriptive statistics of metric. Empty input yields a zero summary.
func Summarize(records []domain.Repository, metric domain.Metric) domain.Summary {
	s := domain.Summary{Metric: metric, Count: len(records)}
	if len(records) == 0 {
		return s
	}
	data := metricData(records, metric)
	s.Sum, _ = stats.Sum(data)
	s.Mean, _ = stats.Mean(data)
	s.Median, _ = stats.Median(data)
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	return s
}

// Aggregate computes every view the dashboard displays.
func Aggregate(records []domain.Repository) domain.Aggregates {
	return domain.Aggregates{
		TopForked:     TopN(records, domain.MetricForks, DefaultTopN),
		TopStarred:    TopN(records, domain.MetricStars, DefaultTopN),
		TopOpenIssues: TopN(records, domain.MetricOpenIssues, DefaultTopN),
		Licenses:      Frequency(records, domain.FieldLicense, DefaultTopN),
		Languages:     Frequency(records, domain.FieldLanguage, DefaultTopN),
		ForkBins:      Histogram(records, domain.MetricForks, DefaultBins),
		StarBins:      Histogram(records, domain.MetricStars, DefaultBins),
		Years:         YearCounts(records),
		Scatter:       Scatter(records),
	}
}

func metricData(records []domain.Repository, metric domain.Metric) stats.Float64Data {
	data := make(stats.Float64Data, len(records))
	for i, r := range records {
		data[i] = float64(metric.Value(r))
	}
	return data
}
