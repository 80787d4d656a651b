package domain

// Point is a single (label, value) pair of an aggregated view.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// Bin is one equal-width bucket of a histogram.
// Probability is count/n; Density is Probability divided by the bin width.
type Bin struct {
	Lower       float64 `json:"lower"`
	Upper       float64 `json:"upper"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
	Density     float64 `json:"density"`
}

// Width is the width of the bin.
func (b Bin) Width() float64 {
	return b.Upper - b.Lower
}

// ScatterPoint is one repository plotted by stars (X) and forks (Y).
type ScatterPoint struct {
	Name  string  `json:"name"`
	Group string  `json:"group"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
}

// ChartKind is the visual form of a chart.
type ChartKind string

const (
	ChartBar       ChartKind = "bar"
	ChartHistogram ChartKind = "histogram"
	ChartPie       ChartKind = "pie"
	ChartLine      ChartKind = "line"
	ChartScatter   ChartKind = "scatter"
)

// Chart is a render-ready chart specification.
// Exactly one of Points, Bins or Scatter is populated, depending on Kind.
type Chart struct {
	ID         string         `json:"id"`
	Kind       ChartKind      `json:"kind"`
	Title      string         `json:"title"`
	XLabel     string         `json:"x_label,omitempty"`
	YLabel     string         `json:"y_label,omitempty"`
	ColorScale string         `json:"color_scale,omitempty"`
	Markers    bool           `json:"markers,omitempty"`
	Horizontal bool           `json:"horizontal,omitempty"`
	Points     []Point        `json:"points,omitempty"`
	Bins       []Bin          `json:"bins,omitempty"`
	Scatter    []ScatterPoint `json:"scatter,omitempty"`
}

// Empty reports whether the chart has nothing to draw.
func (c Chart) Empty() bool {
	return len(c.Points) == 0 && len(c.Bins) == 0 && len(c.Scatter) == 0
}

// Summary holds descriptive statistics of a metric over a record set.
type Summary struct {
	Metric Metric  `json:"metric"`
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// ViewModel is everything a dashboard binding needs to display one selection.
type ViewModel struct {
	AllLanguages bool      `json:"all_languages"`
	Selected     []string  `json:"selected"`
	Languages    []string  `json:"languages"`
	RecordCount  int       `json:"record_count"`
	TotalCount   int       `json:"total_count"`
	Summaries    []Summary `json:"summaries"`
	Charts       []Chart   `json:"charts"`
}

// Aggregates holds the aggregated views of one filtered record set,
// before they are mapped to chart specifications.
type Aggregates struct {
	TopForked     []Point
	TopStarred    []Point
	TopOpenIssues []Point
	Licenses      []Point
	Languages     []Point
	ForkBins      []Bin
	StarBins      []Bin
	Years         []Point
	Scatter       []ScatterPoint
}
