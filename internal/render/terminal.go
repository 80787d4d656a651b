package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/naka-gawa/repo-insights/internal/domain"
)

// barWidth is the length of the longest bar drawn in the terminal.
const barWidth = 40

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Terminal writes view models as styled text with one table per chart.
type Terminal struct {
	w io.Writer
}

// NewTerminal creates a Terminal renderer writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// Render writes the whole dashboard for vm.
func (t *Terminal) Render(vm domain.ViewModel) error {
	fmt.Fprintln(t.w, headerStyle.Render("GitHub Repository Analysis"))
	selected := strings.Join(vm.Selected, ", ")
	if vm.AllLanguages {
		selected = "all languages"
	} else if len(vm.Selected) == 0 {
		selected = "none"
	}
	fmt.Fprintf(t.w, "%s %d of %d repositories (%s)\n\n",
		dimStyle.Render("Showing"), vm.RecordCount, vm.TotalCount, selected)

	if err := t.summaries(vm.Summaries); err != nil {
		return err
	}
	for _, c := range vm.Charts {
		if err := t.Chart(c); err != nil {
			return fmt.Errorf("failed to render chart %s: %w", c.ID, err)
		}
	}
	return nil
}

func (t *Terminal) summaries(summaries []domain.Summary) error {
	if len(summaries) == 0 {
		return nil
	}
	table := tablewriter.NewWriter(t.w)
	table.Header("METRIC", "TOTAL", "MEAN", "MEDIAN", "MIN", "MAX")
	for _, s := range summaries {
		if err := table.Append(string(s.Metric), formatNumber(s.Sum), formatNumber(s.Mean),
			formatNumber(s.Median), formatNumber(s.Min), formatNumber(s.Max)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintln(t.w)
	return nil
}

// Chart writes a single chart.
func (t *Terminal) Chart(c domain.Chart) error {
	fmt.Fprintln(t.w, titleStyle.Render(c.Title))
	if c.Empty() {
		fmt.Fprintln(t.w, dimStyle.Render("  no data for the current selection"))
		fmt.Fprintln(t.w)
		return nil
	}

	table := tablewriter.NewWriter(t.w)
	var err error
	switch c.Kind {
	case domain.ChartHistogram:
		err = histogramRows(table, c)
	case domain.ChartScatter:
		err = scatterRows(table, c)
	case domain.ChartPie:
		err = pieRows(table, c)
	default:
		err = pointRows(table, c)
	}
	if err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintln(t.w)
	return nil
}

func pointRows(table *tablewriter.Table, c domain.Chart) error {
	label, value := c.XLabel, c.YLabel
	if c.Horizontal {
		label, value = c.YLabel, c.XLabel
	}
	table.Header(strings.ToUpper(label), strings.ToUpper(value), "")
	peak := maxValue(c.Points)
	for _, p := range c.Points {
		if err := table.Append(p.Label, formatNumber(p.Value), bar(p.Value, peak, p.Color)); err != nil {
			return err
		}
	}
	return nil
}

func pieRows(table *tablewriter.Table, c domain.Chart) error {
	table.Header("LABEL", "COUNT", "SHARE", "")
	var total float64
	for _, p := range c.Points {
		total += p.Value
	}
	for _, p := range c.Points {
		share := p.Value / total
		if err := table.Append(p.Label, formatNumber(p.Value),
			strconv.FormatFloat(share*100, 'f', 1, 64)+"%", bar(share, 1, p.Color)); err != nil {
			return err
		}
	}
	return nil
}

func histogramRows(table *tablewriter.Table, c domain.Chart) error {
	table.Header("RANGE", "COUNT", "DENSITY", "")
	var peak float64
	for _, b := range c.Bins {
		peak = math.Max(peak, b.Density)
	}
	for _, b := range c.Bins {
		rng := fmt.Sprintf("%s – %s", formatNumber(b.Lower), formatNumber(b.Upper))
		if err := table.Append(rng, strconv.Itoa(b.Count),
			strconv.FormatFloat(b.Density, 'g', 4, 64), bar(b.Density, peak, "")); err != nil {
			return err
		}
	}
	return nil
}

func scatterRows(table *tablewriter.Table, c domain.Chart) error {
	table.Header("REPOSITORY", "LANGUAGE", strings.ToUpper(c.XLabel), strings.ToUpper(c.YLabel))
	for _, p := range c.Scatter {
		group := p.Group
		if p.Color != "" {
			group = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(group)
		}
		if err := table.Append(p.Name, group, formatNumber(p.X), formatNumber(p.Y)); err != nil {
			return err
		}
	}
	return nil
}

// bar draws v relative to peak, coloured when color is set.
func bar(v, peak float64, color string) string {
	n := 0
	if peak > 0 {
		n = int(math.Round(v / peak * barWidth))
	}
	if v > 0 && n == 0 {
		n = 1
	}
	s := strings.Repeat("█", n)
	if color != "" && s != "" {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
	}
	return s
}

func maxValue(points []domain.Point) float64 {
	var peak float64
	for _, p := range points {
		peak = math.Max(peak, p.Value)
	}
	return peak
}

// formatNumber prints integers without a fraction and everything else with two decimals.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
