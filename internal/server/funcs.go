package server

import (
	"html/template"
	"math"
	"strconv"

	"github.com/naka-gawa/repo-insights/internal/domain"
)

var funcMap = template.FuncMap{
	"number": formatNumber,
	"width":  barWidth,
	"peak":   peak,
	"binPeak": func(bins []domain.Bin) float64 {
		var p float64
		for _, b := range bins {
			p = math.Max(p, b.Density)
		}
		return p
	},
	"css": func(s string) template.CSS {
		return template.CSS(s)
	},
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// barWidth is v as a percentage of max, for CSS widths.
func barWidth(v, max float64) string {
	if max <= 0 {
		return "0%"
	}
	return strconv.FormatFloat(v/max*100, 'f', 1, 64) + "%"
}

func peak(points []domain.Point) float64 {
	var p float64
	for _, pt := range points {
		p = math.Max(p, pt.Value)
	}
	return p
}
