package render

import "math"

// Colour scale names carried on chart specifications.
const (
	ScaleRainbow = "Rainbow"
	ScaleViridis = "Viridis"
	ScalePlasma  = "Plasma"
	ScalePlotly  = "Plotly"
)

// Sequential scales run from the lowest to the highest value.
var sequential = map[string][]string{
	ScaleRainbow: {"#96005A", "#0000C8", "#0019FF", "#0098FF", "#2CFF96", "#97FF00", "#FFEA00", "#FF6F00", "#FF0000"},
	ScaleViridis: {"#440154", "#482878", "#3E4989", "#31688E", "#26828E", "#1F9E89", "#35B779", "#6ECE58", "#B5DE2B", "#FDE725"},
	ScalePlasma:  {"#0D0887", "#46039F", "#7201A8", "#9C179E", "#BD3786", "#D8576B", "#ED7953", "#FB9F3A", "#FDCA26", "#F0F921"},
}

// qualitative is the discrete palette for categories.
var qualitative = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// ContinuousColor picks the colour of v within [lo, hi] on a sequential scale.
func ContinuousColor(scale string, v, lo, hi float64) string {
	colors, ok := sequential[scale]
	if !ok {
		colors = sequential[ScaleViridis]
	}
	if hi <= lo {
		return colors[len(colors)-1]
	}
	t := (v - lo) / (hi - lo)
	idx := int(math.Round(t * float64(len(colors)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(colors) {
		idx = len(colors) - 1
	}
	return colors[idx]
}

// CategoryColor returns the colour of the i-th category.
func CategoryColor(i int) string {
	return qualitative[i%len(qualitative)]
}
