package dashboard

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
)

// The chart reads exactly these labels, in this order. Records carrying any
// other risk value are counted but never displayed.
var riskLabels = []string{"Low Risk", "Medium Risk", "High Risk"}

// Summarize counts records per risk label. The three known labels are always
// present in the result; unknown labels create extra entries.
func Summarize(records []StudentRecord) map[string]int {
	counts := make(map[string]int, len(riskLabels))
	for _, label := range riskLabels {
		counts[label] = 0
	}
	for _, record := range records {
		counts[record.Risk]++
	}
	return counts
}

// ChartValues builds the three bars in fixed label order.
func ChartValues(records []StudentRecord) []chart.Value {
	counts := Summarize(records)
	values := make([]chart.Value, 0, len(riskLabels))
	for _, label := range riskLabels {
		values = append(values, chart.Value{
			Label: label,
			Value: float64(counts[label]),
		})
	}
	return values
}

// ChartRenderer draws the risk-category bar chart as a PNG.
type ChartRenderer struct {
	Width  int
	Height int
}

func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{Width: 640, Height: 400}
}

func (r *ChartRenderer) Render(records []StudentRecord) ([]byte, error) {
	values := ChartValues(records)

	// go-chart rejects a zero value range, so the axis always spans at least one.
	maxCount := 1.0
	for _, v := range values {
		if v.Value > maxCount {
			maxCount = v.Value
		}
	}

	graph := chart.BarChart{
		Title:    "Students per Risk Category",
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: maxCount},
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
