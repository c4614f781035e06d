package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

// sampleRecords returns one fully populated record and one missing both
// score and created_at.
func sampleRecords() []StudentRecord {
	return []StudentRecord{
		{Name: "A", Score: floatPtr(91.5), Risk: "Low Risk", Reason: "x", CreatedAt: "2024-01-01T00:00:00Z"},
		{Name: "B", Risk: "High Risk", Reason: "y"},
	}
}

type stubSource struct {
	records []StudentRecord
	err     error
}

func (s *stubSource) FetchStudents(ctx context.Context) ([]StudentRecord, error) {
	return s.records, s.err
}

// --- Fetcher ---

func TestHTTPSourceFetchStudents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"name":"A","score":91.5,"risk":"Low Risk","reason":"x","created_at":"2024-01-01T00:00:00Z"},
			{"name":"B","risk":"High Risk","reason":"y"}
		]`)
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL)
	records, err := source.FetchStudents(context.Background())

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Name)
	if assert.NotNil(t, records[0].Score) {
		assert.Equal(t, 91.5, *records[0].Score)
	}
	assert.Nil(t, records[1].Score)
	assert.Empty(t, records[1].CreatedAt)
}

func TestHTTPSourceMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL)
	_, err := source.FetchStudents(context.Background())

	assert.Error(t, err)
}

// --- Table renderer ---

func TestRenderRowsOneRowPerRecord(t *testing.T) {
	renderer := NewTableRenderer()
	records := []StudentRecord{
		{Name: "First", Risk: "Low Risk"},
		{Name: "Second", Risk: "Medium Risk"},
		{Name: "Third", Risk: "High Risk"},
	}

	rows, err := renderer.RenderRows(records)
	assert.NoError(t, err)

	html := string(rows)
	assert.Equal(t, 3, strings.Count(html, "<tr>"))
	// Input order is preserved.
	assert.Less(t, strings.Index(html, "First"), strings.Index(html, "Second"))
	assert.Less(t, strings.Index(html, "Second"), strings.Index(html, "Third"))
}

func TestRenderRowsFormatting(t *testing.T) {
	renderer := NewTableRenderer()

	rows, err := renderer.RenderRows(sampleRecords())
	assert.NoError(t, err)

	html := string(rows)
	assert.Contains(t, html, "<td>91.50</td>")
	assert.Contains(t, html, "<td>0.00</td>")
	assert.Contains(t, html, "<td>01 Jan 2024 00:00</td>")
	// Missing created_at renders as an empty cell.
	assert.Contains(t, html, "<td>y</td><td></td>")
}

func TestRenderRowsReplacesContent(t *testing.T) {
	renderer := NewTableRenderer()

	first, err := renderer.RenderRows([]StudentRecord{{Name: "Old", Risk: "Low Risk"}})
	assert.NoError(t, err)

	second, err := renderer.RenderRows([]StudentRecord{{Name: "New", Risk: "High Risk"}})
	assert.NoError(t, err)

	assert.Contains(t, string(first), "Old")
	assert.NotContains(t, string(second), "Old")
	assert.Equal(t, 1, strings.Count(string(second), "<tr>"))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0.00", formatScore(nil))
	assert.Equal(t, "91.50", formatScore(floatPtr(91.5)))
	assert.Equal(t, "0.00", formatScore(floatPtr(0)))
	assert.Equal(t, "100.00", formatScore(floatPtr(100)))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "", formatTimestamp(""))
	assert.Equal(t, "01 Jan 2024 00:00", formatTimestamp("2024-01-01T00:00:00Z"))
	// Present but unparseable values pass through untouched.
	assert.Equal(t, "yesterday", formatTimestamp("yesterday"))
}

// --- Chart ---

func TestSummarizeFixedBuckets(t *testing.T) {
	records := []StudentRecord{
		{Risk: "Low Risk"},
		{Risk: "Low Risk"},
		{Risk: "High Risk"},
		{Risk: "Unknown"},
		{Risk: "Unknown"},
	}

	counts := Summarize(records)

	assert.Equal(t, 2, counts["Low Risk"])
	assert.Equal(t, 0, counts["Medium Risk"])
	assert.Equal(t, 1, counts["High Risk"])
	// Unmatched labels are counted but never read by the chart.
	assert.Equal(t, 2, counts["Unknown"])
}

func TestChartValuesIgnoreUnmatchedLabels(t *testing.T) {
	records := []StudentRecord{
		{Risk: "Low Risk"},
		{Risk: "Medium Risk"},
		{Risk: "Medium Risk"},
		{Risk: "High Risk"},
		{Risk: "High Risk"},
		{Risk: "High Risk"},
		{Risk: "Something Else"},
	}

	values := ChartValues(records)

	assert.Len(t, values, 3)
	assert.Equal(t, "Low Risk", values[0].Label)
	assert.Equal(t, 1.0, values[0].Value)
	assert.Equal(t, "Medium Risk", values[1].Label)
	assert.Equal(t, 2.0, values[1].Value)
	assert.Equal(t, "High Risk", values[2].Label)
	assert.Equal(t, 3.0, values[2].Value)
}

func TestChartValuesSampleRecords(t *testing.T) {
	values := ChartValues(sampleRecords())

	assert.Equal(t, []float64{1, 0, 1}, []float64{values[0].Value, values[1].Value, values[2].Value})
}

func TestChartRendererProducesPNG(t *testing.T) {
	renderer := NewChartRenderer()

	png, err := renderer.Render(sampleRecords())
	assert.NoError(t, err)
	assert.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestChartRendererEmptyInput(t *testing.T) {
	renderer := NewChartRenderer()

	// All-zero buckets still render: the axis spans at least one.
	png, err := renderer.Render(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
}

// --- Session & pipeline ---

func TestPipelineRefresh(t *testing.T) {
	session := NewSession()
	pipeline := NewPipeline(&stubSource{records: sampleRecords()}, session)

	err := pipeline.Refresh(context.Background())
	assert.NoError(t, err)

	html := string(session.Table())
	assert.Equal(t, 2, strings.Count(html, "<tr>"))
	assert.Contains(t, html, "<td>0.00</td>")
	assert.True(t, session.HasChart())
}

func TestPipelineRefreshReplacesChart(t *testing.T) {
	session := NewSession()
	source := &stubSource{records: sampleRecords()}
	pipeline := NewPipeline(source, session)

	assert.NoError(t, pipeline.Refresh(context.Background()))
	first := session.ChartPNG()

	source.records = []StudentRecord{{Name: "C", Risk: "Medium Risk"}}
	assert.NoError(t, pipeline.Refresh(context.Background()))

	// Exactly one chart remains bound, reflecting the second call's input.
	assert.NotEqual(t, first, session.ChartPNG())
	assert.Equal(t, 1, strings.Count(string(session.Table()), "<tr>"))
	assert.Contains(t, string(session.Table()), "C")
}

func TestPipelineFetchErrorLeavesSessionUntouched(t *testing.T) {
	session := NewSession()
	pipeline := NewPipeline(&stubSource{err: errors.New("connection refused")}, session)

	err := pipeline.Refresh(context.Background())

	assert.Error(t, err)
	assert.Empty(t, string(session.Table()))
	assert.False(t, session.HasChart())
}
