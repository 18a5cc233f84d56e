package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/wesleyorama2/bigo/internal/bench/format"
)

// ReportData contains all data needed to render the HTML report.
type ReportData struct {
	Title       string
	GeneratedAt time.Time
	Summaries   []*Summary
	ChartsJSON  template.JS
}

// ChartSeries is the per-run bar chart data exported to the page.
type ChartSeries struct {
	ID        string    `json:"id"`
	Labels    []string  `json:"labels"`
	ElapsedMs []float64 `json:"elapsedMs"`
}

// GenerateHTML generates an HTML report from summaries and writes it to a file.
func GenerateHTML(title string, summaries []*Summary, outputPath string) error {
	html, err := GenerateHTMLString(title, summaries)
	if err != nil {
		return fmt.Errorf("failed to generate HTML: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	return nil
}

// GenerateHTMLString generates an HTML report from summaries and returns it as a string.
func GenerateHTMLString(title string, summaries []*Summary) (string, error) {
	if len(summaries) == 0 {
		return "", fmt.Errorf("at least one summary is required")
	}
	for i, s := range summaries {
		if s == nil || s.Report == nil {
			return "", fmt.Errorf("summary %d has no report", i)
		}
	}

	tmpl, err := template.New("report").Funcs(templateFuncs()).Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	chartsJSON, err := convertChartsJSON(summaries)
	if err != nil {
		return "", fmt.Errorf("failed to convert chart data: %w", err)
	}

	if title == "" {
		title = "Benchmark Report"
	}
	data := ReportData{
		Title:       title,
		GeneratedAt: time.Now(),
		Summaries:   summaries,
		ChartsJSON:  template.JS(chartsJSON),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// convertChartsJSON converts measurement means to JSON for chart rendering.
func convertChartsJSON(summaries []*Summary) (string, error) {
	series := make([]ChartSeries, 0, len(summaries))
	for i, s := range summaries {
		cs := ChartSeries{ID: chartID(i)}
		for _, m := range s.Measurements {
			cs.Labels = append(cs.Labels, m.Variant)
			cs.ElapsedMs = append(cs.ElapsedMs, float64(m.Elapsed)/float64(time.Millisecond))
		}
		series = append(series, cs)
	}

	jsonBytes, err := json.Marshal(series)
	if err != nil {
		return "[]", err
	}
	return string(jsonBytes), nil
}

func chartID(i int) string {
	return fmt.Sprintf("chart-%d", i)
}

// templateFuncs returns the template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatElapsed": format.Elapsed,
		"formatCount":   format.Count,
		"formatBytes":   format.Bytes,
		"formatMetric":  format.Metric,
		"speedupOf":     speedupOf,
		"chartID":       chartID,
		"allVerified":   allVerified,
		"deref":         deref,
	}
}

// speedupOf renders the speedup cell of a variant.
func speedupOf(s *Summary, variant string) string {
	sp, ok := s.Speedup(variant)
	if !ok {
		return "baseline"
	}
	if !sp.Determinate() {
		return "indeterminate"
	}
	return fmt.Sprintf("%.2fx", sp.Ratio)
}

// allVerified reports whether every summary was verified and agreed.
func allVerified(summaries []*Summary) bool {
	for _, s := range summaries {
		if !s.Verified() {
			return false
		}
	}
	return true
}

func deref(b *bool) bool {
	return b != nil && *b
}
