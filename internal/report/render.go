package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/lcarnegie/chart-audio-tools/internal/describe"
	"github.com/lcarnegie/chart-audio-tools/internal/regression"
)

// CoefficientTable renders the model's coefficient table as text.
func CoefficientTable(res *regression.Result) string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Term", "Estimate", "Std Error", "t", "p"})
	for _, c := range res.Coefficients {
		row := []string{
			c.Term,
			formatFloat(c.Estimate),
			formatFloat(c.StdError),
			formatFloat(c.TStat),
			formatPValue(c.PValue),
		}
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	fmt.Fprintf(out, "n = %d, df = %d, R² = %.4f, residual std = %.4f\n",
		res.N, res.DF, res.RSquared, res.ResidualStd)
	return out.String()
}

// SummaryTable renders the per-feature descriptive statistics as text.
func SummaryTable(features []FeatureSummary) string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Feature", "N", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max"})
	for _, f := range features {
		s := f.Summary
		row := []string{
			f.Name,
			strconv.Itoa(s.Count),
			formatFloat(s.Mean),
			formatFloat(s.Std),
			formatFloat(s.Min),
			formatFloat(s.Q1),
			formatFloat(s.Median),
			formatFloat(s.Q3),
			formatFloat(s.Max),
		}
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	return out.String()
}

// HistogramTable renders one feature's bin counts as text.
func HistogramTable(bins []describe.Bin) string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Low", "High", "Count"})
	for _, b := range bins {
		row := []string{formatFloat(b.Low), formatFloat(b.High), strconv.Itoa(b.Count)}
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	return out.String()
}

// CategoryTable renders a binary feature's level counts as text.
func CategoryTable(cats []describe.CategoryCount) string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Value", "Count"})
	for _, c := range cats {
		row := []string{strconv.Itoa(c.Value), strconv.Itoa(c.Count)}
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	return out.String()
}

// HTML renders the report as a self-contained HTML document, suitable
// for emailing.
func HTML(rep *Report) string {
	out := `
<html>
  <head>
<style>
td {
  padding: 0.1em 0.2em;
}
table, th, td {
  border: 1px solid black;
  border-collapse: collapse;
}
</style>
  </head>
  <body>
`
	out += fmt.Sprintf("<h1>Audio feature report (%s, %d songs)</h1>\n",
		rep.Metadata.GeneratedDate, rep.Metadata.Rows)

	out += "<h2>Feature summaries</h2>\n<table>\n<thead><tr>"
	for _, h := range []string{"Feature", "N", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max"} {
		out += fmt.Sprintf("<th>%s</th>", h)
	}
	out += "</tr></thead>\n<tbody>\n"
	for _, f := range rep.Features {
		s := f.Summary
		out += fmt.Sprintf("<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			f.Name, s.Count, formatFloat(s.Mean), formatFloat(s.Std), formatFloat(s.Min),
			formatFloat(s.Q1), formatFloat(s.Median), formatFloat(s.Q3), formatFloat(s.Max))
	}
	out += "</tbody>\n</table>\n"

	out += "<h2>Regression of popularity</h2>\n<table>\n<thead><tr>"
	for _, h := range []string{"Term", "Estimate", "Std Error", "t", "p"} {
		out += fmt.Sprintf("<th>%s</th>", h)
	}
	out += "</tr></thead>\n<tbody>\n"
	for _, c := range rep.Regression.Coefficients {
		out += fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			c.Term, formatFloat(c.Estimate), formatFloat(c.StdError),
			formatFloat(c.TStat), formatPValue(c.PValue))
	}
	out += "</tbody>\n</table>\n"
	out += fmt.Sprintf("<div>n = %d, df = %d, R² = %.4f</div>\n",
		rep.Regression.N, rep.Regression.DF, rep.Regression.RSquared)

	out += `
  </body>
</html>
`
	return out
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatPValue(p float64) string {
	if p < 0.001 {
		return "<0.001"
	}
	return strconv.FormatFloat(p, 'f', 3, 64)
}
