// Copyright 2025 Sonic Labs
// This file is part of Bootmc, a Monte Carlo testing toolkit
//
// Bootmc is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bootmc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Bootmc. If not, see <http://www.gnu.org/licenses/>.

// Package visualizer renders the rejection-rate report of a sweep as line
// charts served by a local web server.
package visualizer

import (
	"fmt"
	"net/http"

	"github.com/0xsoniclabs/bootmc/simulation"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTML references for the rendered pages.
const ratesRef = "rejection-rates"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Bootmc: Monte Carlo Experiments</title>
  </head>
  <body>
    <h1>Bootmc: Monte Carlo Experiments</h1>
    <ul>
    <li> <h3> <a href="/` + ratesRef + `"> Empirical Rejection Rates </a> </h3> </li>
    </ul>
</body>
</html>
`

// report under visualization; set once before the server starts
var viewReport *simulation.Report

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// newRateChart creates a line chart with one series per decision rule over
// the swept sample sizes, grouped by distribution.
func newRateChart(report *simulation.Report) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: "Empirical Rejection Rates",
		}))

	chart.SetXAxis(axisLabels(report))
	for j, name := range report.RuleNames {
		chart.AddSeries(name, rateSeries(report, j))
	}
	chart.AddSeries("nominal", nominalSeries(report))
	return chart
}

// axisLabels keys each report row by distribution and sample size.
func axisLabels(report *simulation.Report) []string {
	labels := make([]string, len(report.Rows))
	for i, row := range report.Rows {
		labels[i] = fmt.Sprintf("%s n=%d", row.Distribution, row.SampleSize)
	}
	return labels
}

// rateSeries converts one rate column to chart points.
func rateSeries(report *simulation.Report, col int) []opts.LineData {
	items := []opts.LineData{}
	for _, row := range report.Rows {
		items = append(items, opts.LineData{Value: row.Rates[col]})
	}
	return items
}

// nominalSeries is the reference line at the nominal level.
func nominalSeries(report *simulation.Report) []opts.LineData {
	items := []opts.LineData{}
	for _, row := range report.Rows {
		items = append(items, opts.LineData{Value: row.Significance})
	}
	return items
}

// renderRates renders the rejection-rate chart.
func renderRates(w http.ResponseWriter, r *http.Request) {
	if viewReport == nil {
		http.Error(w, "no report available", http.StatusServiceUnavailable)
		return
	}
	chart := newRateChart(viewReport)
	_ = chart.Render(w)
}

// FireUpWeb visualizes the sweep report with a local web server.
func FireUpWeb(report *simulation.Report, addr string) error {
	viewReport = report

	// create web server
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+ratesRef, renderRates)
	return http.ListenAndServe(":"+addr, nil)
}
