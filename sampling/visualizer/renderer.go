// Copyright 2025 Sonic Labs
// This file is part of the MCMC sampler toolkit.
//
// The MCMC sampler toolkit is free software: you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// The MCMC sampler toolkit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the MCMC sampler toolkit. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/0xsoniclabs/mcmc/sampling/runner"
)

// HTML references for the rendered pages.
const traceRef = "trace-plots"
const histogramRef = "sample-histograms"
const ecdfRef = "empirical-cdf"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>MCMC: Sampler Comparison</title>
  </head>
  <body>
    <h1>MCMC: Sampler Comparison</h1>
    <ul>
    <li> <h3> <a href="/` + traceRef + `"> Trace Plots </a> </h3> </li>
    <li> <h3> <a href="/` + histogramRef + `"> Sample Histograms </a> </h3> </li>
    <li> <h3> <a href="/` + ecdfRef + `"> Empirical CDF </a> </h3> </li>
    </ul>
</body>
</html>
`

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// convertLineData converts point pairs to chart points.
func convertLineData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newChartOptions produces the shared global options for a chart.
func newChartOptions(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: title,
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
			Title: title,
		}),
	}
}

// renderTrace renders the chain positions over iterations for all chains.
func renderTrace(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := charts.NewLine()
	chart.SetGlobalOptions(newChartOptions("Trace Plots")...)
	for _, c := range view.chains {
		chart.AddSeries(c.label, convertLineData(c.trace))
	}
	_ = chart.Render(w)
}

// renderHistogram renders the binned sample distribution for all chains.
func renderHistogram(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(newChartOptions("Sample Histograms")...)
	for _, c := range view.chains {
		items := []opts.ScatterData{}
		for _, bin := range c.histogram {
			items = append(items, opts.ScatterData{
				Value:      [2]float64{bin.center, float64(bin.count)},
				SymbolSize: 5,
			})
		}
		scatter.AddSeries(c.label, items)
	}
	_ = scatter.Render(w)
}

// renderECDF renders the compressed empirical CDF for all chains.
func renderECDF(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := charts.NewLine()
	chart.SetGlobalOptions(newChartOptions("Empirical CDF")...)
	for _, c := range view.chains {
		chart.AddSeries(c.label, convertLineData(c.ecdf))
	}
	_ = chart.Render(w)
}

// FireUpWeb produces a data model for the chain results and visualizes it
// with a local web-server.
func FireUpWeb(results []runner.Result, addr string) error {
	if err := setViewState(results); err != nil {
		return err
	}

	// create web server
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+traceRef, renderTrace)
	http.HandleFunc("/"+histogramRef, renderHistogram)
	http.HandleFunc("/"+ecdfRef, renderECDF)
	return http.ListenAndServe(":"+addr, nil)
}
