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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xsoniclabs/mcmc/sampling/chain"
	"github.com/0xsoniclabs/mcmc/sampling/runner"
)

func sampleResults(t *testing.T) []runner.Result {
	t.Helper()
	c, err := chain.New(-20.0, 4)
	require.NoError(t, err)
	for _, theta := range []float64{-19.5, -15.2, 6.8, 8.1} {
		c.Append(theta)
	}
	return []runner.Result{
		{Kind: runner.Slice, Theta0: -20.0, Chain: c, AcceptanceRate: 1.0},
	}
}

func TestVisualizer_CurrentViewWithoutState(t *testing.T) {
	currentMu.Lock()
	currentState = nil
	currentMu.Unlock()
	_, err := currentView()
	assert.Error(t, err)

	w := httptest.NewRecorder()
	renderTrace(w, httptest.NewRequest(http.MethodGet, "/"+traceRef, nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestVisualizer_SetViewState(t *testing.T) {
	assert.Error(t, setViewState(nil))
	require.NoError(t, setViewState(sampleResults(t)))
	view, err := currentView()
	require.NoError(t, err)
	require.Len(t, view.chains, 1)
	assert.Equal(t, "slice from -20", view.chains[0].label)
	assert.NotEmpty(t, view.chains[0].trace)
	assert.NotEmpty(t, view.chains[0].histogram)
	assert.NotEmpty(t, view.chains[0].ecdf)
}

func TestVisualizer_RenderPages(t *testing.T) {
	require.NoError(t, setViewState(sampleResults(t)))
	renderers := map[string]func(http.ResponseWriter, *http.Request){
		"/":                renderMain,
		"/" + traceRef:     renderTrace,
		"/" + histogramRef: renderHistogram,
		"/" + ecdfRef:      renderECDF,
	}
	for path, render := range renderers {
		w := httptest.NewRecorder()
		render(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "path %v", path)
		assert.NotEmpty(t, w.Body.String(), "path %v", path)
	}
}

func TestVisualizer_BuildTrace(t *testing.T) {
	samples := make([]float64, 10)
	for i := range samples {
		samples[i] = float64(i)
	}
	trace := buildTrace(samples, 100)
	require.Len(t, trace, 10)
	assert.Equal(t, [2]float64{0, 0}, trace[0])
	assert.Equal(t, [2]float64{9, 9}, trace[9])

	downsampled := buildTrace(samples, 5)
	assert.LessOrEqual(t, len(downsampled), 5)
}

func TestVisualizer_BuildHistogram(t *testing.T) {
	_, err := buildHistogram(nil, 10)
	assert.Error(t, err)
	_, err = buildHistogram([]float64{1.0}, 0)
	assert.Error(t, err)

	// all samples identical collapse into a single bin
	bins, err := buildHistogram([]float64{2.0, 2.0, 2.0}, 10)
	require.NoError(t, err)
	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].count)

	bins, err = buildHistogram([]float64{0.0, 0.5, 1.0, 1.0}, 2)
	require.NoError(t, err)
	require.Len(t, bins, 2)
	total := 0
	for _, bin := range bins {
		total += bin.count
	}
	assert.Equal(t, 4, total)
}
