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
	"sync"

	"github.com/0xsoniclabs/mcmc/sampling/runner"
)

type chainDatum struct {
	label     string
	trace     [][2]float64 // (iteration, theta) pairs, downsampled
	histogram []histogramBin
	ecdf      [][2]float64
}

type viewState struct {
	chains []chainDatum
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(results []runner.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("visualizer: no chain results")
	}
	derived, err := buildViewState(results)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: no view state; run the chains first")
	}
	return currentState, nil
}

func buildViewState(results []runner.Result) (*viewState, error) {
	chains := make([]chainDatum, 0, len(results))
	for _, res := range results {
		samples := res.Chain.Samples()
		hist, err := buildHistogram(samples, numHistogramBins)
		if err != nil {
			return nil, err
		}
		chains = append(chains, chainDatum{
			label:     fmt.Sprintf("%v from %v", res.Kind, res.Theta0),
			trace:     buildTrace(samples, maxTracePoints),
			histogram: hist,
			ecdf:      res.Chain.ECDF(),
		})
	}
	return &viewState{chains: chains}, nil
}
