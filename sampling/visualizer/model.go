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

import "fmt"

const (
	// maxTracePoints limits the number of points per trace series so that
	// long chains render responsively.
	maxTracePoints = 2000

	// numHistogramBins sets the resolution of the sample histogram.
	numHistogramBins = 60
)

type histogramBin struct {
	center float64
	count  int
}

// buildTrace converts a sample sequence into (iteration, theta) chart points,
// keeping at most maxPoints equally spaced entries.
func buildTrace(samples []float64, maxPoints int) [][2]float64 {
	n := len(samples)
	stride := 1
	if n > maxPoints {
		stride = (n + maxPoints - 1) / maxPoints
	}
	trace := make([][2]float64, 0, (n+stride-1)/stride)
	for i := 0; i < n; i += stride {
		trace = append(trace, [2]float64{float64(i), samples[i]})
	}
	return trace
}

// buildHistogram bins a sample sequence into numBins equally wide bins over
// the sample range.
func buildHistogram(samples []float64, numBins int) ([]histogramBin, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("buildHistogram: no samples")
	}
	if numBins <= 0 {
		return nil, fmt.Errorf("buildHistogram: number of bins (%v) must be greater than zero", numBins)
	}
	min, max := samples[0], samples[0]
	for _, x := range samples {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	width := (max - min) / float64(numBins)
	if !(width > 0) {
		// all samples identical; a single bin carries everything
		return []histogramBin{{center: min, count: len(samples)}}, nil
	}
	bins := make([]histogramBin, numBins)
	for i := range bins {
		bins[i].center = min + (float64(i)+0.5)*width
	}
	for _, x := range samples {
		idx := int((x - min) / width)
		if idx >= numBins {
			idx = numBins - 1
		}
		bins[idx].count++
	}
	return bins, nil
}
