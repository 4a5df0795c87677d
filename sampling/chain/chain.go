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

package chain

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	"gonum.org/v1/gonum/stat"

	"github.com/0xsoniclabs/mcmc/sampling"
)

// Chain is the ordered sequence of parameter samples produced by one sampler
// run. The buffer is pre-sized to iterations+1 entries (the seed value plus
// one entry per transition); it grows by exactly one element per transition
// and is handed out intact at termination.
type Chain struct {
	samples []float64
}

// New creates a chain seeded with the initial parameter value for a given
// number of transitions. A non-positive number of transitions is a
// configuration error.
func New(theta0 float64, iterations int) (*Chain, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("New: number of iterations (%v) must be greater than zero", iterations)
	}
	samples := make([]float64, 1, iterations+1)
	samples[0] = theta0
	return &Chain{samples: samples}, nil
}

// Append adds the next sample to the chain. Appending beyond the pre-sized
// capacity violates the one-append-per-transition invariant.
func (c *Chain) Append(theta float64) {
	if len(c.samples) == cap(c.samples) {
		panic(fmt.Sprintf("Append: chain exceeds pre-sized capacity (%v)", cap(c.samples)))
	}
	c.samples = append(c.samples, theta)
}

// Len returns the number of samples including the seed value.
func (c *Chain) Len() int {
	return len(c.samples)
}

// Last returns the current chain position.
func (c *Chain) Last() float64 {
	return c.samples[len(c.samples)-1]
}

// Samples returns a copy of the sample sequence.
func (c *Chain) Samples() []float64 {
	samples := make([]float64, len(c.samples))
	copy(samples, c.samples)
	return samples
}

// Mean returns the sample mean.
func (c *Chain) Mean() float64 {
	return stat.Mean(c.samples, nil)
}

// StdDev returns the sample standard deviation.
func (c *Chain) StdDev() float64 {
	return stat.StdDev(c.samples, nil)
}

// TailAbove returns the empirical probability of a sample exceeding x.
func (c *Chain) TailAbove(x float64) float64 {
	count := 0
	for _, theta := range c.samples {
		if theta > x {
			count++
		}
	}
	return float64(count) / float64(len(c.samples))
}

// TailBelow returns the empirical probability of a sample below x.
func (c *Chain) TailBelow(x float64) float64 {
	count := 0
	for _, theta := range c.samples {
		if theta < x {
			count++
		}
	}
	return float64(count) / float64(len(c.samples))
}

// ECDF returns the empirical cumulative distribution function of the samples
// as a piecewise linear function. The full ECDF has one point per sample; it
// is reduced to NumECDFPoints points with the Visvalingam-Whyatt algorithm.
// See: https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
func (c *Chain) ECDF() [][2]float64 {
	n := len(c.samples)
	sorted := c.Samples()
	sort.Float64s(sorted)
	ls := make(orb.LineString, 0, n)
	for i, theta := range sorted {
		ls = append(ls, orb.Point{theta, float64(i+1) / float64(n)})
	}
	simplifier := simplify.VisvalingamKeep(sampling.NumECDFPoints)
	compressed := simplifier.Simplify(ls).(orb.LineString)
	ecdf := make([][2]float64, len(compressed))
	for i := range compressed {
		ecdf[i] = [2]float64(compressed[i])
	}
	return ecdf
}
