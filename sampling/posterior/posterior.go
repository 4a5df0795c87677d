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

package posterior

import (
	"fmt"
	"math"
)

// Package for the un-normalized posterior density of a location parameter
// under a product-of-Cauchy-kernel likelihood.

// Density holds the fixed observation vector. The vector is immutable for
// the lifetime of a run and is shared read-only by all samplers.
type Density struct {
	obs []float64 // observation vector
	min float64   // smallest observation
	max float64   // largest observation
}

// New creates a density for a given observation vector.
// An empty vector is a configuration error.
func New(observations []float64) (*Density, error) {
	n := len(observations)
	if n == 0 {
		return nil, fmt.Errorf("New: observation vector must not be empty")
	}
	obs := make([]float64, n)
	copy(obs, observations)
	min, max := obs[0], obs[0]
	for _, y := range obs {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("New: observation (%v) is not a finite number", y)
		}
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return &Density{obs: obs, min: min, max: max}, nil
}

// Evaluate computes the un-normalized posterior value for a parameter theta.
// Each factor 1/(1+(y-theta)^2) lies in (0,1]; the product is strictly
// positive for any finite theta, although it may underflow to zero in
// floating point far away from all observations. Callers must therefore
// compare with >= or <, never with equality against zero.
func (d *Density) Evaluate(theta float64) float64 {
	p := 1.0
	for _, y := range d.obs {
		diff := y - theta
		p *= 1.0 / (1.0 + diff*diff)
	}
	return p
}

// Bounds returns the smallest and largest observation. The enclosing-interval
// derivation of the rejection sampler is anchored on these two extremes.
func (d *Density) Bounds() (float64, float64) {
	return d.min, d.max
}

// Size returns the number of observations.
func (d *Density) Size() int {
	return len(d.obs)
}

// Observations returns a copy of the observation vector.
func (d *Density) Observations() []float64 {
	obs := make([]float64, len(d.obs))
	copy(obs, d.obs)
	return obs
}
