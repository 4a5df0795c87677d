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

package metropolis

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/0xsoniclabs/mcmc/sampling/chain"
)

// Density is the consumer interface of the target density.
type Density interface {
	Evaluate(theta float64) float64
}

// Sampler implements random-walk Metropolis-Hastings with a symmetric
// Gaussian proposal.
type Sampler struct {
	rg       *rand.Rand
	density  Density
	sigma    float64
	proposed uint64
	accepted uint64
}

// New creates a Metropolis-Hastings sampler with an injected random
// generator. A non-positive proposal standard deviation is a configuration
// error reported at construction, not mid-chain.
func New(rg *rand.Rand, density Density, sigma float64) (*Sampler, error) {
	if rg == nil {
		return nil, errors.New("New: random generator must not be nil")
	}
	if density == nil {
		return nil, errors.New("New: density must not be nil")
	}
	if !(sigma > 0) {
		return nil, errors.Newf("New: proposal standard deviation (%v) must be greater than zero", sigma)
	}
	return &Sampler{rg: rg, density: density, sigma: sigma}, nil
}

// Step performs one Metropolis-Hastings transition from theta. It returns the
// next chain position and whether the proposal was accepted; on rejection the
// position is kept unchanged. The proposal density is evaluated explicitly on
// both sides of the acceptance ratio. It is symmetric and cancels
// algebraically, but the canceled form rounds differently; the explicit form
// is kept for parity with the reference computation.
func (s *Sampler) Step(theta float64) (float64, bool) {
	proposed := theta + s.sigma*s.rg.NormFloat64()
	forward := distuv.Normal{Mu: theta, Sigma: s.sigma}
	backward := distuv.Normal{Mu: proposed, Sigma: s.sigma}
	ratio := (s.density.Evaluate(proposed) * backward.Prob(theta)) /
		(s.density.Evaluate(theta) * forward.Prob(proposed))
	s.proposed++

	// A 0/0 ratio from underflow at extreme positions yields NaN and must
	// reject; an infinite ratio trivially accepts.
	if math.IsNaN(ratio) {
		return theta, false
	}
	if s.rg.Float64() < ratio {
		s.accepted++
		return proposed, true
	}
	return theta, false
}

// AcceptanceRate returns the fraction of accepted proposals so far.
func (s *Sampler) AcceptanceRate() float64 {
	if s.proposed == 0 {
		return 0
	}
	return float64(s.accepted) / float64(s.proposed)
}

// Run builds a chain of the given length starting from theta0. The returned
// chain contains iterations+1 samples including the seed value; every
// transition either keeps the position or replaces it with the fresh
// proposal.
func (s *Sampler) Run(theta0 float64, iterations int) (*chain.Chain, error) {
	c, err := chain.New(theta0, iterations)
	if err != nil {
		return nil, err
	}
	theta := theta0
	for i := 0; i < iterations; i++ {
		theta, _ = s.Step(theta)
		c.Append(theta)
	}
	return c, nil
}
