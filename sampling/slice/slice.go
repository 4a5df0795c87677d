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

package slice

import (
	"math/rand"

	"github.com/cockroachdb/errors"

	"github.com/0xsoniclabs/mcmc/sampling/chain"
	"github.com/0xsoniclabs/mcmc/sampling/rejection"
)

// maxLevelRedraws caps the redraw loop for degenerate auxiliary levels.
// A draw of exactly zero has probability zero but is representable; hitting
// the cap means the density underflowed to zero at the current position.
const maxLevelRedraws = 1000

// Sampler implements slice sampling. One transition draws a vertical
// auxiliary level under the current density value and then samples the
// horizontal slice uniformly via the rejection sampler. The produced position
// always lies in the super-level set of the drawn level, which is what gives
// the sampler its ability to hop between separated modes.
type Sampler struct {
	rg       *rand.Rand
	density  rejection.Density
	interval *rejection.Sampler
}

// New creates a slice sampler with an injected random generator.
// A non-positive retry cap selects the rejection sampler's default cap.
func New(rg *rand.Rand, density rejection.Density, maxRetries int) (*Sampler, error) {
	if rg == nil {
		return nil, errors.New("New: random generator must not be nil")
	}
	interval, err := rejection.New(density, maxRetries)
	if err != nil {
		return nil, err
	}
	return &Sampler{rg: rg, density: density, interval: interval}, nil
}

// Step performs one slice-sampling transition from theta and returns the next
// position together with the auxiliary level of the transition. The next
// position satisfies density(next) >= level. A level drawn as exactly zero is
// redrawn before the horizontal step; zero must never reach the interval
// derivation since its enclosing interval would be unbounded.
func (s *Sampler) Step(theta float64) (float64, float64, error) {
	f := s.density.Evaluate(theta)
	level := s.rg.Float64() * f
	for i := 0; !(level > 0); i++ {
		if i >= maxLevelRedraws {
			return 0, 0, errors.Wrapf(rejection.ErrRetryExhausted,
				"density underflowed to zero at position (%v)", theta)
		}
		level = s.rg.Float64() * f
	}
	next, err := s.interval.Sample(s.rg, level)
	if err != nil {
		// The caller redraws on a degenerate level; the guard above makes
		// this unreachable but the contract is kept explicit.
		if errors.Is(err, rejection.ErrDegenerateLevel) {
			return s.Step(theta)
		}
		return 0, 0, err
	}
	return next, level, nil
}

// Run builds a chain of the given length starting from theta0. The returned
// chain contains iterations+1 samples including the seed value.
func (s *Sampler) Run(theta0 float64, iterations int) (*chain.Chain, error) {
	c, err := chain.New(theta0, iterations)
	if err != nil {
		return nil, err
	}
	theta := theta0
	for i := 0; i < iterations; i++ {
		next, _, err := s.Step(theta)
		if err != nil {
			return nil, err
		}
		c.Append(next)
		theta = next
	}
	return c, nil
}
