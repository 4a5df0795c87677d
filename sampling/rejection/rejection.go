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

package rejection

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"

	"github.com/0xsoniclabs/mcmc/sampling"
)

//go:generate mockgen -source rejection.go -destination density_mock.go -package rejection

// Density is the consumer interface of the target density. The enclosing
// interval is anchored on the extreme observations (Bounds) and uses the
// number of observations (Size) as the tail-bound exponent.
type Density interface {
	Evaluate(theta float64) float64
	Bounds() (float64, float64)
	Size() int
}

var (
	// ErrDegenerateLevel is reported for a level that is not strictly
	// positive. The super-level set of such a level is unbounded; the caller
	// must redraw the level instead of sampling.
	ErrDegenerateLevel = errors.New("degenerate density level; caller must redraw")

	// ErrRetryExhausted is reported when the accept/reject loop exceeds its
	// retry cap. It indicates a broken enclosing-interval derivation or a
	// corrupted input rather than bad luck.
	ErrRetryExhausted = errors.New("rejection sampling retry cap exhausted")
)

// Sampler draws uniformly from the super-level set {theta : density(theta) >= level}
// by accept/reject against an analytically derived enclosing interval.
type Sampler struct {
	density    Density
	maxRetries int
}

// New creates a rejection sampler for a density. A non-positive retry cap
// selects the default cap.
func New(density Density, maxRetries int) (*Sampler, error) {
	if density == nil {
		return nil, errors.New("New: density must not be nil")
	}
	if density.Size() < 1 {
		return nil, errors.New("New: density has no observations")
	}
	if maxRetries <= 0 {
		maxRetries = sampling.DefaultMaxRetries
	}
	return &Sampler{density: density, maxRetries: maxRetries}, nil
}

// Interval derives an interval that encloses the super-level set for a given
// level. For theta below the smallest observation yMin, the density is bounded
// by (1/(1+(yMin-theta)^2))^n with n observations; solving the bound for the
// level gives the half-width a = sqrt(level^(-1/n) - 1). The bound above the
// largest observation is symmetric. The one-term tail bound with the full
// exponent n produces a sufficient, not tight, enclosing interval; it is kept
// as-is to preserve the reference numerical behavior.
func (s *Sampler) Interval(level float64) (float64, float64, error) {
	if !(level > 0) {
		return 0, 0, errors.Wrapf(ErrDegenerateLevel, "level (%v)", level)
	}
	n := float64(s.density.Size())
	a := 0.0
	if t := math.Pow(level, -1.0/n); t > 1.0 {
		a = math.Sqrt(t - 1.0)
	}
	min, max := s.density.Bounds()
	return min - a, max + a, nil
}

// Sample draws uniformly from the super-level set of the given level using
// a random generator. Candidates are drawn uniformly from the enclosing
// interval and accepted iff the density reaches the level. The loop
// terminates with probability one; the retry cap converts a pathological
// state into an ErrRetryExhausted fault.
func (s *Sampler) Sample(rg *rand.Rand, level float64) (float64, error) {
	low, high, err := s.Interval(level)
	if err != nil {
		return 0, err
	}
	for i := 0; i < s.maxRetries; i++ {
		theta := low + (high-low)*rg.Float64()
		if s.density.Evaluate(theta) >= level {
			return theta, nil
		}
	}
	return 0, errors.Wrapf(ErrRetryExhausted, "level (%v) after %v retries", level, s.maxRetries)
}
