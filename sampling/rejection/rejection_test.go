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
	"testing"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"

	"github.com/0xsoniclabs/mcmc/sampling/posterior"
)

var refObservations = []float64{-16.6, -14.7, 6.3, 8.4}

// countingDensity counts evaluations for the acceptance-rate test.
type countingDensity struct {
	*posterior.Density
	evals int
}

func (d *countingDensity) Evaluate(theta float64) float64 {
	d.evals++
	return d.Density.Evaluate(theta)
}

func refDensity(t *testing.T) *posterior.Density {
	t.Helper()
	d, err := posterior.New(refObservations)
	if err != nil {
		t.Fatalf("Expected a density. Error: %v", err)
	}
	return d
}

// TestRejection_NewValidation checks the configuration errors of the constructor.
func TestRejection_NewValidation(t *testing.T) {
	if _, err := New(nil, 0); err == nil {
		t.Fatalf("Expected an error for a nil density.")
	}
	s, err := New(refDensity(t), 0)
	if err != nil {
		t.Fatalf("Expected a sampler with the default retry cap. Error: %v", err)
	}
	if s == nil {
		t.Fatalf("Expected a sampler. Got nil.")
	}
}

// TestRejection_IntervalDerivation checks the enclosing interval against
// hand-computed half-widths using the one-term tail bound.
func TestRejection_IntervalDerivation(t *testing.T) {
	s, err := New(refDensity(t), 0)
	if err != nil {
		t.Fatalf("Expected a sampler. Error: %v", err)
	}

	// level of one: the half-width vanishes and the interval collapses to
	// the observation range.
	low, high, err := s.Interval(1.0)
	if err != nil {
		t.Fatalf("Expected an interval. Error: %v", err)
	}
	if low != -16.6 || high != 8.4 {
		t.Fatalf("Expected interval (-16.6, 8.4) for level 1. Got (%v, %v).", low, high)
	}

	// level 1/16 with n=4: level^(-1/4) = 2, so a = 1.
	low, high, err = s.Interval(1.0 / 16.0)
	if err != nil {
		t.Fatalf("Expected an interval. Error: %v", err)
	}
	if math.Abs(low-(-17.6)) > 1e-12 || math.Abs(high-9.4) > 1e-12 {
		t.Fatalf("Expected interval (-17.6, 9.4) for level 1/16. Got (%v, %v).", low, high)
	}

	// generic level: a = sqrt(level^(-1/4) - 1).
	level := 1e-6
	a := math.Sqrt(math.Pow(level, -0.25) - 1.0)
	low, high, err = s.Interval(level)
	if err != nil {
		t.Fatalf("Expected an interval. Error: %v", err)
	}
	if math.Abs(low-(-16.6-a)) > 1e-12 || math.Abs(high-(8.4+a)) > 1e-12 {
		t.Fatalf("Expected interval (%v, %v) for level %v. Got (%v, %v).", -16.6-a, 8.4+a, level, low, high)
	}
}

// TestRejection_DegenerateLevel checks that non-positive levels are refused
// with a redraw request instead of deriving an unbounded interval.
func TestRejection_DegenerateLevel(t *testing.T) {
	s, err := New(refDensity(t), 0)
	if err != nil {
		t.Fatalf("Expected a sampler. Error: %v", err)
	}
	rg := rand.New(rand.NewSource(1))
	for _, level := range []float64{0.0, -1.0, math.NaN()} {
		if _, _, err := s.Interval(level); !errors.Is(err, ErrDegenerateLevel) {
			t.Fatalf("Expected ErrDegenerateLevel for level %v. Got %v.", level, err)
		}
		if _, err := s.Sample(rg, level); !errors.Is(err, ErrDegenerateLevel) {
			t.Fatalf("Expected ErrDegenerateLevel from Sample for level %v. Got %v.", level, err)
		}
	}
}

// TestRejection_SampleInvariant checks that every returned candidate reaches
// the level and lies inside the enclosing interval.
func TestRejection_SampleInvariant(t *testing.T) {
	d := refDensity(t)
	s, err := New(d, 0)
	if err != nil {
		t.Fatalf("Expected a sampler. Error: %v", err)
	}
	// the density peaks near 9.9e-7; levels must stay below the peak so
	// that the super-level set is non-empty
	rg := rand.New(rand.NewSource(99))
	for _, level := range []float64{1e-9, 1e-8, 1e-7, 5e-7} {
		low, high, err := s.Interval(level)
		if err != nil {
			t.Fatalf("Expected an interval. Error: %v", err)
		}
		for i := 0; i < 200; i++ {
			theta, err := s.Sample(rg, level)
			if err != nil {
				t.Fatalf("Expected a sample for level %v. Error: %v", level, err)
			}
			if d.Evaluate(theta) < level {
				t.Fatalf("Expected density >= level %v at sample %v. Got %v.", level, theta, d.Evaluate(theta))
			}
			if theta < low || theta > high {
				t.Fatalf("Expected sample %v inside interval (%v, %v).", theta, low, high)
			}
		}
	}
}

// TestRejection_RetryExhaustion checks that a density below the level
// everywhere trips the retry cap instead of hanging.
func TestRejection_RetryExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	density := NewMockDensity(ctrl)
	density.EXPECT().Size().Return(4).AnyTimes()
	density.EXPECT().Bounds().Return(0.0, 1.0).AnyTimes()
	density.EXPECT().Evaluate(gomock.Any()).Return(0.0).AnyTimes()

	s, err := New(density, 10)
	if err != nil {
		t.Fatalf("Expected a sampler. Error: %v", err)
	}
	rg := rand.New(rand.NewSource(7))
	if _, err := s.Sample(rg, 0.5); !errors.Is(err, ErrRetryExhausted) {
		t.Fatalf("Expected ErrRetryExhausted. Got %v.", err)
	}
}

// TestRejection_AcceptanceRate checks that the empirical acceptance rate of
// the accept/reject loop converges to the measure ratio of the super-level
// set and its enclosing interval.
func TestRejection_AcceptanceRate(t *testing.T) {
	d := refDensity(t)
	cd := &countingDensity{Density: d}
	s, err := New(cd, 0)
	if err != nil {
		t.Fatalf("Expected a sampler. Error: %v", err)
	}
	level := 1e-8
	low, high, err := s.Interval(level)
	if err != nil {
		t.Fatalf("Expected an interval. Error: %v", err)
	}

	// Riemann approximation of measure(G_s)/measure(H_s)
	gridPoints := 200000
	inside := 0
	for i := 0; i < gridPoints; i++ {
		theta := low + (high-low)*(float64(i)+0.5)/float64(gridPoints)
		if d.Evaluate(theta) >= level {
			inside++
		}
	}
	want := float64(inside) / float64(gridPoints)

	rg := rand.New(rand.NewSource(4711))
	numSamples := 20000
	for i := 0; i < numSamples; i++ {
		if _, err := s.Sample(rg, level); err != nil {
			t.Fatalf("Expected a sample. Error: %v", err)
		}
	}
	got := float64(numSamples) / float64(cd.evals)
	if math.Abs(got-want) > 0.02 {
		t.Fatalf("Expected acceptance rate close to %v. Got %v.", want, got)
	}
}
