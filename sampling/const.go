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

package sampling

// DefaultIterations sets the number of chain transitions per run.
const DefaultIterations = 5000

// DefaultSigma sets the standard deviation of the Gaussian proposal in the
// Metropolis-Hastings sampler.
const DefaultSigma = 1.0

// DefaultMaxRetries caps the accept/reject loop of the rejection sampler.
// The loop terminates with probability one; the cap converts a pathological
// floating-point state into a diagnosable fault instead of a hang.
const DefaultMaxRetries = 1_000_000

// NumECDFPoints sets the number of points in the empirical cumulative distribution function.
const NumECDFPoints = 300
