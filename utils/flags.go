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

package utils

import (
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/mcmc/sampling"
)

var (
	ObservationsFlag = cli.Float64SliceFlag{
		Name:  "observations",
		Usage: "observation vector of the posterior density",
		Value: cli.NewFloat64Slice(-16.6, -14.7, 6.3, 8.4),
	}
	IterationsFlag = cli.IntFlag{
		Name:  "iterations",
		Usage: "number of chain transitions per run",
		Value: sampling.DefaultIterations,
	}
	InitialPointsFlag = cli.Float64SliceFlag{
		Name:  "initial-points",
		Usage: "initial chain positions; one independent chain per point",
		Value: cli.NewFloat64Slice(-20.0, 0.0),
	}
	SigmaFlag = cli.Float64Flag{
		Name:  "sigma",
		Usage: "standard deviation of the Gaussian proposal",
		Value: sampling.DefaultSigma,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "set the random seed for reproducible runs (-1 picks a clock-based seed)",
		Value: -1,
	}
	MaxRetriesFlag = cli.IntFlag{
		Name:  "max-retries",
		Usage: "retry cap of the rejection sampler (0 selects the default)",
		Value: 0,
	}
	UpperTailFlag = cli.Float64Flag{
		Name:  "upper-tail",
		Usage: "report the empirical probability of a sample above this threshold",
		Value: 8.0,
	}
	LowerTailFlag = cli.Float64Flag{
		Name:  "lower-tail",
		Usage: "report the empirical probability of a sample below this threshold",
		Value: -15.0,
	}
	PortFlag = cli.StringFlag{
		Name:    "port",
		Aliases: []string{"v"},
		Usage:   "enable visualization on `PORT`",
		Value:   "8080",
	}
)
