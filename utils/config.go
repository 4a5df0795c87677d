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
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

// Config carries the run configuration assembled from cli flags. All
// configuration errors are reported here, before any sampling begins.
type Config struct {
	LogLevel      string    // logging level of the run
	Observations  []float64 // observation vector of the posterior density
	Iterations    int       // number of transitions per chain
	InitialPoints []float64 // initial chain positions
	Sigma         float64   // proposal standard deviation
	RandomSeed    int64     // seed for the random generators
	MaxRetries    int       // retry cap of the rejection sampler
	UpperTail     float64   // threshold for the upper tail-probability report
	LowerTail     float64   // threshold for the lower tail-probability report
	Port          string    // port of the visualization web-server
}

// NewConfig reads and validates the run configuration from the cli context.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		LogLevel:      ctx.String("log"),
		Observations:  ctx.Float64Slice(ObservationsFlag.Name),
		Iterations:    ctx.Int(IterationsFlag.Name),
		InitialPoints: ctx.Float64Slice(InitialPointsFlag.Name),
		Sigma:         ctx.Float64(SigmaFlag.Name),
		RandomSeed:    ctx.Int64(RandomSeedFlag.Name),
		MaxRetries:    ctx.Int(MaxRetriesFlag.Name),
		UpperTail:     ctx.Float64(UpperTailFlag.Name),
		LowerTail:     ctx.Float64(LowerTailFlag.Name),
		Port:          ctx.String(PortFlag.Name),
	}
	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = time.Now().UnixNano()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if len(cfg.Observations) == 0 {
		return fmt.Errorf("NewConfig: observation vector must not be empty")
	}
	if cfg.Iterations <= 0 {
		return fmt.Errorf("NewConfig: number of iterations (%v) must be greater than zero", cfg.Iterations)
	}
	if len(cfg.InitialPoints) == 0 {
		return fmt.Errorf("NewConfig: at least one initial point is required")
	}
	if !(cfg.Sigma > 0) {
		return fmt.Errorf("NewConfig: proposal standard deviation (%v) must be greater than zero", cfg.Sigma)
	}
	if cfg.MaxRetries < 0 {
		return fmt.Errorf("NewConfig: retry cap (%v) must not be negative", cfg.MaxRetries)
	}
	return nil
}
