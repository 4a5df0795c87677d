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

package sample

import (
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/mcmc/logger"
	"github.com/0xsoniclabs/mcmc/sampling/runner"
	"github.com/0xsoniclabs/mcmc/sampling/visualizer"
	"github.com/0xsoniclabs/mcmc/utils"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "run the sampler comparison and serve trace plots, histograms and ECDF charts",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.ObservationsFlag,
		&utils.IterationsFlag,
		&utils.InitialPointsFlag,
		&utils.SigmaFlag,
		&utils.RandomSeedFlag,
		&utils.MaxRetriesFlag,
		&utils.PortFlag,
	},
	Description: `The visualize command builds the chains and fires up a local web-server
rendering trace plots, sample histograms and the empirical CDF per chain.`,
}

// visualizeAction runs all configured chains and serves the charts.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "McmcVisualize")

	results, err := runner.Run(&runner.Config{
		Observations:  cfg.Observations,
		Iterations:    cfg.Iterations,
		InitialPoints: cfg.InitialPoints,
		Sigma:         cfg.Sigma,
		MaxRetries:    cfg.MaxRetries,
		Seed:          cfg.RandomSeed,
	}, log)
	if err != nil {
		return err
	}

	log.Noticef("opening browser on http://localhost:%v", cfg.Port)
	log.Notice("press Ctrl+C to terminate...")
	return visualizer.FireUpWeb(results, cfg.Port)
}
