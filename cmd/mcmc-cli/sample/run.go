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
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/mcmc/logger"
	"github.com/0xsoniclabs/mcmc/sampling/runner"
	"github.com/0xsoniclabs/mcmc/utils"
)

// RunCommand data structure for the run app.
var RunCommand = cli.Command{
	Action:    runAction,
	Name:      "run",
	Usage:     "run the sampler comparison and report chain statistics",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.ObservationsFlag,
		&utils.IterationsFlag,
		&utils.InitialPointsFlag,
		&utils.SigmaFlag,
		&utils.RandomSeedFlag,
		&utils.MaxRetriesFlag,
		&utils.UpperTailFlag,
		&utils.LowerTailFlag,
	},
	Description: `The run command builds one Metropolis-Hastings chain and one slice-sampling
chain per initial point and prints their summary statistics and empirical
tail probabilities.`,
}

// runAction runs all configured chains and prints the comparison table.
func runAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "McmcRun")
	log.Info("Compare Metropolis-Hastings and slice sampling")

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

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{
		"Sampler", "Initial point", "Samples", "Mean", "Std dev", "Acceptance",
		fmt.Sprintf("P(theta > %v)", cfg.UpperTail),
		fmt.Sprintf("P(theta < %v)", cfg.LowerTail),
	})
	for _, res := range results {
		t.AppendRow(table.Row{
			string(res.Kind),
			res.Theta0,
			res.Chain.Len(),
			fmt.Sprintf("%.4f", res.Chain.Mean()),
			fmt.Sprintf("%.4f", res.Chain.StdDev()),
			fmt.Sprintf("%.2f%%", 100*res.AcceptanceRate),
			fmt.Sprintf("%.4f", res.Chain.TailAbove(cfg.UpperTail)),
			fmt.Sprintf("%.4f", res.Chain.TailBelow(cfg.LowerTail)),
		})
	}
	t.Render()
	return nil
}
