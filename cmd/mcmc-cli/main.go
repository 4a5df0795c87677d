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

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/0xsoniclabs/mcmc/cmd/mcmc-cli/sample"
)

// McmcApp data structure
var McmcApp = cli.App{
	Name:      "MCMC Sampler Comparison",
	HelpName:  "mcmc-cli",
	Usage:     "compare Metropolis-Hastings and slice sampling on a multi-modal posterior",
	Copyright: "(c) 2025 Sonic Labs",
	Commands: []*cli.Command{
		&sample.RunCommand,
		&sample.VisualizeCommand,
	},
}

// main implements the mcmc-cli functions
func main() {
	if err := McmcApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
