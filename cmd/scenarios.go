// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bud-wiser-er/marvscope/pkg/scenario"
)

var (
	scenarioFile    string
	scenarioLive    bool
	scenarioTimeout int
	scenarioVerbose bool
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Run NAVCON decision scenarios",
	Long: `Run the NAVCON decision scenario table and report PASS/FAIL.

By default the scenarios run offline against the built-in decision
engine, which needs no hardware. With --live, each scenario is injected
into SNC firmware over the connection using the '@M'/'@S' emulation
framing, and the firmware's 0xFE-mirrored decision packet is compared
against the expectation instead.

Extra scenarios can be loaded from a YAML file with --file; they run
after the built-in table. Each entry gives the three sensor colors, an
optional incidence angle, MDPS odometry distances, and the expected
first motion primitive.`,
	RunE: runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.Flags().StringVarP(&scenarioFile, "file", "f", "", "YAML file with additional scenarios")
	scenariosCmd.Flags().BoolVar(&scenarioLive, "live", false, "Run against SNC firmware over the connection")
	scenariosCmd.Flags().IntVar(&scenarioTimeout, "timeout", 3, "Decision timeout per scenario in seconds (live mode)")
	scenariosCmd.Flags().BoolVarP(&scenarioVerbose, "verbose", "v", false, "Print the full decision step sequence")
}

func runScenarios(cmd *cobra.Command, args []string) error {
	scenarios := scenario.Builtin()
	if scenarioFile != "" {
		extra, err := scenario.Load(scenarioFile)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, extra...)
	}

	var results []scenario.Result
	if scenarioLive {
		conn, connInfo, err := OpenConnection()
		if err != nil {
			return err
		}
		defer conn.Close()

		fmt.Printf("Marvscope - NAVCON Scenarios (live)\n")
		fmt.Printf("Connection: %s\n\n", connInfo)

		runner := scenario.NewLiveRunner(conn)
		runner.Timeout = time.Duration(scenarioTimeout) * time.Second
		for _, sc := range scenarios {
			results = append(results, runner.Run(sc))
		}
	} else {
		fmt.Printf("Marvscope - NAVCON Scenarios (offline engine)\n\n")
		results = scenario.RunOfflineAll(scenarios)
	}

	passed := 0
	for _, r := range results {
		fmt.Println(r)
		if scenarioVerbose && len(r.Decision.Steps) > 0 {
			for _, step := range r.Decision.Steps {
				fmt.Printf("        %s\n", step)
			}
			if r.Decision.EndOfMaze {
				fmt.Printf("        (end-of-maze signalled)\n")
			}
		}
		if r.Err == nil && r.Pass {
			passed++
		}
	}

	fmt.Printf("\n%d/%d scenarios passed\n", passed, len(results))
	if passed != len(results) {
		return fmt.Errorf("%d scenario(s) failed", len(results)-passed)
	}
	return nil
}
