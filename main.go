// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45
//
// Marvscope - MARV SCS Test Harness
//
// A CLI tool for exercising the MARV subsystem state machines over the
// 4-byte SCS serial protocol: packet monitoring, NAVCON decision
// scenarios, and pure-tone validation.

package main

import (
	"os"

	"github.com/Bud-wiser-er/marvscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
