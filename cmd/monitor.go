// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

var (
	monitorStatsInterval int
	monitorMirrorOnly    bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Display decoded SCS packets in human-readable format",
	Long: `Continuously decode and display SCS packets as they arrive.

Each packet is shown with timestamp, control byte breakdown and a
semantic description of its (state, subsystem, IST) triple. A
statistics summary (per-subsystem counts, last observed peer state,
packet rate) is printed at a configurable interval.

With --mirror-only, only the 0xFE-prefixed NAVCON decision mirrors
emitted by the SNC debug firmware are decoded; all other debug output
is skipped.

Supports both serial and WebSocket connections.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().IntVar(&monitorStatsInterval, "stats-interval", 10, "Statistics summary interval in seconds (0 to disable)")
	monitorCmd.Flags().BoolVar(&monitorMirrorOnly, "mirror-only", false, "Decode only 0xFE decision mirrors")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Marvscope - SCS Packet Monitor\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	decoder := scs.NewDecoder()
	if monitorMirrorOnly {
		decoder = scs.NewMirrorDecoder()
	}
	stats := scs.NewStatistics()
	buf := make([]byte, 128)

	lastSummary := time.Now()

	for {
		n, err := conn.Read(buf)
		if err != nil {
			// A WebSocket read error means the bridge went away
			if err == ErrConnectionClosed {
				log.Printf("Connection closed")
				return nil
			}
			log.Printf("Read error: %v", err)
			continue
		}

		for _, packet := range decoder.Decode(buf[:n]) {
			stats.Update(packet, monitorMirrorOnly)
			fmt.Print(scs.FormatPacket(packet))
		}

		if monitorStatsInterval > 0 &&
			time.Since(lastSummary) >= time.Duration(monitorStatsInterval)*time.Second {
			fmt.Print(stats.String())
			lastSummary = time.Now()
		}
	}
}
