// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

var (
	packetTestTimeout int
)

var packetTestCmd = &cobra.Command{
	Use:   "packet_test",
	Short: "Test connection by waiting for an SCS packet",
	Long: `Wait for an SCS packet on the connection until timeout.

This command connects to a serial port or WebSocket bridge and waits
for a complete 4-byte SCS packet. SCS carries no framing or checksum,
so any four bytes form a packet; the test confirms the peer is alive
and producing traffic.

Exit codes:
  0 - Packet received before timeout
  1 - Timeout reached without receiving a packet
  2 - Connection error

Useful for checking connectivity to SNC firmware or a serial bridge.`,
	RunE: runPacketTest,
}

func init() {
	rootCmd.AddCommand(packetTestCmd)
	packetTestCmd.Flags().IntVar(&packetTestTimeout, "timeout", 10, "Timeout in seconds to wait for a packet")
}

func runPacketTest(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	fmt.Printf("Marvscope - Packet Test\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Timeout: %d seconds\n", packetTestTimeout)
	fmt.Printf("Waiting for SCS packet...\n\n")

	decoder := scs.NewDecoder()
	buf := make([]byte, 128)

	packetChan := make(chan scs.Packet, 1)
	errChan := make(chan error, 1)

	// Reader goroutine
	go func() {
		for {
			n, err := conn.Read(buf)
			if err != nil {
				errChan <- err
				return
			}

			for i := 0; i < n; i++ {
				if packet, ok := decoder.DecodeByte(buf[i]); ok {
					packetChan <- packet
					return
				}
			}
		}
	}()

	select {
	case packet := <-packetChan:
		sys, sub, ist := scs.ParseControl(packet.Control())
		fmt.Printf("SUCCESS: Received packet\n")
		fmt.Printf("  Triple:  %s:%s:IST%d\n", sys, sub, ist)
		fmt.Printf("  Control: 0x%02X\n", packet.Control())
		fmt.Printf("  Data:    d1=%d d0=%d dec=%d\n", packet.Dat1(), packet.Dat0(), packet.Dec())
		fmt.Printf("  Meaning: %s\n", scs.Describe(packet))
		os.Exit(0)

	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "Read error: %v\n", err)
		os.Exit(2)

	case <-time.After(time.Duration(packetTestTimeout) * time.Second):
		fmt.Fprintf(os.Stderr, "TIMEOUT: No packet received within %d seconds\n", packetTestTimeout)
		os.Exit(1)
	}

	return nil
}
