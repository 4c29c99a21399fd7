// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

import (
	"fmt"
	"time"
)

// Statistics tracks packet traffic on a monitored SCS link.
//
// The harness only observes the peer: LastState is the last system
// state seen in a received control byte, never a state the harness
// decided on its own.
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	// Counters
	TotalPackets uint64
	BySubsystem  [4]uint64
	ByState      [4]uint64
	Mirrored     uint64 // NAVCON decision mirrors
	FormatErrors uint64 // short reads / bad lengths

	// Last observed peer state from received packets
	LastState    SystemState
	HasSeenState bool

	// Rates (calculated)
	PacketRate float64 // packets/sec
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// Update records a received packet. mirrored marks packets that
// arrived as 0xFE decision mirrors.
func (s *Statistics) Update(p Packet, mirrored bool) {
	s.TotalPackets++
	s.BySubsystem[int(p.Subsystem())&0x03]++
	s.ByState[int(p.SysState())&0x03]++
	if mirrored {
		s.Mirrored++
	}
	s.LastState = p.SysState()
	s.HasSeenState = true
	s.LastUpdateTime = time.Now()
}

// RecordFormatError counts a malformed read (wrong byte count).
func (s *Statistics) RecordFormatError() {
	s.FormatErrors++
	s.LastUpdateTime = time.Now()
}

// CalculateRates recomputes the packet rate.
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.PacketRate = float64(s.TotalPackets) / elapsed
	}
}

// String returns a formatted statistics summary
func (s *Statistics) String() string {
	s.CalculateRates()

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Total Packets:   %8d\n", s.TotalPackets)
	for sub := SubHUB; sub <= SubSS; sub++ {
		if s.BySubsystem[sub] > 0 {
			result += fmt.Sprintf("  %-4s:          %8d\n", sub, s.BySubsystem[sub])
		}
	}
	if s.Mirrored > 0 {
		result += fmt.Sprintf("Decision Mirrors:%8d\n", s.Mirrored)
	}
	if s.FormatErrors > 0 {
		result += fmt.Sprintf("Format Errors:   %8d\n", s.FormatErrors)
	}
	if s.HasSeenState {
		result += fmt.Sprintf("Peer State:      %8s\n", s.LastState)
	}
	result += fmt.Sprintf("Packet Rate:     %8.1f pkts/sec\n", s.PacketRate)
	result += "================================\n"

	return result
}

// Reset resets all statistics counters
func (s *Statistics) Reset() {
	now := time.Now()
	*s = Statistics{StartTime: now, LastUpdateTime: now}
}
