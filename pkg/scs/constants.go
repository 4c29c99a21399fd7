// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

// Package scs provides a reference Go implementation of the Subsystem
// Communication Standard (SCS) used by the MARV robot.
//
// SCS is a fixed-format 4-byte serial protocol between the MARV
// subsystems (SNC, MDPS, SS) and the test HUB. This package provides
// packet encoding/decoding, color and angle helpers, the system state
// transition validator, and packet formatting for the test harness.
package scs

// Packet size. SCS has no framing, checksum or escaping; every message
// is exactly four raw bytes on the wire.
const (
	PacketSize = 4
)

// MirrorDecision prefixes a NAVCON decision echoed back by the SNC
// firmware over the debug serial link: 0xFE followed by the 4 packet
// bytes of the MAZE:SNC decision.
const MirrorDecision = 0xFE

// Inject framing for firmware emulation hooks: '@' + target ('M' for
// MDPS, 'S' for SS) + the 4 packet bytes.
const (
	InjectPrefix     = '@'
	InjectTargetMDPS = 'M'
	InjectTargetSS   = 'S'
)

// SystemState represents the SYS[1:0] bits of the control byte.
type SystemState int

// System states
const (
	StateIdle SystemState = 0 // system startup, awaiting touch
	StateCal  SystemState = 1 // calibration phase
	StateMaze SystemState = 2 // active navigation
	StateSOS  SystemState = 3 // emergency state
)

func (s SystemState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateCal:
		return "CAL"
	case StateMaze:
		return "MAZE"
	case StateSOS:
		return "SOS"
	default:
		return "UNKNOWN"
	}
}

// SubsystemID represents the SUB[1:0] bits of the control byte.
type SubsystemID int

// Subsystem identifiers
const (
	SubHUB  SubsystemID = 0 // test controller / HUB
	SubSNC  SubsystemID = 1 // sensor navigation control
	SubMDPS SubsystemID = 2 // motor drive & power supply
	SubSS   SubsystemID = 3 // sensor subsystem
)

func (s SubsystemID) String() string {
	switch s {
	case SubHUB:
		return "HUB"
	case SubSNC:
		return "SNC"
	case SubMDPS:
		return "MDPS"
	case SubSS:
		return "SS"
	default:
		return "UNKNOWN"
	}
}

// SensorColor represents a single line-sensor color reading.
type SensorColor int

// Sensor color values
const (
	ColorWhite SensorColor = 0
	ColorRed   SensorColor = 1
	ColorGreen SensorColor = 2
	ColorBlue  SensorColor = 3
	ColorBlack SensorColor = 4
)

func (c SensorColor) String() string {
	switch c {
	case ColorWhite:
		return "WHITE"
	case ColorRed:
		return "RED"
	case ColorGreen:
		return "GREEN"
	case ColorBlue:
		return "BLUE"
	case ColorBlack:
		return "BLACK"
	default:
		return "UNKNOWN"
	}
}

// Navigable reports whether the color marks a crossable line.
func (c SensorColor) Navigable() bool {
	return c == ColorRed || c == ColorGreen
}

// Obstacle reports whether the color marks a wall that must be avoided.
func (c SensorColor) Obstacle() bool {
	return c == ColorBlue || c == ColorBlack
}

// IST codes - IDLE state
const (
	ISTIdleContact = 0 // HUB initial contact / SNC ready
)

// IST codes - CAL state
const (
	ISTCalStart    = 0 // SS/MDPS calibration start
	ISTCalComplete = 1 // SS touch confirmed / MDPS rotation calibration
)

// IST codes - MAZE state, SNC (decision) packets
const (
	ISTSNCRotation = 1 // rotation request, angle in dat1/dat0
	ISTSNCStop     = 2 // stop/reverse command
	ISTSNCSpeed    = 3 // wheel speed command
)

// IST codes - MAZE state, MDPS telemetry packets
const (
	ISTMDPSBattery  = 1 // battery level / stop-rotate ack
	ISTMDPSRotation = 2 // rotation confirm, angle in dat1/dat0
	ISTMDPSSpeed    = 3 // wheel speeds vR/vL
	ISTMDPSDistance = 4 // distance update, mm in dat1/dat0
)

// IST codes - MAZE state, SS sensor packets
const (
	ISTSSColor     = 1 // color data, encoded colors in dat0
	ISTSSAngle     = 2 // incidence angle in dat1
	ISTSSEndOfMaze = 3 // end-of-maze signal
)

// DEC byte direction/action codes used in MAZE:SNC decision packets.
const (
	DecForward     = 0
	DecReverse     = 1
	DecRotateLeft  = 2
	DecRotateRight = 3
	DecStop        = 4
)

// Well-known color byte values under the canonical (S1<<6)|(S2<<3)|S3
// layout. ColorCodeAllRed (0x49) is the end-of-maze marker.
const (
	ColorCodeAllWhite    = 0
	ColorCodeAllRed      = 73
	ColorCodeCenterGreen = 16
	ColorCodeCenterRed   = 8
	ColorCodeCenterBlue  = 24
	ColorCodeCenterBlack = 32
)
