// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

import "fmt"

// FormatPacket returns a timestamped multi-line rendering of a packet
// for the monitor log.
func FormatPacket(p Packet) string {
	ts := p.Timestamp().Format("15:04:05.000")
	sys, sub, ist := ParseControl(p.Control())
	return fmt.Sprintf("[%s] %s:%s:IST%d  ctrl=0x%02X d1=%d d0=%d dec=%d\n  %s\n",
		ts, sys, sub, ist, p.Control(), p.Dat1(), p.Dat0(), p.Dec(), Describe(p))
}

// Describe returns a one-line semantic description of a packet based
// on its (state, subsystem, IST) triple, matching the original harness
// log text.
func Describe(p Packet) string {
	sys, sub, ist := ParseControl(p.Control())

	switch sys {
	case StateIdle:
		switch {
		case sub == SubHUB && ist == ISTIdleContact:
			return "HUB: Initial contact"
		case sub == SubSNC && ist == ISTIdleContact:
			return fmt.Sprintf("SNC: Ready (Touch=%d, Distance=%d)", p.Dat1(), p.Dat0())
		}

	case StateCal:
		switch sub {
		case SubSS:
			switch ist {
			case ISTCalStart:
				return "SS: Calibration start (no touch)"
			case ISTCalComplete:
				return "SS: Calibration complete (touch detected)"
			}
		case SubMDPS:
			switch ist {
			case ISTCalStart:
				return fmt.Sprintf("MDPS: Calibration start (vL=%d, vR=%d)", p.Dat1(), p.Dat0())
			case ISTCalComplete:
				return fmt.Sprintf("MDPS: Calibration rotation (%d°)", p.Dat1())
			}
		case SubSNC:
			if ist == ISTCalStart {
				return fmt.Sprintf("SNC: In calibration (Touch=%d)", p.Dat1())
			}
		}

	case StateMaze:
		switch sub {
		case SubSNC:
			switch ist {
			case ISTSNCRotation:
				return fmt.Sprintf("SNC: Rotation request (%d° %s)", p.Word(), directionName(p.Dec()))
			case ISTSNCStop:
				return "SNC: Stop/Reverse command"
			case ISTSNCSpeed:
				return fmt.Sprintf("SNC: Speed command (vR=%d, vL=%d, DEC=%d)", p.Dat1(), p.Dat0(), p.Dec())
			}
		case SubMDPS:
			switch ist {
			case ISTMDPSBattery:
				return fmt.Sprintf("MDPS: Battery level (%d%%)", p.Dat1())
			case ISTMDPSRotation:
				return fmt.Sprintf("MDPS: Rotation confirm (%d° %s)", p.Word(), directionName(p.Dec()))
			case ISTMDPSSpeed:
				return fmt.Sprintf("MDPS: Forward (vR=%d, vL=%d)", p.Dat1(), p.Dat0())
			case ISTMDPSDistance:
				return fmt.Sprintf("MDPS: Distance update (%d mm)", p.Word())
			}
		case SubSS:
			switch ist {
			case ISTSSColor:
				return fmt.Sprintf("SS: Color data (%s)", DescribeColors(p.Dat0()))
			case ISTSSAngle:
				return fmt.Sprintf("SS: Angle data (%d°)", p.Dat1())
			case ISTSSEndOfMaze:
				return "SS: End-of-maze signal"
			}
		}

	case StateSOS:
		return fmt.Sprintf("%s:%s:IST%d (emergency traffic)", sys, sub, ist)
	}

	return fmt.Sprintf("%s:%s:IST%d", sys, sub, ist)
}

func directionName(dec uint8) string {
	switch dec {
	case DecForward:
		return "FORWARD"
	case DecReverse:
		return "REVERSE"
	case DecRotateLeft:
		return "LEFT"
	case DecRotateRight:
		return "RIGHT"
	case DecStop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}
