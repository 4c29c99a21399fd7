// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package navcon

import (
	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

// The SNC transmits each decision step as a MAZE:SNC:3 packet. The DEC
// byte selects the action; dat1/dat0 carry either wheel speeds or a
// big-endian rotation angle. The debug firmware mirrors the same
// packet behind an 0xFE prefix.

// StepPacket encodes one decision step as its MAZE:SNC:3 wire packet.
func StepPacket(s Step) scs.Packet {
	switch s.Primitive {
	case Forward:
		return scs.MustPacket(scs.StateMaze, scs.SubSNC, scs.ISTSNCSpeed,
			int(s.SpeedRight), int(s.SpeedLeft), scs.DecForward)
	case Reverse:
		return scs.MustPacket(scs.StateMaze, scs.SubSNC, scs.ISTSNCSpeed,
			int(s.SpeedRight), int(s.SpeedLeft), scs.DecReverse)
	case RotateLeft, RotateRight, SteeringCorrection, Turn180, Turn360:
		return scs.MustPacket(scs.StateMaze, scs.SubSNC, scs.ISTSNCSpeed,
			(s.Angle>>8)&0xFF, s.Angle&0xFF, int(s.Direction))
	default:
		return scs.MustPacket(scs.StateMaze, scs.SubSNC, scs.ISTSNCSpeed,
			0, 0, scs.DecStop)
	}
}

// ParseStep decodes a decision packet (typically a mirrored one) back
// into a motion step. Unknown DEC values come back as Unknown, the
// fail-safe marker.
func ParseStep(p scs.Packet) Step {
	switch p.Dec() {
	case scs.DecForward:
		return Step{Primitive: Forward, SpeedRight: p.Dat1(), SpeedLeft: p.Dat0()}
	case scs.DecReverse:
		return Step{Primitive: Reverse, SpeedRight: p.Dat1(), SpeedLeft: p.Dat0()}
	case scs.DecRotateLeft:
		return rotationFromWire(int(p.Word()), scs.DecRotateLeft)
	case scs.DecRotateRight:
		return rotationFromWire(int(p.Word()), scs.DecRotateRight)
	case scs.DecStop:
		return Step{Primitive: Stop}
	default:
		return Step{Primitive: Unknown}
	}
}

func rotationFromWire(angle int, direction uint8) Step {
	s := Step{Angle: angle, Direction: direction}
	switch {
	case angle == 180:
		s.Primitive = Turn180
	case angle == 360:
		s.Primitive = Turn360
	case angle <= SteeringMaxAngle:
		s.Primitive = SteeringCorrection
	case direction == scs.DecRotateRight:
		s.Primitive = RotateRight
	default:
		s.Primitive = RotateLeft
	}
	return s
}
