// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

// Command builder functions create Packet values ready for the wire.
// These are convenience wrappers around MustPacket that ensure correct
// (state, subsystem, IST) combinations per the SCS definition. All
// byte-sized arguments are masked by the caller's contract (uint8).

// NewHubContact creates the IDLE:HUB:0 initial contact packet.
func NewHubContact() Packet {
	return MustPacket(StateIdle, SubHUB, ISTIdleContact, 0, 0, 0)
}

// NewSNCReady creates an IDLE:SNC:0 ready packet carrying the touch
// count and clearance distance.
func NewSNCReady(touchCount, distance uint8) Packet {
	return MustPacket(StateIdle, SubSNC, ISTIdleContact, int(touchCount), int(distance), 0)
}

// NewCalSS creates a CAL:SS packet. IST 0 is calibration start, IST 1
// calibration complete (touch confirmed).
func NewCalSS(ist int) Packet {
	return MustPacket(StateCal, SubSS, ist&0x0F, 0, 0, 0)
}

// NewCalMDPSStart creates the CAL:MDPS:0 calibration start packet with
// symmetric wheel speeds.
func NewCalMDPSStart(speed uint8) Packet {
	return MustPacket(StateCal, SubMDPS, ISTCalStart, int(speed), int(speed), 0)
}

// NewCalMDPSRotation creates the CAL:MDPS:1 rotation calibration
// packet.
func NewCalMDPSRotation(angle uint8) Packet {
	return MustPacket(StateCal, SubMDPS, ISTCalComplete, int(angle), 0, 0)
}

// NewColorData creates a MAZE:SS:1 color data packet. The color byte
// uses the canonical (S1<<6)|(S2<<3)|S3 layout.
func NewColorData(colorCode uint8) Packet {
	return MustPacket(StateMaze, SubSS, ISTSSColor, 0, int(colorCode), 0)
}

// NewColorDataFrom creates a MAZE:SS:1 packet from individual sensor
// readings.
func NewColorDataFrom(s1, s2, s3 SensorColor) (Packet, error) {
	code, err := EncodeColors(s1, s2, s3)
	if err != nil {
		return Packet{}, err
	}
	return NewColorData(code), nil
}

// NewAngleData creates a MAZE:SS:2 incidence angle packet. Edge-sensor
// events carry angle 0 by protocol convention.
func NewAngleData(angle uint8) Packet {
	return MustPacket(StateMaze, SubSS, ISTSSAngle, int(angle), 0, 0)
}

// NewEndOfMaze creates the MAZE:SS:3 end-of-maze packet.
func NewEndOfMaze() Packet {
	return MustPacket(StateMaze, SubSS, ISTSSEndOfMaze, 0, 0, 0)
}

// NewMDPSBattery creates a MAZE:MDPS:1 battery level packet.
func NewMDPSBattery(level uint8) Packet {
	return MustPacket(StateMaze, SubMDPS, ISTMDPSBattery, int(level), 0, 0)
}

// NewMDPSRotation creates a MAZE:MDPS:2 rotation confirmation packet.
// The angle is split big-endian across dat1/dat0; direction uses the
// DEC codes.
func NewMDPSRotation(angle uint16, direction uint8) Packet {
	return MustPacket(StateMaze, SubMDPS, ISTMDPSRotation,
		int(angle>>8), int(angle&0xFF), int(direction))
}

// NewMDPSSpeed creates a MAZE:MDPS:3 wheel speed packet (vR, vL).
func NewMDPSSpeed(right, left uint8) Packet {
	return MustPacket(StateMaze, SubMDPS, ISTMDPSSpeed, int(right), int(left), 0)
}

// NewMDPSDistance creates a MAZE:MDPS:4 distance update packet with
// the travelled distance in millimetres.
func NewMDPSDistance(mm uint16) Packet {
	return MustPacket(StateMaze, SubMDPS, ISTMDPSDistance,
		int(mm>>8), int(mm&0xFF), 0)
}

// NewSNCRotation creates a MAZE:SNC:1 rotation request with the angle
// split big-endian across dat1/dat0 and a DEC direction code.
func NewSNCRotation(angle uint16, direction uint8) Packet {
	return MustPacket(StateMaze, SubSNC, ISTSNCRotation,
		int(angle>>8), int(angle&0xFF), int(direction))
}

// NewSNCStop creates a MAZE:SNC:2 stop/reverse command.
func NewSNCStop(reverse bool) Packet {
	dec := DecStop
	if reverse {
		dec = DecReverse
	}
	return MustPacket(StateMaze, SubSNC, ISTSNCStop, 0, 0, dec)
}

// NewSNCSpeed creates a MAZE:SNC:3 wheel speed command (vR, vL).
func NewSNCSpeed(right, left uint8, dec uint8) Packet {
	return MustPacket(StateMaze, SubSNC, ISTSNCSpeed, int(right), int(left), int(dec))
}

// InjectFrame wraps a packet in the '@' + target emulation framing the
// SNC debug firmware accepts over USB.
func InjectFrame(target byte, p Packet) []byte {
	frame := make([]byte, 0, PacketSize+2)
	frame = append(frame, InjectPrefix, target)
	return append(frame, p.Bytes()...)
}
