// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

import (
	"fmt"
	"time"
)

// Packet represents a decoded SCS packet.
//
// Wire layout (4 bytes, no framing):
//
//	Byte 0 - CONTROL: SYS[7:6] | SUB[5:4] | IST[3:0]
//	Byte 1 - DAT1:    upper data byte
//	Byte 2 - DAT0:    lower data byte
//	Byte 3 - DEC:     direction/sub-action byte
type Packet struct {
	control   uint8
	dat1      uint8
	dat0      uint8
	dec       uint8
	timestamp time.Time
}

// NewPacket creates a packet from structured fields.
// Returns ErrISTRange if ist is outside 0-15, or ErrFieldRange if any
// data value is outside 0-255. Out-of-range values are never truncated.
func NewPacket(sys SystemState, sub SubsystemID, ist, dat1, dat0, dec int) (Packet, error) {
	if ist < 0 || ist > 15 {
		return Packet{}, fmt.Errorf("%w: got %d", ErrISTRange, ist)
	}
	for _, f := range []struct {
		name  string
		value int
	}{{"dat1", dat1}, {"dat0", dat0}, {"dec", dec}} {
		if f.value < 0 || f.value > 255 {
			return Packet{}, fmt.Errorf("%w: %s=%d", ErrFieldRange, f.name, f.value)
		}
	}

	return Packet{
		control:   ControlByte(sys, sub, ist),
		dat1:      uint8(dat1),
		dat0:      uint8(dat0),
		dec:       uint8(dec),
		timestamp: time.Now(),
	}, nil
}

// MustPacket is NewPacket for compile-time-constant fields.
// Panics on range errors.
func MustPacket(sys SystemState, sub SubsystemID, ist, dat1, dat0, dec int) Packet {
	p, err := NewPacket(sys, sub, ist, dat1, dat0, dec)
	if err != nil {
		panic(fmt.Sprintf("scs: %v", err))
	}
	return p
}

// Decode creates a packet from a 4-byte wire sequence.
// Returns ErrBadPacketLength unless data is exactly 4 bytes. Every byte
// value is a valid packet; both 2-bit control sub-fields cover their
// full range, so decoding never fails on field content.
func Decode(data []byte) (Packet, error) {
	if len(data) != PacketSize {
		return Packet{}, fmt.Errorf("%w: got %d", ErrBadPacketLength, len(data))
	}
	return Packet{
		control:   data[0],
		dat1:      data[1],
		dat0:      data[2],
		dec:       data[3],
		timestamp: time.Now(),
	}, nil
}

// ControlByte composes the CONTROL byte from its three sub-fields.
func ControlByte(sys SystemState, sub SubsystemID, ist int) uint8 {
	return uint8((int(sys)&0x03)<<6 | (int(sub)&0x03)<<4 | ist&0x0F)
}

// ParseControl decomposes a CONTROL byte into its three sub-fields.
func ParseControl(control uint8) (SystemState, SubsystemID, int) {
	return SystemState((control >> 6) & 0x03),
		SubsystemID((control >> 4) & 0x03),
		int(control & 0x0F)
}

// Control returns the raw CONTROL byte.
func (p Packet) Control() uint8 {
	return p.control
}

// SysState returns the system state field of the control byte.
func (p Packet) SysState() SystemState {
	return SystemState((p.control >> 6) & 0x03)
}

// Subsystem returns the subsystem field of the control byte.
func (p Packet) Subsystem() SubsystemID {
	return SubsystemID((p.control >> 4) & 0x03)
}

// IST returns the instruction/status field of the control byte.
func (p Packet) IST() int {
	return int(p.control & 0x0F)
}

// Dat1 returns the upper data byte.
func (p Packet) Dat1() uint8 {
	return p.dat1
}

// Dat0 returns the lower data byte.
func (p Packet) Dat0() uint8 {
	return p.dat0
}

// Dec returns the direction/sub-action byte.
func (p Packet) Dec() uint8 {
	return p.dec
}

// Word returns dat1/dat0 as a big-endian 16-bit value. Rotation angles
// and distances are split across the two data bytes this way.
func (p Packet) Word() uint16 {
	return uint16(p.dat1)<<8 | uint16(p.dat0)
}

// Timestamp returns the packet's creation or decode time.
func (p Packet) Timestamp() time.Time {
	return p.timestamp
}

// Bytes returns the 4-byte wire representation.
func (p Packet) Bytes() []byte {
	return []byte{p.control, p.dat1, p.dat0, p.dec}
}

// String returns a compact human-readable representation matching the
// original harness log format.
func (p Packet) String() string {
	sys, sub, ist := ParseControl(p.control)
	return fmt.Sprintf("(%d-%d-%d) || %-4s | %-4s | %2d || %3d | %3d | %3d || %3d",
		int(sys), int(sub), ist, sys, sub, ist, p.dat1, p.dat0, p.dec, p.control)
}
