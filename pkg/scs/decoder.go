// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

// Decoder accumulates a raw serial byte stream into SCS packets.
//
// SCS has no framing, so the decoder simply collects 4 bytes per
// packet. The SNC debug firmware additionally mirrors its NAVCON
// decisions as 0xFE + 4 packet bytes; when SyncOnMirror is set the
// decoder discards bytes until a mirror prefix and tags the resulting
// packet as a mirrored decision.
type Decoder struct {
	// SyncOnMirror makes the decoder hunt for the 0xFE decision
	// mirror prefix instead of treating every byte as packet data.
	SyncOnMirror bool

	buf      [PacketSize]byte
	n        int
	inPacket bool // mirror prefix seen (SyncOnMirror mode)
	mirror   bool // current packet is a mirrored decision
	skipped  int
}

// NewDecoder creates a stream decoder that treats all input as
// back-to-back 4-byte packets.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// NewMirrorDecoder creates a stream decoder that extracts only the
// 0xFE-prefixed decision mirrors from a mixed debug stream.
func NewMirrorDecoder() *Decoder {
	return &Decoder{SyncOnMirror: true}
}

// Reset drops any partial packet and resynchronises the stream.
func (d *Decoder) Reset() {
	d.n = 0
	d.inPacket = false
	d.mirror = false
	d.skipped = 0
}

// Skipped returns the number of bytes discarded while hunting for a
// mirror prefix since the last completed packet.
func (d *Decoder) Skipped() int {
	return d.skipped
}

// DecodeByte feeds one byte through the decoder.
// Returns a completed packet and true once 4 packet bytes have been
// collected, otherwise a zero packet and false.
func (d *Decoder) DecodeByte(b byte) (Packet, bool) {
	if d.SyncOnMirror && !d.inPacket {
		if b == MirrorDecision {
			d.inPacket = true
			d.mirror = true
			d.n = 0
		} else {
			d.skipped++
		}
		return Packet{}, false
	}

	d.buf[d.n] = b
	d.n++
	if d.n < PacketSize {
		return Packet{}, false
	}

	p, _ := Decode(d.buf[:]) // length is exact by construction
	d.n = 0
	d.inPacket = false
	d.mirror = false
	d.skipped = 0
	return p, true
}

// Decode feeds a byte slice through the decoder and returns every
// packet completed by it.
func (d *Decoder) Decode(data []byte) []Packet {
	var packets []Packet
	for _, b := range data {
		if p, ok := d.DecodeByte(b); ok {
			packets = append(packets, p)
		}
	}
	return packets
}
