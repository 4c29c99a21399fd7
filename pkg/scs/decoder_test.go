// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

import "testing"

func TestDecoder_BackToBackPackets(t *testing.T) {
	a := MustPacket(StateMaze, SubSS, ISTSSColor, 0, ColorCodeCenterGreen, 0)
	b := MustPacket(StateMaze, SubSS, ISTSSAngle, 0, 35, 0)

	stream := append(a.Bytes(), b.Bytes()...)

	d := NewDecoder()
	packets := d.Decode(stream)
	if len(packets) != 2 {
		t.Fatalf("decoded %d packets, want 2", len(packets))
	}
	if packets[0].Control() != a.Control() || packets[0].Dat0() != a.Dat0() {
		t.Errorf("first packet = %v, want %v", packets[0], a)
	}
	if packets[1].IST() != ISTSSAngle || packets[1].Dat0() != 35 {
		t.Errorf("second packet = %v, want %v", packets[1], b)
	}
}

func TestDecoder_ByteAtATime(t *testing.T) {
	p := MustPacket(StateCal, SubMDPS, ISTMDPSBattery, 0, 95, 0)

	d := NewDecoder()
	for i, b := range p.Bytes() {
		got, ok := d.DecodeByte(b)
		if i < PacketSize-1 {
			if ok {
				t.Fatalf("packet completed after %d bytes", i+1)
			}
			continue
		}
		if !ok {
			t.Fatal("packet not completed after 4 bytes")
		}
		if got.Control() != p.Control() || got.Dat0() != 95 {
			t.Errorf("decoded %v, want %v", got, p)
		}
	}
}

func TestMirrorDecoder_SkipsUntilPrefix(t *testing.T) {
	decision := MustPacket(StateMaze, SubSNC, ISTSNCSpeed, 10, 10, DecForward)

	stream := []byte{0xB1, 0x00, 0x10, 0x00} // ordinary traffic, no prefix
	stream = append(stream, MirrorDecision)
	stream = append(stream, decision.Bytes()...)

	d := NewMirrorDecoder()

	var got Packet
	var count int
	for _, b := range stream {
		if p, ok := d.DecodeByte(b); ok {
			got = p
			count++
		}
	}

	if count != 1 {
		t.Fatalf("decoded %d mirrored packets, want 1", count)
	}
	if got.Subsystem() != SubSNC || got.Dec() != DecForward {
		t.Errorf("mirrored decision = %v, want %v", got, decision)
	}
}

func TestMirrorDecoder_Skipped(t *testing.T) {
	d := NewMirrorDecoder()
	for _, b := range []byte{0x01, 0x02, 0x03} {
		if _, ok := d.DecodeByte(b); ok {
			t.Fatal("unexpected packet from junk bytes")
		}
	}
	if d.Skipped() != 3 {
		t.Errorf("Skipped = %d, want 3", d.Skipped())
	}
}

func TestDecoder_Reset(t *testing.T) {
	d := NewDecoder()
	d.DecodeByte(0xB1)
	d.DecodeByte(0x00)
	d.Reset()

	p := MustPacket(StateIdle, SubHUB, ISTIdleContact, 0, 0, 0)
	packets := d.Decode(p.Bytes())
	if len(packets) != 1 {
		t.Fatalf("decoded %d packets after reset, want 1", len(packets))
	}
	if packets[0].Control() != p.Control() {
		t.Errorf("decoded %v, want %v", packets[0], p)
	}
}
