// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// TestFuzzPacketRoundTrip builds random in-range packets and checks
// that serialising then decoding them preserves every field.
func TestFuzzPacketRoundTrip(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	for i := 0; i < rounds; i++ {
		sys := SystemState(rng.Intn(4))
		sub := SubsystemID(rng.Intn(4))
		ist := rng.Intn(16)
		d1 := rng.Intn(256)
		d0 := rng.Intn(256)
		dec := rng.Intn(256)

		p, err := NewPacket(sys, sub, ist, d1, d0, dec)
		if err != nil {
			t.Fatalf("round %d: NewPacket: %v", i, err)
		}

		got, err := Decode(p.Bytes())
		if err != nil {
			t.Fatalf("round %d: Decode: %v", i, err)
		}

		if got.SysState() != sys || got.Subsystem() != sub || got.IST() != ist ||
			got.Dat1() != uint8(d1) || got.Dat0() != uint8(d0) || got.Dec() != uint8(dec) {
			t.Fatalf("round %d: round-trip mismatch: sent (%v,%v,%d,%d,%d,%d), got %v",
				i, sys, sub, ist, d1, d0, dec, got)
		}
	}
}

// TestFuzzDecoderStream feeds a long concatenated stream of random
// packets through the byte decoder and checks that reassembly never
// loses alignment.
func TestFuzzDecoderStream(t *testing.T) {
	rng := newFuzzRng(t)
	rounds := getFuzzRounds()

	var stream []byte
	var sent []Packet
	for i := 0; i < rounds; i++ {
		p, err := NewPacket(
			SystemState(rng.Intn(4)), SubsystemID(rng.Intn(4)),
			rng.Intn(16), rng.Intn(256), rng.Intn(256), rng.Intn(256))
		if err != nil {
			t.Fatalf("round %d: NewPacket: %v", i, err)
		}
		sent = append(sent, p)
		stream = append(stream, p.Bytes()...)
	}

	d := NewDecoder()
	got := d.Decode(stream)
	if len(got) != len(sent) {
		t.Fatalf("decoded %d packets, want %d", len(got), len(sent))
	}
	for i := range sent {
		if got[i].Control() != sent[i].Control() ||
			got[i].Dat1() != sent[i].Dat1() ||
			got[i].Dat0() != sent[i].Dat0() ||
			got[i].Dec() != sent[i].Dec() {
			t.Fatalf("packet %d: got %v, want %v", i, got[i], sent[i])
		}
	}
}
