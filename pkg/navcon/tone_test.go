// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package navcon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

// toneAt builds a tone that ends at the given offset from a fixed
// epoch, with the given duration in milliseconds.
func toneAt(endMS, durMS int) ToneEvent {
	epoch := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return ToneEvent{
		End:      epoch.Add(time.Duration(endMS) * time.Millisecond),
		Duration: time.Duration(durMS) * time.Millisecond,
	}
}

func TestToneValidator_DualDetection(t *testing.T) {
	v := NewToneValidator()

	assert.Equal(t, ToneArmed, v.Feed(toneAt(0, 800)))
	assert.Equal(t, WaitingSecond, v.State())
	assert.Equal(t, toneAt(0, 800).End.Add(ToneWindow), v.Deadline())

	assert.Equal(t, ToneAccepted, v.Feed(toneAt(1900, 900)))
	assert.Equal(t, WaitingFirst, v.State())
	assert.True(t, v.Deadline().IsZero())
}

func TestToneValidator_DurationBounds(t *testing.T) {
	tests := []struct {
		name     string
		durMS    int
		expected ToneResult
	}{
		{"below band", 499, ToneRejected},
		{"lower bound inclusive", 500, ToneArmed},
		{"upper bound inclusive", 1000, ToneArmed},
		{"above band", 1001, ToneRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewToneValidator()
			assert.Equal(t, tt.expected, v.Feed(toneAt(0, tt.durMS)))
		})
	}
}

func TestToneValidator_ExpiredWindowRearmsOnNewTone(t *testing.T) {
	v := NewToneValidator()

	assert.Equal(t, ToneArmed, v.Feed(toneAt(0, 800)))

	// Second tone lands after the 2 s deadline. It must not be
	// swallowed with the stale window: it becomes a fresh first tone.
	assert.Equal(t, ToneArmed, v.Feed(toneAt(2500, 900)))
	assert.Equal(t, WaitingSecond, v.State())
	assert.Equal(t, toneAt(2500, 900).End.Add(ToneWindow), v.Deadline())
}

func TestToneValidator_ExpiredWindowThenBadToneRejects(t *testing.T) {
	v := NewToneValidator()
	v.Feed(toneAt(0, 800))
	assert.Equal(t, ToneRejected, v.Feed(toneAt(2500, 200)))
	assert.Equal(t, WaitingFirst, v.State())
}

func TestToneValidator_OutOfBandSecondHoldsWindow(t *testing.T) {
	v := NewToneValidator()
	v.Feed(toneAt(0, 800))

	// Noise blip inside the window. The pending first tone survives.
	assert.Equal(t, ToneWindowHeld, v.Feed(toneAt(500, 100)))
	assert.Equal(t, WaitingSecond, v.State())

	assert.Equal(t, ToneAccepted, v.Feed(toneAt(1500, 700)))
}

func TestToneValidator_SingleToneNeverAccepts(t *testing.T) {
	v := NewToneValidator()
	for i := 0; i < 5; i++ {
		// Each tone arrives long past the previous deadline, so every
		// one re-arms and none completes a pair.
		res := v.Feed(toneAt(i*5000, 800))
		assert.Equal(t, ToneArmed, res, "tone %d", i)
	}
}

func TestToneValidator_DeadlineBoundInclusive(t *testing.T) {
	// A second tone ending exactly at the deadline is still inside the
	// window.
	v := NewToneValidator()
	v.Feed(toneAt(0, 800))
	assert.Equal(t, ToneAccepted, v.Feed(toneAt(2000, 800)))
}

func TestToneValidator_Reset(t *testing.T) {
	v := NewToneValidator()
	v.Feed(toneAt(0, 800))
	v.Reset()
	assert.Equal(t, WaitingFirst, v.State())
	assert.True(t, v.Deadline().IsZero())
}

func TestToneAccept_DrivesStateToggle(t *testing.T) {
	// An accepted pair is exactly the pure_tone condition the SCS
	// transition table gates MAZE<->SOS on.
	v := NewToneValidator()
	state := scs.StateMaze

	v.Feed(toneAt(0, 800))
	if v.Feed(toneAt(1000, 800)) == ToneAccepted {
		assert.True(t, scs.ValidateTransition(state, scs.StateSOS, scs.Conditions{PureTone: true}))
		state = scs.StateSOS
	}

	v.Feed(toneAt(10000, 800))
	if v.Feed(toneAt(11000, 800)) == ToneAccepted {
		assert.True(t, scs.ValidateTransition(state, scs.StateMaze, scs.Conditions{PureTone: true}))
	}
}
