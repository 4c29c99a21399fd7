// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package navcon

import "time"

// Pure-tone dual-detection parameters: two 2.8 kHz tones, each lasting
// 500-1000 ms, the second ending within 2 s of the first, toggle the
// MAZE/SOS state. A single tone never toggles anything.
const (
	ToneMinDuration = 500 * time.Millisecond
	ToneMaxDuration = 1000 * time.Millisecond
	ToneWindow      = 2000 * time.Millisecond
)

// ToneEvent is one observed tone-end edge.
type ToneEvent struct {
	End      time.Time
	Duration time.Duration
}

// InBand reports whether the tone duration is inside the accepted
// 500-1000 ms band, bounds inclusive.
func (e ToneEvent) InBand() bool {
	return e.Duration >= ToneMinDuration && e.Duration <= ToneMaxDuration
}

// ToneState is the validator's slot state.
type ToneState int

// Validator states
const (
	WaitingFirst  ToneState = iota // no pending tone
	WaitingSecond                  // first tone stored, deadline armed
)

func (s ToneState) String() string {
	if s == WaitingSecond {
		return "WAITING_SECOND"
	}
	return "WAITING_FIRST"
}

// ToneResult is the outcome of feeding one event to the validator.
type ToneResult int

// Feed outcomes
const (
	// ToneRejected: duration out of band with no window pending.
	ToneRejected ToneResult = iota
	// ToneArmed: valid first tone stored, 2 s window opened.
	ToneArmed
	// ToneAccepted: valid second tone inside the window; the caller
	// toggles MAZE<->SOS.
	ToneAccepted
	// ToneWindowHeld: out-of-band tone while a window is pending. The
	// stored first tone and its deadline stay active.
	ToneWindowHeld
)

func (r ToneResult) String() string {
	switch r {
	case ToneArmed:
		return "ARMED"
	case ToneAccepted:
		return "ACCEPTED"
	case ToneWindowHeld:
		return "WINDOW_HELD"
	default:
		return "REJECTED"
	}
}

// ToneValidator is the two-slot state machine for dual pure-tone
// detection. Timeouts are plain deadline comparisons made on each new
// event; nothing sleeps or fires asynchronously. Not safe for
// concurrent use without external synchronization.
type ToneValidator struct {
	state    ToneState
	deadline time.Time
}

// NewToneValidator creates a validator in WAITING_FIRST.
func NewToneValidator() *ToneValidator {
	return &ToneValidator{}
}

// State returns the current slot state.
func (v *ToneValidator) State() ToneState {
	return v.state
}

// Deadline returns the pending second-tone deadline. Zero when no
// window is open.
func (v *ToneValidator) Deadline() time.Time {
	return v.deadline
}

// Reset discards any pending first tone.
func (v *ToneValidator) Reset() {
	v.state = WaitingFirst
	v.deadline = time.Time{}
}

// Feed evaluates a tone-end event. After an accept or a window expiry
// the machine re-arms from WAITING_FIRST; an expired window never
// swallows the new tone, which is re-evaluated as a potential fresh
// first tone.
func (v *ToneValidator) Feed(e ToneEvent) ToneResult {
	if v.state == WaitingSecond && e.End.After(v.deadline) {
		// Window expired: drop the stored tone, then treat this
		// event as a candidate first tone.
		v.Reset()
	}

	switch v.state {
	case WaitingFirst:
		if !e.InBand() {
			return ToneRejected
		}
		v.state = WaitingSecond
		v.deadline = e.End.Add(ToneWindow)
		return ToneArmed

	default: // WaitingSecond, deadline not passed
		if !e.InBand() {
			return ToneWindowHeld
		}
		v.Reset()
		return ToneAccepted
	}
}
