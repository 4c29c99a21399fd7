// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

import "errors"

// Error categories for packet construction and validation.
var (
	// Range errors - rejected at encode time, never coerced
	ErrFieldRange = errors.New("data byte out of range 0-255")
	ErrISTRange   = errors.New("IST out of range 0-15")

	// Format errors - rejected at decode time
	ErrBadPacketLength = errors.New("packet must be exactly 4 bytes")

	// Transition validator
	ErrUnknownTransition = errors.New("transition not in SCS rule table")
)
