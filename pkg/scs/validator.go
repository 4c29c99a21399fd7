// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

import "fmt"

// Conditions carries the named boolean preconditions the transition
// rule table gates on. The caller supplies whichever are currently
// true; the validator never tracks them itself.
type Conditions struct {
	TouchSensor bool // capacitive touch pad pressed
	SSEOC       bool // SS signalled end-of-calibration
	MDPSEOC     bool // MDPS signalled end-of-calibration
	PureTone    bool // dual pure-tone detection accepted
	EndOfMaze   bool // all-RED marker crossed
}

// TransitionRule is one entry of the static SCS state machine table.
type TransitionRule struct {
	From     SystemState
	To       SystemState
	Required func(Conditions) bool
}

// transitionRules is the full legal-transition table. Any (from,to)
// pair not listed is invalid.
var transitionRules = []TransitionRule{
	{StateIdle, StateCal, func(c Conditions) bool { return c.TouchSensor }},
	{StateCal, StateMaze, func(c Conditions) bool { return c.SSEOC && c.MDPSEOC }},
	{StateMaze, StateSOS, func(c Conditions) bool { return c.PureTone }},
	{StateSOS, StateMaze, func(c Conditions) bool { return c.PureTone }},
	{StateMaze, StateIdle, func(c Conditions) bool { return c.EndOfMaze }},
}

// ValidateTransition reports whether moving from one system state to
// another is legal given the currently-true conditions. It is a pure
// predicate: it does not advance state and rejections have no side
// effect.
func ValidateTransition(from, to SystemState, cond Conditions) bool {
	for _, rule := range transitionRules {
		if rule.From == from && rule.To == to {
			return rule.Required(cond)
		}
	}
	return false
}

// CheckTransition is ValidateTransition with an explicit error for
// pairs absent from the rule table, so callers can distinguish "known
// transition, conditions unmet" from "no such transition".
func CheckTransition(from, to SystemState, cond Conditions) (bool, error) {
	for _, rule := range transitionRules {
		if rule.From == from && rule.To == to {
			return rule.Required(cond), nil
		}
	}
	return false, fmt.Errorf("%w: %s -> %s", ErrUnknownTransition, from, to)
}
