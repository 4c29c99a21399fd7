// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package navcon

// Session owns the cross-call state of one simulated navigation run:
// the repeated-obstacle streak the engine escalates on, and the last
// decision taken. Not safe for concurrent use; give each test session
// its own instance.
type Session struct {
	obstacleRepeats int
	last            Decision
}

// NewSession creates a fresh navigation session.
func NewSession() *Session {
	return &Session{}
}

// Observe runs the decision engine for a reading, threading the
// obstacle streak through it. The streak grows on each obstacle
// encounter and resets once all sensors read white again.
func (s *Session) Observe(r Reading) Decision {
	r.ObstacleRepeats = s.obstacleRepeats
	d := Decide(r)

	if r.AllWhite() {
		s.obstacleRepeats = 0
	} else if r.TriggerColor().Obstacle() {
		s.obstacleRepeats++
	}

	s.last = d
	return d
}

// ObstacleRepeats returns the current blocked-side streak.
func (s *Session) ObstacleRepeats() int {
	return s.obstacleRepeats
}

// Last returns the most recent decision.
func (s *Session) Last() Decision {
	return s.last
}

// Reset clears all session state.
func (s *Session) Reset() {
	*s = Session{}
}
