// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

// Package navcon implements the MARV navigation decision engine and
// the pure-tone dual-detection validator.
//
// The decision engine maps a sensor color classification and line
// incidence angle to the motion primitives the SNC would command over
// SCS. Decide is a pure function; the only cross-call state (the
// repeated-obstacle streak) lives in Session.
package navcon

import (
	"fmt"

	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

// Geometry and pacing constants from the SNC firmware.
const (
	NominalSpeed      = 10 // mm/s symmetric forward speed
	ReverseSteepMM    = 75 // reverse distance for steep incidence
	ReverseNormalMM   = 60 // reverse distance otherwise
	SensorSpacingMM   = 61 // spacing between S2 and the edge sensors
	SteeringMaxAngle  = 10 // corrections up to this are steering, not rotation
	InferredSteepDeg  = 46 // assumed angle when an edge sensor fires with no reading
	ObstacleTurnDeg   = 90 // first encounter rotation away from a wall
	ObstacleEscalated = 180
)

// MotionPrimitive is one discrete motion command.
type MotionPrimitive int

// Motion primitives
const (
	Forward MotionPrimitive = iota
	Reverse
	RotateLeft
	RotateRight
	Stop
	SteeringCorrection
	Turn180
	Turn360
	Unknown
)

func (m MotionPrimitive) String() string {
	switch m {
	case Forward:
		return "FORWARD"
	case Reverse:
		return "REVERSE"
	case RotateLeft:
		return "ROTATE_LEFT"
	case RotateRight:
		return "ROTATE_RIGHT"
	case Stop:
		return "STOP"
	case SteeringCorrection:
		return "STEER"
	case Turn180:
		return "TURN_180"
	case Turn360:
		return "TURN_360"
	default:
		return "UNKNOWN"
	}
}

// TriggerPosition identifies which sensor reported the reading.
type TriggerPosition int

// Sensor positions
const (
	SensorLeft   TriggerPosition = 1 // S1
	SensorCenter TriggerPosition = 2 // S2
	SensorRight  TriggerPosition = 3 // S3
)

func (t TriggerPosition) String() string {
	switch t {
	case SensorLeft:
		return "S1"
	case SensorCenter:
		return "S2"
	case SensorRight:
		return "S3"
	default:
		return "?"
	}
}

// Reading is one virtual sensor event presented to the engine.
type Reading struct {
	S1, S2, S3 scs.SensorColor
	// Angle is the incidence angle in degrees. Edge-sensor events
	// carry 0 by protocol convention; set AngleValid false for those
	// so the engine applies the inferred steep angle instead.
	Angle      int
	AngleValid bool
	Trigger    TriggerPosition
	// ObstacleRepeats is the current blocked-side streak, tracked by
	// the caller (see Session) and reset once all sensors read white.
	ObstacleRepeats int
}

// TriggerColor returns the color reported by the triggering sensor.
func (r Reading) TriggerColor() scs.SensorColor {
	switch r.Trigger {
	case SensorLeft:
		return r.S1
	case SensorRight:
		return r.S3
	default:
		return r.S2
	}
}

// AllWhite reports whether every sensor reads white.
func (r Reading) AllWhite() bool {
	return r.S1 == scs.ColorWhite && r.S2 == scs.ColorWhite && r.S3 == scs.ColorWhite
}

// AllRed reports the end-of-maze marker: all three sensors red.
func (r Reading) AllRed() bool {
	return r.S1 == scs.ColorRed && r.S2 == scs.ColorRed && r.S3 == scs.ColorRed
}

// Step is one motion primitive with its parameters. Speeds apply to
// Forward/Reverse, Angle and Direction to the rotation primitives.
type Step struct {
	Primitive  MotionPrimitive
	SpeedRight uint8
	SpeedLeft  uint8
	Angle      int
	Direction  uint8 // scs.DecRotateLeft or scs.DecRotateRight
	DistanceMM int   // reverse distance
}

func (s Step) String() string {
	switch s.Primitive {
	case Forward, Reverse:
		return fmt.Sprintf("%s vR=%d vL=%d", s.Primitive, s.SpeedRight, s.SpeedLeft)
	case RotateLeft, RotateRight, SteeringCorrection, Turn180, Turn360:
		return fmt.Sprintf("%s %d°", s.Primitive, s.Angle)
	default:
		return s.Primitive.String()
	}
}

// Decision is the ordered motion sequence the engine derived from one
// reading.
type Decision struct {
	Steps     []Step
	EndOfMaze bool
	Unknown   bool // fail-safe stop for an unclassifiable reading
}

// Decide derives the motion sequence for a reading. Pure function:
// identical readings always produce identical decisions. Priority
// order, first match wins:
//
//  1. all-RED         -> STOP, end-of-maze
//  2. obstacle color  -> STOP, REVERSE, rotate away (180° on repeat)
//  3. white           -> FORWARD
//  4. navigable color -> by angle category
//  5. anything else   -> STOP, unknown marker
func Decide(r Reading) Decision {
	if r.AllRed() {
		return Decision{Steps: []Step{{Primitive: Stop}}, EndOfMaze: true}
	}

	color := r.TriggerColor()
	angle, category := effectiveAngle(r)

	switch {
	case color.Obstacle():
		return obstacleDecision(r, category)

	case color == scs.ColorWhite:
		return Decision{Steps: []Step{forwardStep()}}

	case color.Navigable():
		switch category {
		case scs.AngleStraight:
			// Crossing is safe, no correction
			return Decision{Steps: []Step{forwardStep()}}
		case scs.AngleAlignment:
			return Decision{Steps: []Step{
				{Primitive: Stop},
				rotationStep(angle, towardLine(r.Trigger)),
				forwardStep(),
			}}
		default:
			return Decision{Steps: []Step{
				{Primitive: Stop},
				{Primitive: Reverse, SpeedRight: NominalSpeed, SpeedLeft: NominalSpeed, DistanceMM: ReverseSteepMM},
				rotationStep(angle, towardLine(r.Trigger)),
				forwardStep(),
			}}
		}
	}

	return Decision{Steps: []Step{{Primitive: Stop}}, Unknown: true}
}

// effectiveAngle resolves the angle to act on. Edge sensors report no
// usable angle, so a missing reading is treated as steep incidence
// inferred from travel distance.
func effectiveAngle(r Reading) (int, scs.AngleCategory) {
	angle := r.Angle
	if angle < 0 {
		angle = -angle
	}
	if !r.AngleValid && r.Trigger != SensorCenter {
		angle = InferredSteepDeg
	}
	return angle, scs.ClassifyAngle(angle)
}

func obstacleDecision(r Reading, category scs.AngleCategory) Decision {
	reverse := ReverseNormalMM
	if category == scs.AngleSteep {
		reverse = ReverseSteepMM
	}

	rotate := rotationStep(ObstacleTurnDeg, awayFromObstacle(r.Trigger))
	if r.ObstacleRepeats > 0 {
		// Same side blocked again before clearing: turn around instead
		rotate = Step{Primitive: Turn180, Angle: ObstacleEscalated, Direction: scs.DecRotateLeft}
	}

	return Decision{Steps: []Step{
		{Primitive: Stop},
		{Primitive: Reverse, SpeedRight: NominalSpeed, SpeedLeft: NominalSpeed, DistanceMM: reverse},
		rotate,
	}}
}

func forwardStep() Step {
	return Step{Primitive: Forward, SpeedRight: NominalSpeed, SpeedLeft: NominalSpeed}
}

// rotationStep builds the rotation for a corrective angle. Corrections
// within the steering band report as steering, not a named rotation.
func rotationStep(angle int, direction uint8) Step {
	primitive := RotateLeft
	if direction == scs.DecRotateRight {
		primitive = RotateRight
	}
	if angle <= SteeringMaxAngle {
		primitive = SteeringCorrection
	}
	return Step{Primitive: primitive, Angle: angle, Direction: direction}
}

// towardLine gives the rotation direction that brings the robot onto
// the line: toward the side whose sensor saw it. Center detections
// default left, matching the firmware.
func towardLine(t TriggerPosition) uint8 {
	if t == SensorRight {
		return scs.DecRotateRight
	}
	return scs.DecRotateLeft
}

// awayFromObstacle gives the rotation direction that steers away from
// the side that reported the wall. Center detections default left.
func awayFromObstacle(t TriggerPosition) uint8 {
	if t == SensorLeft {
		return scs.DecRotateRight
	}
	return scs.DecRotateLeft
}
