// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package navcon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

func centerReading(color scs.SensorColor, angle int) Reading {
	return Reading{
		S2:         color,
		Angle:      angle,
		AngleValid: true,
		Trigger:    SensorCenter,
	}
}

func primitives(d Decision) []MotionPrimitive {
	out := make([]MotionPrimitive, len(d.Steps))
	for i, s := range d.Steps {
		out[i] = s.Primitive
	}
	return out
}

func TestDecide_Deterministic(t *testing.T) {
	r := centerReading(scs.ColorGreen, 35)
	assert.Equal(t, Decide(r), Decide(r))
}

func TestDecide_AllRedStopsEverything(t *testing.T) {
	// End-of-maze outranks every other classification, including an
	// angle that would otherwise demand correction.
	r := Reading{
		S1: scs.ColorRed, S2: scs.ColorRed, S3: scs.ColorRed,
		Angle: 50, AngleValid: true, Trigger: SensorCenter,
	}
	d := Decide(r)
	assert.True(t, d.EndOfMaze)
	assert.Equal(t, []MotionPrimitive{Stop}, primitives(d))
}

func TestDecide_AllWhiteForward(t *testing.T) {
	d := Decide(centerReading(scs.ColorWhite, 0))
	require.Len(t, d.Steps, 1)
	assert.Equal(t, Forward, d.Steps[0].Primitive)
	assert.Equal(t, uint8(NominalSpeed), d.Steps[0].SpeedRight)
	assert.Equal(t, uint8(NominalSpeed), d.Steps[0].SpeedLeft)
	assert.False(t, d.EndOfMaze)
	assert.False(t, d.Unknown)
}

func TestDecide_StraightBandCrossesDirectly(t *testing.T) {
	for _, angle := range []int{0, 3, 5} {
		d := Decide(centerReading(scs.ColorGreen, angle))
		assert.Equal(t, []MotionPrimitive{Forward}, primitives(d), "angle %d", angle)
	}
}

func TestDecide_AlignmentBandRotatesThenCrosses(t *testing.T) {
	d := Decide(centerReading(scs.ColorGreen, 35))
	require.Equal(t, []MotionPrimitive{Stop, RotateLeft, Forward}, primitives(d))
	assert.Equal(t, 35, d.Steps[1].Angle)
	assert.Equal(t, uint8(scs.DecRotateLeft), d.Steps[1].Direction)
}

func TestDecide_AlignmentRightSensorRotatesRight(t *testing.T) {
	r := Reading{
		S3: scs.ColorRed, Angle: 20, AngleValid: true, Trigger: SensorRight,
	}
	d := Decide(r)
	require.Equal(t, []MotionPrimitive{Stop, RotateRight, Forward}, primitives(d))
	assert.Equal(t, uint8(scs.DecRotateRight), d.Steps[1].Direction)
}

func TestDecide_SteeringBandWithinTenDegrees(t *testing.T) {
	// 6-10 degrees is still the alignment band but corrects by
	// steering rather than a stop-and-rotate.
	d := Decide(centerReading(scs.ColorRed, 8))
	require.Equal(t, []MotionPrimitive{Stop, SteeringCorrection, Forward}, primitives(d))
	assert.Equal(t, 8, d.Steps[1].Angle)
}

func TestDecide_SteepBandReversesFirst(t *testing.T) {
	d := Decide(centerReading(scs.ColorGreen, 60))
	require.Equal(t, []MotionPrimitive{Stop, Reverse, RotateLeft, Forward}, primitives(d))
	assert.Equal(t, ReverseSteepMM, d.Steps[1].DistanceMM)
	assert.Equal(t, 60, d.Steps[2].Angle)
}

func TestDecide_NegativeAngleUsesMagnitude(t *testing.T) {
	d := Decide(centerReading(scs.ColorGreen, -35))
	require.Equal(t, []MotionPrimitive{Stop, RotateLeft, Forward}, primitives(d))
	assert.Equal(t, 35, d.Steps[1].Angle)
}

func TestDecide_EdgeSensorInfersSteepAngle(t *testing.T) {
	// Edge sensor events carry no angle; the engine assumes steep
	// incidence from the sensor geometry.
	r := Reading{S1: scs.ColorGreen, Trigger: SensorLeft}
	d := Decide(r)
	require.Equal(t, []MotionPrimitive{Stop, Reverse, RotateLeft, Forward}, primitives(d))
	assert.Equal(t, InferredSteepDeg, d.Steps[2].Angle)
}

func TestDecide_ObstacleFirstEncounter(t *testing.T) {
	r := Reading{S1: scs.ColorBlack, Trigger: SensorLeft}
	d := Decide(r)
	require.Equal(t, []MotionPrimitive{Stop, Reverse, RotateRight}, primitives(d))
	assert.Equal(t, ObstacleTurnDeg, d.Steps[2].Angle)
	// Wall on the left, turn right
	assert.Equal(t, uint8(scs.DecRotateRight), d.Steps[2].Direction)
}

func TestDecide_ObstacleRightSensorTurnsLeft(t *testing.T) {
	r := Reading{S3: scs.ColorBlue, Trigger: SensorRight}
	d := Decide(r)
	require.Len(t, d.Steps, 3)
	assert.Equal(t, RotateLeft, d.Steps[2].Primitive)
}

func TestDecide_ObstacleRepeatEscalatesToTurn180(t *testing.T) {
	r := Reading{S1: scs.ColorBlack, Trigger: SensorLeft, ObstacleRepeats: 1}
	d := Decide(r)
	require.Equal(t, []MotionPrimitive{Stop, Reverse, Turn180}, primitives(d))
	assert.Equal(t, ObstacleEscalated, d.Steps[2].Angle)
}

func TestDecide_ObstacleSteepAngleExtendsReverse(t *testing.T) {
	r := Reading{
		S2: scs.ColorBlue, Angle: 70, AngleValid: true, Trigger: SensorCenter,
	}
	d := Decide(r)
	require.Len(t, d.Steps, 3)
	assert.Equal(t, ReverseSteepMM, d.Steps[1].DistanceMM)

	shallow := Decide(Reading{
		S2: scs.ColorBlue, Angle: 0, AngleValid: true, Trigger: SensorCenter,
	})
	assert.Equal(t, ReverseNormalMM, shallow.Steps[1].DistanceMM)
}

func TestDecide_FromWirePackets(t *testing.T) {
	// Full path from SS wire packets to the decision sequence: color
	// byte 16 (green under S2) plus a 35 degree angle packet.
	colorP := scs.NewColorData(scs.ColorCodeCenterGreen)
	angleP := scs.NewAngleData(35)

	require.Equal(t, scs.ISTSSColor, colorP.IST())
	require.Equal(t, scs.ISTSSAngle, angleP.IST())

	s1, s2, s3 := scs.DecodeColors(colorP.Dat0())
	r := Reading{
		S1: s1, S2: s2, S3: s3,
		Angle:      int(angleP.Dat1()),
		AngleValid: true,
		Trigger:    SensorCenter,
	}

	d := Decide(r)
	require.Equal(t, []MotionPrimitive{Stop, RotateLeft, Forward}, primitives(d))
	assert.Equal(t, 35, d.Steps[1].Angle)

	// Each step serialises back to a MAZE:SNC:3 packet
	for _, step := range d.Steps {
		p := StepPacket(step)
		assert.Equal(t, scs.StateMaze, p.SysState())
		assert.Equal(t, scs.SubSNC, p.Subsystem())
	}
}

func TestDecide_UnclassifiableFailsSafe(t *testing.T) {
	r := Reading{S2: scs.SensorColor(7), Trigger: SensorCenter, AngleValid: true}
	d := Decide(r)
	assert.True(t, d.Unknown)
	assert.Equal(t, []MotionPrimitive{Stop}, primitives(d))
}
