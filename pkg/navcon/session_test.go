// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package navcon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

func TestSession_ObstacleStreakEscalates(t *testing.T) {
	s := NewSession()
	wall := Reading{S1: scs.ColorBlack, Trigger: SensorLeft}

	first := s.Observe(wall)
	require.Len(t, first.Steps, 3)
	assert.Equal(t, RotateRight, first.Steps[2].Primitive)
	assert.Equal(t, 1, s.ObstacleRepeats())

	second := s.Observe(wall)
	require.Len(t, second.Steps, 3)
	assert.Equal(t, Turn180, second.Steps[2].Primitive)
	assert.Equal(t, 2, s.ObstacleRepeats())
}

func TestSession_AllWhiteResetsStreak(t *testing.T) {
	s := NewSession()
	wall := Reading{S3: scs.ColorBlue, Trigger: SensorRight}

	s.Observe(wall)
	require.Equal(t, 1, s.ObstacleRepeats())

	d := s.Observe(Reading{Trigger: SensorCenter, AngleValid: true})
	assert.Equal(t, Forward, d.Steps[0].Primitive)
	assert.Equal(t, 0, s.ObstacleRepeats())

	// Streak cleared, next wall is a first encounter again
	again := s.Observe(wall)
	assert.Equal(t, RotateLeft, again.Steps[2].Primitive)
}

func TestSession_LineCrossingsKeepStreak(t *testing.T) {
	// Only an all-white reading clears the streak; seeing a navigable
	// line while still boxed in must not.
	s := NewSession()
	s.Observe(Reading{S1: scs.ColorBlack, Trigger: SensorLeft})
	s.Observe(Reading{S2: scs.ColorGreen, Angle: 3, AngleValid: true, Trigger: SensorCenter, S1: scs.ColorBlack})
	assert.Equal(t, 1, s.ObstacleRepeats())
}

func TestSession_LastAndReset(t *testing.T) {
	s := NewSession()
	d := s.Observe(Reading{Trigger: SensorCenter, AngleValid: true})
	assert.Equal(t, d, s.Last())

	s.Reset()
	assert.Equal(t, 0, s.ObstacleRepeats())
	assert.Empty(t, s.Last().Steps)
}
