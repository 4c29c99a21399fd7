// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

// AngleCategory classifies a line incidence angle into the NAVCON
// correction bands.
type AngleCategory int

// Angle categories. Band bounds are inclusive on the lower side:
// 5 degrees is still STRAIGHT, 45 degrees is still ALIGNMENT.
const (
	AngleStraight  AngleCategory = iota // <= 5: cross directly
	AngleAlignment                      // 6-45: small corrective rotation
	AngleSteep                          // > 45: reverse and realign
)

func (a AngleCategory) String() string {
	switch a {
	case AngleStraight:
		return "STRAIGHT"
	case AngleAlignment:
		return "ALIGNMENT"
	case AngleSteep:
		return "STEEP"
	default:
		return "UNKNOWN"
	}
}

// ClassifyAngle maps an incidence angle in degrees to its category.
// Negative angles are a signed offset sharing the same magnitude
// bands, so the absolute value is classified.
func ClassifyAngle(degrees int) AngleCategory {
	if degrees < 0 {
		degrees = -degrees
	}
	switch {
	case degrees <= 5:
		return AngleStraight
	case degrees <= 45:
		return AngleAlignment
	default:
		return AngleSteep
	}
}
