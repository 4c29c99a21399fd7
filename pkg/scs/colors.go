// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scs

import "fmt"

// Color byte layout: (S1<<6) | (S2<<3) | S3 with a full 3-bit field per
// sensor. S1 is the left edge sensor, S2 the center sensor, S3 the
// right edge sensor. Under this layout all-RED encodes to 73 (0x49)
// and center-GREEN to 16.
//
// The legacy GUIs also carried a 2-bit truncating variant that cannot
// represent BLACK; it is intentionally not implemented here.
const colorFieldMask = 0x07

// EncodeColors packs three sensor color readings into one byte.
// Returns ErrFieldRange if any reading is outside the defined
// WHITE..BLACK range.
func EncodeColors(s1, s2, s3 SensorColor) (uint8, error) {
	for _, c := range []SensorColor{s1, s2, s3} {
		if c < ColorWhite || c > ColorBlack {
			return 0, fmt.Errorf("%w: color value %d", ErrFieldRange, int(c))
		}
	}
	return uint8(int(s1)<<6 | int(s2)<<3 | int(s3)), nil
}

// DecodeColors unpacks a color byte into the three sensor readings.
// Inverse of EncodeColors for every defined color triple.
func DecodeColors(b uint8) (s1, s2, s3 SensorColor) {
	s1 = SensorColor((b >> 6) & colorFieldMask)
	s2 = SensorColor((b >> 3) & colorFieldMask)
	s3 = SensorColor(b & colorFieldMask)
	return s1, s2, s3
}

// AllRed reports whether the color byte is the all-RED end-of-maze
// marker.
func AllRed(b uint8) bool {
	return b == ColorCodeAllRed
}

// DescribeColors renders a color byte the way the original harness
// logged it.
func DescribeColors(b uint8) string {
	switch b {
	case ColorCodeAllWhite:
		return "All WHITE"
	case ColorCodeAllRed:
		return "All RED (End-of-Maze)"
	}

	s1, s2, s3 := DecodeColors(b)
	out := ""
	for _, s := range []struct {
		name  string
		color SensorColor
	}{{"S1", s1}, {"S2", s2}, {"S3", s3}} {
		if s.color == ColorWhite {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s=%s", s.name, s.color)
	}
	if out == "" {
		return fmt.Sprintf("Color code: %d", b)
	}
	return out
}
