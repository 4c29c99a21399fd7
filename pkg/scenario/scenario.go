// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

// Package scenario models NAVCON test scenarios as data consumed by a
// single runner, replacing the per-scenario test windows of the old
// harness. Scenarios can run offline against the local decision engine
// or live against SNC firmware over a serial link.
package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Bud-wiser-er/marvscope/pkg/navcon"
	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

// Scenario is one NAVCON test case: the sensor picture presented to
// the SNC and the motion primitive it must answer with.
type Scenario struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc,omitempty"`

	// Colors are the S1, S2, S3 readings by name (white, red, green,
	// blue, black). Empty means no color packet is sent (end-of-maze
	// only scenarios).
	Colors []string `yaml:"colors,omitempty"`

	// Angle is the incidence angle in degrees. Nil means no angle
	// packet is sent.
	Angle *int `yaml:"angle,omitempty"`

	// Distances are MDPS odometry updates in mm sent before the
	// sensor packets.
	Distances []int `yaml:"distances,omitempty"`

	EndOfMaze bool `yaml:"end_of_maze,omitempty"`

	// Expect names the motion primitive of the first decision step
	// (forward, reverse, rotate_left, rotate_right, stop, steer).
	Expect string `yaml:"expect"`
}

// Builtin returns the stock scenario table carried over from the
// original NAVCON tester.
func Builtin() []Scenario {
	angle := func(a int) *int { return &a }
	return []Scenario{
		{
			Name:      "Clear floor → Forward",
			Desc:      "MDPS odometry then all-white sensors, angle 0. SNC keeps driving.",
			Colors:    []string{"white", "white", "white"},
			Angle:     angle(0),
			Distances: []int{1000},
			Expect:    "forward",
		},
		{
			Name:      "Green mid → Forward",
			Desc:      "Green under S2 at 5°: still inside the straight band.",
			Colors:    []string{"white", "green", "white"},
			Angle:     angle(5),
			Distances: []int{1200},
			Expect:    "forward",
		},
		{
			Name:      "Green mid 35° → Stop",
			Desc:      "Green under S2 at 35°: alignment correction sequence.",
			Colors:    []string{"white", "green", "white"},
			Angle:     angle(35),
			Distances: []int{1200},
			Expect:    "stop",
		},
		{
			Name:      "Red S1 steep ΔD → Stop",
			Desc:      "Red on the left edge at 50°: reverse and realign.",
			Colors:    []string{"red", "white", "white"},
			Angle:     angle(50),
			Distances: []int{1000, 1100},
			Expect:    "stop",
		},
		{
			Name:      "Black S1 wall → Stop",
			Desc:      "Black on the left edge: wall avoidance.",
			Colors:    []string{"black", "white", "white"},
			Angle:     angle(20),
			Distances: []int{3000, 3020},
			Expect:    "stop",
		},
		{
			Name:      "End-of-Maze → Stop",
			Desc:      "All sensors red: stop and signal end of maze.",
			Colors:    []string{"red", "red", "red"},
			Angle:     angle(0),
			Distances: []int{1500},
			EndOfMaze: true,
			Expect:    "stop",
		},
	}
}

// Load reads additional scenarios from a YAML file.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	for i := range scenarios {
		if _, err := scenarios[i].Reading(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenarios[i].Name, err)
		}
		if _, err := ParsePrimitive(scenarios[i].Expect); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenarios[i].Name, err)
		}
	}
	return scenarios, nil
}

// Reading converts the scenario's sensor picture into an engine
// reading. The center sensor wins trigger priority; otherwise the
// first edge sensor with color triggers, with the edge-sensor
// convention of no valid angle.
func (s Scenario) Reading() (navcon.Reading, error) {
	r := navcon.Reading{Trigger: navcon.SensorCenter, AngleValid: true}

	if len(s.Colors) > 0 {
		if len(s.Colors) != 3 {
			return r, fmt.Errorf("want 3 colors, got %d", len(s.Colors))
		}
		colors := make([]scs.SensorColor, 3)
		for i, name := range s.Colors {
			c, err := ParseColor(name)
			if err != nil {
				return r, err
			}
			colors[i] = c
		}
		r.S1, r.S2, r.S3 = colors[0], colors[1], colors[2]
	}

	if s.Angle != nil {
		r.Angle = *s.Angle
	}

	switch {
	case r.S2 != scs.ColorWhite:
		r.Trigger = navcon.SensorCenter
	case r.S1 != scs.ColorWhite:
		r.Trigger = navcon.SensorLeft
		r.AngleValid = s.Angle != nil && *s.Angle != 0
	case r.S3 != scs.ColorWhite:
		r.Trigger = navcon.SensorRight
		r.AngleValid = s.Angle != nil && *s.Angle != 0
	}

	return r, nil
}

// Packets returns the injection sequence the live runner sends: MDPS
// telemetry first, then the SS sensor packets, the way the original
// tester primed the SNC.
func (s Scenario) Packets() ([][]byte, error) {
	var frames [][]byte
	inject := func(target byte, p scs.Packet) {
		frames = append(frames, scs.InjectFrame(target, p))
	}

	inject(scs.InjectTargetMDPS, scs.NewMDPSBattery(80))
	inject(scs.InjectTargetMDPS, scs.NewMDPSRotation(0, 0))
	inject(scs.InjectTargetMDPS, scs.NewMDPSSpeed(0, 0))
	for _, mm := range s.Distances {
		if mm < 0 || mm > 0xFFFF {
			return nil, fmt.Errorf("%w: distance %d mm", scs.ErrFieldRange, mm)
		}
		inject(scs.InjectTargetMDPS, scs.NewMDPSDistance(uint16(mm)))
	}

	if len(s.Colors) == 3 {
		s1, _ := ParseColor(s.Colors[0])
		s2, _ := ParseColor(s.Colors[1])
		s3, _ := ParseColor(s.Colors[2])
		p, err := scs.NewColorDataFrom(s1, s2, s3)
		if err != nil {
			return nil, err
		}
		inject(scs.InjectTargetSS, p)
	}
	if s.Angle != nil {
		if *s.Angle < 0 || *s.Angle > 255 {
			return nil, fmt.Errorf("%w: angle %d", scs.ErrFieldRange, *s.Angle)
		}
		inject(scs.InjectTargetSS, scs.NewAngleData(uint8(*s.Angle)))
	}
	if s.EndOfMaze {
		inject(scs.InjectTargetSS, scs.NewEndOfMaze())
	}

	return frames, nil
}

// ParseColor maps a color name to its sensor value.
func ParseColor(name string) (scs.SensorColor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white", "w":
		return scs.ColorWhite, nil
	case "red", "r":
		return scs.ColorRed, nil
	case "green", "g":
		return scs.ColorGreen, nil
	case "blue", "b":
		return scs.ColorBlue, nil
	case "black", "k":
		return scs.ColorBlack, nil
	default:
		return scs.ColorWhite, fmt.Errorf("unknown color %q", name)
	}
}

// ParsePrimitive maps a primitive name to its engine value.
func ParsePrimitive(name string) (navcon.MotionPrimitive, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "forward":
		return navcon.Forward, nil
	case "reverse", "backward":
		return navcon.Reverse, nil
	case "rotate_left":
		return navcon.RotateLeft, nil
	case "rotate_right":
		return navcon.RotateRight, nil
	case "stop":
		return navcon.Stop, nil
	case "steer":
		return navcon.SteeringCorrection, nil
	case "turn_180":
		return navcon.Turn180, nil
	case "turn_360":
		return navcon.Turn360, nil
	default:
		return navcon.Unknown, fmt.Errorf("unknown primitive %q", name)
	}
}
