// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package scenario

import (
	"fmt"
	"io"
	"time"

	"github.com/Bud-wiser-er/marvscope/pkg/navcon"
	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

// Result is the outcome of one scenario run.
type Result struct {
	Scenario Scenario
	Decision navcon.Decision
	Got      navcon.MotionPrimitive
	Expected navcon.MotionPrimitive
	Pass     bool
	Err      error
}

func (r Result) String() string {
	status := "PASS"
	if r.Err != nil {
		return fmt.Sprintf("ERROR %s: %v", r.Scenario.Name, r.Err)
	}
	if !r.Pass {
		status = "FAIL"
	}
	return fmt.Sprintf("%s  %s: expected %s, got %s", status, r.Scenario.Name, r.Expected, r.Got)
}

// matches applies the original tester's tolerance: a steering
// correction satisfies a FORWARD expectation, since the SNC steers
// through shallow contacts without stopping the run.
func matches(expected, got navcon.MotionPrimitive) bool {
	if expected == got {
		return true
	}
	return expected == navcon.Forward && got == navcon.SteeringCorrection
}

// RunOffline evaluates a scenario against the local decision engine.
// The session carries the obstacle streak between scenarios.
func RunOffline(session *navcon.Session, sc Scenario) Result {
	expected, err := ParsePrimitive(sc.Expect)
	if err != nil {
		return Result{Scenario: sc, Err: err}
	}

	reading, err := sc.Reading()
	if err != nil {
		return Result{Scenario: sc, Err: err}
	}

	decision := session.Observe(reading)
	got := navcon.Stop
	if len(decision.Steps) > 0 {
		got = decision.Steps[0].Primitive
	}

	return Result{
		Scenario: sc,
		Decision: decision,
		Got:      got,
		Expected: expected,
		Pass:     matches(expected, got),
	}
}

// RunOfflineAll runs every scenario through one fresh session.
func RunOfflineAll(scenarios []Scenario) []Result {
	session := navcon.NewSession()
	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		results = append(results, RunOffline(session, sc))
	}
	return results
}

// LiveRunner drives scenarios against real SNC firmware: it injects
// the emulation frames over the connection and waits for the 0xFE
// decision mirror.
type LiveRunner struct {
	Conn    io.ReadWriter
	Timeout time.Duration
	// Pace between injected frames; the firmware drains its UART
	// buffer between packets.
	Pace time.Duration
}

// NewLiveRunner wraps a connection with the original tester's pacing.
func NewLiveRunner(conn io.ReadWriter) *LiveRunner {
	return &LiveRunner{Conn: conn, Timeout: 3 * time.Second, Pace: 80 * time.Millisecond}
}

// Run injects one scenario and decodes the firmware's decision.
func (lr *LiveRunner) Run(sc Scenario) Result {
	expected, err := ParsePrimitive(sc.Expect)
	if err != nil {
		return Result{Scenario: sc, Err: err}
	}

	frames, err := sc.Packets()
	if err != nil {
		return Result{Scenario: sc, Err: err}
	}
	for _, frame := range frames {
		if _, err := lr.Conn.Write(frame); err != nil {
			return Result{Scenario: sc, Err: fmt.Errorf("inject: %w", err)}
		}
		time.Sleep(lr.Pace)
	}

	packet, err := lr.awaitMirror()
	if err != nil {
		return Result{Scenario: sc, Err: err}
	}

	step := navcon.ParseStep(packet)
	return Result{
		Scenario: sc,
		Decision: navcon.Decision{Steps: []navcon.Step{step}},
		Got:      step.Primitive,
		Expected: expected,
		Pass:     matches(expected, step.Primitive),
	}
}

// awaitMirror reads until a 0xFE-prefixed decision packet arrives or
// the timeout passes.
func (lr *LiveRunner) awaitMirror() (scs.Packet, error) {
	decoder := scs.NewMirrorDecoder()
	deadline := time.Now().Add(lr.Timeout)
	buf := make([]byte, 64)

	for time.Now().Before(deadline) {
		n, err := lr.Conn.Read(buf)
		if err != nil {
			return scs.Packet{}, fmt.Errorf("read decision: %w", err)
		}
		for i := 0; i < n; i++ {
			if p, ok := decoder.DecodeByte(buf[i]); ok {
				return p, nil
			}
		}
	}
	return scs.Packet{}, fmt.Errorf("decision timeout after %s", lr.Timeout)
}
