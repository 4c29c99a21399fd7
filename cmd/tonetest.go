// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bud-wiser-er/marvscope/pkg/navcon"
	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

var toneTimeline string

var toneTestCmd = &cobra.Command{
	Use:   "tone_test",
	Short: "Validate a pure-tone timeline against the dual-detection rules",
	Long: `Feed a simulated tone timeline through the pure-tone validator.

The MAZE/SOS toggle requires two 2.8 kHz tones, each lasting 500-1000
ms, with the second ending within 2 seconds of the first. This command
evaluates a timeline of tone events entirely offline and reports the
validator's verdict for each event and the resulting system state.

The timeline is a comma-separated list of end@duration pairs in
milliseconds, e.g.:

  marvscope tone_test --timeline 800@800,1900@900

meaning a tone ending at t=800ms with 800ms duration, then one ending
at t=1900ms with 900ms duration. Without --timeline, a set of
reference timelines (valid pair, single tone, timeout, short and long
durations) is run.`,
	RunE: runToneTest,
}

func init() {
	rootCmd.AddCommand(toneTestCmd)
	toneTestCmd.Flags().StringVar(&toneTimeline, "timeline", "", "Tone timeline as end@duration pairs in ms")
}

type toneCase struct {
	name   string
	events []navcon.ToneEvent
	expect bool // should toggle
	scored bool // compare against expect and print a verdict
}

func runToneTest(cmd *cobra.Command, args []string) error {
	if toneTimeline != "" {
		events, err := parseTimeline(toneTimeline)
		if err != nil {
			return err
		}
		runToneCase(toneCase{name: "custom timeline", events: events})
		return nil
	}

	base := time.Unix(0, 0)
	at := func(endMS, durMS int) navcon.ToneEvent {
		return navcon.ToneEvent{
			End:      base.Add(time.Duration(endMS) * time.Millisecond),
			Duration: time.Duration(durMS) * time.Millisecond,
		}
	}

	cases := []toneCase{
		{"valid dual tone (800ms + 900ms)", []navcon.ToneEvent{at(0, 800), at(1900, 900)}, true, true},
		{"single tone only", []navcon.ToneEvent{at(0, 800)}, false, true},
		{"second tone after window", []navcon.ToneEvent{at(0, 800), at(2500, 900)}, false, true},
		{"first tone too short", []navcon.ToneEvent{at(0, 300), at(1000, 900)}, false, true},
		{"first tone too long", []navcon.ToneEvent{at(0, 1500), at(1800, 900)}, false, true},
	}

	for _, tc := range cases {
		runToneCase(tc)
	}
	return nil
}

func runToneCase(tc toneCase) {
	fmt.Printf("=== %s ===\n", tc.name)
	validator := navcon.NewToneValidator()
	state := scs.StateMaze
	toggled := false

	for _, e := range tc.events {
		result := validator.Feed(e)
		fmt.Printf("  tone end=%dms dur=%dms -> %s (%s)\n",
			e.End.UnixMilli(), e.Duration.Milliseconds(), result, validator.State())
		if result == navcon.ToneAccepted {
			toggled = true
			next := scs.StateSOS
			if state == scs.StateSOS {
				next = scs.StateMaze
			}
			if scs.ValidateTransition(state, next, scs.Conditions{PureTone: true}) {
				state = next
			}
		}
	}

	fmt.Printf("  final state: %s, toggled: %v", state, toggled)
	if tc.scored {
		verdict := "PASS"
		if toggled != tc.expect {
			verdict = "FAIL"
		}
		fmt.Printf(" [%s]", verdict)
	}
	fmt.Printf("\n\n")
}

// parseTimeline parses "end@duration,end@duration,..." in milliseconds.
func parseTimeline(s string) ([]navcon.ToneEvent, error) {
	base := time.Unix(0, 0)
	var events []navcon.ToneEvent
	for _, part := range strings.Split(s, ",") {
		fields := strings.SplitN(strings.TrimSpace(part), "@", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad timeline entry %q (want end@duration)", part)
		}
		end, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("bad end time in %q: %v", part, err)
		}
		dur, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad duration in %q: %v", part, err)
		}
		events = append(events, navcon.ToneEvent{
			End:      base.Add(time.Duration(end) * time.Millisecond),
			Duration: time.Duration(dur) * time.Millisecond,
		})
	}
	return events, nil
}
