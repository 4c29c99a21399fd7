// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 ERD320 Group 45

package cmd

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Bud-wiser-er/marvscope/pkg/navcon"
	"github.com/Bud-wiser-er/marvscope/pkg/scs"
)

var tuiMirrorOnly bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal UI for live SCS monitoring",
	Long: `Monitor an SCS link in an interactive terminal UI.

Shows the live packet stream with semantic descriptions, the last
observed peer system state, per-subsystem counters, and the most
recent NAVCON decision mirrored by the SNC debug firmware.

Keys: q to quit, c to clear the log.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().BoolVar(&tuiMirrorOnly, "mirror-only", false, "Decode only 0xFE decision mirrors")
}

// Log entry
type logEntry struct {
	timestamp time.Time
	message   string
	mirrored  bool
}

// TUI model
type model struct {
	connInfo      string
	stats         *scs.Statistics
	log           []logEntry
	maxLogEntries int
	lastDecision  *navcon.Step
	vp            viewport.Model
	width         int
	height        int
	quitting      bool
}

// Messages
type tickMsg time.Time
type packetMsg struct {
	packet   scs.Packet
	mirrored bool
}
type readErrMsg struct{ err error }

func initialModel(connInfo string) model {
	return model{
		connInfo:      connInfo,
		stats:         scs.NewStatistics(),
		log:           make([]logEntry, 0),
		maxLogEntries: 200,
		vp:            viewport.New(80, 16),
		width:         80,
		height:        24,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		tea.EnterAltScreen,
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "c":
			m.log = m.log[:0]
			m.refreshLog()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width - 4
		m.vp.Height = msg.Height - 10
		if m.vp.Height < 5 {
			m.vp.Height = 5
		}
		m.refreshLog()

	case tickMsg:
		m.stats.CalculateRates()
		return m, tickCmd()

	case packetMsg:
		m.stats.Update(msg.packet, msg.mirrored)
		m.addLogEntry(scs.Describe(msg.packet), msg.mirrored)
		if msg.mirrored {
			step := navcon.ParseStep(msg.packet)
			m.lastDecision = &step
		}

	case readErrMsg:
		m.addLogEntry(fmt.Sprintf("READ ERROR: %v", msg.err), false)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *model) addLogEntry(message string, mirrored bool) {
	m.log = append(m.log, logEntry{
		timestamp: time.Now(),
		message:   message,
		mirrored:  mirrored,
	})
	if len(m.log) > m.maxLogEntries {
		m.log = m.log[len(m.log)-m.maxLogEntries:]
	}
	m.refreshLog()
}

func (m *model) refreshLog() {
	tsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	mirrorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)

	var b strings.Builder
	for _, entry := range m.log {
		msg := entry.message
		if entry.mirrored {
			msg = mirrorStyle.Render("DECISION " + msg)
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			tsStyle.Render(entry.timestamp.Format("15:04:05.000")), msg))
	}
	m.vp.SetContent(b.String())
	m.vp.GotoBottom()
}

func (m model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("MARVSCOPE - SCS MONITOR"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Press 'q' to quit, 'c' to clear", m.connInfo)))
	s.WriteString("\n\n")

	// Statistics line
	m.stats.CalculateRates()
	peerState := "-"
	if m.stats.HasSeenState {
		peerState = m.stats.LastState.String()
	}
	statsContent := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		labelStyle.Render("Packets:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.TotalPackets)),
		labelStyle.Render("Mirrors:"), valueStyle.Render(fmt.Sprintf("%d", m.stats.Mirrored)),
		labelStyle.Render("Peer State:"), valueStyle.Render(peerState),
		labelStyle.Render("Rate:"), valueStyle.Render(fmt.Sprintf("%.1f pkts/s", m.stats.PacketRate)),
	)
	s.WriteString(boxStyle.Render(statsContent))
	s.WriteString("\n")

	// Last NAVCON decision
	if m.lastDecision != nil {
		s.WriteString(boxStyle.Render(fmt.Sprintf("%s %s",
			labelStyle.Render("Last NAVCON decision:"),
			valueStyle.Render(m.lastDecision.String()))))
		s.WriteString("\n")
	}

	// Packet log
	s.WriteString(boxStyle.Width(m.width - 2).Render(m.vp.View()))

	return s.String()
}

func runTUI(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	decoder := scs.NewDecoder()
	if tuiMirrorOnly {
		decoder = scs.NewMirrorDecoder()
	}

	p := tea.NewProgram(initialModel(connInfo))

	// Serial reader goroutine
	go func() {
		buf := make([]byte, 128)
		for {
			n, err := conn.Read(buf)
			if err != nil {
				if err == ErrConnectionClosed {
					p.Send(readErrMsg{err: err})
					return
				}
				log.Printf("Read error: %v", err)
				continue
			}

			for _, packet := range decoder.Decode(buf[:n]) {
				p.Send(packetMsg{packet: packet, mirrored: tuiMirrorOnly})
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %v", err)
	}

	return nil
}
