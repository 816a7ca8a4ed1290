package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik/internal/notation"
	"github.com/SeamusWaldron/rubik/internal/render"
	"github.com/SeamusWaldron/rubik/internal/session"
)

var (
	replaySpeed float64
	replayStep  bool
	replayPlain bool
	replayPrint bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a session step by step",
	Long: `Replay a session's operation log from the solved cube, one move at a time.

Usage:
  rubik replay                 # Replay the active session
  rubik replay --id <id>       # Replay a specific session
  rubik replay --speed 2.0     # Replay at 2x speed
  rubik replay --step          # Step through moves manually
  rubik replay --print         # Print every step without the TUI`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&sessionID, "id", "", "Session ID (default: active session)")
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
	replayCmd.Flags().BoolVar(&replayPlain, "plain", false, "Draw with color labels instead of colored blocks")
	replayCmd.Flags().BoolVar(&replayPrint, "print", false, "Print every step and exit")
}

func runReplay(cmd *cobra.Command, args []string) error {
	return withSession(cmd, sessionID, func(e *env, s *session.Session) error {
		frames, err := s.Timeline()
		if err != nil {
			return err
		}

		model := newReplayModel(frames, s.Info.Colors, replaySpeed, replayStep, replayPlain)
		if replayPrint {
			out := cmd.OutOrStdout()
			for i := range frames {
				model.index = i
				fmt.Fprintln(out, model.frameView())
			}
			return nil
		}

		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("replay error: %w", err)
		}
		return nil
	})
}

// baseStepDelay is the delay between steps at 1x speed.
const baseStepDelay = 500 * time.Millisecond

type replayModel struct {
	frames   []session.Frame
	labels   []string
	index    int
	speed    float64
	stepMode bool
	paused   bool
	plain    bool
	quitting bool
}

func newReplayModel(frames []session.Frame, labels []string, speed float64, stepMode, plain bool) *replayModel {
	if speed <= 0 {
		speed = 1
	}
	return &replayModel{
		frames:   frames,
		labels:   labels,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode,
		plain:    plain,
	}
}

type replayTickMsg struct{}

func (m *replayModel) Init() tea.Cmd {
	if m.paused {
		return nil
	}
	return m.scheduleNext()
}

func (m *replayModel) scheduleNext() tea.Cmd {
	if m.index >= len(m.frames)-1 {
		return nil
	}
	delay := time.Duration(float64(baseStepDelay) / m.speed)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return replayTickMsg{}
	})
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			m.paused = true
			m.advance(1)

		case "b", "left":
			m.paused = true
			m.advance(-1)

		case "p":
			if m.stepMode {
				break
			}
			m.paused = !m.paused
			if !m.paused {
				return m, m.scheduleNext()
			}

		case "r":
			m.index = 0

		case "e":
			m.index = len(m.frames) - 1

		case "+", "=":
			m.speed = min(m.speed*2, 16)

		case "-":
			m.speed = max(m.speed/2, 0.25)
		}

	case replayTickMsg:
		if !m.paused {
			m.advance(1)
			return m, m.scheduleNext()
		}
	}

	return m, nil
}

func (m *replayModel) advance(delta int) {
	m.index = max(0, min(m.index+delta, len(m.frames)-1))
}

func (m *replayModel) frameView() string {
	frame := m.frames[m.index]
	size := len(frame.Grid[0])

	var b strings.Builder
	step := fmt.Sprintf("Step %d/%d: %s", m.index, len(m.frames)-1, frame.Label)
	b.WriteString(stepStyle.Render(step))
	if frame.Move != nil {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(notation.Describe(*frame.Move, size)))
	}
	b.WriteString("\n\n")

	if m.plain {
		b.WriteString(render.Net(frame.Grid, m.labels))
	} else {
		b.WriteString(render.StyledNet(frame.Grid))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("rubik replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Step %d/%d", m.index, len(m.frames)-1)
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n\n", m.speed))

	b.WriteString(m.frameView())
	b.WriteString("\n")

	// Recent moves up to the current step
	var recent []string
	for i := m.index; i > 0 && len(recent) < 20; i-- {
		if mv := m.frames[i].Move; mv != nil {
			recent = append([]string{mv.Notation()}, recent...)
		}
	}
	if len(recent) > 0 {
		b.WriteString("Moves: ")
		b.WriteString(moveStyle.Render(strings.Join(recent, " ")))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("History: %d moves\n\n", m.frames[m.index].History))

	help := "SPACE/n=next  b=back  p=pause  r=restart  e=end  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next  b=back  r=restart  e=end  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
