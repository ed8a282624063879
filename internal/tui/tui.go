package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/guess/internal/game"
)

const sliderWidth = 30

// Options configures the range slider and the status line
type Options struct {
	SliderMin  int
	SliderMax  int
	SliderStep int
	ShowTimer  bool

	// Clock defaults to the real clock
	Clock quartz.Clock
}

// TUIModel is the Bubble Tea shell around a game.State. It renders the state
// and forwards user actions to it; it holds no game rules of its own.
type TUIModel struct {
	state  *game.State
	logger *log.Logger
	clock  quartz.Clock
	opts   Options

	// UI components
	guessInput textinput.Model
	help       help.Model
	keys       keyMap

	// Outcome of the last submit, used to pick the message style
	lastOutcome game.Outcome

	startedAt  time.Time
	finishedAt time.Time

	width    int
	height   int
	quitting bool
}

// tickMsg refreshes the elapsed time display
type tickMsg time.Time

// NewTUIModel creates a model that drives state. The state's current range
// is pulled into the slider bounds and a fresh game is started.
func NewTUIModel(state *game.State, logger *log.Logger, opts Options) *TUIModel {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.SliderMin < game.MinMaxRange {
		opts.SliderMin = game.MinMaxRange
	}
	if opts.SliderMax < opts.SliderMin {
		opts.SliderMax = opts.SliderMin
	}
	if opts.SliderStep < 1 {
		opts.SliderStep = 1
	}

	ti := textinput.New()
	ti.Placeholder = "Type a number and press Enter"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = sliderWidth
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &TUIModel{
		state:      state,
		logger:     logger.WithPrefix("tui"),
		clock:      opts.Clock,
		opts:       opts,
		guessInput: ti,
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
	m.newGame(m.clampRange(state.MaxRange()))
	return m
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	if m.opts.ShowTimer {
		return tea.Batch(textinput.Blink, m.tick())
	}
	return textinput.Blink
}

func (m *TUIModel) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages in the TUI. It is the only place the game state
// is mutated.
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Guess):
			m.submit()
			return m, nil
		case key.Matches(msg, m.keys.NewGame):
			m.newGame(m.state.MaxRange())
			return m, nil
		case key.Matches(msg, m.keys.RangeUp):
			m.setRange(m.state.MaxRange() + 1)
			return m, nil
		case key.Matches(msg, m.keys.RangeDown):
			m.setRange(m.state.MaxRange() - 1)
			return m, nil
		case key.Matches(msg, m.keys.RangeUpFast):
			m.setRange(m.state.MaxRange() + m.opts.SliderStep)
			return m, nil
		case key.Matches(msg, m.keys.RangeDownFast):
			m.setRange(m.state.MaxRange() - m.opts.SliderStep)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.guessInput, cmd = m.guessInput.Update(msg)
	m.state.SetInput(m.guessInput.Value())
	return m, cmd
}

// submit sends the guess field to the game. The field keeps its text so the
// player can edit and resubmit.
func (m *TUIModel) submit() {
	outcome := m.state.Submit(m.guessInput.Value())
	if outcome == game.OutcomeIgnored {
		return
	}
	m.lastOutcome = outcome

	if outcome == game.OutcomeCorrect {
		m.finishedAt = m.clock.Now()
		m.logger.Info("Game won",
			"max_range", m.state.MaxRange(),
			"attempts", m.state.Attempts(),
			"elapsed", m.finishedAt.Sub(m.startedAt).Round(time.Second))
	}
}

func (m *TUIModel) newGame(maxRange int) {
	m.state.Reset(maxRange)
	m.guessInput.SetValue(m.state.Input())
	m.lastOutcome = game.OutcomeIgnored
	m.startedAt = m.clock.Now()
	m.finishedAt = time.Time{}

	m.logger.Info("New game", "max_range", m.state.MaxRange())
}

// setRange moves the slider. Only an actual change starts a new game.
func (m *TUIModel) setRange(n int) {
	n = m.clampRange(n)
	if n == m.state.MaxRange() {
		return
	}
	m.newGame(n)
}

func (m *TUIModel) clampRange(n int) int {
	return min(max(n, m.opts.SliderMin), m.opts.SliderMax)
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	content.WriteString(HeaderStyle.Render("🎯 Guess the Number"))
	content.WriteString("\n")
	content.WriteString(SubtitleStyle.Render("Pick the correct number..."))
	content.WriteString("\n\n")

	content.WriteString(m.renderSlider())
	content.WriteString("\n\n")

	content.WriteString(m.guessInput.View())
	content.WriteString("\n\n")

	content.WriteString(m.renderMessage())
	content.WriteString("\n")
	if secret, ok := m.state.Revealed(); ok {
		content.WriteString(fmt.Sprintf("Secret was: %d", secret))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(m.renderStatus())
	content.WriteString("\n\n")

	content.WriteString(m.help.View(m.keys))

	frame := FrameStyle.Render(content.String())
	if m.width == 0 || m.height == 0 {
		return frame
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// renderSlider draws the max range as a horizontal bar
func (m *TUIModel) renderSlider() string {
	value := m.state.MaxRange()
	span := m.opts.SliderMax - m.opts.SliderMin

	pos := 0
	if span > 0 {
		pos = (value - m.opts.SliderMin) * (sliderWidth - 1) / span
	}

	bar := SliderFillStyle.Render(strings.Repeat("━", pos)) +
		SliderKnobStyle.Render("●") +
		SliderTrackStyle.Render(strings.Repeat("─", sliderWidth-1-pos))

	return fmt.Sprintf("%s %s %s", LabelStyle.Render("Max:"), bar, LabelStyle.Render(fmt.Sprintf("%d", value)))
}

// renderMessage styles the feedback according to the last outcome
func (m *TUIModel) renderMessage() string {
	message := m.state.Message()

	switch m.lastOutcome {
	case game.OutcomeCorrect:
		return SuccessStyle.Render("🎉 " + message)
	case game.OutcomeInvalid, game.OutcomeOutOfRange:
		return ErrorStyle.Render(message)
	case game.OutcomeTooLow, game.OutcomeTooHigh:
		return WarningStyle.Render(message)
	default:
		return MessageStyle.Render(message)
	}
}

// renderStatus shows the attempt count and, optionally, the elapsed time
func (m *TUIModel) renderStatus() string {
	status := fmt.Sprintf("Attempts: %d", m.state.Attempts())
	if m.opts.ShowTimer {
		status += fmt.Sprintf("   Time: %s", formatElapsed(m.elapsed()))
	}
	return InfoStyle.Render(status)
}

// elapsed is frozen once the game is won
func (m *TUIModel) elapsed() time.Duration {
	end := m.finishedAt
	if end.IsZero() {
		end = m.clock.Now()
	}
	return end.Sub(m.startedAt)
}

func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
