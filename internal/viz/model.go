package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ballpit/internal/arena"
)

const (
	// dotSize is how many arena units one Braille dot covers.
	dotSize = 4.0

	headerRows      = 1
	barRows         = 2
	sidePanelWidth  = 36
	historyCapacity = 120
	historyEvery    = 10
)

// streakTime is how many seconds of travel a velocity streak shows.
const streakTime = 0.08

type TickMsg time.Time

// Muter silences the sound effects. *audio.Player satisfies it.
type Muter interface {
	SetMuted(bool)
}

// Model is the terminal front-end around one arena.
type Model struct {
	arena  *arena.Arena
	canvas *Canvas
	theme  Theme
	fps    int

	width, height int
	history       []float64
	energy        []float64
	frame         int

	showStats   bool
	statsPaused bool
	showDebug   bool
	debugPaused bool
	hideUI      bool
	streaks     bool

	sound Muter
	muted bool
}

func NewModel(a *arena.Arena, fps int, theme string) Model {
	if fps <= 0 {
		fps = 60
	}
	m := Model{
		arena:   a,
		theme:   GetTheme(theme),
		fps:     fps,
		history: make([]float64, 0, historyCapacity),
		energy:  make([]float64, 0, historyCapacity),
	}
	m.resize(80, 24)
	return m
}

func (m Model) Arena() *arena.Arena { return m.arena }

// WithSound returns a copy of m whose m key mutes s.
func (m Model) WithSound(s Muter) Model {
	m.sound = s
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// resize fits the canvas to the terminal and moves the arena walls to
// match. The rows of the control bar are the arena floor.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h

	cols := w - 2
	if !m.hideUI {
		cols -= sidePanelWidth
	}
	rows := h - headerRows - barRows
	cols = max(cols, 10)
	rows = max(rows, 4)

	m.canvas = NewCanvas(cols, rows)
	floor := float64(barRows*4) * dotSize
	m.arena.Resize(arena.Bounds{
		Width:  float64(m.canvas.DotsWide()) * dotSize,
		Height: floor + float64(m.canvas.DotsHigh())*dotSize,
		Floor:  floor,
	})
}

// cellToArena maps a terminal cell to the arena point at its middle. It
// reports false for cells outside the play area.
func (m *Model) cellToArena(col, row int) (float64, float64, bool) {
	row -= headerRows
	if col < 0 || row < 0 || col >= m.canvas.Width || row >= m.canvas.Height {
		return 0, 0, false
	}
	b := m.arena.Bounds()
	x := (float64(col) + 0.5) * 2 * dotSize
	y := b.Height - (float64(row)+0.5)*4*dotSize
	return x, y, b.Contains(x, y)
}

// arenaToDot maps an arena point to canvas sub-pixels, flipping y.
func (m *Model) arenaToDot(x, y float64) (int, int) {
	b := m.arena.Bounds()
	return int(x / dotSize), int((b.Height - y) / dotSize)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.step()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.arena.Tick(1 / float64(m.fps))
	m.frame++
	if m.frame%historyEvery == 0 {
		m.history = appendCapped(m.history, float64(m.arena.Len()))
		m.energy = appendCapped(m.energy, m.arena.KineticEnergy())
	}
}

func appendCapped(s []float64, v float64) []float64 {
	if len(s) >= historyCapacity {
		s = s[1:]
	}
	return append(s, v)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.arena.TogglePause()
	case "r":
		m.arena.Reset()
	case "e":
		m.arena.RandomEvent()
	case "1", "2", "3", "4", "5":
		_ = m.arena.ForceEvent(arena.RandomEvents[msg.String()[0]-'1'])
	case "a":
		_, _ = m.arena.CreateSpecificBall(arena.VariantRainbow)
	case "g":
		_, _ = m.arena.CreateSpecificBall(arena.VariantGrowing)
	case "c":
		_, _ = m.arena.CreateSpecificBall(arena.VariantCollidable)
	case "b":
		_, _ = m.arena.CreateSpecificBall(arena.VariantGiant)
	case "?":
		m.showStats = !m.showStats
		m.panelPause(m.showStats, &m.statsPaused)
	case "!":
		m.showDebug = !m.showDebug
		m.panelPause(m.showDebug, &m.debugPaused)
	case "m":
		m.muted = !m.muted
		if m.sound != nil {
			m.sound.SetMuted(m.muted)
		}
	case "v":
		m.streaks = !m.streaks
	case "h":
		m.hideUI = !m.hideUI
		m.resize(m.width, m.height)
	case "t":
		m.theme = NextTheme(m.theme)
	}
	return m, nil
}

// panelPause pauses the arena while a panel is open. Closing resumes only
// if opening was what paused it.
func (m *Model) panelPause(open bool, paused *bool) {
	if open {
		*paused = !m.arena.Paused()
		m.arena.SetPaused(true)
		return
	}
	if *paused {
		m.arena.SetPaused(false)
	}
	*paused = false
}

// closePanels shuts whatever panel is open.
func (m *Model) closePanels() {
	if m.showStats {
		m.showStats = false
		m.panelPause(false, &m.statsPaused)
	}
	if m.showDebug {
		m.showDebug = false
		m.panelPause(false, &m.debugPaused)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	if m.showStats || m.showDebug {
		// a click anywhere but the panel itself closes it
		if msg.Action == tea.MouseActionPress && msg.X < m.canvas.Width {
			m.closePanels()
		}
		return
	}
	if m.arena.Paused() {
		return
	}
	if x, y, ok := m.cellToArena(msg.X, msg.Y); ok {
		m.arena.CreateBallAt(x, y)
	}
}

func hexOf(v arena.BallView) string {
	return fmt.Sprintf("#%02x%02x%02x", v.Color.R, v.Color.G, v.Color.B)
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, v := range m.arena.Balls() {
		cx, cy := m.arenaToDot(v.CenterX(), v.CenterY())
		if m.streaks {
			m.streak(v, cx, cy)
		}
		m.canvas.FillCircle(cx, cy, int(v.Radius()/dotSize), hexOf(v))
	}
}

// streak trails a line behind v. It reaches past the ball's edge by the
// distance covered in streakTime, at least two dots.
func (m *Model) streak(v arena.BallView, cx, cy int) {
	speed := math.Hypot(v.VX, v.VY)
	if speed == 0 {
		return
	}
	length := v.Radius() + math.Max(speed*m.arena.SpeedScale()*streakTime, 2*dotSize)
	tx, ty := m.arenaToDot(v.CenterX()-v.VX/speed*length, v.CenterY()-v.VY/speed*length)
	m.canvas.DrawLine(tx, ty, cx, cy, string(m.theme.Muted))
}

func (m Model) View() string {
	m.draw()

	canvasView := m.canvas.Render(m.theme.Text)
	main := canvasView
	if !m.hideUI {
		main = lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelStyle.Render(m.sidePanel()))
	}
	return m.header() + "\n" + main + m.bar()
}

func (m Model) header() string {
	title := GradientText("BALLPIT", m.theme.Primary, m.theme.Accent)
	status := lipgloss.NewStyle().Foreground(m.theme.Running).Bold(true).Render("RUNNING")
	if m.arena.Paused() {
		status = lipgloss.NewStyle().Foreground(m.theme.Paused).Bold(true).Render("PAUSED")
	}
	line := title + "  " + status
	if e := m.arena.ActiveEvent(); e != arena.EventNone {
		line += "  " + lipgloss.NewStyle().Foreground(m.theme.Event).Bold(true).Render(e.Label())
	}
	return line
}

func (m Model) bar() string {
	key := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	txt := lipgloss.NewStyle().Foreground(m.theme.Muted)
	buttons := key.Render("[E]") + txt.Render("vent  ") +
		key.Render("[SPC]") + txt.Render(" pause  ") +
		key.Render("[R]") + txt.Render("eset  ") +
		MetricLabel.Render("Balls:") + MetricValue.Render(fmt.Sprintf("%d", m.arena.Len()))
	hints := "? stats  ! debug  h hide  v streaks  m mute  t theme  q quit"
	if m.muted {
		hints = "[muted]  " + hints
	}
	help := KeyHint.Render(hints)
	return lipgloss.NewStyle().Background(m.theme.Bar).Render(buttons) + "\n" + help
}

func (m Model) sidePanel() string {
	if m.showStats {
		return BoxWithTitle("STATS", strings.Join(m.arena.Stats().Lines()[2:], "\n"), sidePanelWidth-6, m.theme.Accent)
	}
	if m.showDebug {
		return BoxWithTitle("DEBUG", strings.Join([]string{
			"a  rainbow ball",
			"g  growing ball",
			"c  collidable ball",
			"b  giant ball",
			"1  SPEED    2  SLOWED",
			"3  RAINBOW  4  GIANT",
			"5  MINI",
			"h  hide UI",
		}, "\n"), sidePanelWidth-6, m.theme.Accent)
	}

	var s strings.Builder
	st := m.arena.Stats()
	s.WriteString(MetricLabel.Render("Time") + MetricValue.Render(st.Clock()) + "\n")
	s.WriteString(MetricLabel.Render("Balls") + MetricValue.Render(fmt.Sprintf("%d", st.Balls)) + "\n")
	s.WriteString(MetricLabel.Render("Created") + MetricValue.Render(fmt.Sprintf("%d", st.TotalBalls)) + "\n")
	if st.Event != arena.EventNone {
		s.WriteString(MetricLabel.Render("Event") + MetricValue.Render(fmt.Sprintf("%s %.0fs", st.Event, st.EventRemaining)) + "\n")
	}
	s.WriteString(MetricLabel.Render("Theme") + Subtle.Render(m.theme.Name) + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(sidePanelWidth-12), asciigraph.Caption("balls"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(m.energy) > 0 {
		s.WriteString(Subtle.Render("energy ") + SparklineChart(m.energy, sidePanelWidth-12) + "\n")
	}
	return s.String()
}

// Run starts the terminal front-end with mouse tracking.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
