// Package tui provides a live terminal view of a running minimization.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yangxi1209/pele/internal/optimize"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// batch is how many FIRE iterations advance per animation tick; small
// enough to keep the energy curve readable.
const batch = 5

type model struct {
	min     *optimize.FIRE
	label   string
	maxIter int

	paused  bool
	done    bool
	failed  error
	history []float64

	width  int
	height int
}

func newModel(min *optimize.FIRE, label string, maxIter int) *model {
	return &model{
		min:     min,
		label:   label,
		maxIter: maxIter,
		history: make([]float64, 0, 120),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "s":
			if !m.done {
				m.advance(1)
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.paused && !m.done {
			m.advance(batch)
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) advance(n int) {
	if m.min.Iter() >= m.maxIter {
		m.done = true
		return
	}
	if n > m.maxIter-m.min.Iter() {
		n = m.maxIter - m.min.Iter()
	}
	if err := m.min.Run(n); err != nil {
		m.failed = err
		m.done = true
		return
	}
	m.history = append(m.history, m.min.Energy())
	if len(m.history) > 120 {
		m.history = m.history[1:]
	}
	if m.min.Converged() || m.min.Iter() >= m.maxIter {
		m.done = true
	}
}

func (m model) View() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("minimizing")
	switch {
	case m.failed != nil:
		statusIcon = magenta.Render("✗")
		statusText = magenta.Render(m.failed.Error())
	case m.done && m.min.Converged():
		statusIcon = cyan.Render("✔")
		statusText = cyan.Render("converged")
	case m.done:
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("iteration budget exhausted")
	case m.paused:
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n", statusIcon, cyan.Render(m.label), statusText))

	progress := float64(m.min.Iter()) / float64(m.maxIter)
	if progress > 1 {
		progress = 1
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	iterStr := fmt.Sprintf("%d/%d", m.min.Iter(), m.maxIter)
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s\n\n", bar, dim.Render(iterStr)))

	b.WriteString(fmt.Sprintf("   %s %s   %s %s   %s %s   %s %s\n",
		dim.Render("E"), white.Render(fmt.Sprintf("%.8f", m.min.Energy())),
		dim.Render("|g|rms"), white.Render(fmt.Sprintf("%.2e", m.min.RMSGrad())),
		dim.Render("dt"), white.Render(fmt.Sprintf("%.4f", m.min.Dt())),
		dim.Render("α"), white.Render(fmt.Sprintf("%.4f", m.min.Alpha()))))

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("\n   %s %s\n", dim.Render("E"), cyan.Render(sparkline(m.history, 48))))
	}

	b.WriteString("\n" + m.coordBars() + "\n")
	b.WriteString(dim.Render("   space pause   s step   q quit") + "\n")

	return b.String()
}

// coordBars renders the configuration as signed bars around a midline.
func (m model) coordBars() string {
	x := m.min.X()
	if len(x) == 0 {
		return ""
	}
	shown := len(x)
	if shown > 16 {
		shown = 16
	}

	maxVal := 1.0
	for _, v := range x[:shown] {
		if math.Abs(v) > maxVal {
			maxVal = math.Abs(v)
		}
	}

	const rows = 7
	mid := rows / 2
	canvas := make([][]rune, rows)
	for i := range canvas {
		canvas[i] = make([]rune, shown*3+4)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}
	for j := 0; j < shown*3; j++ {
		canvas[mid][2+j] = '─'
	}

	for i := 0; i < shown; i++ {
		col := 3 + i*3
		bh := int(x[i] / maxVal * float64(mid))
		if bh > 0 {
			for y := mid - 1; y >= mid-bh && y >= 0; y-- {
				canvas[y][col] = '█'
			}
		} else if bh < 0 {
			for y := mid + 1; y <= mid-bh && y < rows; y++ {
				canvas[y][col] = '█'
			}
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString("   " + string(row) + "\n")
	}

	var labels strings.Builder
	labels.WriteString("   ")
	for i := 0; i < shown && i < 4; i++ {
		labels.WriteString(dim.Render(fmt.Sprintf("x%d=", i)))
		labels.WriteString(white.Render(fmt.Sprintf("%.3f", x[i])))
		labels.WriteString("  ")
	}
	if len(x) > 4 {
		labels.WriteString(dimmer.Render(fmt.Sprintf("… %d dof", len(x))))
	}
	b.WriteString(labels.String())
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Watch runs a full-screen live view of min until quit. maxIter bounds the
// total number of iterations.
func Watch(min *optimize.FIRE, label string, maxIter int) error {
	p := tea.NewProgram(newModel(min, label, maxIter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
