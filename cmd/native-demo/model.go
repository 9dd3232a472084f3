package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/native/pkg/animation"
	"github.com/go-drift/native/pkg/app"
	"github.com/go-drift/native/pkg/headless"
	"github.com/go-drift/native/pkg/platform"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type frameMsg struct{}

type wakeMsg struct{}

// model hosts a headless application inside a terminal program. Keys are
// turned into simulated input on the headless widgets and the widget tree
// is rendered on every update.
type model struct {
	app     *app.App[counter]
	backend *headless.Backend
	ticker  *animation.Ticker
	hovered bool
}

func newModel(a *app.App[counter], b *headless.Backend, fps int) *model {
	return &model{app: a, backend: b, ticker: animation.NewTicker(fps)}
}

func (m *model) window() *headless.Window {
	windows := m.backend.Windows()
	if len(windows) == 0 {
		return nil
	}
	return windows[0]
}

func (m *model) wait() tea.Cmd {
	wake := m.app.Wake()
	return func() tea.Msg {
		<-wake
		return wakeMsg{}
	}
}

func (m *model) frame() tea.Cmd {
	return tea.Tick(m.ticker.Interval(), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *model) Init() tea.Cmd {
	m.app.Pump()
	return tea.Batch(m.wait(), m.frame())
}

func (m *model) pump() tea.Cmd {
	m.app.Pump()
	if m.app.Quitting() {
		return tea.Quit
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	w := m.window()
	if w == nil {
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			w.RequestClose()
		case " ", "enter":
			if p := findPressable(w); p != nil {
				p.Click()
			}
		case "h":
			if p := findPressable(w); p != nil {
				m.hovered = !m.hovered
				p.Hover(m.hovered)
			}
		case "+":
			width, height := w.Size()
			w.Resize(width+40, height+20)
		case "-":
			width, height := w.Size()
			w.Resize(width-40, height-20)
		}
		return m, m.pump()

	case frameMsg:
		if w.Animating() {
			m.ticker.Start()
			w.Frame(m.ticker.Tick())
		} else {
			m.ticker.Stop()
		}
		return m, tea.Batch(m.pump(), m.frame())

	case wakeMsg:
		return m, tea.Batch(m.pump(), m.wait())
	}
	return m, nil
}

func (m *model) View() string {
	w := m.window()
	if w == nil {
		return ""
	}
	width, height := w.Size()
	minWidth, minHeight := w.MinSize()

	var b strings.Builder
	b.WriteString(titleStyle.Render(w.Title()))
	b.WriteString("\n")
	b.WriteString(frameStyle.Render(headless.Dump(w)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(sizeLine(width, height, minWidth, minHeight)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space press  h hover  +/- resize  q quit"))
	return b.String()
}

func findPressable(w platform.Widget) *headless.Pressable {
	switch w := w.(type) {
	case *headless.Pressable:
		return w
	case *headless.Window:
		return findPressable(w.Child())
	case *headless.Scroll:
		return findPressable(w.Child())
	case *headless.Group:
		for _, child := range w.Children() {
			if p := findPressable(child); p != nil {
				return p
			}
		}
	}
	return nil
}
