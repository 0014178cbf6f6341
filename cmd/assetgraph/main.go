package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quaygrc/assetgraph/pkg/config"
	"github.com/quaygrc/assetgraph/pkg/graph"
	"github.com/quaygrc/assetgraph/pkg/loader"
	"github.com/quaygrc/assetgraph/pkg/logging"
	"github.com/quaygrc/assetgraph/pkg/metrics"
	"github.com/quaygrc/assetgraph/pkg/render"
	"github.com/quaygrc/assetgraph/pkg/scene"
)

const (
	sidePanelWidth = 34
	frameInterval  = time.Second / 30
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#61afef")).
			MarginLeft(1)

	canvasStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3e4451"))

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3e4451")).
			Padding(0, 1).
			Width(sidePanelWidth)

	panelHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#56b6c2"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5c6370"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginLeft(1)
)

type keyMap struct {
	Fit     key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Fit: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fit all"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fit, k.ZoomIn, k.ZoomOut, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fit, k.ZoomIn, k.ZoomOut},
		{k.Help, k.Quit},
	}
}

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type model struct {
	scene   *scene.Scene
	payload *graph.Payload
	summary loader.Summary
	cells   *render.Cells
	help    help.Model
	keys    keyMap
	width   int
	height  int
}

func initialModel(s *scene.Scene, p *graph.Payload) model {
	return model{
		scene:   s,
		payload: p,
		summary: loader.Summarize(p),
		help:    help.New(),
		keys:    keys,
	}
}

func (m model) Init() tea.Cmd {
	return frameCmd()
}

// canvasCells returns the drawable cell region left of the side panel,
// inside the canvas border.
func (m model) canvasCells() (cols, rows int) {
	cols = m.width - sidePanelWidth - 4
	rows = m.height - 4
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}
	return cols, rows
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cols, rows := m.canvasCells()
		m.cells = render.NewCells(cols, rows)
		w, h := m.cells.Size()
		if m.scene.Graph() == nil {
			m.scene.Load(m.payload, w, h)
		} else {
			m.scene.Resize(w, h)
			m.scene.FitAll()
		}

	case frameMsg:
		if m.cells != nil {
			m.scene.Step(m.cells)
		}
		return m, frameCmd()

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Fit):
			m.scene.FitAll()
		case key.Matches(msg, m.keys.ZoomIn):
			m.scene.ZoomIn()
		case key.Matches(msg, m.keys.ZoomOut):
			m.scene.ZoomOut()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// handleMouse maps terminal cell coordinates into the canvas pixel space.
// Cells are twice as tall as wide, so y doubles to keep the space square.
func (m *model) handleMouse(msg tea.MouseMsg) {
	// Offset for the canvas border.
	sx := float64(msg.X - 1)
	sy := float64(msg.Y-1) * 2

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scene.Wheel(sx, sy, 1.1)
		return
	case tea.MouseButtonWheelDown:
		m.scene.Wheel(sx, sy, 1/1.1)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.scene.PointerDown(sx, sy)
		}
	case tea.MouseActionMotion:
		m.scene.PointerMove(sx, sy)
	case tea.MouseActionRelease:
		m.scene.PointerUp()
	}
}

func (m model) View() string {
	if m.width == 0 || m.cells == nil {
		return "Initializing..."
	}

	canvas := canvasStyle.Render(m.cells.View())
	panel := panelStyle.Render(m.renderPanel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, panel)

	var s strings.Builder
	s.WriteString(titleStyle.Render("Asset Relationship Map"))
	s.WriteString("\n")
	s.WriteString(body)
	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return s.String()
}

func (m model) renderPanel() string {
	var s strings.Builder

	s.WriteString(panelHeaderStyle.Render("Inventory"))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Assets:        %d\n", m.summary.TotalAssets))
	s.WriteString(fmt.Sprintf("Relationships: %d\n", m.summary.TotalRelationships))
	s.WriteString(fmt.Sprintf("Connected:     %d\n", m.summary.ConnectedAssets))
	s.WriteString(fmt.Sprintf("Isolated:      %d\n", m.summary.IsolatedAssets))
	s.WriteString("\n")

	s.WriteString(panelHeaderStyle.Render("Selected"))
	s.WriteString("\n")
	if n, ok := m.scene.Selected(); ok {
		s.WriteString(n.Name + "\n")
		s.WriteString(dimStyle.Render("Type:        ") + orDash(n.AssetTypeName) + "\n")
		s.WriteString(dimStyle.Render("Criticality: ") + orDash(n.CriticalityName) + "\n")
		s.WriteString(dimStyle.Render("Org unit:    ") + orDash(n.OrgUnitName) + "\n")
		s.WriteString(dimStyle.Render("Open risks:  ") + fmt.Sprintf("%d", n.RiskCount) + "\n")
	} else {
		s.WriteString(dimStyle.Render("click an asset\n"))
	}
	s.WriteString("\n")

	s.WriteString(panelHeaderStyle.Render("Relations"))
	s.WriteString("\n")
	for _, e := range render.Legend() {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color.Hex())).Render("──")
		s.WriteString(swatch + " " + e.Label + "\n")
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render(fmt.Sprintf("zoom %.2fx", m.scene.Viewport().Zoom)))

	return s.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func main() {
	var (
		dataPath = flag.String("data", "", "path to an asset payload JSON file")
		cfgPath  = flag.String("config", "", "path to a YAML config file")
		logPath  = flag.String("log", "", "append JSON logs to this file")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "usage: assetgraph -data payload.json [-config cfg.yaml]")
		os.Exit(2)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	logger := logging.Nop()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logger = logging.New(f, logging.ParseLevel(*logLevel))
	}

	payload, err := loader.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("load payload: %v", err)
	}

	s := scene.New(scene.Options{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.NewRegistry(),
	})

	p := tea.NewProgram(initialModel(s, payload), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
