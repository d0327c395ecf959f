package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-breaker/internal/breakout"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Level browser layout constants
const (
	previewW         = 34 // Preview cells including the border
	previewH         = 16
	minWidthForPanel = 90 // Narrower terminals hide the preview
)

// PreviewFunc builds the opening snapshot of a level for the preview pane.
type PreviewFunc func(level int) breakout.Snapshot

// LevelsKeyMap defines the key bindings for the level browser.
type LevelsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LevelsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultLevelsKeyMap returns default key bindings.
func DefaultLevelsKeyMap() LevelsKeyMap {
	return LevelsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play from here"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelsModel is the Bubble Tea model for the level browser.
type LevelsModel struct {
	levels   []breakout.LevelSpec
	table    table.Model
	help     help.Model
	keys     LevelsKeyMap
	preview  PreviewFunc
	assets   *Assets
	cache    map[int]breakout.Snapshot
	width    int
	height   int
	selected int // Level chosen with Select, 0 if none
}

// NewLevelsModel creates a level browser. A nil preview hides the preview pane.
func NewLevelsModel(levels *breakout.LevelTable, assets *Assets, preview PreviewFunc, width, height int) LevelsModel {
	h := help.New()
	h.ShowAll = false

	m := LevelsModel{
		levels:  levels.Specs(),
		help:    h,
		keys:    DefaultLevelsKeyMap(),
		preview: preview,
		assets:  assets,
		cache:   make(map[int]breakout.Snapshot),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.table.SetRows(LevelRows(m.levels))
	return m
}

// LevelColumns are the level table columns.
func LevelColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 11},
		{Title: "Palette", Width: 28},
		{Title: "Background", Width: 8},
		{Title: "Formations", Width: 22},
	}
}

// LevelRows describes every level as a table row.
func LevelRows(levels []breakout.LevelSpec) []table.Row {
	rows := make([]table.Row, len(levels))
	for i, spec := range levels {
		colors := make([]string, len(spec.Palette))
		for j, c := range spec.Palette {
			colors[j] = c.String()
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", spec.Number),
			spec.Name,
			strings.Join(colors, " "),
			filepath.Base(spec.Background),
			unlocks(spec.Number, i == len(levels)-1),
		}
	}
	return rows
}

// unlocks lists the stencil formations available on a level.
func unlocks(level int, final bool) string {
	if final {
		return "boss"
	}
	var names []string
	for _, f := range breakout.DefaultFormations().Available(level) {
		if f.MinLevel > 1 {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return "rows"
	}
	return "rows+" + strings.Join(names, "+")
}

func (m *LevelsModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(LevelColumns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-6)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the browser.
func (m LevelsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m LevelsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			m.selected = m.table.Cursor() + 1
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(3, m.height-6))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m LevelsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("LEVELS (%d)", len(m.levels))))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := boxStyle.Render(m.table.View())

	if m.preview != nil && m.assets != nil && m.width >= minWidthForPanel {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.renderPreview())
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderPreview draws the opening layout of the highlighted level.
func (m LevelsModel) renderPreview() string {
	level := m.table.Cursor() + 1
	snap, ok := m.cache[level]
	if !ok {
		snap = m.preview(level)
		m.cache[level] = snap
	}

	screen := core.NewScreen(previewW, previewH)
	DrawSnapshot(screen, NewLayout(snap.Field, previewW, previewH), m.assets, &snap, false)
	return RenderScreen(screen)
}

// Selected returns the level chosen with Select, or 0.
func (m LevelsModel) Selected() int {
	return m.selected
}

// RunLevels runs the level browser and returns the level the player chose
// to start from, or 0 if they quit.
func RunLevels(levels *breakout.LevelTable, assets *Assets, preview PreviewFunc, width, height int) (int, error) {
	p := tea.NewProgram(
		NewLevelsModel(levels, assets, preview, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(LevelsModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
