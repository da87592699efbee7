package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cavern-arcade/cavern/internal/config"
	"github.com/cavern-arcade/cavern/internal/core"
)

// menuEntry indexes the title screen rows.
type menuEntry int

const (
	menuEntryPlay menuEntry = iota
	menuEntryDifficulty
	menuEntryScores
	menuEntryQuit
)

var menuPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuModel is the Bubble Tea model for the title screen. It lets the player
// pick a difficulty preset and start a run or open the scoreboard.
type MenuModel struct {
	cursor menuEntry
	preset int
	width  int
	height int
	config core.RuntimeConfig

	quitting       bool
	startGame      bool
	openScoreboard bool
}

// NewMenuModel creates a title screen model with the given preset selected.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	selected := 1
	for i, p := range menuPresets {
		if p == preset {
			selected = i
			break
		}
	}

	return MenuModel{
		preset: selected,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > menuEntryPlay {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuEntryQuit {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == menuEntryDifficulty && m.preset > 0 {
			m.preset--
		}

	case MenuActionRight:
		if m.cursor == menuEntryDifficulty && m.preset < len(menuPresets)-1 {
			m.preset++
		}

	case MenuActionSelect:
		switch m.cursor {
		case menuEntryPlay, menuEntryDifficulty:
			m.startGame = true
			return m, tea.Quit
		case menuEntryScores:
			m.openScoreboard = true
			return m, tea.Quit
		case menuEntryQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the title screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText("  C A V E R N  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Trap the robots, pop the orbs", m.width))
	b.WriteString("\n\n")

	rows := []string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", menuPresets[m.preset]),
		"Scores",
		"Quit",
	}

	for i, row := range rows {
		cursor := "  "
		if menuEntry(i) == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return menuPresets[m.preset]
}

// Config returns the runtime config, updated by any resize events.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the outcome of the title screen.
type MenuResult struct {
	Play            bool
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the title screen and returns the player's choice.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, preset),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Preset: m.Preset(),
		Config: m.Config(),
	}

	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.startGame:
		result.Play = true
	default:
		result.Quit = true
	}

	return result, nil
}
