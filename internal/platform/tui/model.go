package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cavern-arcade/cavern/internal/core"
	"github.com/cavern-arcade/cavern/internal/registry"
	"github.com/cavern-arcade/cavern/internal/storage"
)

// runDetails is implemented by games that report per-run metadata beyond the
// score, so the platform can persist richer run records.
type runDetails interface {
	Level() int
	Tick() int
}

// Model is the Bubble Tea model that runs a game session. It owns the input
// reconstruction, the fixed-tick loop, pausing, and score persistence; the
// game itself only ever sees sampled InputState values.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string

	tracker *KeyTracker
	sampler *core.Sampler

	gameState  core.GameState
	paused     bool
	quitting   bool
	scoreSaved bool
}

// NewModel creates a session model for the given game. The difficulty label
// is recorded alongside saved runs.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		tracker:    NewKeyTracker(),
		sampler:    &core.Sampler{},
	}
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "r" && m.gameState.GameOver {
		m.restart()
		return m, nil
	}

	if m.tracker.HandleKey(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize updates the screen buffer on terminal resize. The simulation
// runs in fixed pixel coordinates, so the game itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the session by one fixed tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.sampler.Sample(m.tracker.Raw())
	m.tracker.Decay()

	if in.PausePressed && !m.gameState.GameOver {
		m.paused = !m.paused
	}

	if !m.paused {
		result := m.game.Step(in)
		m.gameState = result.State
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a fresh run with a new seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.paused = false
	m.scoreSaved = false
	m.tracker.Reset()
	m.sampler.Reset()
}

// saveRun persists the finished run. Best effort: a storage failure never
// interrupts the session.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	entry := storage.RunEntry{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Difficulty: m.difficulty,
	}
	if d, ok := m.game.(runDetails); ok {
		entry.Level = d.Level()
		entry.Ticks = d.Tick()
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(entry)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.gameState.GameOver {
		mid := m.screen.Height() / 2
		m.screen.DrawTextCentered(mid, "  GAME OVER  ")
		m.screen.DrawTextCentered(mid+1, "  [r] restart   [q] quit  ")
	} else if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "  PAUSED  ")
	}

	return RenderScreen(m.screen)
}

// Run starts a full-screen Bubble Tea session for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, difficulty),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
