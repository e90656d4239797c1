package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiltdodge/dodge/internal/config"
	"github.com/tiltdodge/dodge/internal/core"
	"github.com/tiltdodge/dodge/internal/engine"
	"github.com/tiltdodge/dodge/internal/input"
	"github.com/tiltdodge/dodge/internal/storage"
)

// Model is the Bubble Tea model that runs the dodge game. Keyboard input is
// folded into a raw sensor frame between ticks; each TickMsg normalizes the
// frame, advances the engine exactly once, and renders the snapshot.
type Model struct {
	game     *engine.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	mapper   *KeyMapper
	norm     *input.Normalizer
	raw      input.Raw
	snap     engine.Snapshot
	quitting bool
	runSaved bool // Whether the run has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game configuration.
func NewModel(gameCfg config.GameConfig, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := engine.New(gameCfg)
	game.Reset(cfg)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		mapper: NewKeyMapper(gameCfg.Input.TiltRange),
		norm:   input.NewNormalizer(gameCfg.Input.TiltDeadZone),
	}
}

// SetMenuCursor preselects a difficulty before the program starts.
func (m *Model) SetMenuCursor(i int) {
	m.game.SetMenuCursor(i)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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

// handleKey folds keyboard input into the pending sensor frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.mapper.Apply(msg, &m.raw) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize adjusts the screen buffer. The playfield itself is fixed, so
// the running session survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	ev := m.norm.Normalize(m.raw)
	m.raw = input.Raw{}

	m.snap = m.game.Tick(ev)

	// Record the run once per game over
	if m.snap.State == engine.StateGameOver && !m.runSaved {
		if m.store != nil && m.snap.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.snap.Difficulty.String(), m.snap.Score, int(m.snap.Elapsed))
		}
		m.runSaved = true
	}
	if m.snap.State == engine.StatePlaying {
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.snap, m.config.TickRate)

	dir := filepath.Join(os.Getenv("HOME"), ".dodge", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dodge_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current snapshot to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.snap, m.config.TickRate)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg config.GameConfig, store *storage.Store, cfg core.RuntimeConfig, difficultyCursor int) error {
	model := NewModel(gameCfg, store, cfg)
	model.SetMenuCursor(difficultyCursor)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
