package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slash/internal/core"
	"github.com/vovakirdan/tui-slash/internal/export"
	"github.com/vovakirdan/tui-slash/internal/registry"
	"github.com/vovakirdan/tui-slash/internal/storage"
)

// screenshotScale is the PNG pixels per area unit.
const screenshotScale = 3

// boardExporter is implemented by games that can be drawn as an image.
type boardExporter interface {
	Board() export.Board
}

// GameModel runs one game: it feeds key and mouse input into fixed ticks,
// saves the score and run once the game ends, and can go back to a menu.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	screenshotDir string
	lastShot      string

	standalone bool // back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewGameModel creates a game model. An empty player gets a generated name.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".slash", "screenshots")
	}

	return GameModel{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:         store,
		config:        cfg,
		player:        PlayerName(player),
		inputFrame:    core.NewInputFrame(),
		keyMapper:     NewKeyMapper(),
		screenshotDir: dir,
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err == nil {
			m.lastShot = path
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc leaves once the game is over or paused.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveRun()
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize refits the game to the new window. Games that cannot resize
// in place are restarted unless they are already over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the score and the run summary once per game. Runs that
// never ticked are not recorded.
func (m *GameModel) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	state := m.game.State()
	if state.GameOver && state.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), state.Score)
	}

	s, ok := m.game.(registry.Summarizer)
	if !ok {
		return
	}
	if sum := s.Summary(); sum.Ticks > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(m.player, sum)
	}
}

// saveScreenshot writes the current screen as text and, for games that
// support it, the board as a PNG. Returns the path without extension.
func (m *GameModel) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s", m.game.ID(), timestamp))

	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}

	if b, ok := m.game.(boardExporter); ok {
		if err := export.WritePNG(b.Board(), screenshotScale, base+".png"); err != nil {
			return "", err
		}
	}
	return base, nil
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastScreenshot returns the path (without extension) of the last screenshot.
func (m GameModel) LastScreenshot() string {
	return m.lastShot
}

// Run plays game in the terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewGameModel(game, store, cfg, player)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover aims, click slashes
	)

	_, err := p.Run()
	return err
}
