// Package slash implements the Slash arcade game: cut the play area down with
// straight slashes from a corner without the moving slasher touching a ball.
package slash

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slash/internal/config"
	"github.com/vovakirdan/tui-slash/internal/core"
	"github.com/vovakirdan/tui-slash/internal/export"
	"github.com/vovakirdan/tui-slash/internal/geom"
	"github.com/vovakirdan/tui-slash/internal/registry"
)

// Game states
const (
	StateAiming   = "aiming"   // Moving the pointer, no slash in flight
	StateSlashing = "slashing" // Slasher travelling toward the exit
	StatePaused   = "paused"
	StateGameOver = "gameover" // Slasher touched a ball
	StateWin      = "win"      // Area cut below the target (classic only)
)

// GameMode selects what happens when the area target is reached.
type GameMode int

const (
	ModeClassic GameMode = iota // Win at the target
	ModeEndless                 // Start a new round and keep going
)

// roundDifficultyStep raises the difficulty floor for each endless round.
const roundDifficultyStep = 0.15

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game debug logs. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for Slash.
type Game struct {
	mode GameMode

	world   *World
	slasher *Slasher

	state      string
	pausedFrom string
	outcome    core.Outcome
	message    string
	score      int
	round      int
	totalCuts  int
	tickCount  int

	runtime    core.RuntimeConfig
	cfg        config.SlashConfig
	difficulty *config.DifficultyManager
	baseLevel  float64
	tickRate   float64

	view           Viewport
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a classic game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "slash_endless"
	}
	return "slash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Slash (Endless)"
	}
	return "Slash"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSlash(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSlashConfig()
	}
	if difficultyPreset != "" {
		config.ApplySlashPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.baseLevel = g.difficulty.InitialLevel()

	g.tickRate = float64(runtime.TickRate)
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.minScreenW = 40
	g.minScreenH = 16
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	boundary, err := geom.ParseBoundary(cfg.Rules.Boundary)
	if err != nil {
		boundary = geom.BoundaryExclusive
	}
	g.world = NewWorld(WorldConfig{
		Area:       cfg.Area.Quad(),
		Boundary:   boundary,
		BallRadius: cfg.Balls.Radius,
		BallSpeed:  g.ballSpeed(),
		MaxBalls:   cfg.Balls.Max,
		Seed:       runtime.Seed,
	})
	g.world.SetLogger(logger)
	g.world.SpawnBalls(cfg.Balls.Initial + g.difficulty.ExtraBalls())

	g.slasher = nil
	g.state = StateAiming
	g.pausedFrom = ""
	g.outcome = ""
	g.message = "Aim with arrows or mouse, SPACE to slash"
	g.score = 0
	g.round = 1
	g.totalCuts = 0
	g.tickCount = 0
}

// Resize refits the playfield to a new screen. The game state is untouched
// since positions live in area units.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
	g.view = NewViewport(width, height, g.cfg.Area.Width, g.cfg.Area.Height)
}

// ballSpeed returns the current per-tick ball speed for the difficulty level.
func (g *Game) ballSpeed() float64 {
	return g.difficulty.Speed(g.cfg.Balls.Speed, g.score, g.tickCount) / g.tickRate
}

// slasherSpeed returns the slasher's per-tick speed.
func (g *Game) slasherSpeed() float64 {
	return g.cfg.Slasher.Speed / g.tickRate
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.ended() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.pausedFrom
		case StateAiming, StateSlashing:
			g.pausedFrom = g.state
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.ended() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []string

	if speed := g.ballSpeed(); !geom.Equal(speed, g.world.ballSpeed) {
		g.world.SetBallSpeed(speed)
	}
	g.world.StepBalls()

	switch g.state {
	case StateAiming:
		events = g.updateAim(in)
	case StateSlashing:
		events = g.updateSlasher()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// updateAim applies pointer input and starts a slash on confirm.
func (g *Game) updateAim(in core.InputFrame) []string {
	if in.Has(core.ActionCancel) {
		g.world.ClearAim()
		g.message = "Aim cleared"
	}

	if in.Pointer != nil {
		g.world.Aim(g.view.ToArea(in.Pointer.X, in.Pointer.Y))
	}

	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		p, ok := g.world.Pointer()
		if !ok {
			p = g.world.Area().Center()
		}
		step := g.cfg.Slasher.AimStep
		p = geom.Pt(
			core.ClampF(p.X+dx*step, 0, g.cfg.Area.Width),
			core.ClampF(p.Y+dy*step, 0, g.cfg.Area.Height),
		)
		g.world.Aim(p)
	}

	if !in.Has(core.ActionConfirm) {
		return nil
	}

	cut := g.world.Candidate()
	if !cut.Valid() {
		g.message = "No valid cut there"
		return []string{"slash rejected"}
	}
	from := g.world.Area()[g.world.Anchor()]
	g.slasher = NewSlasher(from, *cut.Exit, g.slasherSpeed())
	g.state = StateSlashing
	g.message = ""
	return []string{"slash started"}
}

// updateSlasher moves the slasher, ending the run on a hit and committing the
// cut once it gets across.
func (g *Game) updateSlasher() []string {
	arrived := g.slasher.Advance()

	reach := g.cfg.Slasher.HitFactor * g.cfg.Balls.Radius
	if i := g.slasher.Hit(g.world.balls, reach); i >= 0 {
		logger.Debug("slasher hit", "ball", i, "pos", g.slasher.Pos)
		g.finish(StateGameOver, core.OutcomeGameOver)
		g.message = "The slasher hit a ball"
		return []string{"ball hit"}
	}

	far := g.world.FarEdges()
	if !arrived && !g.slasher.NearAny(far[:], g.cfg.Slasher.EndDistance) {
		return nil
	}
	return g.commit()
}

func (g *Game) commit() []string {
	res, err := g.world.Commit()
	g.slasher = nil
	g.state = StateAiming
	if err != nil {
		g.message = "Cut lost"
		logger.Error("commit failed", "err", err)
		return []string{"commit failed"}
	}

	g.totalCuts++
	g.score += g.cfg.Rules.CutPoints + int(res.AreaRemoved/g.cfg.Rules.AreaPerPoint)
	events := []string{fmt.Sprintf("slash committed: -%d balls, +%d balls", len(res.Removed), res.Spawned)}
	g.message = fmt.Sprintf("Cut! %d ball(s) caught", len(res.Removed))

	if g.world.AreaFraction() > g.cfg.Rules.TargetFraction {
		return events
	}

	if g.mode == ModeClassic {
		g.finish(StateWin, core.OutcomeWin)
		g.message = "Area cleared"
		return append(events, "win")
	}

	g.round++
	g.difficulty.SetInitialLevel(g.baseLevel + roundDifficultyStep*float64(g.round-1))
	g.world.ResetArea()
	g.world.SpawnBalls(1)
	g.message = fmt.Sprintf("Round %d", g.round)
	return append(events, fmt.Sprintf("round %d", g.round))
}

func (g *Game) finish(state string, outcome core.Outcome) {
	g.state = state
	g.outcome = outcome
	g.slasher = nil
}

func (g *Game) ended() bool {
	return g.state == StateGameOver || g.state == StateWin
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.ended(),
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Summary describes the run so far for the run history.
func (g *Game) Summary() core.RunSummary {
	outcome := g.outcome
	if outcome == "" {
		outcome = core.OutcomeAbandoned
	}
	return core.RunSummary{
		GameID:   g.ID(),
		Score:    g.score,
		Cuts:     g.totalCuts,
		AreaLeft: g.world.AreaFraction(),
		Balls:    len(g.world.balls),
		Outcome:  outcome,
		Ticks:    g.tickCount,
		Duration: time.Duration(g.tickCount) * time.Second / time.Duration(g.tickRate),
	}
}

// Board returns the drawable state for image export.
func (g *Game) Board() export.Board {
	b := worldBoard(g.world, g.cfg.Area)
	if line, ok := g.aimPreview(); ok && g.state == StateAiming {
		b.Preview = &line
	}
	if g.slasher != nil {
		pos := g.slasher.Pos
		b.Slasher = &pos
	}
	return b
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

func init() {
	registry.Register("slash", func() registry.Game {
		return New()
	})
	registry.Register("slash_endless", func() registry.Game {
		return NewEndless()
	})
}
