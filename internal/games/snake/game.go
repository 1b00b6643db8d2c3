// Package snake adapts the snake rule engine to the platform's Game
// interface: it paces snake movement against the platform tick rate, maps
// input actions to direction changes, and renders the board.
package snake

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/dkoval/gridsnake/internal/config"
	"github.com/dkoval/gridsnake/internal/core"
	"github.com/dkoval/gridsnake/internal/engine"
	"github.com/dkoval/gridsnake/internal/registry"
)

// Game implements registry.Game on top of an engine.Session.
type Game struct {
	kind    engine.ModeKind
	gameCfg config.GameConfig
	session *engine.Session
	tick    uint64

	// Movement pacing: the snake advances once every moveEveryTicks
	// platform ticks, shrunk by the mode's speed multiplier.
	moveEveryTicks int
	moveTicker     int

	// Board layout on screen
	gridW      int
	gridH      int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int
	seed     int64

	paused    bool
	tooSmall  bool
	lastEvent engine.Event
}

// Package-level config overrides (set by the CLI before game creation).
var (
	configPath     string
	overrideGridW  int
	overrideGridH  int
	overrideLimit  float64
	overrideLength int
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetGridSize overrides the configured grid dimensions. Zero leaves the
// config value in place.
func SetGridSize(w, h int) {
	overrideGridW = w
	overrideGridH = h
}

// SetTimeLimit overrides the timed mode budget in seconds.
func SetTimeLimit(seconds float64) {
	overrideLimit = seconds
}

// SetInitialLength overrides the configured initial snake length.
func SetInitialLength(n int) {
	overrideLength = n
}

// New creates a snake game for the given rule variant.
func New(kind engine.ModeKind) *Game {
	return &Game{kind: kind}
}

func init() {
	for _, kind := range []engine.ModeKind{engine.Classic, engine.Timed, engine.Challenge} {
		k := kind
		registry.Register(k.String(), func() registry.Game {
			return New(k)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.kind.String()
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.kind.Title()
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadGame(configPath)
	if err != nil {
		log.Warn("could not load game config, using defaults", "err", err)
		gameCfg = config.DefaultGameConfig()
	}
	if overrideGridW > 0 && overrideGridH > 0 {
		gameCfg.Grid.Width = overrideGridW
		gameCfg.Grid.Height = overrideGridH
	}
	if overrideLimit > 0 {
		gameCfg.Timed.TimeLimitSeconds = overrideLimit
	}
	if overrideLength > 0 {
		gameCfg.Snake.InitialLength = overrideLength
	}
	g.gameCfg = gameCfg

	g.tick = 0
	g.paused = false
	g.lastEvent = engine.Event{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.seed = cfg.Seed
	g.hudHeight = 2

	g.gridW = gameCfg.Grid.Width
	g.gridH = gameCfg.Grid.Height
	g.moveEveryTicks = core.Max(1, g.tickRate/gameCfg.Pace.MovesPerSecond)
	g.moveTicker = 0

	// Check if screen fits the board plus its border and HUD
	requiredW := g.gridW + 2
	requiredH := g.gridH + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the board below the HUD
	g.mapOffsetX = (g.screenW-g.gridW)/2 + 1
	g.mapOffsetY = g.hudHeight + 1

	session, err := engine.NewSession(g.kind, g.gridW, g.gridH,
		engine.WithSeed(cfg.Seed),
		engine.WithSessionTimeLimit(gameCfg.Timed.TimeLimitSeconds),
		engine.WithSnakeLength(gameCfg.Snake.InitialLength),
	)
	if err != nil {
		// Normalize() keeps the configured length valid, so this only
		// trips on a broken runtime config; fall back to a safe board.
		session, _ = engine.NewSession(g.kind, g.gridW, g.gridH, engine.WithSeed(cfg.Seed))
	}
	g.session = session
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.session.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.seed + int64(g.tick),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.session.GameOver() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyDirectionInput(input)

	// Advance the simulation on the movement interval, scaled by the
	// mode's speed multiplier so challenge mode actually gets faster.
	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		result := g.session.Tick()
		if result.Event.Tag != engine.EventNone {
			g.lastEvent = result.Event
		}
	}

	return core.StepResult{State: g.State()}
}

// moveInterval returns the current ticks-per-move, never below 1.
func (g *Game) moveInterval() int {
	interval := int(float64(g.moveEveryTicks) / g.session.SpeedMultiplier())
	return core.Max(1, interval)
}

// applyDirectionInput forwards directional actions to the session. The
// engine rejects instant reversals; later presses before the next move
// overwrite earlier ones.
func (g *Game) applyDirectionInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.session.ApplyDirection(core.DirUp)
	case input.Has(core.ActionDown):
		g.session.ApplyDirection(core.DirDown)
	case input.Has(core.ActionLeft):
		g.session.ApplyDirection(core.DirLeft)
	case input.Has(core.ActionRight):
		g.session.ApplyDirection(core.DirRight)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.session == nil {
		return
	}

	g.renderBoard(dst)
	g.renderObstacles(dst)
	g.renderFood(dst)
	g.renderSnake(dst)

	switch {
	case g.session.GameOver():
		g.renderOverlay(dst, "Game Over", gameOverReason(g.lastEvent.Tag)+" Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// gameOverReason maps a terminal event tag to its display message.
func gameOverReason(tag engine.EventTag) string {
	switch tag {
	case engine.EventSelfCollision:
		return "Self collision!"
	case engine.EventWallCollision:
		return "Wall collision!"
	case engine.EventObstacleCollision:
		return "Obstacle collision!"
	case engine.EventTimeExpired:
		return "Time's up!"
	default:
		return ""
	}
}

// renderHUD draws the top status bar with the mode summary.
func (g *Game) renderHUD(dst *core.Screen) {
	info := ""
	if g.session != nil {
		info = g.session.Info()
		if g.lastEvent.Tag == engine.EventFoodEaten && g.lastEvent.Points > 1 {
			info += fmt.Sprintf(" | +%d points!", g.lastEvent.Points)
		}
	}
	dst.DrawText(1, 0, info)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the border box around the playfield.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, g.gridW+2, g.gridH+2))
}

func (g *Game) renderObstacles(dst *core.Screen) {
	for p := range g.session.Obstacles() {
		dst.SetCell(g.mapOffsetX+p.X, g.mapOffsetY+p.Y, '#', core.ColorGray)
	}
}

func (g *Game) renderFood(dst *core.Screen) {
	food := g.session.Food()
	dst.SetCell(g.mapOffsetX+food.X, g.mapOffsetY+food.Y, '*', core.ColorRed)
}

func (g *Game) renderSnake(dst *core.Screen) {
	for i, seg := range g.session.Body() {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		dst.SetCell(g.mapOffsetX+seg.X, g.mapOffsetY+seg.Y, r, c)
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{Paused: g.paused}
	if g.session != nil {
		state.Score = g.session.Score()
		state.GameOver = g.session.GameOver()
	}
	return state
}

// SpeedMultiplier exposes the mode's pacing multiplier for the HUD.
func (g *Game) SpeedMultiplier() float64 {
	if g.session == nil {
		return 1.0
	}
	return g.session.SpeedMultiplier()
}
