package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick            uint64
	Mode            string // "classic", "timed" or "challenge"
	Score           int
	SnakeLen        int
	HeadX           int
	HeadY           int
	FoodX           int
	FoodY           int
	Obstacles       int
	SpeedMultiplier float64
	MoveEveryTicks  int
	State           GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:            g.tick,
		Mode:            g.kind.String(),
		MoveEveryTicks:  g.moveEveryTicks,
		SpeedMultiplier: 1.0,
		State:           StatePlaying,
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.session != nil && g.session.GameOver():
		snap.State = StateGameOver
	case g.paused:
		snap.State = StatePaused
	}

	if g.session != nil {
		head := g.session.Head()
		food := g.session.Food()
		snap.Score = g.session.Score()
		snap.SnakeLen = len(g.session.Body())
		snap.HeadX = head.X
		snap.HeadY = head.Y
		snap.FoodX = food.X
		snap.FoodY = food.Y
		snap.Obstacles = len(g.session.Obstacles())
		snap.SpeedMultiplier = g.session.SpeedMultiplier()
	}

	return snap
}
