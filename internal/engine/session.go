package engine

import (
	"math/rand"
	"time"

	"github.com/dkoval/gridsnake/internal/core"
)

// Session owns one game's snake, food and mode, and advances them one tick
// at a time. The session is the sole mutator of its entities; the driver
// must serialize ticks. Direction changes may arrive between ticks and are
// applied by overwrite, last-write-wins.
type Session struct {
	kind   ModeKind
	width  int
	height int

	snake *Snake
	food  core.Point
	mode  *Mode

	rng         *rand.Rand
	clock       Clock
	timeLimit   float64
	snakeLength int
}

// TickResult is what one simulation step produced, for the consuming
// renderer and driver.
type TickResult struct {
	Continue bool
	Event    Event
	Score    int
	GameOver bool
}

// SessionOption customizes a Session at construction time.
type SessionOption func(*Session)

// WithSeed seeds the session's RNG for reproducible food and obstacle
// placement.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects a fully constructed RNG.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithSessionClock injects the time source handed to timed modes.
func WithSessionClock(c Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

// WithSessionTimeLimit sets the timed mode budget in seconds.
func WithSessionTimeLimit(seconds float64) SessionOption {
	return func(s *Session) { s.timeLimit = seconds }
}

// WithSnakeLength sets the initial snake length.
func WithSnakeLength(n int) SessionOption {
	return func(s *Session) { s.snakeLength = n }
}

// NewSession builds a fresh session for the given mode kind and grid.
// It fails only if the configured snake length is below 1.
func NewSession(kind ModeKind, w, h int, opts ...SessionOption) (*Session, error) {
	s := &Session{
		kind:        kind,
		width:       w,
		height:      h,
		clock:       SystemClock,
		timeLimit:   DefaultTimeLimit,
		snakeLength: DefaultSnakeLength,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if err := s.Reset(kind); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the snake, food and mode and reconstructs them for the
// given kind. The snake starts at roughly a quarter of the grid width,
// vertically centered, moving right.
func (s *Session) Reset(kind ModeKind) error {
	start := core.Point{X: s.width / 4, Y: s.height / 2}
	snake, err := NewSnake(start, s.snakeLength)
	if err != nil {
		return err
	}

	s.kind = kind
	s.snake = snake
	s.mode = NewMode(kind, s.width, s.height,
		WithClock(s.clock),
		WithTimeLimit(s.timeLimit),
		WithModeRand(s.rng),
	)
	s.food = SpawnFood(s.rng, s.width, s.height, s.snake.Body(), s.mode.obstacles)
	return nil
}

// ApplyDirection forwards a directional input to the snake. It returns false
// when the input was rejected as an instant reversal.
func (s *Session) ApplyDirection(d core.Point) bool {
	return s.snake.ChangeDirection(d)
}

// Tick performs one simulation step: advance the snake, apply the mode's
// rules, then grow and respawn food when it was eaten. Ticking a terminal
// session is a no-op that reports the terminal result.
func (s *Session) Tick() TickResult {
	if s.mode.GameOver() {
		return TickResult{
			Continue: false,
			Score:    s.mode.Score(),
			GameOver: true,
		}
	}

	s.snake.Move(false)

	cont, event := s.mode.Update(s.snake, s.food)

	if event.Tag == EventFoodEaten {
		s.snake.Move(true)
		s.food = SpawnFood(s.rng, s.width, s.height, s.snake.Body(), s.mode.obstacles)
	}

	return TickResult{
		Continue: cont,
		Event:    event,
		Score:    s.mode.Score(),
		GameOver: s.mode.GameOver(),
	}
}

// Kind returns the active mode kind.
func (s *Session) Kind() ModeKind {
	return s.kind
}

// GridSize returns the grid dimensions.
func (s *Session) GridSize() (int, int) {
	return s.width, s.height
}

// Body returns a copy of the snake body, head first.
func (s *Session) Body() []core.Point {
	return s.snake.Body()
}

// Head returns the snake's head position.
func (s *Session) Head() core.Point {
	return s.snake.Head()
}

// Food returns the current food position.
func (s *Session) Food() core.Point {
	return s.food
}

// Obstacles returns a copy of the obstacle set (empty outside challenge).
func (s *Session) Obstacles() map[core.Point]struct{} {
	return s.mode.Obstacles()
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.mode.Score()
}

// GameOver reports whether the session has reached its terminal state.
func (s *Session) GameOver() bool {
	return s.mode.GameOver()
}

// Info returns the human-readable mode summary for the HUD.
func (s *Session) Info() string {
	return s.mode.Info()
}

// SpeedMultiplier returns the mode's frame-pacing multiplier, used by the
// driver to scale its tick rate.
func (s *Session) SpeedMultiplier() float64 {
	return s.mode.SpeedMultiplier()
}

// TimeRemaining returns the timed mode's remaining seconds (the full budget
// for other modes).
func (s *Session) TimeRemaining() float64 {
	return s.mode.TimeRemaining()
}
