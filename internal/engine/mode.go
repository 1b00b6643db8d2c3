package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dkoval/gridsnake/internal/core"
)

// Rule constants shared by the modes.
const (
	// DefaultTimeLimit is the timed mode's budget in seconds.
	DefaultTimeLimit = 30.0
	// speedIncrement is added to the challenge speed multiplier per food.
	speedIncrement = 0.15
	// obstacleInterval is how many foods between new challenge obstacles.
	obstacleInterval = 3
)

// ModeKind identifies one of the closed set of rule variants.
type ModeKind int

const (
	Classic ModeKind = iota
	Timed
	Challenge
)

// String returns the mode's identifier, also used for score storage.
func (k ModeKind) String() string {
	switch k {
	case Classic:
		return "classic"
	case Timed:
		return "timed"
	case Challenge:
		return "challenge"
	default:
		return "unknown"
	}
}

// ParseModeKind maps a mode identifier back to its kind.
func ParseModeKind(s string) (ModeKind, error) {
	switch s {
	case "classic":
		return Classic, nil
	case "timed":
		return Timed, nil
	case "challenge":
		return Challenge, nil
	default:
		return Classic, fmt.Errorf("engine: unknown mode %q", s)
	}
}

// EventTag labels the outcome of a tick.
type EventTag string

const (
	EventNone              EventTag = ""
	EventFoodEaten         EventTag = "food-eaten"
	EventSelfCollision     EventTag = "self-collision"
	EventWallCollision     EventTag = "wall-collision"
	EventObstacleCollision EventTag = "obstacle-collision"
	EventTimeExpired       EventTag = "time-expired"
)

// Event describes what happened during a tick. Points carries the score
// delta awarded for a food-eaten event (the timed mode awards more than one
// point per food).
type Event struct {
	Tag    EventTag
	Points int
}

// Mode is the rule state machine governing a game session. It is a closed
// tagged variant: the kind selects the rule set, while the common fields
// (grid dimensions, score, terminal flag, obstacle set) exist on every
// variant so the orchestrator reads them uniformly. Once the terminal flag
// is set, Update must not be called again until a reset builds a fresh Mode.
type Mode struct {
	kind     ModeKind
	width    int
	height   int
	score    int
	gameOver bool

	// Always present; only the challenge variant ever adds to it.
	obstacles map[core.Point]struct{}

	// Timed variant state.
	timeLimit     float64
	timeRemaining float64
	bonusPoints   int
	lastUpdate    time.Time
	timerStarted  bool
	clock         Clock

	// Challenge variant state.
	speedMultiplier float64
	foodsEaten      int
	rng             *rand.Rand
}

// ModeOption customizes a Mode at construction time.
type ModeOption func(*Mode)

// WithClock injects the time source used by the timed mode.
func WithClock(c Clock) ModeOption {
	return func(m *Mode) { m.clock = c }
}

// WithTimeLimit sets the timed mode's budget in seconds.
func WithTimeLimit(seconds float64) ModeOption {
	return func(m *Mode) {
		m.timeLimit = seconds
		m.timeRemaining = seconds
	}
}

// WithModeRand injects the RNG used for challenge obstacle placement.
func WithModeRand(rng *rand.Rand) ModeOption {
	return func(m *Mode) { m.rng = rng }
}

// NewMode creates a fresh rule state machine for the given grid.
func NewMode(kind ModeKind, w, h int, opts ...ModeOption) *Mode {
	m := &Mode{
		kind:            kind,
		width:           w,
		height:          h,
		obstacles:       make(map[core.Point]struct{}),
		timeLimit:       DefaultTimeLimit,
		timeRemaining:   DefaultTimeLimit,
		clock:           SystemClock,
		speedMultiplier: 1.0,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return m
}

// Kind returns the rule variant.
func (m *Mode) Kind() ModeKind {
	return m.kind
}

// Score returns the accumulated score.
func (m *Mode) Score() int {
	return m.score
}

// GameOver reports whether the mode has reached its terminal state.
func (m *Mode) GameOver() bool {
	return m.gameOver
}

// Obstacles returns a copy of the obstacle set. It is empty for every
// variant except challenge.
func (m *Mode) Obstacles() map[core.Point]struct{} {
	out := make(map[core.Point]struct{}, len(m.obstacles))
	for p := range m.obstacles {
		out[p] = struct{}{}
	}
	return out
}

// SpeedMultiplier returns the frame-pacing multiplier: 1.0 for classic and
// timed, and an escalating value for challenge.
func (m *Mode) SpeedMultiplier() float64 {
	return m.speedMultiplier
}

// TimeRemaining returns the timed mode's remaining budget in seconds.
func (m *Mode) TimeRemaining() float64 {
	return m.timeRemaining
}

// BonusPoints returns the timed mode's accumulated bonus points.
func (m *Mode) BonusPoints() int {
	return m.bonusPoints
}

// FoodsEaten returns the challenge mode's consumption counter.
func (m *Mode) FoodsEaten() int {
	return m.foodsEaten
}

// Update applies the mode's rules for one tick, after the orchestrator has
// already advanced the snake. It returns whether the game continues and the
// event describing what happened.
func (m *Mode) Update(s *Snake, food core.Point) (bool, Event) {
	switch m.kind {
	case Timed:
		return m.updateTimed(s, food)
	case Challenge:
		return m.updateChallenge(s, food)
	default:
		return m.updateClassic(s, food)
	}
}

// updateClassic: toroidal topology, self-collision only, one point per food.
func (m *Mode) updateClassic(s *Snake, food core.Point) (bool, Event) {
	s.WrapHead(m.width, m.height)

	if s.HasSelfCollision() {
		m.gameOver = true
		return false, Event{Tag: EventSelfCollision}
	}

	if s.Head() == food {
		m.score++
		return true, Event{Tag: EventFoodEaten, Points: 1}
	}

	return true, Event{}
}

// updateTimed: classic rules under a decaying time budget, with a bonus of
// floor(remaining/limit × 10) points per food.
func (m *Mode) updateTimed(s *Snake, food core.Point) (bool, Event) {
	m.tickTimer()

	if m.timeRemaining <= 0 {
		m.gameOver = true
		return false, Event{Tag: EventTimeExpired}
	}

	s.WrapHead(m.width, m.height)

	if s.HasSelfCollision() {
		m.gameOver = true
		return false, Event{Tag: EventSelfCollision}
	}

	if s.Head() == food {
		bonus := int(m.timeRemaining / m.timeLimit * 10)
		total := 1 + bonus
		m.score += total
		m.bonusPoints += bonus
		return true, Event{Tag: EventFoodEaten, Points: total}
	}

	return true, Event{}
}

// tickTimer decrements the remaining budget by the wall-clock delta since the
// previous tick. The first call only records a baseline timestamp.
func (m *Mode) tickTimer() {
	now := m.clock.Now()

	if !m.timerStarted {
		m.timerStarted = true
		m.lastUpdate = now
		return
	}

	elapsed := now.Sub(m.lastUpdate).Seconds()
	m.timeRemaining = m.timeRemaining - elapsed
	if m.timeRemaining < 0 {
		m.timeRemaining = 0
	}
	m.lastUpdate = now
}

// updateChallenge: no wraparound. Checks in order: wall, self, obstacle,
// food. Each food raises the speed multiplier, and every third food places a
// new obstacle on a random free cell.
func (m *Mode) updateChallenge(s *Snake, food core.Point) (bool, Event) {
	if !s.Head().WithinBounds(m.width, m.height) {
		m.gameOver = true
		return false, Event{Tag: EventWallCollision}
	}

	if s.HasSelfCollision() {
		m.gameOver = true
		return false, Event{Tag: EventSelfCollision}
	}

	if _, hit := m.obstacles[s.Head()]; hit {
		m.gameOver = true
		return false, Event{Tag: EventObstacleCollision}
	}

	if s.Head() == food {
		m.score++
		m.foodsEaten++
		m.speedMultiplier += speedIncrement
		if m.foodsEaten%obstacleInterval == 0 {
			m.addObstacle(s.Body())
		}
		return true, Event{Tag: EventFoodEaten, Points: 1}
	}

	return true, Event{}
}

// addObstacle places one obstacle uniformly at random among the cells not
// covered by the snake or an existing obstacle. If no free cell exists the
// placement is silently skipped.
func (m *Mode) addObstacle(body []core.Point) {
	snakeCells := make(map[core.Point]struct{}, len(body))
	for _, seg := range body {
		snakeCells[seg] = struct{}{}
	}

	var free []core.Point
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			p := core.Point{X: x, Y: y}
			if _, onSnake := snakeCells[p]; onSnake {
				continue
			}
			if _, onObstacle := m.obstacles[p]; onObstacle {
				continue
			}
			free = append(free, p)
		}
	}

	if len(free) == 0 {
		return
	}
	m.obstacles[free[m.rng.Intn(len(free))]] = struct{}{}
}

// Info returns the human-readable mode summary shown in the HUD.
func (m *Mode) Info() string {
	switch m.kind {
	case Timed:
		return fmt.Sprintf("Timed Mode - Score: %d | Time: %ds", m.score, int(m.timeRemaining))
	case Challenge:
		return fmt.Sprintf("Challenge Mode - Score: %d | Speed: %.1fx | Obstacles: %d",
			m.score, m.speedMultiplier, len(m.obstacles))
	default:
		return fmt.Sprintf("Classic Mode - Score: %d", m.score)
	}
}

// Title returns the display name for the mode.
func (k ModeKind) Title() string {
	switch k {
	case Timed:
		return "Snake (Timed)"
	case Challenge:
		return "Snake (Challenge)"
	default:
		return "Snake (Classic)"
	}
}
