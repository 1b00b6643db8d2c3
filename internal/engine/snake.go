package engine

import (
	"errors"

	"github.com/dkoval/gridsnake/internal/core"
)

// DefaultSnakeLength is the initial body length used when no explicit length
// is configured.
const DefaultSnakeLength = 3

// ErrSnakeTooShort is returned when constructing a snake with a length below 1.
var ErrSnakeTooShort = errors.New("engine: initial snake length must be at least 1")

// Snake is an ordered body of grid coordinates with a current direction.
// The head is at index 0. The body always has at least one segment, and the
// direction is always one of the four orthogonal unit vectors.
type Snake struct {
	body []core.Point
	dir  core.Point
}

// NewSnake creates a snake at the given start position. Segments are laid out
// behind the head along the negative-x axis and the snake starts moving right.
func NewSnake(start core.Point, length int) (*Snake, error) {
	if length < 1 {
		return nil, ErrSnakeTooShort
	}

	body := make([]core.Point, length)
	for i := range body {
		body[i] = core.Point{X: start.X - i, Y: start.Y}
	}

	return &Snake{
		body: body,
		dir:  core.DirRight,
	}, nil
}

// Head returns the snake's head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the body segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the current movement direction.
func (s *Snake) Direction() core.Point {
	return s.dir
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Move advances the snake one cell in its current direction by prepending a
// new head. Unless grow is set, the tail segment is removed so the body
// length stays constant. Bounds are not checked here; wraparound and wall
// policy belong to the active mode.
func (s *Snake) Move(grow bool) {
	newHead := s.Head().Add(s.dir)
	s.body = append([]core.Point{newHead}, s.body...)

	if !grow {
		s.body = s.body[:len(s.body)-1]
	}
}

// ChangeDirection commits a new direction and returns true, unless the
// candidate is the exact opposite of the current direction along the moving
// axis. Reversal would self-collide on the very next tick, so it is rejected
// and false is returned. Repeated calls before the next Move simply overwrite
// the pending direction.
func (s *Snake) ChangeDirection(d core.Point) bool {
	if s.isOppositeDirection(d) {
		return false
	}
	s.dir = d
	return true
}

func (s *Snake) isOppositeDirection(d core.Point) bool {
	return (s.dir.X == -d.X && s.dir.X != 0) ||
		(s.dir.Y == -d.Y && s.dir.Y != 0)
}

// HasSelfCollision reports whether the head coordinate appears anywhere in
// the rest of the body.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// CheckCollision reports whether p coincides with any body segment other
// than the head. The head is excluded so a point that only matches the head
// (such as food about to be eaten) is not reported as a body collision.
func (s *Snake) CheckCollision(p core.Point) bool {
	for _, seg := range s.body[1:] {
		if seg == p {
			return true
		}
	}
	return false
}

// SetHead replaces the head coordinate. Modes use this instead of reaching
// into the body directly.
func (s *Snake) SetHead(p core.Point) {
	s.body[0] = p
}

// WrapHead maps the head onto a w×h torus.
func (s *Snake) WrapHead(w, h int) {
	s.body[0] = s.body[0].Wrap(w, h)
}
