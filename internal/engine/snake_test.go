package engine

import (
	"testing"

	"github.com/dkoval/gridsnake/internal/core"
)

func TestNewSnakeLayout(t *testing.T) {
	s, err := NewSnake(core.Point{X: 5, Y: 7}, 3)
	if err != nil {
		t.Fatalf("NewSnake() failed: %v", err)
	}

	want := []core.Point{{X: 5, Y: 7}, {X: 4, Y: 7}, {X: 3, Y: 7}}
	body := s.Body()
	if len(body) != len(want) {
		t.Fatalf("Expected body length %d, got %d", len(want), len(body))
	}
	for i, p := range want {
		if body[i] != p {
			t.Errorf("Segment %d = %v, expected %v", i, body[i], p)
		}
	}

	if s.Direction() != core.DirRight {
		t.Errorf("Initial direction = %v, expected right", s.Direction())
	}
}

func TestNewSnakeRejectsZeroLength(t *testing.T) {
	if _, err := NewSnake(core.Point{X: 5, Y: 5}, 0); err == nil {
		t.Error("NewSnake with length 0 should fail")
	}
	if _, err := NewSnake(core.Point{X: 5, Y: 5}, -2); err == nil {
		t.Error("NewSnake with negative length should fail")
	}
	if _, err := NewSnake(core.Point{X: 5, Y: 5}, 1); err != nil {
		t.Errorf("NewSnake with length 1 should succeed, got %v", err)
	}
}

func TestMoveKeepsLength(t *testing.T) {
	s, _ := NewSnake(core.Point{X: 5, Y: 5}, 3)
	oldHead := s.Head()

	s.Move(false)

	if s.Len() != 3 {
		t.Errorf("Length after Move(false) = %d, expected 3", s.Len())
	}
	if s.Head() != oldHead.Add(s.Direction()) {
		t.Errorf("Head = %v, expected %v", s.Head(), oldHead.Add(s.Direction()))
	}
}

func TestMoveGrowExtendsBody(t *testing.T) {
	s, _ := NewSnake(core.Point{X: 5, Y: 5}, 3)
	tail := s.Body()[s.Len()-1]

	s.Move(true)

	if s.Len() != 4 {
		t.Errorf("Length after Move(true) = %d, expected 4", s.Len())
	}
	if got := s.Body()[s.Len()-1]; got != tail {
		t.Errorf("Tail after Move(true) = %v, expected preserved %v", got, tail)
	}
}

func TestChangeDirectionRejectsOnlyReversal(t *testing.T) {
	dirs := []core.Point{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}
	opposite := map[core.Point]core.Point{
		core.DirUp:    core.DirDown,
		core.DirDown:  core.DirUp,
		core.DirLeft:  core.DirRight,
		core.DirRight: core.DirLeft,
	}

	for _, current := range dirs {
		for _, candidate := range dirs {
			s, _ := NewSnake(core.Point{X: 5, Y: 5}, 3)
			s.dir = current

			accepted := s.ChangeDirection(candidate)
			wantAccepted := candidate != opposite[current]

			if accepted != wantAccepted {
				t.Errorf("ChangeDirection(%v) from %v = %v, expected %v",
					candidate, current, accepted, wantAccepted)
			}
			if accepted && s.Direction() != candidate {
				t.Errorf("Accepted direction not committed: got %v, expected %v",
					s.Direction(), candidate)
			}
			if !accepted && s.Direction() != current {
				t.Errorf("Rejected direction modified state: got %v, expected %v",
					s.Direction(), current)
			}
		}
	}
}

func TestChangeDirectionLastWriteWins(t *testing.T) {
	s, _ := NewSnake(core.Point{X: 5, Y: 5}, 3)

	// Each call commits immediately, so a later non-opposite call before the
	// next Move simply overwrites the earlier one.
	s.ChangeDirection(core.DirUp)
	s.ChangeDirection(core.DirLeft)

	if s.Direction() != core.DirLeft {
		t.Errorf("Direction = %v, expected left after overwrite", s.Direction())
	}

	// Reversal is always judged against the committed direction: after the
	// overwrite to left, right is the opposite and gets rejected, while down
	// is accepted.
	if s.ChangeDirection(core.DirRight) {
		t.Error("Right should be rejected after committing left")
	}
	if !s.ChangeDirection(core.DirDown) {
		t.Error("Down should be accepted while moving left")
	}
	if s.Direction() != core.DirDown {
		t.Errorf("Direction = %v, expected down", s.Direction())
	}
}

func TestHasSelfCollision(t *testing.T) {
	s, _ := NewSnake(core.Point{X: 5, Y: 5}, 4)
	if s.HasSelfCollision() {
		t.Error("Fresh snake should not self-collide")
	}

	// Head coinciding with a later segment
	s.body = []core.Point{{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	if !s.HasSelfCollision() {
		t.Error("Head matching body[2] should be a self-collision")
	}

	// Duplicate away from the head is not a head collision
	s.body = []core.Point{{X: 6, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 5}}
	if s.HasSelfCollision() {
		t.Error("Duplicate segments behind the head are not a self-collision")
	}
}

func TestCheckCollisionExcludesHead(t *testing.T) {
	s, _ := NewSnake(core.Point{X: 5, Y: 5}, 3)

	if !s.CheckCollision(core.Point{X: 4, Y: 5}) {
		t.Error("Point on body segment should collide")
	}
	if s.CheckCollision(s.Head()) {
		t.Error("Point coincident only with the head should not collide")
	}
	if s.CheckCollision(core.Point{X: 9, Y: 9}) {
		t.Error("Point off the body should not collide")
	}
}

func TestWrapHead(t *testing.T) {
	s, _ := NewSnake(core.Point{X: 5, Y: 5}, 3)

	s.SetHead(core.Point{X: -1, Y: 5})
	s.WrapHead(10, 10)
	if s.Head() != (core.Point{X: 9, Y: 5}) {
		t.Errorf("Head = %v, expected (9,5)", s.Head())
	}

	s.SetHead(core.Point{X: 10, Y: 5})
	s.WrapHead(10, 10)
	if s.Head() != (core.Point{X: 0, Y: 5}) {
		t.Errorf("Head = %v, expected (0,5)", s.Head())
	}
}
