package snake

import "testing"

func TestWrap(t *testing.T) {
	if got := wrap(-1, 10); got != 9 {
		t.Errorf("wrap(-1, 10) = %d, expected 9", got)
	}
	if got := wrap(10, 10); got != 0 {
		t.Errorf("wrap(10, 10) = %d, expected 0", got)
	}
	if got := wrap(4, 10); got != 4 {
		t.Errorf("wrap(4, 10) = %d, expected 4", got)
	}
}

func TestWrapDelta(t *testing.T) {
	// A difference of dimension-1 straddles the wrap edge: the real step
	// is one tile the other way.
	if got := wrapDelta(9, 10); got != -1 {
		t.Errorf("wrapDelta(9, 10) = %d, expected -1", got)
	}
	if got := wrapDelta(-9, 10); got != 1 {
		t.Errorf("wrapDelta(-9, 10) = %d, expected 1", got)
	}
	if got := wrapDelta(1, 10); got != 1 {
		t.Errorf("wrapDelta(1, 10) = %d, expected 1", got)
	}
	if got := wrapDelta(0, 10); got != 0 {
		t.Errorf("wrapDelta(0, 10) = %d, expected 0", got)
	}
}

func TestOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] {
			t.Errorf("%v.Opposite() = %v, expected %v", p[0], p[0].Opposite(), p[1])
		}
		if p[1].Opposite() != p[0] {
			t.Errorf("%v.Opposite() = %v, expected %v", p[1], p[1].Opposite(), p[0])
		}
	}
}

func TestStepFromWrapsEveryEdge(t *testing.T) {
	g := NewSeeded(7, 4, 1)

	if got := g.stepFrom(Position{X: 0, Y: 2}, DirLeft); got != (Position{X: 6, Y: 2}) {
		t.Errorf("left from (0,2) = %v, expected (6,2)", got)
	}
	if got := g.stepFrom(Position{X: 6, Y: 2}, DirRight); got != (Position{X: 0, Y: 2}) {
		t.Errorf("right from (6,2) = %v, expected (0,2)", got)
	}
	if got := g.stepFrom(Position{X: 3, Y: 0}, DirUp); got != (Position{X: 3, Y: 3}) {
		t.Errorf("up from (3,0) = %v, expected (3,3)", got)
	}
	if got := g.stepFrom(Position{X: 3, Y: 3}, DirDown); got != (Position{X: 3, Y: 0}) {
		t.Errorf("down from (3,3) = %v, expected (3,0)", got)
	}
}
