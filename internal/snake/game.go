// Package snake implements the authoritative simulation core of a
// toroidal-grid snake game. The core owns the full game state (body, food,
// direction, speed, lifecycle) and advances it deterministically from
// wall-clock timestamps and discrete player requests. It contains no
// rendering, input decoding, or timing concerns: a presentation layer feeds
// it requests and a monotonic millisecond clock, then reads state back
// through accessors once per frame.
package snake

import (
	"math"
	"math/rand"
	"time"
)

// State is the lifecycle phase of a play session.
type State int

const (
	StateStart State = iota
	StateRunning
	StatePaused
	StateLoss
	StateWin
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateLoss:
		return "loss"
	case StateWin:
		return "win"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// hitTarget is what the head ran into during a move.
type hitTarget int

const (
	hitNone hitTarget = iota
	hitSnake
	hitFood
)

const (
	initialSpeed = 5  // tiles per second after a reset
	maxSpeed     = 30 // speed cap, reached after eating enough food
)

// Game is the snake simulation. All fields are exclusively owned by the
// single caller thread; every operation is a synchronous state transition.
//
// The body is stored tail-first: parts[0] is the oldest segment, the last
// element is the head. The order is load-bearing for tail trimming and for
// the tail-growth heuristic.
type Game struct {
	state         State
	parts         []Position
	food          Position
	hasFood       bool
	lastMoveMS    int64
	speed         int
	width, height int
	pending       []Direction
	direction     Direction
	rng           *rand.Rand
}

// New creates a game on a width x height torus, seeded from the current
// time. Panics if either dimension is not positive.
func New(width, height int) *Game {
	return NewSeeded(width, height, time.Now().UnixNano())
}

// NewSeeded creates a game with a deterministic food-placement stream.
// The RNG is owned by the instance, never shared process-wide.
func NewSeeded(width, height int, seed int64) *Game {
	if width <= 0 || height <= 0 {
		panic("snake: grid dimensions must be positive")
	}
	g := &Game{
		width:  width,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.OnReset()
	return g
}

// Head returns the head cell. Panics on an empty body, which indicates a
// caller bug: the body is never empty after construction.
func (g *Game) Head() Position {
	if len(g.parts) == 0 {
		panic("snake: empty body")
	}
	return g.parts[len(g.parts)-1]
}

// Parts returns the body, ordered tail-first. The slice is owned by the
// game and must not be mutated by the caller.
func (g *Game) Parts() []Position {
	return g.parts
}

// Food returns the food cell and whether food is currently present.
// Food is absent only in the Start state, before the first unpause.
func (g *Game) Food() (Position, bool) {
	return g.food, g.hasFood
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Speed returns the current speed in tiles per second.
func (g *Game) Speed() int {
	return g.speed
}

// Width returns the grid width.
func (g *Game) Width() int {
	return g.width
}

// Height returns the grid height.
func (g *Game) Height() int {
	return g.height
}

// OnUpdate advances the simulation to the given timestamp. It is a no-op
// unless the game is Running. Timestamps must be non-decreasing across
// calls; a violation panics.
func (g *Game) OnUpdate(nowMS int64) {
	if g.state != StateRunning {
		return
	}

	switch g.move(nowMS) {
	case hitNone:
	case hitSnake:
		g.state = StateLoss
	case hitFood:
		g.state = g.consumeFood()
		if g.state == StateRunning {
			g.raiseSpeed()
		}
	}
}

// TryChangeDirection queues a turn request. Ignored outside the Running
// state and when the request repeats the direction that would be consumed
// next. A reversal of the committed direction is accepted here and
// discarded at consumption time instead (see popPending).
func (g *Game) TryChangeDirection(d Direction) {
	if g.state != StateRunning {
		return
	}
	if d == g.nextDirection() {
		return
	}
	g.pending = append(g.pending, d)
}

// OnTogglePause drives Start->Running, Paused->Running and Running->Paused.
// Leaving Start re-initializes the body and speed, places the first food and
// stamps the move clock; resuming from Paused re-stamps the clock so the
// pause interval does not convert into a burst of tile-steps.
// In Loss, Win and Quit the request has no effect.
func (g *Game) OnTogglePause(nowMS int64) {
	switch g.state {
	case StateStart:
		g.OnReset()
		g.food = g.placeFood()
		g.hasFood = true
		g.lastMoveMS = nowMS
		g.state = StateRunning
	case StatePaused:
		g.lastMoveMS = nowMS
		g.state = StateRunning
	case StateRunning:
		g.state = StatePaused
	}
}

// OnReset re-initializes the session from any state: single-segment body at
// the grid center, direction right, initial speed, no buffered turns, no
// food. Lifecycle goes to Start.
func (g *Game) OnReset() {
	g.state = StateStart
	g.lastMoveMS = 0
	g.speed = initialSpeed
	g.direction = DirRight
	g.pending = nil
	g.parts = []Position{{X: g.width / 2, Y: g.height / 2}}
	g.food = Position{}
	g.hasFood = false
}

// OnQuit resets the session and marks it Quit. Only a reset or a fresh
// construction leaves the Quit state.
func (g *Game) OnQuit() {
	g.OnReset()
	g.state = StateQuit
}

// move advances the head by however many whole tiles the elapsed time
// covers, trims the tail by the same count and reports what the head hit.
// A self-collision outranks a food hit within the same multi-tile move.
func (g *Game) move(nowMS int64) hitTarget {
	tiles := g.moveDelta(nowMS)
	if tiles == 0 {
		return hitNone
	}

	g.direction = g.popPending()
	g.lastMoveMS = nowMS

	hit := hitNone
	for i := 0; i < tiles; i++ {
		newHead := g.stepFrom(g.Head(), g.direction)
		g.parts = append(g.parts, newHead)

		// Skip the head just appended and the i+1 oldest tail cells:
		// those cells are vacated by this same move, so they are not
		// obstacles.
		switch {
		case g.isInsideSnake(newHead, 1, i+1):
			hit = hitSnake
		case hit != hitSnake && g.hasFood && newHead == g.food:
			hit = hitFood
		}
	}
	g.parts = g.parts[tiles:]

	return hit
}

// moveDelta converts elapsed time into whole tiles: round(speed*dt/1000).
// Rounding, not truncation, keeps the average rate exact across frames.
func (g *Game) moveDelta(nowMS int64) int {
	if nowMS < g.lastMoveMS {
		panic("snake: non-monotonic update timestamp")
	}
	dt := nowMS - g.lastMoveMS
	return int(math.Round(float64(g.speed) * float64(dt) / 1000))
}

// nextDirection is the direction the next committed move would use: the
// front of the queue, or the committed direction when nothing is buffered.
func (g *Game) nextDirection() Direction {
	if len(g.pending) == 0 {
		return g.direction
	}
	return g.pending[0]
}

// popPending consumes at most one buffered turn. A request that would
// reverse the committed direction is dropped here, keeping the committed
// direction for this move; it still used up its queue slot.
func (g *Game) popPending() Direction {
	if len(g.pending) == 0 {
		return g.direction
	}
	d := g.pending[0]
	g.pending = g.pending[1:]
	if d == g.direction.Opposite() {
		return g.direction
	}
	return d
}

// stepFrom returns the cell one tile from p in direction d, wrapping
// toroidally.
func (g *Game) stepFrom(p Position, d Direction) Position {
	return Position{
		X: wrap(p.X+d.DX, g.width),
		Y: wrap(p.Y+d.DY, g.height),
	}
}

// isInsideSnake reports whether p overlaps the body, ignoring skipHead
// segments at the head end and skipTail segments at the tail end.
func (g *Game) isInsideSnake(p Position, skipHead, skipTail int) bool {
	if skipHead+skipTail > len(g.parts) {
		panic("snake: skip window exceeds body length")
	}
	for _, seg := range g.parts[skipTail : len(g.parts)-skipHead] {
		if seg == p {
			return true
		}
	}
	return false
}

// consumeFood grows the tail by one cell and resolves the outcome: Loss if
// the grown body overlaps itself, Win if it now fills the grid, otherwise
// new food is placed and the game keeps Running.
func (g *Game) consumeFood() State {
	tail := g.growTail(g.direction)
	if g.isInsideSnake(tail, 0, 0) {
		return StateLoss
	}

	g.parts = append([]Position{tail}, g.parts...)
	if len(g.parts) == g.width*g.height {
		return StateWin
	}

	g.food = g.placeFood()
	return StateRunning
}

// growTail computes the cell for the new tail segment. The old tail cell
// was already vacated by the trim in move, so the new cell is projected one
// tile behind the former tail's direction of travel.
func (g *Game) growTail(current Direction) Position {
	tailDir := current
	if len(g.parts) >= 2 {
		tailDir = g.tailDirection(g.parts[1], g.parts[0])
	}
	oldTail := g.parts[0]
	newTail := g.stepFrom(oldTail, tailDir.Opposite())
	return g.resolveTailCrash(oldTail, newTail, tailDir)
}

// tailDirection recovers the travel direction of the tail from the two
// oldest body cells, accounting for wraparound. The cells must share a row
// or a column.
func (g *Game) tailDirection(beforeTail, tail Position) Direction {
	if beforeTail.X != tail.X && beforeTail.Y != tail.Y {
		panic("snake: tail cells are not colinear")
	}
	return Direction{
		DX: wrapDelta(beforeTail.X-tail.X, g.width),
		DY: wrapDelta(beforeTail.Y-tail.Y, g.height),
	}
}

// resolveTailCrash handles the naive backward projection landing on the
// body, which happens near the wrap edge when the snake almost encircles
// itself. The two directions perpendicular to the tail's travel axis are
// tried in a fixed order; if both are occupied too, the naive cell is
// returned and the caller treats the overlap as a Loss.
func (g *Game) resolveTailCrash(oldTail, newTail Position, tailDir Direction) Position {
	if !g.isInsideSnake(newTail, 0, 0) {
		return newTail
	}

	perp := [2]Direction{DirUp, DirDown}
	if tailDir.DY != 0 {
		perp = [2]Direction{DirLeft, DirRight}
	}
	for _, d := range perp {
		if p := g.stepFrom(oldTail, d); !g.isInsideSnake(p, 0, 0) {
			return p
		}
	}
	return newTail
}

// placeFood picks a uniformly random unoccupied cell by rejection sampling.
// Calling it with a full board would never terminate, so that is a panic;
// the Win check in consumeFood runs before placement for exactly this
// reason.
func (g *Game) placeFood() Position {
	if len(g.parts) >= g.width*g.height {
		panic("snake: no free cell left for food")
	}
	for {
		p := Position{X: g.rng.Intn(g.width), Y: g.rng.Intn(g.height)}
		if !g.isInsideSnake(p, 0, 0) {
			return p
		}
	}
}

// raiseSpeed bumps the speed by one tile per second, up to the cap.
func (g *Game) raiseSpeed() {
	if g.speed < maxSpeed {
		g.speed++
	}
}
