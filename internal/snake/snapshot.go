package snake

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	State    State
	BodyLen  int
	Head     Position
	Dir      Direction
	Food     Position
	HasFood  bool
	Speed    int
	LastMove int64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:    g.state,
		BodyLen:  len(g.parts),
		Head:     g.Head(),
		Dir:      g.direction,
		Food:     g.food,
		HasFood:  g.hasFood,
		Speed:    g.speed,
		LastMove: g.lastMoveMS,
	}
}
