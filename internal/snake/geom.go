package snake

// Position is a cell on the toroidal grid. Compared by value.
type Position struct {
	X, Y int
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// Cardinal directions.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// wrap folds a coordinate back onto [0, limit). Stepping past either
// edge re-enters from the opposite one.
func wrap(v, limit int) int {
	if v < 0 {
		return limit - 1
	}
	if v >= limit {
		return v % limit
	}
	return v
}

// wrapDelta normalizes the difference between two adjacent coordinates to a
// unit step. A difference of limit-1 means the pair straddles the wrap edge,
// so the actual step is -1 (and vice versa).
func wrapDelta(ds, limit int) int {
	switch ds {
	case limit - 1:
		ds = -1
	case -(limit - 1):
		ds = 1
	}
	if ds < -1 || ds > 1 {
		panic("snake: cells are not adjacent on the torus")
	}
	return ds
}
