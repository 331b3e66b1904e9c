package maze

// Kind is the static type of a tile.
type Kind uint8

const (
	Empty Kind = iota
	Wall
	Start
	End
)

// ParseKind maps a maze character to its Kind.
func ParseKind(r rune) (Kind, bool) {
	switch r {
	case '.':
		return Empty, true
	case '#':
		return Wall, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	default:
		return Empty, false
	}
}

// Glyph returns the character used for k in the text format.
func (k Kind) Glyph() byte {
	switch k {
	case Empty:
		return '.'
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return '?'
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Direction is the facing of a path when it arrives at a tile.
type Direction uint8

const (
	None Direction = iota
	North
	South
	East
	West
)

// directions is the fixed neighbour expansion order.
var directions = [4]Direction{North, South, East, West}

// Directions returns the four movement directions in expansion order.
func Directions() [4]Direction {
	return directions
}

// Delta returns the unit offset of one step in direction d.
func (d Direction) Delta() Position {
	switch d {
	case North:
		return Position{X: 0, Y: -1}
	case South:
		return Position{X: 0, Y: 1}
	case East:
		return Position{X: 1, Y: 0}
	case West:
		return Position{X: -1, Y: 0}
	default:
		return Position{}
	}
}

// Glyph returns the arrow drawn for a path tile facing d.
func (d Direction) Glyph() byte {
	switch d {
	case North:
		return '^'
	case South:
		return 'v'
	case East:
		return '>'
	case West:
		return '<'
	default:
		return '?'
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "none"
	}
}

// SearchState is the mutable per-tile bookkeeping of a search run.
type SearchState struct {
	Facing   Direction
	Reached  bool
	Cost     int // g: best known cost from the start, valid when Reached
	Estimate int // h: heuristic remaining cost to the end
	OnPath   bool
}

// Tile is one cell of a Grid.
type Tile struct {
	Kind  Kind
	Pos   Position
	State SearchState
}

// Glyph returns the rendered character for t. Path tiles other than the
// start and end show their facing arrow.
func (t *Tile) Glyph() byte {
	if t.State.OnPath && t.Kind != Start && t.Kind != End {
		return t.State.Facing.Glyph()
	}
	return t.Kind.Glyph()
}
