package maze

import (
	"fmt"
	"strings"
)

// Grid is a rectangular, row-major array of tiles.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid of empty tiles with their positions filled in.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("maze: negative grid size %dx%d", width, height))
	}
	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for i := range g.tiles {
		g.tiles[i].Pos = Position{X: i % width, Y: i / width}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of tiles.
func (g *Grid) Len() int { return len(g.tiles) }

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its linear tile index.
func (g *Grid) Index(p Position) (int, bool) {
	if !g.Contains(p) {
		return 0, false
	}
	return p.Y*g.width + p.X, true
}

// At returns the tile at p.
func (g *Grid) At(p Position) (*Tile, error) {
	i, ok := g.Index(p)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return &g.tiles[i], nil
}

// Tile returns the tile with linear index i.
func (g *Grid) Tile(i int) (*Tile, error) {
	if i < 0 || i >= len(g.tiles) {
		return nil, fmt.Errorf("%w: index %d in %dx%d grid", ErrOutOfBounds, i, g.width, g.height)
	}
	return &g.tiles[i], nil
}

// Set changes the kind of the tile at p.
func (g *Grid) Set(p Position, kind Kind) error {
	t, err := g.At(p)
	if err != nil {
		return err
	}
	t.Kind = kind
	return nil
}

// Reset clears the search state of every tile.
func (g *Grid) Reset() {
	for i := range g.tiles {
		g.tiles[i].State = SearchState{}
	}
}

// Find returns the positions of all tiles of the given kind in row-major order.
func (g *Grid) Find(kind Kind) []Position {
	var found []Position
	for i := range g.tiles {
		if g.tiles[i].Kind == kind {
			found = append(found, g.tiles[i].Pos)
		}
	}
	return found
}

// Render draws the grid in the text format, marking path tiles with arrows.
// Every row, including the last, ends with a newline.
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(len(g.tiles) + g.height)
	for y := 0; y < g.height; y++ {
		row := g.tiles[y*g.width : (y+1)*g.width]
		for i := range row {
			sb.WriteByte(row[i].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Strip replaces path arrows in rendered maze text with empty floor,
// recovering the text the grid was parsed from.
func Strip(rendered string) string {
	return pathGlyphs.Replace(rendered)
}

var pathGlyphs = strings.NewReplacer("^", ".", "v", ".", ">", ".", "<", ".")
