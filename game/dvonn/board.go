// Package dvonn implements the hex-grid stacking game Dvonn against the
// engine's game contract.
//
// The hexagonal board is stored as a 5x11 grid using axial coordinates
// projected onto rows and columns, with the three out-of-play corners on
// each side marked Null. Moving along a row is one hex axis; the other two
// axes run diagonally through neighbouring rows.
// See http://www.redblobgames.com/grids/hexagons/ for the coordinate scheme.
package dvonn

const (
	numRows = 5
	numCols = 11
)

// Owner identifies what controls a cell: the colour of the ring on top of
// its stack, or one of the two non-stack markers.
type Owner int

const (
	Empty Owner = iota
	White
	Black
	Dvonn // a red dvonn ring is on top
	Null  // cell is outside the hexagonal board
)

// Pos is a grid coordinate. Row 0..4, Col 0..10.
type Pos struct {
	Row int
	Col int
}

// neighbourDeltas are the six hex directions expressed as grid deltas.
var neighbourDeltas = [6]Pos{
	{-1, 0}, {-1, 1}, {0, 1}, {0, -1}, {1, 0}, {1, -1},
}

// neighbours returns the six positions dist cells away in each hex
// direction. Positions may lie off the board.
func neighbours(p Pos, dist int) [6]Pos {
	var around [6]Pos
	for i, d := range neighbourDeltas {
		around[i] = Pos{Row: p.Row + dist*d.Row, Col: p.Col + dist*d.Col}
	}
	return around
}

// Cell is one tile of the board. A cell holds a stack of rings; the Owner is
// the colour on top.
type Cell struct {
	WhiteRings int
	BlackRings int
	DvonnRings int
	Owner      Owner
}

// Rings returns the full stack height.
func (c Cell) Rings() int {
	return c.WhiteRings + c.BlackRings + c.DvonnRings
}

// HasDvonnRing reports whether a red ring is anywhere in the stack. Stacks
// must stay connected to one to remain in play.
func (c Cell) HasDvonnRing() bool {
	return c.DvonnRings > 0
}

// Occupied reports whether at least one ring is on the cell.
func (c Cell) Occupied() bool {
	return c.Owner == White || c.Owner == Black || c.Owner == Dvonn
}

// OwnedBy reports whether the cell's stack belongs to player (0 white,
// 1 black).
func (c Cell) OwnedBy(player int) bool {
	if player == 0 {
		return c.Owner == White
	}
	return c.Owner == Black
}

// Board is the hexagonal grid.
type Board struct {
	Grid [numRows][numCols]Cell

	RemovedWhiteRings int
	RemovedBlackRings int
}

// NewBoard returns an empty board with the out-of-play corners nulled.
func NewBoard() Board {
	var b Board
	for _, p := range [...]Pos{{0, 0}, {0, 1}, {1, 0}, {3, 10}, {4, 9}, {4, 10}} {
		b.Grid[p.Row][p.Col].Owner = Null
	}
	return b
}

// OnBoard reports whether p is a valid grid position.
func (b *Board) OnBoard(p Pos) bool {
	return p.Row >= 0 && p.Row < numRows && p.Col >= 0 && p.Col < numCols
}

// Surrounded reports whether every immediate neighbour of p carries a ring.
// Edge cells are never surrounded.
func (b *Board) Surrounded(p Pos) bool {
	for _, n := range neighbours(p, 1) {
		if !b.OnBoard(n) || !b.Grid[n.Row][n.Col].Occupied() {
			return false
		}
	}
	return true
}

// RemoveIsolatedRings clears every connected component of stacks that has no
// path of occupied cells to a dvonn ring. Runs after every move; a dvonn
// ring is always in contact with itself, so those stacks never leave play.
func (b *Board) RemoveIsolatedRings() {
	var visited [numRows][numCols]bool
	for row := range b.Grid {
		for col := range b.Grid[row] {
			p := Pos{Row: row, Col: col}
			if b.Grid[row][col].Occupied() && !visited[row][col] {
				if b.isolatedComponent(p, &visited) {
					b.removeComponent(p)
				}
			}
		}
	}
}

// isolatedComponent walks the occupied component containing p and reports
// whether none of its cells holds a dvonn ring.
func (b *Board) isolatedComponent(p Pos, visited *[numRows][numCols]bool) bool {
	visited[p.Row][p.Col] = true
	isolated := !b.Grid[p.Row][p.Col].HasDvonnRing()

	for _, n := range neighbours(p, 1) {
		if !b.OnBoard(n) || visited[n.Row][n.Col] {
			continue
		}
		if b.Grid[n.Row][n.Col].Occupied() {
			if !b.isolatedComponent(n, visited) {
				isolated = false
			}
		}
	}
	return isolated
}

func (b *Board) removeComponent(p Pos) {
	cell := &b.Grid[p.Row][p.Col]
	b.RemovedWhiteRings += cell.WhiteRings
	b.RemovedBlackRings += cell.BlackRings
	*cell = Cell{}

	for _, n := range neighbours(p, 1) {
		if b.OnBoard(n) && b.Grid[n.Row][n.Col].Occupied() {
			b.removeComponent(n)
		}
	}
}
