package engine

import "math/rand"

// Grid owns the rectangular array of cells. Dimensions are fixed at
// construction; cells are never reallocated, only their Kind changes.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid builds a rows x cols grid populated with tile pairs. It computes
// pairs = floor(rows*cols/2), fills a pool by cycling the kind index and
// pushing each kind twice, permutes the pool with a Fisher-Yates shuffle on
// the provided RNG, and assigns the pool in row-major order. When rows*cols
// is odd the trailing cell stays Empty.
func NewGrid(rows, cols, kinds int, rng *rand.Rand) *Grid {
	pairs := rows * cols / 2
	pool := make([]TileKind, 0, pairs*2)
	for i := 0; i < pairs; i++ {
		kind := TileKind(i%kinds + 1)
		pool = append(pool, kind, kind)
	}
	shuffleKinds(pool, rng)

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
	}
	idx := 0
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			kind := Empty
			if idx < len(pool) {
				kind = pool[idx]
				idx++
			}
			g.cells[r][c] = Cell{Row: r, Col: c, Kind: kind}
		}
	}
	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// Get returns the cell at row,col. Out-of-range coordinates return ok=false;
// they are not an error.
func (g *Grid) Get(row, col int) (Cell, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// Clear sets the cell's kind to Empty. Idempotent; out-of-range coordinates
// are ignored.
func (g *Grid) Clear(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return
	}
	g.cells[row][col].Kind = Empty
}

// IsEmpty reports whether every cell is Empty.
func (g *Grid) IsEmpty() bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].Kind != Empty {
				return false
			}
		}
	}
	return true
}

// ActiveCells returns all non-Empty cells in row-major order. The returned
// slice is a snapshot and safe to iterate while the grid is not mutated.
func (g *Grid) ActiveCells() []Cell {
	var active []Cell
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].Kind != Empty {
				active = append(active, g.cells[r][c])
			}
		}
	}
	return active
}

// ActiveCount returns the number of non-Empty cells.
func (g *Grid) ActiveCount() int {
	count := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].Kind != Empty {
				count++
			}
		}
	}
	return count
}

// CountByKind returns the occupancy count per non-Empty kind.
func (g *Grid) CountByKind() map[TileKind]int {
	counts := make(map[TileKind]int)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if kind := g.cells[r][c].Kind; kind != Empty {
				counts[kind]++
			}
		}
	}
	return counts
}

// Snapshot returns a deep copy of the cell array.
func (g *Grid) Snapshot() [][]Cell {
	snapshot := make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		snapshot[r] = make([]Cell, g.cols)
		copy(snapshot[r], g.cells[r])
	}
	return snapshot
}

// ShuffleRemaining redistributes the surviving tiles into the grid's
// row-major prefix: it collects the kind of every non-Empty cell in row-major
// order while clearing it, shuffles the collected kinds, and deals them back
// sequentially from cell (0,0) onward. Cells beyond the dealt prefix stay
// Empty. It returns the number of tiles redistributed.
func (g *Grid) ShuffleRemaining(rng *rand.Rand) int {
	var kinds []TileKind
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].Kind != Empty {
				kinds = append(kinds, g.cells[r][c].Kind)
				g.cells[r][c].Kind = Empty
			}
		}
	}
	shuffleKinds(kinds, rng)

	idx := 0
	for r := 0; r < g.rows && idx < len(kinds); r++ {
		for c := 0; c < g.cols && idx < len(kinds); c++ {
			g.cells[r][c].Kind = kinds[idx]
			idx++
		}
	}
	return len(kinds)
}

// shuffleKinds is an in-place Fisher-Yates shuffle.
func shuffleKinds(kinds []TileKind, rng *rand.Rand) {
	for i := len(kinds) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}
}
