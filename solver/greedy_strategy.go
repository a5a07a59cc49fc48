package main

import (
	"log"
	"sort"
)

// GreedyStrategy finds linkable pairs locally so the solver does not
// have to round-trip a hint request for every move. It prefers close
// pairs: clearing near neighbors first keeps lanes open for the rest
// of the board.
type GreedyStrategy struct {
	pairsTested int
}

func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

type candidatePair struct {
	a, b Point
	dist int
}

// FindPair returns a pair of same-kind tiles joinable by an orthogonal
// path with at most two bends that crosses only empty cells.
func (s *GreedyStrategy) FindPair(state *GameState) (Point, Point, bool) {
	byKind := make(map[int][]Point)
	for _, row := range state.Grid {
		for _, cell := range row {
			if cell.Kind != 0 {
				byKind[cell.Kind] = append(byKind[cell.Kind], Point{Row: cell.Row, Col: cell.Col})
			}
		}
	}

	candidates := make([]candidatePair, 0)
	for _, positions := range byKind {
		for i := 0; i < len(positions); i++ {
			for j := i + 1; j < len(positions); j++ {
				candidates = append(candidates, candidatePair{
					a:    positions[i],
					b:    positions[j],
					dist: manhattanDistance(positions[i], positions[j]),
				})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	for _, cand := range candidates {
		s.pairsTested++
		if s.linkable(state, cand.a, cand.b) {
			return cand.a, cand.b, true
		}
	}

	log.Printf("No linkable pair among %d candidates", len(candidates))
	return Point{}, Point{}, false
}

var directions = []Point{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

type searchState struct {
	pos   Point
	dir   int
	bends int
}

// linkable runs a BFS over (position, heading, bends) states. A step
// either continues in the current heading or turns, spending one of
// the two allowed bends. Intermediate cells must be empty; only the
// goal cell may hold a tile.
func (s *GreedyStrategy) linkable(state *GameState, a, b Point) bool {
	best := make(map[Point][4]int)
	for r := 0; r < state.Rows; r++ {
		for c := 0; c < state.Columns; c++ {
			best[Point{Row: r, Col: c}] = [4]int{99, 99, 99, 99}
		}
	}

	queue := make([]searchState, 0, 16)
	for d, dir := range directions {
		next := Point{Row: a.Row + dir.Row, Col: a.Col + dir.Col}
		if !s.inBounds(state, next) {
			continue
		}
		if next == b {
			return true
		}
		if state.Grid[next.Row][next.Col].Kind == 0 {
			queue = append(queue, searchState{pos: next, dir: d, bends: 0})
			entry := best[next]
			entry[d] = 0
			best[next] = entry
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for d, dir := range directions {
			bends := cur.bends
			if d != cur.dir {
				bends++
			}
			if bends > 2 {
				continue
			}

			next := Point{Row: cur.pos.Row + dir.Row, Col: cur.pos.Col + dir.Col}
			if !s.inBounds(state, next) {
				continue
			}
			if next == b {
				return true
			}
			if state.Grid[next.Row][next.Col].Kind != 0 {
				continue
			}

			entry := best[next]
			if entry[d] <= bends {
				continue
			}
			entry[d] = bends
			best[next] = entry
			queue = append(queue, searchState{pos: next, dir: d, bends: bends})
		}
	}

	return false
}

func (s *GreedyStrategy) inBounds(state *GameState, p Point) bool {
	return p.Row >= 0 && p.Row < state.Rows && p.Col >= 0 && p.Col < state.Columns
}

func manhattanDistance(a, b Point) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
