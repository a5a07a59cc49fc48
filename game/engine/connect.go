package engine

// The connectivity search answers whether two tiles can be linked by a path
// that bends at most twice and crosses only Empty cells. It is stateless: it
// reads the grid and never mutates it.
//
// The search tries, in order: a direct line, a single corner at (a.row,b.col)
// then (b.row,a.col), then a two-turn detour through every candidate column
// and finally every candidate row. The first match wins; order only affects
// which path is returned, not whether one exists.

// CanConnect reports whether a and b hold the same non-Empty kind and a
// connecting path with at most two bends exists between them.
func CanConnect(g *Grid, a, b Point) bool {
	_, ok := FindPath(g, a, b)
	return ok
}

// FindPath returns a connecting path between a and b, present exactly when
// CanConnect is true. The path starts at a and ends at b; interior points are
// the bend corners.
func FindPath(g *Grid, a, b Point) (Path, bool) {
	ca, okA := g.Get(a.Row, a.Col)
	cb, okB := g.Get(b.Row, b.Col)
	if !okA || !okB || a == b {
		return nil, false
	}
	if ca.Kind == Empty || ca.Kind != cb.Kind {
		return nil, false
	}

	// Case 1: direct line.
	if segmentClear(g, a, b) {
		return Path{a, b}, true
	}

	// Case 2: one turn through either corner. A corner coinciding with an
	// endpoint is rejected by the Empty check since endpoints hold tiles.
	for _, corner := range [2]Point{{Row: a.Row, Col: b.Col}, {Row: b.Row, Col: a.Col}} {
		if emptyAt(g, corner) && segmentClear(g, a, corner) && segmentClear(g, corner, b) {
			return Path{a, corner, b}, true
		}
	}

	// Case 3: two turns through a detour column, then a detour row.
	for c := 0; c < g.Cols(); c++ {
		if c == a.Col || c == b.Col {
			continue
		}
		m1 := Point{Row: a.Row, Col: c}
		m2 := Point{Row: b.Row, Col: c}
		if emptyAt(g, m1) && emptyAt(g, m2) &&
			segmentClear(g, a, m1) && segmentClear(g, m1, m2) && segmentClear(g, m2, b) {
			return Path{a, m1, m2, b}, true
		}
	}
	for r := 0; r < g.Rows(); r++ {
		if r == a.Row || r == b.Row {
			continue
		}
		m1 := Point{Row: r, Col: a.Col}
		m2 := Point{Row: r, Col: b.Col}
		if emptyAt(g, m1) && emptyAt(g, m2) &&
			segmentClear(g, a, m1) && segmentClear(g, m1, m2) && segmentClear(g, m2, b) {
			return Path{a, m1, m2, b}, true
		}
	}

	return nil, false
}

// segmentClear reports whether every cell strictly between p and q along
// their shared row or column is Empty. The endpoints themselves are excluded
// from the check. Points that share neither axis are never clear.
func segmentClear(g *Grid, p, q Point) bool {
	switch {
	case p.Row == q.Row:
		lo, hi := p.Col, q.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		for c := lo + 1; c < hi; c++ {
			if !emptyAt(g, Point{Row: p.Row, Col: c}) {
				return false
			}
		}
		return true
	case p.Col == q.Col:
		lo, hi := p.Row, q.Row
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo + 1; r < hi; r++ {
			if !emptyAt(g, Point{Row: r, Col: p.Col}) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func emptyAt(g *Grid, p Point) bool {
	cell, ok := g.Get(p.Row, p.Col)
	return ok && cell.Kind == Empty
}
