package engine

// CountKinds returns the occupancy count per non-Empty kind for a snapshot
// grid, as produced by GameState.Grid.
func CountKinds(grid [][]Cell) map[TileKind]int {
	counts := make(map[TileKind]int)
	for _, row := range grid {
		for _, cell := range row {
			if cell.Kind != Empty {
				counts[cell.Kind]++
			}
		}
	}
	return counts
}

// ActiveTileCount counts the non-Empty cells in a snapshot grid.
func ActiveTileCount(grid [][]Cell) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell.Kind != Empty {
				count++
			}
		}
	}
	return count
}

// PairedOccupancy reports whether every kind present in the snapshot occurs
// an even number of times.
func PairedOccupancy(grid [][]Cell) bool {
	for _, count := range CountKinds(grid) {
		if count%2 != 0 {
			return false
		}
	}
	return true
}
