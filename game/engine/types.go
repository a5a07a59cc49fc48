package engine

// TileKind identifies the matchable category of a tile. Zero is the Empty
// kind, which is never matchable.
type TileKind int

// Empty marks a cell with no tile on it.
const Empty TileKind = 0

const (
	// Validation constants
	MinGridDim   = 1
	MaxGridDim   = 50
	MinTileKinds = 1
	MaxTileKinds = 64

	// MaxShuffleAttempts bounds how many reshuffles the engine tries when
	// resolving a deadlock before giving up and reporting it.
	MaxShuffleAttempts = 16

	WebSocketBufferSize = 256
)

// Cell is a fixed grid coordinate holding a mutable tile kind. Cells never
// move after grid creation; only Kind changes.
type Cell struct {
	Row  int      `json:"row"`
	Col  int      `json:"col"`
	Kind TileKind `json:"kind"`
}

// Point is a row,col grid coordinate.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Path is an ordered sequence of waypoints describing a connection between
// two tiles. Consecutive points are axis-aligned and the path has at most
// two interior bends (three straight segments).
type Path []Point

// Bends returns the number of direction changes along the path.
func (p Path) Bends() int {
	bends := 0
	for i := 1; i < len(p)-1; i++ {
		prev := p[i-1]
		curr := p[i]
		next := p[i+1]
		sameRow := prev.Row == curr.Row && curr.Row == next.Row
		sameCol := prev.Col == curr.Col && curr.Col == next.Col
		if !sameRow && !sameCol {
			bends++
		}
	}
	return bends
}

// GameConfig describes a board: its dimensions, how many distinct tile kinds
// are dealt, and an optional RNG seed for reproducible games. A zero seed
// means "seed from the clock".
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
	TileKinds   int    `json:"tile_kinds"`
	Seed        int64  `json:"seed,omitempty"`
	Messages    struct {
		Welcome  string `json:"welcome"`
		Matched  string `json:"matched"`
		Mismatch string `json:"mismatch"`
		Shuffled string `json:"shuffled"`
		Deadlock string `json:"deadlock"`
		Complete string `json:"complete"`
	} `json:"messages"`
}

// MatchRecord describes one resolved pair removal.
type MatchRecord struct {
	A     Point    `json:"a"`
	B     Point    `json:"b"`
	Kind  TileKind `json:"kind"`
	Path  Path     `json:"path"`
	Bends int      `json:"bends"`
}

// GameState is a snapshot of the complete game state, safe to serialize and
// hand to renderers and transports.
type GameState struct {
	Grid      [][]Cell `json:"grid"`
	Rows      int      `json:"rows"`
	Columns   int      `json:"columns"`
	TileKinds int      `json:"tile_kinds"`
	Remaining int      `json:"remaining"`
	Complete  bool     `json:"complete"`
	Armed     *Point   `json:"armed,omitempty"`
	Resolving bool     `json:"resolving,omitempty"`
	Message   string   `json:"message,omitempty"`

	ConfigName string `json:"config_name"`

	// MatchHistory is cumulative across restarts. CurrentMatches mirrors it
	// but gets cleared on restart.
	MatchHistory      []MatchRecord `json:"match_history"`
	TotalMatches      int           `json:"total_matches"`
	CurrentMatches    []MatchRecord `json:"current_matches"`
	CurrentMatchCount int           `json:"current_match_count"`
	ShufflesThisGame  int           `json:"shuffles_this_game"`
}
