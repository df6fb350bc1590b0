package domain

// Mode represents the game variant a round was played in
type Mode string

const (
	// ModePassthrough lets the snake wrap through walls
	ModePassthrough Mode = "passthrough"
	// ModeWalls ends the game on wall collision
	ModeWalls Mode = "walls"
)

// Valid reports whether the mode is one of the two known variants
func (m Mode) Valid() bool {
	return m == ModePassthrough || m == ModeWalls
}

// PlayerStatus represents the state of an in-progress game session
type PlayerStatus string

const (
	StatusIdle     PlayerStatus = "idle"
	StatusPlaying  PlayerStatus = "playing"
	StatusPaused   PlayerStatus = "paused"
	StatusGameOver PlayerStatus = "gameover"
)

// Position is a cell on the game grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LivePlayer is a snapshot of an in-progress game session. Snapshots are
// seeded once at startup and served verbatim; nothing updates them.
type LivePlayer struct {
	ID       string       `json:"id"`
	Username string       `json:"username"`
	Score    int          `json:"score"`
	Mode     Mode         `json:"mode"`
	Snake    []Position   `json:"snake"` // head first
	Food     Position     `json:"food"`
	Status   PlayerStatus `json:"status"`
}
