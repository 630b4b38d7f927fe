package chess

type Turn int8

const (
	NoPlayer Turn = -1
	Player1  Turn = 0
	Player2  Turn = 1
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "Nobody"
}

// Other returns the opponent of t. NoPlayer has no opponent.
func (t Turn) Other() Turn {
	switch t {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

func (t *Turn) Change() { *t = t.Other() }

// Identity is how a renderer presents a player. The engine never reads it.
type Identity struct {
	Name   string `json:"name"`
	Marker string `json:"marker"`
	Color  string `json:"color"`
}

func DefaultIdentities() [2]Identity {
	return [...]Identity{
		{Name: "Player 1", Color: "#12C2E9"},
		{Name: "Player 2", Color: "#F72585"},
	}
}

type Player struct {
	Identity
	Score int `json:"score"`
}
