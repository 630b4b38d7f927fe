package chess

type EventKind int8

const (
	GameStarted EventKind = iota
	EdgePlaced
	MoveUndone
)

func (k EventKind) String() string {
	switch k {
	case GameStarted:
		return "GameStarted"
	case EdgePlaced:
		return "EdgePlaced"
	case MoveUndone:
		return "MoveUndone"
	}
	return ""
}

// MoveOutcome tells a renderer what a PlaceEdge or Undo changed. For an undo,
// BoxesClosed lists the boxes that were released.
type MoveOutcome struct {
	Edge        Edge    `json:"edge"`
	Player      Turn    `json:"player"`
	BoxesClosed []Box   `json:"boxesClosed"`
	TurnPassed  bool    `json:"turnPassed"`
	NowPlayer   Turn    `json:"nowPlayer"`
	Scores      [2]int  `json:"scores"`
	GameOver    bool    `json:"gameOver"`
	Verdict     Verdict `json:"verdict"`
	Undo        bool    `json:"undo"`
}

type Event struct {
	Kind    EventKind
	Outcome MoveOutcome
	State   State
}

// Observer is called synchronously after every state change.
type Observer func(Event)

// State is a deep copy of the engine, safe to keep after further moves.
type State struct {
	BoardSize  int       `json:"boardSize"`
	Horizontal [][]Turn  `json:"horizontal"`
	Vertical   [][]Turn  `json:"vertical"`
	BoxOwners  [][]Turn  `json:"boxOwners"`
	NowPlayer  Turn      `json:"nowPlayer"`
	Players    [2]Player `json:"players"`
	Step       int       `json:"step"`
	GameOver   bool      `json:"gameOver"`
}

func (s State) Scores() [2]int {
	return [...]int{s.Players[Player1].Score, s.Players[Player2].Score}
}

func (s State) Edge(e Edge) Turn {
	if !e.Valid(s.BoardSize) {
		return NoPlayer
	}
	if e.Type == Horizontal {
		return s.Horizontal[e.Row][e.Col]
	}
	return s.Vertical[e.Row][e.Col]
}

func (s State) Box(b Box) Turn {
	if b.Row < 0 || b.Col < 0 || b.Row >= len(s.BoxOwners) || b.Col >= len(s.BoxOwners[b.Row]) {
		return NoPlayer
	}
	return s.BoxOwners[b.Row][b.Col]
}
