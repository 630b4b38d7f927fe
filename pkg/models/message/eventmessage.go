package message

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// EventMessage is the journal form of a chess.Event.
type EventMessage struct {
	TimeStamp
	GameUid
	Kind        string
	BoardSize   int
	StepCount   int
	Players     [2]chess.Identity
	MoveEdge    string
	Mover       string
	BoxesClosed []chess.Box
	NowPlayer   string
	Scores      [2]int
	GameOver    bool
	Winner      string
}

func NewEventMessage(uid GameUid, e chess.Event) EventMessage {
	m := EventMessage{
		TimeStamp:   NewTimeStamp(time.Now()),
		GameUid:     uid,
		Kind:        e.Kind.String(),
		BoardSize:   e.State.BoardSize,
		StepCount:   e.State.Step,
		Players:     [...]chess.Identity{e.State.Players[chess.Player1].Identity, e.State.Players[chess.Player2].Identity},
		BoxesClosed: e.Outcome.BoxesClosed,
		NowPlayer:   e.Outcome.NowPlayer.String(),
		Scores:      e.Outcome.Scores,
		GameOver:    e.Outcome.GameOver,
	}

	if e.Kind != chess.GameStarted {
		m.MoveEdge = e.Outcome.Edge.String()
		m.Mover = e.Outcome.Player.String()
	}

	if e.Outcome.GameOver {
		m.Winner = e.Outcome.Verdict.String()
	}
	return m
}

func ParseEventMessage(str string) (m EventMessage, err error) {
	err = sonic.UnmarshalString(str, &m)
	return
}

func (m EventMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
