package moverecord

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
)

// FromMessage turns one journal message into the documents it produces. A
// move that ends the game yields both a MoveRecord and a GameEndRecord.
func FromMessage(m message.EventMessage) (docs []any) {
	now := time.Now()
	createAt, err := m.TimeStamp.Time()
	if err != nil {
		createAt = now
	}

	if m.Kind == chess.GameStarted.String() {
		return []any{&GameStartRecord{
			UpdateAt:    now,
			CreateAt:    createAt,
			GameUid:     m.GameUid,
			BoardSize:   m.BoardSize,
			Player1Name: m.Players[chess.Player1].Name,
			Player2Name: m.Players[chess.Player2].Name,
		}}
	}

	docs = append(docs, &MoveRecord{
		UpdateAt:     now,
		CreateAt:     createAt,
		GameUid:      m.GameUid,
		Kind:         m.Kind,
		StepCount:    m.StepCount,
		Player1Score: m.Scores[chess.Player1],
		Player2Score: m.Scores[chess.Player2],
		Mover:        m.Mover,
		NowPlayer:    m.NowPlayer,
		MoveEdge:     m.MoveEdge,
		BoxesClosed:  len(m.BoxesClosed),
	})

	if m.GameOver {
		docs = append(docs, &GameEndRecord{
			UpdateAt:     now,
			CreateAt:     createAt,
			GameUid:      m.GameUid,
			StepCount:    m.StepCount,
			Player1Score: m.Scores[chess.Player1],
			Player2Score: m.Scores[chess.Player2],
			Winner:       m.Winner,
		})
	}
	return
}
