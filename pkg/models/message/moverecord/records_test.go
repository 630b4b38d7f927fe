package moverecord

import (
	"testing"
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
)

func TestFromMessage(t *testing.T) {
	uid := message.NewGameUid()
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)
	ts := message.NewTimeStamp(created)

	start := FromMessage(message.EventMessage{
		TimeStamp: ts,
		GameUid:   uid,
		Kind:      chess.GameStarted.String(),
		BoardSize: 3,
		Players:   chess.DefaultIdentities(),
	})
	if len(start) != 1 {
		t.Fatalf("expected one document, got %d", len(start))
	}
	startRecord, ok := start[0].(*GameStartRecord)
	if !ok || startRecord.BoardSize != 3 || startRecord.Player2Name != "Player 2" || startRecord.GameUid != uid {
		t.Fatalf("unexpected start record %+v", start[0])
	}
	if !startRecord.CreateAt.Equal(created) {
		t.Fatalf("expected create time from message, got %v", startRecord.CreateAt)
	}

	move := FromMessage(message.EventMessage{
		TimeStamp:   ts,
		GameUid:     uid,
		Kind:        chess.EdgePlaced.String(),
		StepCount:   7,
		MoveEdge:    "h(1, 1)",
		Mover:       "Player1",
		NowPlayer:   "Player1",
		BoxesClosed: []chess.Box{{Row: 0, Col: 1}},
		Scores:      [2]int{1, 0},
	})
	if len(move) != 1 {
		t.Fatalf("expected one document, got %d", len(move))
	}
	if r, ok := move[0].(*MoveRecord); !ok || r.BoxesClosed != 1 || r.Player1Score != 1 || r.MoveEdge != "h(1, 1)" {
		t.Fatalf("unexpected move record %+v", move[0])
	}

	end := FromMessage(message.EventMessage{
		GameUid:  uid,
		Kind:     chess.EdgePlaced.String(),
		Scores:   [2]int{0, 1},
		GameOver: true,
		Winner:   chess.Player2Win.String(),
	})
	if len(end) != 2 {
		t.Fatalf("expected move and end documents, got %d", len(end))
	}
	if r, ok := end[1].(*GameEndRecord); !ok || r.Winner != "Player2 Win!" || r.CreateAt.IsZero() {
		t.Fatalf("unexpected end record %+v", end[1])
	}
}

func TestModelPicksCollection(t *testing.T) {
	m := &Model{gameStart: new(mon.Model), move: new(mon.Model), gameEnd: new(mon.Model)}
	if m.collection(&GameStartRecord{}) != m.gameStart {
		t.Fatal("start record routed to the wrong collection")
	}
	if m.collection(&MoveRecord{}) != m.move {
		t.Fatal("move record routed to the wrong collection")
	}
	if m.collection(&GameEndRecord{}) != m.gameEnd {
		t.Fatal("end record routed to the wrong collection")
	}
}
