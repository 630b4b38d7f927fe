package moverecord

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/mon"
)

const (
	GameStartRecordCollectionName = "game_start_record"
	MoveRecordCollectionName      = "move_record"
	GameEndRecordCollectionName   = "game_end_record"
)

// Model writes journal documents to one collection per document kind.
type Model struct {
	gameStart *mon.Model
	move      *mon.Model
	gameEnd   *mon.Model
}

func NewModel(url, db string) (*Model, error) {
	gameStart, err := mon.NewModel(url, db, GameStartRecordCollectionName)
	if err != nil {
		return nil, err
	}

	move, err := mon.NewModel(url, db, MoveRecordCollectionName)
	if err != nil {
		return nil, err
	}

	gameEnd, err := mon.NewModel(url, db, GameEndRecordCollectionName)
	if err != nil {
		return nil, err
	}

	return &Model{
		gameStart: gameStart,
		move:      move,
		gameEnd:   gameEnd,
	}, nil
}

func (m *Model) collection(doc any) *mon.Model {
	switch doc.(type) {
	case *GameStartRecord:
		return m.gameStart
	case *GameEndRecord:
		return m.gameEnd
	}
	return m.move
}

func (m *Model) Insert(ctx context.Context, docs ...any) error {
	for _, doc := range docs {
		if _, err := m.collection(doc).InsertOne(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
