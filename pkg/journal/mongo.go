package journal

import (
	"context"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message/moverecord"
)

type recordInserter interface {
	Insert(ctx context.Context, docs ...any) error
}

// MongoSink stores game start, move and game end documents.
type MongoSink struct {
	model recordInserter
}

func NewMongoSink(url, db string) (*MongoSink, error) {
	m, err := moverecord.NewModel(url, db)
	if err != nil {
		return nil, err
	}
	return &MongoSink{model: m}, nil
}

func (s *MongoSink) Push(ctx context.Context, messages ...message.EventMessage) error {
	for _, m := range messages {
		if err := s.model.Insert(ctx, moverecord.FromMessage(m)...); err != nil {
			return err
		}
	}
	return nil
}
