package moverecord

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid     message.GameUid `bson:"gameUid"`
	BoardSize   int             `bson:"boardSize"`
	Player1Name string          `bson:"player1Name"`
	Player2Name string          `bson:"player2Name"`
}
