package moverecord

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameEndRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid      message.GameUid `bson:"gameUid"`
	StepCount    int             `bson:"stepCount"`
	Player1Score int             `bson:"player1Score"`
	Player2Score int             `bson:"player2Score"`
	Winner       string          `bson:"winner"`
}
