package moverecord

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoveRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid      message.GameUid `bson:"gameUid"`
	Kind         string          `bson:"kind"`
	StepCount    int             `bson:"stepCount"`
	Player1Score int             `bson:"player1Score"`
	Player2Score int             `bson:"player2Score"`
	Mover        string          `bson:"mover"`
	NowPlayer    string          `bson:"nowPlayer"`
	MoveEdge     string          `bson:"moveEdge"`
	BoxesClosed  int             `bson:"boxesClosed"`
}
