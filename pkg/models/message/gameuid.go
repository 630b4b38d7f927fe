package message

import (
	"fmt"

	"github.com/google/uuid"
)

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func (g GameUid) ListKey() string {
	return fmt.Sprintf("Journal-%s", g)
}

func (g GameUid) LockName() string {
	return fmt.Sprintf("Journal-%s-Lock", g)
}
