package chess

import "errors"

const (
	MinBoardSize = 1
	MaxBoardSize = 10
)

var (
	ErrBoardSizeOutOfRange = errors.New("board size out of range")
	ErrGameNotStarted      = errors.New("game not started")
	ErrGameAlreadyOver     = errors.New("game already over")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrEdgeAlreadyDrawn    = errors.New("edge already drawn")
	ErrRecordMismatch      = errors.New("move record does not match replay")
)
