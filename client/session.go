package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/HuXin0817/dots-and-boxes-engine/client/internal/config"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

// Session feeds parsed commands into a game and reports what the engine
// refused. The board itself is drawn by the game's observers.
type Session struct {
	Game       *chess.Game
	BoardSize  int
	Identities [2]chess.Identity
	out        io.Writer
}

func NewSession(game *chess.Game, boardSize int, identities [2]chess.Identity, out io.Writer) *Session {
	return &Session{
		Game:       game,
		BoardSize:  boardSize,
		Identities: identities,
		out:        out,
	}
}

func (s *Session) Start() error {
	return s.Game.Initialize(s.BoardSize, s.Identities)
}

// Execute runs one command and reports whether the session should end.
func (s *Session) Execute(c Command) (quit bool) {
	switch c.Kind {
	case Place:
		if _, err := s.Game.PlaceEdge(c.Edge); err != nil {
			s.printf("can not draw %s: %v\n", c.Edge, err)
		}
	case Undo:
		if _, ok := s.Game.Undo(); !ok {
			s.printf("nothing to undo\n")
		}
	case NewGame:
		if c.BoardSize != 0 {
			s.BoardSize = config.ClampBoardSize(c.BoardSize)
		}
		if err := s.Start(); err != nil {
			s.printf("can not start a new game: %v\n", err)
		}
	case Score:
		scores := s.Game.Scores()
		s.printf("%s: %d, %s: %d, step %d\n",
			s.Identities[chess.Player1].Name, scores[chess.Player1],
			s.Identities[chess.Player2].Name, scores[chess.Player2],
			s.Game.StepCount())
	case Help:
		s.printf("%s\n", usage)
	case Quit:
		return true
	}
	return false
}

// Run reads commands line by line until quit or end of input.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		c, err := ParseCommand(scanner.Text())
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			s.printf("%v, type ? for help\n", err)
			continue
		}

		if s.Execute(c) {
			return nil
		}
	}
	return scanner.Err()
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
