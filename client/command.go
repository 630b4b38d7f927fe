package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

type CommandKind int8

const (
	Place CommandKind = iota
	Undo
	NewGame
	Score
	Help
	Quit
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

const usage = `commands:
  h R C   draw the horizontal edge at row R, column C
  v R C   draw the vertical edge at row R, column C
  u       undo the last move
  n [N]   start a new game, optionally on an N x N board
  s       show the score
  ?       show this help
  q       quit`

type Command struct {
	Kind CommandKind
	Edge chess.Edge
	// BoardSize is zero when "n" is given without a size.
	BoardSize int
}

func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "h", "v":
		return parsePlace(name, args)
	case "u", "undo":
		return Command{Kind: Undo}, noArgs(name, args)
	case "s", "score":
		return Command{Kind: Score}, noArgs(name, args)
	case "?", "help":
		return Command{Kind: Help}, noArgs(name, args)
	case "q", "quit", "exit":
		return Command{Kind: Quit}, noArgs(name, args)
	case "n", "new":
		c := Command{Kind: NewGame}
		switch len(args) {
		case 0:
			return c, nil
		case 1:
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return Command{}, fmt.Errorf("%w: %s: %v", ErrBadArguments, name, err)
			}
			c.BoardSize = n
			return c, nil
		}
		return Command{}, fmt.Errorf("%w: %s takes at most one argument", ErrBadArguments, name)
	}

	return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func parsePlace(name string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, fmt.Errorf("%w: %s needs a row and a column", ErrBadArguments, name)
	}

	t, err := chess.ParseEdgeType(name)
	if err != nil {
		return Command{}, err
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return Command{}, fmt.Errorf("%w: row: %v", ErrBadArguments, err)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: column: %v", ErrBadArguments, err)
	}

	return Command{Kind: Place, Edge: chess.NewEdge(t, row, col)}, nil
}

func noArgs(name string, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: %s takes no arguments", ErrBadArguments, name)
	}
	return nil
}
