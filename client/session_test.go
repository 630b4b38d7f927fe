package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

func TestSessionRun(t *testing.T) {
	var out bytes.Buffer
	g := chess.NewGame()
	s := NewSession(g, 3, chess.DefaultIdentities(), &out)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}

	script := strings.Join([]string{
		"h 0 0",
		"h 0 0",
		"",
		"u",
		"u",
		"v 9 9",
		"bogus",
		"n 2",
		"h 0 1",
		"s",
		"q",
		"h 1 0",
	}, "\n")

	if err := s.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	for _, want := range []string{
		"can not draw h(0, 0)",
		"nothing to undo",
		"can not draw v(9, 9)",
		"unknown command: bogus",
		"Player 1: 0, Player 2: 0, step 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output is missing %q:\n%s", want, text)
		}
	}

	if g.Board.BoardSize != 2 {
		t.Errorf("BoardSize = %d, want 2", g.Board.BoardSize)
	}
	if g.StepCount() != 1 {
		t.Errorf("StepCount = %d, want 1", g.StepCount())
	}
}

func TestSessionClampsNewBoardSize(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(chess.NewGame(), 5, chess.DefaultIdentities(), &out)

	if s.Execute(Command{Kind: NewGame, BoardSize: 50}) {
		t.Fatal("new game must not quit")
	}
	if s.BoardSize != chess.MaxBoardSize || s.Game.Board.BoardSize != chess.MaxBoardSize {
		t.Fatalf("expected board size %d, got %d", chess.MaxBoardSize, s.BoardSize)
	}
	if !s.Execute(Command{Kind: Quit}) {
		t.Fatal("quit must end the session")
	}
}
