package chess

import (
	"fmt"
	"slices"

	"github.com/zeromicro/go-zero/core/logx"
)

// Game is one dots-and-boxes session. It is not safe for concurrent use:
// every call runs to completion before the next one starts.
type Game struct {
	Board
	Players   [2]Player
	NowPlayer Turn

	started   bool
	over      bool
	history   history
	observers []Observer
}

// NewGame returns a game waiting for Initialize.
func NewGame(observers ...Observer) *Game {
	return &Game{
		NowPlayer: NoPlayer,
		observers: observers,
	}
}

// Observe adds o to the observers notified after every state change.
func (g *Game) Observe(o Observer) { g.observers = append(g.observers, o) }

func (g *Game) notify(kind EventKind, outcome MoveOutcome) {
	if len(g.observers) == 0 {
		return
	}
	e := Event{Kind: kind, Outcome: outcome, State: g.State()}
	for _, o := range g.observers {
		o(e)
	}
}

// Initialize starts a new game, discarding any previous one. An out of range
// size leaves the engine as it was.
func (g *Game) Initialize(BoardSize int, players [2]Identity) error {
	if BoardSize < MinBoardSize || BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrBoardSizeOutOfRange, BoardSize, MinBoardSize, MaxBoardSize)
	}

	g.Board = NewBoard(BoardSize)
	g.Players = [...]Player{{Identity: players[0]}, {Identity: players[1]}}
	g.NowPlayer = Player1
	g.started = true
	g.over = false
	g.history.clear()

	logx.Infof("Game Start! BoardSize: %d", BoardSize)
	g.notify(GameStarted, g.outcome(MoveOutcome{Player: NoPlayer}))
	return nil
}

// Started reports whether Initialize has succeeded at least once.
func (g *Game) Started() bool { return g.started }

func (g *Game) GameOver() bool { return g.over }

// StepCount is the number of moves on the undo stack.
func (g *Game) StepCount() int { return g.history.size() }

func (g *Game) Scores() [2]int {
	return [...]int{g.Players[Player1].Score, g.Players[Player2].Score}
}

// Verdict judges the current scores. It is Undecided until the game is over.
func (g *Game) Verdict() Verdict {
	if !g.over {
		return Undecided
	}
	return Judge(g.Players[Player1].Score, g.Players[Player2].Score)
}

func (g *Game) check(e Edge) error {
	if !g.started {
		return ErrGameNotStarted
	}
	if g.over {
		return ErrGameAlreadyOver
	}
	if !e.Valid(g.BoardSize) {
		return fmt.Errorf("%w: %v on board size %d", ErrInvalidCoordinate, e, g.BoardSize)
	}
	if g.Contains(e) {
		return fmt.Errorf("%w: %v", ErrEdgeAlreadyDrawn, e)
	}
	return nil
}

// PlaceEdge draws e for the player to move. Closing a box keeps the turn,
// otherwise it passes. A rejected move changes nothing.
func (g *Game) PlaceEdge(e Edge) (MoveOutcome, error) {
	if err := g.check(e); err != nil {
		return MoveOutcome{}, err
	}

	mover := g.NowPlayer
	g.draw(e, mover)

	var closed []Box
	for _, box := range e.NearBoxes(g.BoardSize) {
		if g.BoxOwner(box) == NoPlayer && g.Closed(box) {
			g.claim(box, mover)
			closed = append(closed, box)
		}
	}
	g.Players[mover].Score += len(closed)

	g.history.push(MoveRecord{
		Edge:         e,
		Player:       mover,
		Boxes:        append([]Box(nil), closed...),
		PlayerBefore: mover,
	})

	if len(closed) == 0 {
		g.NowPlayer.Change()
	}

	if g.ClaimedCount() == g.BoardSize*g.BoardSize {
		g.over = true
	}

	logx.Debugf("Step: %d, Turn %s, Edge: %s, Player1 Score: %d, Player2 Score: %d",
		g.history.size(), mover, e, g.Players[Player1].Score, g.Players[Player2].Score)

	outcome := g.outcome(MoveOutcome{
		Edge:        e,
		Player:      mover,
		BoxesClosed: closed,
		TurnPassed:  len(closed) == 0,
	})
	if g.over {
		logx.Info(outcome.Verdict.String())
	}

	g.notify(EdgePlaced, outcome)
	return outcome, nil
}

// Undo takes back the last move. It reports false when there is nothing to
// undo.
func (g *Game) Undo() (MoveOutcome, bool) {
	r, ok := g.history.pop()
	if !ok {
		return MoveOutcome{}, false
	}

	g.erase(r.Edge)
	for _, box := range r.Boxes {
		g.release(box)
	}
	g.Players[r.Player].Score -= len(r.Boxes)
	before := g.NowPlayer
	g.NowPlayer = r.PlayerBefore
	g.over = false

	logx.Debugf("Undo Edge %s, Turn %s", r.Edge, r.Player)

	outcome := g.outcome(MoveOutcome{
		Edge:        r.Edge,
		Player:      r.Player,
		BoxesClosed: append([]Box(nil), r.Boxes...),
		TurnPassed:  before != g.NowPlayer,
		Undo:        true,
	})
	g.notify(MoveUndone, outcome)
	return outcome, true
}

func (g *Game) outcome(o MoveOutcome) MoveOutcome {
	o.NowPlayer = g.NowPlayer
	o.Scores = g.Scores()
	o.GameOver = g.over
	o.Verdict = g.Verdict()
	return o
}

func (g *Game) History() []MoveRecord { return g.history.all() }

// Recover restarts the game at the same size with the same players and plays
// records forward. The records are checked on a scratch game first, so a
// mismatch leaves g untouched.
func (g *Game) Recover(records []MoveRecord) error {
	if !g.started {
		return ErrGameNotStarted
	}

	identities := [...]Identity{g.Players[Player1].Identity, g.Players[Player2].Identity}
	if err := NewGame().replay(g.BoardSize, identities, records); err != nil {
		return err
	}
	return g.replay(g.BoardSize, identities, records)
}

func (g *Game) replay(BoardSize int, identities [2]Identity, records []MoveRecord) error {
	if err := g.Initialize(BoardSize, identities); err != nil {
		return err
	}

	for i, r := range records {
		if r.Player != g.NowPlayer {
			return fmt.Errorf("%w: step %d expected %s to move, got %s", ErrRecordMismatch, i, g.NowPlayer, r.Player)
		}
		outcome, err := g.PlaceEdge(r.Edge)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if !slices.Equal(outcome.BoxesClosed, r.Boxes) {
			return fmt.Errorf("%w: step %d closed %v, recorded %v", ErrRecordMismatch, i, outcome.BoxesClosed, r.Boxes)
		}
	}
	return nil
}

func (g *Game) State() State {
	s := State{
		BoardSize: g.BoardSize,
		NowPlayer: g.NowPlayer,
		Players:   g.Players,
		Step:      g.history.size(),
		GameOver:  g.over,
	}
	if g.started {
		s.Horizontal = cloneGrid(g.horizontal)
		s.Vertical = cloneGrid(g.vertical)
		s.BoxOwners = cloneGrid(g.boxes)
	}
	return s
}
