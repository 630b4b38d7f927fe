package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/logrusorgru/aurora"
)

const (
	dot        = "+"
	hLine      = "---"
	vLine      = "|"
	emptyHLine = "   "
	emptyVLine = " "
)

// Renderer draws the board on a terminal after every engine event.
type Renderer struct {
	w        io.Writer
	au       aurora.Aurora
	progress bool
	bar      *model.Bar
}

func NewRenderer(w io.Writer, color, progress model.Config) *Renderer {
	return &Renderer{
		w:        w,
		au:       aurora.NewAurora(bool(color)),
		progress: bool(progress),
	}
}

func (r *Renderer) Observer() chess.Observer {
	return r.Render
}

func (r *Renderer) Render(e chess.Event) {
	if e.Kind == chess.GameStarted {
		r.bar = nil
	}

	var sb strings.Builder
	r.describe(&sb, e)
	r.drawBoard(&sb, e.State)
	r.drawStatus(&sb, e)
	_, _ = io.WriteString(r.w, sb.String())

	if r.progress {
		r.drawProgress(e.State)
	}
}

func (r *Renderer) describe(sb *strings.Builder, e chess.Event) {
	o := e.Outcome
	switch e.Kind {
	case chess.GameStarted:
		fmt.Fprintf(sb, "New game on a %d x %d board\n", e.State.BoardSize, e.State.BoardSize)
	case chess.EdgePlaced:
		fmt.Fprintf(sb, "%s drew %s", r.name(e.State, o.Player), o.Edge)
		if n := len(o.BoxesClosed); n > 0 {
			fmt.Fprintf(sb, " and closed %d %s", n, plural(n, "box", "boxes"))
		}
		sb.WriteString("\n")
	case chess.MoveUndone:
		fmt.Fprintf(sb, "Undid %s by %s\n", o.Edge, r.name(e.State, o.Player))
	}
}

func (r *Renderer) drawBoard(sb *strings.Builder, s chess.State) {
	n := s.BoardSize

	sb.WriteString("   ")
	for c := range n {
		fmt.Fprintf(sb, "  %-2d", c)
	}
	sb.WriteString("\n")

	for row := range n + 1 {
		fmt.Fprintf(sb, "%2d ", row)
		for c := range n + 1 {
			sb.WriteString(dot)
			if c < n {
				sb.WriteString(r.edge(s, chess.NewEdge(chess.Horizontal, row, c), hLine, emptyHLine))
			}
		}
		sb.WriteString("\n")

		if row == n {
			break
		}

		sb.WriteString("   ")
		for c := range n + 1 {
			sb.WriteString(r.edge(s, chess.NewEdge(chess.Vertical, row, c), vLine, emptyVLine))
			if c < n {
				sb.WriteString(r.box(s, chess.Box{Row: row, Col: c}))
			}
		}
		sb.WriteString("\n")
	}
}

func (r *Renderer) edge(s chess.State, e chess.Edge, drawn, empty string) string {
	owner := s.Edge(e)
	if owner == chess.NoPlayer {
		return empty
	}
	return r.paint(s, owner, drawn)
}

func (r *Renderer) box(s chess.State, b chess.Box) string {
	owner := s.Box(b)
	if owner == chess.NoPlayer {
		return "   "
	}

	marker := s.Players[owner].Marker
	if marker == "" {
		marker = strconv.Itoa(int(owner) + 1)
	}
	return " " + r.paint(s, owner, marker) + " "
}

func (r *Renderer) drawStatus(sb *strings.Builder, e chess.Event) {
	s := e.State
	for _, t := range []chess.Turn{chess.Player1, chess.Player2} {
		fmt.Fprintf(sb, "%s: %d  ", r.name(s, t), s.Players[t].Score)
	}
	sb.WriteString("\n")

	if s.GameOver {
		verdict := e.Outcome.Verdict
		if winner, ok := verdict.Winner(); ok {
			fmt.Fprintf(sb, "%s (%s)\n", r.au.Bold(verdict), r.name(s, winner))
		} else {
			fmt.Fprintf(sb, "%s\n", r.au.Bold(verdict))
		}
		return
	}
	fmt.Fprintf(sb, "Turn: %s\n", r.name(s, s.NowPlayer))
}

func (r *Renderer) drawProgress(s chess.State) {
	total := s.BoardSize * s.BoardSize
	if r.bar == nil {
		r.bar = model.NewBar(r.w, total, "Boxes")
	}

	scores := s.Scores()
	r.bar.Goto(scores[chess.Player1] + scores[chess.Player2])
	_, _ = io.WriteString(r.w, "\n")
}

func (r *Renderer) name(s chess.State, t chess.Turn) string {
	if t == chess.NoPlayer {
		return t.String()
	}
	return r.paint(s, t, s.Players[t].Name)
}

func (r *Renderer) paint(s chess.State, t chess.Turn, text string) string {
	return r.au.Index(ColorIndex(s.Players[t].Color), text).String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
