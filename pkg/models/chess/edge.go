package chess

import (
	"fmt"
	"strings"
)

type EdgeType byte

const (
	Horizontal EdgeType = 'h'
	Vertical   EdgeType = 'v'
)

func ParseEdgeType(s string) (EdgeType, error) {
	switch strings.ToLower(s) {
	case "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown edge type %q", s)
}

func (t EdgeType) String() string { return string(t) }

// Edge is a unit segment between two adjacent dots. A horizontal edge at
// (r, c) lies above box (r, c); a vertical edge at (r, c) lies left of it.
type Edge struct {
	Type EdgeType `json:"type"`
	Row  int      `json:"row"`
	Col  int      `json:"col"`
}

func NewEdge(t EdgeType, row, col int) Edge {
	return Edge{Type: t, Row: row, Col: col}
}

func (e Edge) String() string {
	return fmt.Sprintf("%c(%d, %d)", e.Type, e.Row, e.Col)
}

// Valid reports whether e exists on a board of the given size.
func (e Edge) Valid(BoardSize int) bool {
	if e.Row < 0 || e.Col < 0 {
		return false
	}
	switch e.Type {
	case Horizontal:
		return e.Row <= BoardSize && e.Col < BoardSize
	case Vertical:
		return e.Row < BoardSize && e.Col <= BoardSize
	}
	return false
}

// NearBoxes returns the one or two boxes bordered by e.
func (e Edge) NearBoxes(BoardSize int) (nearBoxes []Box) {
	switch e.Type {
	case Horizontal:
		if e.Row > 0 {
			nearBoxes = append(nearBoxes, Box{Row: e.Row - 1, Col: e.Col})
		}
		if e.Row < BoardSize {
			nearBoxes = append(nearBoxes, Box{Row: e.Row, Col: e.Col})
		}
	case Vertical:
		if e.Col > 0 {
			nearBoxes = append(nearBoxes, Box{Row: e.Row, Col: e.Col - 1})
		}
		if e.Col < BoardSize {
			nearBoxes = append(nearBoxes, Box{Row: e.Row, Col: e.Col})
		}
	}
	return
}

// Edges lists every edge of a board, horizontal ones first.
func Edges(BoardSize int) (edges []Edge) {
	for i := 0; i <= BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			edges = append(edges, NewEdge(Horizontal, i, j))
		}
	}
	for i := 0; i < BoardSize; i++ {
		for j := 0; j <= BoardSize; j++ {
			edges = append(edges, NewEdge(Vertical, i, j))
		}
	}
	return
}
