package chess

import "fmt"

type Box struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (b Box) String() string {
	return fmt.Sprintf("[%d, %d]", b.Row, b.Col)
}

// Edges returns top, bottom, left and right sides of b.
func (b Box) Edges() [4]Edge {
	return [...]Edge{
		NewEdge(Horizontal, b.Row, b.Col),
		NewEdge(Horizontal, b.Row+1, b.Col),
		NewEdge(Vertical, b.Row, b.Col),
		NewEdge(Vertical, b.Row, b.Col+1),
	}
}

func Boxes(BoardSize int) (boxes []Box) {
	for i := range BoardSize {
		for j := range BoardSize {
			boxes = append(boxes, Box{Row: i, Col: j})
		}
	}
	return
}
