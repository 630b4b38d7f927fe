package chess

// Board holds who drew each edge and who owns each box. Cells hold NoPlayer
// until set.
type Board struct {
	BoardSize  int
	horizontal [][]Turn // (BoardSize+1) x BoardSize
	vertical   [][]Turn // BoardSize x (BoardSize+1)
	boxes      [][]Turn
	claimed    int
}

func newGrid(rows, cols int) [][]Turn {
	grid := make([][]Turn, rows)
	for i := range grid {
		grid[i] = make([]Turn, cols)
		for j := range grid[i] {
			grid[i][j] = NoPlayer
		}
	}
	return grid
}

func cloneGrid(grid [][]Turn) [][]Turn {
	newGrid := make([][]Turn, len(grid))
	for i := range grid {
		newGrid[i] = append([]Turn(nil), grid[i]...)
	}
	return newGrid
}

func NewBoard(BoardSize int) Board {
	return Board{
		BoardSize:  BoardSize,
		horizontal: newGrid(BoardSize+1, BoardSize),
		vertical:   newGrid(BoardSize, BoardSize+1),
		boxes:      newGrid(BoardSize, BoardSize),
	}
}

func (b *Board) cell(e Edge) *Turn {
	if !e.Valid(b.BoardSize) {
		return nil
	}
	if e.Type == Horizontal {
		return &b.horizontal[e.Row][e.Col]
	}
	return &b.vertical[e.Row][e.Col]
}

// EdgeOwner returns who drew e, or NoPlayer if e is free or off the board.
func (b *Board) EdgeOwner(e Edge) Turn {
	if c := b.cell(e); c != nil {
		return *c
	}
	return NoPlayer
}

func (b *Board) Contains(e Edge) bool { return b.EdgeOwner(e) != NoPlayer }

func (b *Board) BoxOwner(box Box) Turn {
	if box.Row < 0 || box.Col < 0 || box.Row >= b.BoardSize || box.Col >= b.BoardSize {
		return NoPlayer
	}
	return b.boxes[box.Row][box.Col]
}

func (b *Board) EdgesCountInBox(box Box) (count int) {
	for _, e := range box.Edges() {
		if b.Contains(e) {
			count++
		}
	}
	return
}

func (b *Board) Closed(box Box) bool { return b.EdgesCountInBox(box) == 4 }

// ObtainsBoxes returns the boxes a player would close by drawing e.
func (b *Board) ObtainsBoxes(e Edge) (obtainsBoxes []Box) {
	if !e.Valid(b.BoardSize) || b.Contains(e) {
		return
	}
	for _, box := range e.NearBoxes(b.BoardSize) {
		if b.BoxOwner(box) == NoPlayer && b.EdgesCountInBox(box) == 3 {
			obtainsBoxes = append(obtainsBoxes, box)
		}
	}
	return
}

func (b *Board) FreeEdges() (freeEdges []Edge) {
	for _, e := range Edges(b.BoardSize) {
		if !b.Contains(e) {
			freeEdges = append(freeEdges, e)
		}
	}
	return
}

func (b *Board) FreeEdgesCount() int { return len(b.FreeEdges()) }

func (b *Board) ClaimedCount() int { return b.claimed }

func (b *Board) draw(e Edge, t Turn) { *b.cell(e) = t }

func (b *Board) erase(e Edge) { *b.cell(e) = NoPlayer }

func (b *Board) claim(box Box, t Turn) {
	b.boxes[box.Row][box.Col] = t
	b.claimed++
}

func (b *Board) release(box Box) {
	b.boxes[box.Row][box.Col] = NoPlayer
	b.claimed--
}
