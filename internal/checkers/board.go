package checkers

const (
	Rows        = 8
	CellsPerRow = 4
	NumCells    = Rows * CellsPerRow
)

func rowOf(idx int) int { return idx / CellsPerRow }

type Direction uint8

const (
	ForwardLeft Direction = iota
	ForwardRight
	BackLeft
	BackRight
)

func (d Direction) String() string {
	switch d {
	case ForwardLeft:
		return "forward_left"
	case ForwardRight:
		return "forward_right"
	case BackLeft:
		return "back_left"
	case BackRight:
		return "back_right"
	default:
		return "unknown"
	}
}

// Forward lowers the row, back raises it. correction is applied to the
// linear index before the odd-row shift.
var directionSteps = [...]struct {
	correction int
	rowDelta   int
}{
	ForwardLeft:  {correction: -4, rowDelta: -1},
	ForwardRight: {correction: -3, rowDelta: -1},
	BackLeft:     {correction: 4, rowDelta: 1},
	BackRight:    {correction: 5, rowDelta: 1},
}

var (
	allDirections = []Direction{ForwardRight, ForwardLeft, BackRight, BackLeft}

	// Men only move toward the far side: white down the rows, black up.
	pieceDirections = [numCellValues][]Direction{
		WhiteMan:  {BackLeft, BackRight},
		WhiteKing: allDirections,
		BlackMan:  {ForwardRight, ForwardLeft},
		BlackKing: allDirections,
	}
)

// Directions returns the directions a piece may move or capture in.
func Directions(piece Cell) []Direction {
	if int(piece) >= len(pieceDirections) {
		return nil
	}
	return pieceDirections[piece]
}

// Neighbor returns the diagonal neighbour of idx in direction d.
//
// The row check catches the left/right wrap: packed indexing puts the end of
// one row next to the start of the following one, so a linear offset alone
// would accept a move that leaves the board sideways.
func Neighbor(idx int, d Direction) (int, bool) {
	if idx < 0 || idx >= NumCells || int(d) >= len(directionSteps) {
		return 0, false
	}
	step := directionSteps[d]
	row := rowOf(idx)
	n := idx + step.correction - row%2
	if n < 0 || n >= NumCells {
		return 0, false
	}
	nRow := rowOf(n)
	if nRow-row != step.rowDelta {
		return 0, false
	}
	if nRow < 0 || nRow >= Rows {
		return 0, false
	}
	return n, true
}

// promotionRow is the far row for a man of the given color.
func promotionRow(c Color) int {
	if c == White {
		return Rows - 1
	}
	return 0
}

const initialBoardString = "11111111111100000000333333333333"

func NewInitialPosition() *Position {
	var b Board
	for i := 0; i < NumCells; i++ {
		b.Cells[i] = Cell(initialBoardString[i] - '0')
	}
	pos := &Position{
		Board: b,
		Turn:  PlainTurn(Black), // black opens
	}
	pos.Hash = pos.CalculateHash()
	return pos
}
