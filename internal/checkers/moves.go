package checkers

// opponents reports whether target belongs to the other side of piece.
func opponents(piece, target Cell) bool {
	pc, tc := piece.Color(), target.Color()
	return pc != NoColor && tc != NoColor && pc != tc
}

// 吃子：相邻格是对方棋子且其后一格为空
func genCaptures(b *Board, from int, piece Cell, moves *[]Move) {
	for _, d := range Directions(piece) {
		over, ok := Neighbor(from, d)
		if !ok || !opponents(piece, b.Cells[over]) {
			continue
		}
		land, ok := Neighbor(over, d)
		if !ok || b.Cells[land] != Empty {
			continue
		}
		*moves = append(*moves, Move{From: from, To: land, Piece: piece, Capture: over})
	}
}

// 普通走子：斜走一格到空位
func genStandardMoves(b *Board, from int, piece Cell, moves *[]Move) {
	for _, d := range Directions(piece) {
		to, ok := Neighbor(from, d)
		if !ok || b.Cells[to] != Empty {
			continue
		}
		*moves = append(*moves, Move{From: from, To: to, Piece: piece, Capture: NoCapture})
	}
}

// Captures lists the jumps available to piece standing on idx. piece is
// passed explicitly so a freshly promoted king can be probed before the
// board is updated.
func (b *Board) Captures(idx int, piece Cell) []Move {
	var moves []Move
	genCaptures(b, idx, piece, &moves)
	return moves
}

// StandardMoves lists the non-capturing single steps for piece on idx.
func (b *Board) StandardMoves(idx int, piece Cell) []Move {
	var moves []Move
	genStandardMoves(b, idx, piece, &moves)
	return moves
}
