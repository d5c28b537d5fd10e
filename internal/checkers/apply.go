package checkers

// ApplyMove returns the position after m. p is left untouched, so one
// position can be reused for every candidate move while enumerating.
//
// m is trusted to be well formed (it normally comes from LegalMoves).
func (p *Position) ApplyMove(m Move) *Position {
	mover := m.Piece.Color()
	landed := m.Piece
	if landed.IsMan() && rowOf(m.To) == promotionRow(mover) {
		landed = landed.Crowned()
	}

	np := *p
	np.Board.Cells[m.From] = Empty
	np.Board.Cells[m.To] = landed

	h := p.currentHash()
	h ^= cellHashKey(m.Piece, m.From)
	h ^= cellHashKey(landed, m.To)
	if m.IsCapture() {
		h ^= cellHashKey(np.Board.Cells[m.Capture], m.Capture)
		np.Board.Cells[m.Capture] = Empty
	}

	// 连跳：只有吃子之后，且落点上的（可能已升王的）棋子还能继续吃，才轮到同一方
	np.Turn = PlainTurn(mover.Opponent())
	if m.IsCapture() && len(np.Board.Captures(m.To, landed)) > 0 {
		np.Turn = ContinuationTurn(mover, m.To)
	}

	h ^= turnHashKey(p.Turn)
	h ^= turnHashKey(np.Turn)
	np.Hash = h
	return &np
}
