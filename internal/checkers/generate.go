package checkers

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// movesForColor 生成某一方所有棋子的走法；captures 为 true 时只生成吃子
func (p *Position) movesForColor(c Color, captures bool) []Move {
	var moves []Move
	for idx, cell := range p.Board.Cells {
		if cell == Empty || cell.Color() != c {
			continue
		}
		if captures {
			genCaptures(&p.Board, idx, cell, &moves)
		} else {
			genStandardMoves(&p.Board, idx, cell, &moves)
		}
	}
	return moves
}

// LegalMoves returns every move the side to move may play.
//
// Precedence: a pending capture chain restricts play to the named piece;
// otherwise any capture on the board makes quiet moves illegal.
func (p *Position) LegalMoves() []Move {
	side := p.Turn.Color()
	if side == NoColor {
		return nil
	}

	if p.Turn.IsContinuation() {
		piece := p.Board.Cells[p.Turn.Piece]
		if piece.Color() == side {
			if moves := p.Board.Captures(p.Turn.Piece, piece); len(moves) > 0 {
				return moves
			}
		}
		// 连跳棋子已无子可吃：按该方普通回合处理
	}

	if moves := p.movesForColor(side, true); len(moves) > 0 {
		return moves
	}
	return p.movesForColor(side, false)
}

// Successors maps every legal resulting encoding to the move producing it.
func (p *Position) Successors() map[string]Move {
	moves := p.LegalMoves()
	out := make(map[string]Move, len(moves))
	for _, m := range moves {
		out[p.ApplyMove(m).Encode()] = m
	}
	return out
}

// LegalSuccessors returns the sorted set of encodings reachable in one step.
func (p *Position) LegalSuccessors() []string {
	keys := maps.Keys(p.Successors())
	slices.Sort(keys)
	return keys
}

func (p *Position) HasAnyLegalMove() bool {
	return len(p.LegalMoves()) > 0
}

// MayMove reports whether requester owns the current turn, including a
// pending capture chain of their color.
func (p *Position) MayMove(requester Color) bool {
	return requester != NoColor && p.Turn.Color() == requester
}

// Validate reports whether proposed is a legal successor for requester.
// The comparison is on the exact encoding.
func (p *Position) Validate(requester Color, proposed string) bool {
	if !p.MayMove(requester) {
		return false
	}
	_, ok := p.Successors()[proposed]
	return ok
}

// Validate decodes encoded and checks proposed against it.
func Validate(encoded string, requester Color, proposed string) (bool, error) {
	pos, err := ParsePosition(encoded)
	if err != nil {
		return false, fmt.Errorf("validate: %w", err)
	}
	return pos.Validate(requester, proposed), nil
}
