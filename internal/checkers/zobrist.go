package checkers

import "sync"

var (
	zobristOnce sync.Once

	zobristCells        [numCellValues][NumCells]uint64
	zobristTurns        [numTurnKinds]uint64
	zobristContinuation [NumCells]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		// Empty 格不参与哈希
		for c := WhiteMan; c < numCellValues; c++ {
			for idx := 0; idx < NumCells; idx++ {
				zobristCells[c][idx] = next()
			}
		}
		for k := range zobristTurns {
			zobristTurns[k] = next()
		}
		for idx := range zobristContinuation {
			zobristContinuation[idx] = next()
		}
	})
}

func cellHashKey(c Cell, idx int) uint64 {
	if c == Empty || c >= numCellValues || idx < 0 || idx >= NumCells {
		return 0
	}
	initZobrist()
	return zobristCells[c][idx]
}

func turnHashKey(t Turn) uint64 {
	if t.Kind >= numTurnKinds {
		return 0
	}
	initZobrist()
	h := zobristTurns[t.Kind]
	if t.IsContinuation() && t.Piece >= 0 && t.Piece < NumCells {
		h ^= zobristContinuation[t.Piece]
	}
	return h
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希。
func (p *Position) CalculateHash() uint64 {
	var h uint64
	for idx, c := range p.Board.Cells {
		h ^= cellHashKey(c, idx)
	}
	return h ^ turnHashKey(p.Turn)
}

// currentHash returns p.Hash, recomputing it for hand-built positions
// without writing back, so concurrent readers of p stay safe.
func (p *Position) currentHash() uint64 {
	if p.Hash == 0 {
		return p.CalculateHash()
	}
	return p.Hash
}
