package checkers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPosition is returned for encodings that cannot be decoded.
var ErrMalformedPosition = errors.New("malformed position")

// turnCodeIndex is the offset of the turn digit; the continuation piece
// index, when present, follows it directly.
const turnCodeIndex = NumCells

// Encode writes 32 cell digits, the turn digit and, for continuation turns,
// the piece index without padding.
func (p *Position) Encode() string {
	var sb strings.Builder
	sb.Grow(NumCells + 3)
	for _, c := range p.Board.Cells {
		sb.WriteByte(byte('0' + c))
	}
	sb.WriteByte(byte('0' + p.Turn.Kind))
	if p.Turn.IsContinuation() {
		sb.WriteString(strconv.Itoa(p.Turn.Piece))
	}
	return sb.String()
}

func (p *Position) String() string { return p.Encode() }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedPosition, fmt.Sprintf(format, args...))
}

func ParsePosition(s string) (*Position, error) {
	if len(s) < NumCells+1 {
		return nil, malformed("length %d, need at least %d", len(s), NumCells+1)
	}
	var b Board
	for i := 0; i < NumCells; i++ {
		ch := s[i]
		if ch < '0' || ch >= '0'+byte(numCellValues) {
			return nil, malformed("cell %d has value %q", i, ch)
		}
		b.Cells[i] = Cell(ch - '0')
	}

	code := s[turnCodeIndex]
	if code < '0' || code >= '0'+byte(numTurnKinds) {
		return nil, malformed("turn code %q", code)
	}
	turn := Turn{Kind: TurnKind(code - '0')}
	rest := s[turnCodeIndex+1:]

	if !turn.IsContinuation() {
		if rest != "" {
			return nil, malformed("trailing %q after plain turn", rest)
		}
	} else {
		piece, err := parsePieceIndex(rest)
		if err != nil {
			return nil, err
		}
		// Only the piece that just captured may continue, so it has to
		// belong to the side that is continuing.
		if b.Cells[piece].Color() != turn.Color() {
			return nil, malformed("continuation piece %d is %s, want a %s piece",
				piece, b.Cells[piece], turn.Color())
		}
		turn.Piece = piece
	}

	pos := &Position{Board: b, Turn: turn}
	pos.Hash = pos.CalculateHash()
	return pos, nil
}

func parsePieceIndex(s string) (int, error) {
	if s == "" {
		return 0, malformed("continuation turn without piece index")
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, malformed("piece index %q has a leading zero", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, malformed("piece index %q is not decimal", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n >= NumCells {
		return 0, malformed("piece index %q out of range", s)
	}
	return n, nil
}
