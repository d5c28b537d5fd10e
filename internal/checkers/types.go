package checkers

import (
	"fmt"
	"strings"
)

type Color int8

const (
	NoColor Color = -1
	Black   Color = 0
	White   Color = 1
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// Opponent returns the other side; NoColor stays NoColor.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoColor
	}
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return Black, nil
	case "white":
		return White, nil
	default:
		return NoColor, fmt.Errorf("unknown color %q", s)
	}
}

// Cell is the content of one playable square. The numeric values are the
// digits used by the position encoding.
type Cell uint8

const (
	Empty Cell = iota
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing

	numCellValues
)

func (c Cell) Color() Color {
	switch c {
	case WhiteMan, WhiteKing:
		return White
	case BlackMan, BlackKing:
		return Black
	default:
		return NoColor
	}
}

func (c Cell) IsKing() bool { return c == WhiteKing || c == BlackKing }
func (c Cell) IsMan() bool  { return c == WhiteMan || c == BlackMan }

// Crowned returns the king of the same color, or c itself when c is not a man.
func (c Cell) Crowned() Cell {
	switch c {
	case WhiteMan:
		return WhiteKing
	case BlackMan:
		return BlackKing
	default:
		return c
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case WhiteMan:
		return "white man"
	case WhiteKing:
		return "white king"
	case BlackMan:
		return "black man"
	case BlackKing:
		return "black king"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// TurnKind values double as the turn-code digit of the encoding.
type TurnKind uint8

const (
	BlackToMove TurnKind = iota
	WhiteToMove
	BlackMustContinue
	WhiteMustContinue

	numTurnKinds
)

// Turn is whose move it is. Piece is only meaningful for the two
// continuation kinds and names the one piece that has to keep capturing.
type Turn struct {
	Kind  TurnKind
	Piece int
}

func PlainTurn(c Color) Turn {
	if c == White {
		return Turn{Kind: WhiteToMove}
	}
	return Turn{Kind: BlackToMove}
}

func ContinuationTurn(c Color, piece int) Turn {
	if c == White {
		return Turn{Kind: WhiteMustContinue, Piece: piece}
	}
	return Turn{Kind: BlackMustContinue, Piece: piece}
}

func (t Turn) Color() Color {
	switch t.Kind {
	case BlackToMove, BlackMustContinue:
		return Black
	case WhiteToMove, WhiteMustContinue:
		return White
	default:
		return NoColor
	}
}

func (t Turn) IsContinuation() bool {
	return t.Kind == BlackMustContinue || t.Kind == WhiteMustContinue
}

// NoCapture marks a Move that does not jump anything.
const NoCapture = -1

type Move struct {
	From    int  `json:"from"`
	To      int  `json:"to"`
	Piece   Cell `json:"piece"`
	Capture int  `json:"capture"`
}

func (m Move) IsCapture() bool { return m.Capture != NoCapture }

type Board struct {
	Cells [NumCells]Cell
}

// Position = board + whose turn it is. Built fresh from an encoded string
// and never shared between callers.
type Position struct {
	Board Board
	Turn  Turn
	Hash  uint64
}
