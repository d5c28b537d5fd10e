package game

import (
	"time"

	"checkers/internal/checkers"
)

type Result string

const (
	ResultNone     Result = ""
	ResultWhiteWin Result = "WHITE_WIN"
	ResultBlackWin Result = "BLACK_WIN"
)

type ResultReason string

const (
	ReasonNone            ResultReason = ""
	ReasonBlackCannotMove ResultReason = "BLACK_CANNOT_MOVE"
	ReasonWhiteCannotMove ResultReason = "WHITE_CANNOT_MOVE"
)

type GameState struct {
	ID          string
	BlackPlayer string
	WhitePlayer string
	Pos         *checkers.Position
	// History holds every distinct encoding the game went through, in order.
	History      []string
	Result       Result
	ResultReason ResultReason
	CreatedAt    time.Time
	UpdatedAt    time.Time

	seen map[string]struct{}
}

func (g *GameState) Finished() bool { return g.Result != ResultNone }

// ColorOf returns the seat of user, or NoColor for outsiders.
func (g *GameState) ColorOf(user string) checkers.Color {
	switch user {
	case "":
		return checkers.NoColor
	case g.WhitePlayer:
		return checkers.White
	case g.BlackPlayer:
		return checkers.Black
	default:
		return checkers.NoColor
	}
}

// snapshot copies g so callers never share the manager's record.
func (g *GameState) snapshot() GameState {
	out := *g
	pos := *g.Pos
	out.Pos = &pos
	out.History = append([]string(nil), g.History...)
	out.seen = nil
	return out
}

// record appends pos to the history unless the same encoding was seen.
func (g *GameState) record(pos *checkers.Position) {
	if g.seen == nil {
		g.seen = make(map[string]struct{})
	}
	enc := pos.Encode()
	if _, dup := g.seen[enc]; dup {
		return
	}
	g.seen[enc] = struct{}{}
	g.History = append(g.History, enc)
}

// classify sets the result when the side to move is stuck. Capture chains
// always have a move, so only plain turns are checked.
func (g *GameState) classify() {
	if g.Pos.Turn.IsContinuation() || g.Pos.HasAnyLegalMove() {
		return
	}
	if g.Pos.Turn.Color() == checkers.Black {
		g.Result, g.ResultReason = ResultWhiteWin, ReasonBlackCannotMove
		return
	}
	g.Result, g.ResultReason = ResultBlackWin, ReasonWhiteCannotMove
}
