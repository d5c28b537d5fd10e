package httpserver

import (
	"time"

	"checkers/internal/checkers"
	"checkers/internal/server/game"
)

// FindGame 请求：进入匹配队列
type FindGameRequest struct {
	User string `json:"user"`
}

type FindGameResponse struct {
	Queued  bool `json:"queued"`
	Waiting int  `json:"waiting"`
}

type GamesRequest struct {
	User string `json:"user"`
}

type GamesResponse struct {
	Games []GameDTO `json:"games"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// Play 请求：提交走完之后的完整局面
type PlayRequest struct {
	GameID   string `json:"game_id"`
	User     string `json:"user"`
	Position string `json:"position"`
}

type ValidateRequest struct {
	Position string `json:"position"`
	Color    string `json:"color"`
	Proposed string `json:"proposed"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

type SuccessorsRequest struct {
	Position string `json:"position"`
}

type SuccessorsResponse struct {
	Position   string   `json:"position"`
	ToMove     string   `json:"to_move"`
	Successors []string `json:"successors"`
	HasMoves   bool     `json:"has_moves"`
}

// GameDTO 前端用的对局结构
type GameDTO struct {
	GameID       string    `json:"game_id"`
	BlackPlayer  string    `json:"black_player"`
	WhitePlayer  string    `json:"white_player"`
	Position     string    `json:"position"`
	ToMove       string    `json:"to_move"`
	Continuation *int      `json:"continuation,omitempty"` // 连跳棋子
	Successors   []string  `json:"successors"`
	History      []string  `json:"history"`
	Status       string    `json:"status"` // "ongoing" / "finished"
	Result       string    `json:"result,omitempty"`
	ResultReason string    `json:"result_reason,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func gameToDTO(g game.GameState) GameDTO {
	dto := GameDTO{
		GameID:       g.ID,
		BlackPlayer:  g.BlackPlayer,
		WhitePlayer:  g.WhitePlayer,
		Position:     g.Pos.Encode(),
		ToMove:       g.Pos.Turn.Color().String(),
		History:      g.History,
		Status:       "ongoing",
		Result:       string(g.Result),
		ResultReason: string(g.ResultReason),
		UpdatedAt:    g.UpdatedAt,
	}
	if g.Pos.Turn.IsContinuation() {
		piece := g.Pos.Turn.Piece
		dto.Continuation = &piece
	}
	if g.Finished() {
		dto.Status = "finished"
		dto.Successors = []string{}
	} else {
		dto.Successors = nonNil(g.Pos.LegalSuccessors())
	}
	return dto
}

func successorsResponse(pos *checkers.Position) SuccessorsResponse {
	succ := nonNil(pos.LegalSuccessors())
	return SuccessorsResponse{
		Position:   pos.Encode(),
		ToMove:     pos.Turn.Color().String(),
		Successors: succ,
		HasMoves:   len(succ) > 0,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
