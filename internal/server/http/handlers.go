package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"checkers/internal/checkers"
	"checkers/internal/log2"
	"checkers/internal/matchmaker"
	"checkers/internal/server/game"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
	match *matchmaker.Matchmaker
}

func NewHandler(games *game.Manager, match *matchmaker.Matchmaker) *Handler {
	return &Handler{games: games, match: match}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/find_game":
		h.handleFindGame(w, r)
	case "/api/games":
		h.handleGames(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/validate":
		h.handleValidate(w, r)
	case "/api/successors":
		h.handleSuccessors(w, r)
	default:
		http.NotFound(w, r)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writeJSON")
	}
}

// writeError maps domain errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, checkers.ErrMalformedPosition), errors.Is(err, matchmaker.ErrEmptyUser):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrNotParticipant):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrGameOver):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	http.Error(w, err.Error(), status)
}

func (h *Handler) handleFindGame(w http.ResponseWriter, r *http.Request) {
	var req FindGameRequest
	if !decode(w, r, &req) {
		return
	}
	waiting, err := h.match.Enqueue(req.User)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, FindGameResponse{Queued: true, Waiting: waiting})
}

func (h *Handler) handleGames(w http.ResponseWriter, r *http.Request) {
	var req GamesRequest
	if !decode(w, r, &req) {
		return
	}
	games := h.games.GamesFor(req.User)
	resp := GamesResponse{Games: make([]GameDTO, 0, len(games))}
	for _, g := range games {
		resp.Games = append(resp.Games, gameToDTO(g))
	}
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, gameToDTO(g))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Play(req.GameID, req.User, req.Position)
	if err != nil {
		log2.Debugf("move rejected: game=%s user=%s: %v", req.GameID, req.User, err)
		writeError(w, err)
		return
	}
	log.Info().Str("game", g.ID).Str("position", g.Pos.Encode()).Str("result", string(g.Result)).Msg("move accepted")
	writeJSON(w, gameToDTO(g))
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if !decode(w, r, &req) {
		return
	}
	color, err := checkers.ParseColor(req.Color)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ok, err := checkers.Validate(req.Position, color, req.Proposed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, ValidateResponse{Valid: ok})
}

func (h *Handler) handleSuccessors(w http.ResponseWriter, r *http.Request) {
	var req SuccessorsRequest
	if !decode(w, r, &req) {
		return
	}
	pos, err := checkers.ParsePosition(req.Position)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, successorsResponse(pos))
}
