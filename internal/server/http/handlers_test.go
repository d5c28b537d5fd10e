package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/matchmaker"
	"checkers/internal/server/game"
)

func newTestHandler() (*Handler, *game.Manager, *matchmaker.Matchmaker) {
	games := game.NewManager()
	mm := matchmaker.New(games, nil)
	return NewHandler(games, mm), games, mm
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestValidateEndpoint(t *testing.T) {
	h, _, _ := newTestHandler()

	rr := post(t, h, "/api/validate", `{"position":"111111111111000000003333333333330","color":"black","proposed":"111111111111000003003303333333331"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, decodeBody[ValidateResponse](t, rr).Valid)

	rr = post(t, h, "/api/validate", `{"position":"111111111111000000003333333333330","color":"white","proposed":"111111111111000003003303333333331"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.False(t, decodeBody[ValidateResponse](t, rr).Valid)

	rr = post(t, h, "/api/validate", `{"position":"111111111111000000003333333333337","color":"black","proposed":""}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = post(t, h, "/api/validate", `{"position":"111111111111000000003333333333330","color":"red","proposed":""}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSuccessorsEndpoint(t *testing.T) {
	h, _, _ := newTestHandler()

	rr := post(t, h, "/api/successors", `{"position":"111111111111000000003333333333330"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[SuccessorsResponse](t, rr)
	require.Len(t, resp.Successors, 7)
	require.True(t, resp.HasMoves)
	require.Equal(t, "black", resp.ToMove)

	rr = post(t, h, "/api/successors", `{"position":"0000000000000000000000000000000001"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMatchAndPlayFlow(t *testing.T) {
	h, _, mm := newTestHandler()

	rr := post(t, h, "/api/find_game", `{"user":"alice"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, FindGameResponse{Queued: true, Waiting: 1}, decodeBody[FindGameResponse](t, rr))
	post(t, h, "/api/find_game", `{"user":"bob"}`)

	created, err := mm.RunOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, created, 1)
	id := created[0].GameID

	rr = post(t, h, "/api/games", `{"user":"bob"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	games := decodeBody[GamesResponse](t, rr)
	require.Len(t, games.Games, 1)
	require.Equal(t, id, games.Games[0].GameID)
	require.Equal(t, "black", games.Games[0].ToMove)

	rr = post(t, h, "/api/play", `{"game_id":"`+id+`","user":"bob","position":"111111111111000003003303333333331"}`)
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = post(t, h, "/api/play", `{"game_id":"`+id+`","user":"mallory","position":"111111111111000003003303333333331"}`)
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = post(t, h, "/api/play", `{"game_id":"`+id+`","user":"alice","position":"111111111111000003003303333333331"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	state := decodeBody[GameDTO](t, rr)
	require.Equal(t, "white", state.ToMove)
	require.Equal(t, "ongoing", state.Status)
	require.Len(t, state.History, 2)
	require.Nil(t, state.Continuation)

	rr = post(t, h, "/api/state", `{"game_id":"`+id+`"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "111111111111000003003303333333331", decodeBody[GameDTO](t, rr).Position)
}

func TestErrors(t *testing.T) {
	h, _, _ := newTestHandler()

	rr := post(t, h, "/api/state", `{"game_id":"missing"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = post(t, h, "/api/find_game", `{"user":""}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = post(t, h, "/api/state", `not json`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = post(t, h, "/api/unknown", `{}`)
	require.Equal(t, http.StatusNotFound, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
