package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"checkers/internal/checkers"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrGameOver       = errors.New("game is over")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNotParticipant = errors.New("user does not play in this game")
	ErrSamePlayer     = errors.New("black and white must be different users")
)

// Manager is an in-memory game store. Move submission validates and stores
// under one lock so every check runs against the position it replaces.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	now   func() time.Time
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState), now: time.Now}
}

// NewGame seats black and white and starts from the initial position.
func (m *Manager) NewGame(black, white string) (GameState, error) {
	if black == white {
		return GameState{}, fmt.Errorf("%w: %q", ErrSamePlayer, black)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	g := &GameState{
		ID:          uuid.NewString(),
		BlackPlayer: black,
		WhitePlayer: white,
		Pos:         checkers.NewInitialPosition(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	g.record(g.Pos)
	m.games[g.ID] = g
	return g.snapshot(), nil
}

func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g.snapshot(), nil
}

// GamesFor lists the games user sits in, newest first.
func (m *Manager) GamesFor(user string) []GameState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []GameState
	for _, g := range m.games {
		if g.ColorOf(user) != checkers.NoColor {
			out = append(out, g.snapshot())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Play submits proposed as user's next position in game id.
func (m *Manager) Play(id, user, proposed string) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if g.Finished() {
		return GameState{}, ErrGameOver
	}
	color := g.ColorOf(user)
	if color == checkers.NoColor {
		return GameState{}, ErrNotParticipant
	}
	if !g.Pos.Validate(color, proposed) {
		return GameState{}, ErrIllegalMove
	}
	next, err := checkers.ParsePosition(proposed)
	if err != nil {
		// a legal successor always decodes
		return GameState{}, fmt.Errorf("store %s: %w", id, err)
	}

	g.Pos = next
	g.UpdatedAt = m.now()
	g.record(next)
	g.classify()
	return g.snapshot(), nil
}
