package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
)

func seed(t *testing.T, m *Manager, id, encoded string) {
	t.Helper()
	pos, err := checkers.ParsePosition(encoded)
	require.NoError(t, err)
	m.mu.Lock()
	defer m.mu.Unlock()
	g := m.games[id]
	g.Pos = pos
	g.History, g.seen = nil, nil
	g.record(pos)
}

func newGame(t *testing.T, m *Manager, black, white string) GameState {
	t.Helper()
	g, err := m.NewGame(black, white)
	require.NoError(t, err)
	return g
}

func TestNewGameRejectsSameUser(t *testing.T) {
	m := NewManager()
	_, err := m.NewGame("alice", "alice")
	require.ErrorIs(t, err, ErrSamePlayer)
	require.Empty(t, m.GamesFor("alice"))
}

func TestHistoryKeyedByEncoding(t *testing.T) {
	m := NewManager()
	g := newGame(t, m, "alice", "bob")
	first, err := checkers.ParsePosition("111111111111000003003303333333331")
	require.NoError(t, err)
	// same hash, different board: both must be kept
	second, err := checkers.ParsePosition("111111111011001003003303333333330")
	require.NoError(t, err)
	second.Hash = first.Hash

	m.mu.Lock()
	rec := m.games[g.ID]
	rec.record(first)
	rec.record(second)
	rec.record(first)
	m.mu.Unlock()

	got, err := m.Get(g.ID)
	require.NoError(t, err)
	require.Equal(t, []string{
		"111111111111000000003333333333330",
		"111111111111000003003303333333331",
		"111111111011001003003303333333330",
	}, got.History)
}

func TestNewGame(t *testing.T) {
	m := NewManager()
	g := newGame(t, m, "alice", "bob")
	require.NotEmpty(t, g.ID)
	require.Equal(t, "111111111111000000003333333333330", g.Pos.Encode())
	require.Equal(t, []string{g.Pos.Encode()}, g.History)
	require.Equal(t, checkers.Black, g.ColorOf("alice"))
	require.Equal(t, checkers.White, g.ColorOf("bob"))
	require.Equal(t, checkers.NoColor, g.ColorOf("carol"))

	got, err := m.Get(g.ID)
	require.NoError(t, err)
	require.Equal(t, g.ID, got.ID)
}

func TestGetUnknown(t *testing.T) {
	_, err := NewManager().Get("nope")
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestPlayAlternatesTurns(t *testing.T) {
	m := NewManager()
	g := newGame(t, m, "alice", "bob")

	_, err := m.Play(g.ID, "bob", "111111111111003000003303333333331")
	require.ErrorIs(t, err, ErrIllegalMove)

	g, err = m.Play(g.ID, "alice", "111111111111000003003303333333331")
	require.NoError(t, err)
	require.Equal(t, checkers.WhiteToMove, g.Pos.Turn.Kind)

	g, err = m.Play(g.ID, "bob", "111111111011001003003303333333330")
	require.NoError(t, err)
	require.Len(t, g.History, 3)
	require.False(t, g.Finished())
}

func TestPlayRejections(t *testing.T) {
	m := NewManager()
	g := newGame(t, m, "alice", "bob")

	_, err := m.Play("missing", "alice", "111111111111000003003303333333331")
	require.ErrorIs(t, err, ErrGameNotFound)

	_, err = m.Play(g.ID, "mallory", "111111111111000003003303333333331")
	require.ErrorIs(t, err, ErrNotParticipant)

	_, err = m.Play(g.ID, "alice", "garbage")
	require.ErrorIs(t, err, ErrIllegalMove)

	after, err := m.Get(g.ID)
	require.NoError(t, err)
	require.Equal(t, g.Pos.Encode(), after.Pos.Encode())
}

func TestPlayCaptureChain(t *testing.T) {
	m := NewManager()
	g := newGame(t, m, "alice", "bob")
	seed(t, m, g.ID, "400111111001001003003303000333330")

	g, err := m.Play(g.ID, "alice", "0001101114010010030033030003333329")
	require.NoError(t, err)
	require.True(t, g.Pos.Turn.IsContinuation())

	_, err = m.Play(g.ID, "bob", "004110011001001003003303000333331")
	require.ErrorIs(t, err, ErrIllegalMove)

	g, err = m.Play(g.ID, "alice", "004110011001001003003303000333331")
	require.NoError(t, err)
	require.Equal(t, checkers.WhiteToMove, g.Pos.Turn.Kind)
}

func TestPlayDetectsWin(t *testing.T) {
	m := NewManager()
	g := newGame(t, m, "alice", "bob")
	seed(t, m, g.ID, "000000000000010003000000000000000")

	g, err := m.Play(g.ID, "alice", "000000003000000000000000000000001")
	require.NoError(t, err)
	require.True(t, g.Finished())
	require.Equal(t, ResultBlackWin, g.Result)
	require.Equal(t, ReasonWhiteCannotMove, g.ResultReason)

	_, err = m.Play(g.ID, "bob", "000000003000000000000000000000000")
	require.ErrorIs(t, err, ErrGameOver)
}

func TestSnapshotIsolation(t *testing.T) {
	m := NewManager()
	g := newGame(t, m, "alice", "bob")
	g.Pos.Board.Cells[0] = checkers.Empty
	g.History[0] = "tampered"

	fresh, err := m.Get(g.ID)
	require.NoError(t, err)
	require.Equal(t, checkers.WhiteMan, fresh.Pos.Board.Cells[0])
	require.Equal(t, "111111111111000000003333333333330", fresh.History[0])
}

func TestGamesFor(t *testing.T) {
	m := NewManager()
	a := newGame(t, m, "alice", "bob")
	b := newGame(t, m, "carol", "alice")
	newGame(t, m, "carol", "dave")

	games := m.GamesFor("alice")
	require.Len(t, games, 2)
	ids := []string{games[0].ID, games[1].ID}
	require.ElementsMatch(t, []string{a.ID, b.ID}, ids)
	require.Empty(t, m.GamesFor("erin"))
}

func TestConcurrentPlayOnlyOneWins(t *testing.T) {
	m := NewManager()
	g := newGame(t, m, "alice", "bob")
	succ := g.Pos.LegalSuccessors()

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for _, s := range succ {
		wg.Add(1)
		go func(s string) {
			defer wg.Done()
			if _, err := m.Play(g.ID, "alice", s); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(s)
	}
	wg.Wait()
	require.Equal(t, 1, accepted)
}
