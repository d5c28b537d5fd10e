package matchmaker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/server/game"
)

// GameCreator is satisfied by *game.Manager.
type GameCreator interface {
	NewGame(black, white string) (game.GameState, error)
}

type Matchmaker struct {
	queue    *Queue
	games    GameCreator
	notifier Notifier
}

func New(games GameCreator, notifier Notifier) *Matchmaker {
	return &Matchmaker{queue: &Queue{}, games: games, notifier: notifier}
}

func (m *Matchmaker) Queue() *Queue { return m.queue }

// Enqueue adds user to the waiting list and returns the number waiting.
func (m *Matchmaker) Enqueue(user string) (int, error) {
	if _, err := m.queue.Add(user); err != nil {
		return 0, err
	}
	return m.queue.Len(), nil
}

// RunOnce pairs everybody waiting, creates their games and announces them.
// Users leave the queue once their game exists, even if the announcement
// fails, so nobody is seated twice.
func (m *Matchmaker) RunOnce(ctx context.Context) ([]Created, error) {
	pairs := GeneratePairs(m.queue.Snapshot())
	created := make([]Created, 0, len(pairs))
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		g, err := m.games.NewGame(p.Black, p.White)
		m.queue.Remove(p.Black, p.White)
		if err != nil {
			return created, fmt.Errorf("seat %s vs %s: %w", p.Black, p.White, err)
		}
		c := Created{GameID: g.ID, Black: p.Black, White: p.White, Position: g.Pos.Encode()}
		created = append(created, c)
		if m.notifier == nil {
			continue
		}
		if err := m.notifier.Publish(ctx, c); err != nil {
			return created, fmt.Errorf("publish game %s: %w", g.ID, err)
		}
	}
	return created, nil
}

// Run calls RunOnce every interval until ctx is done.
func (m *Matchmaker) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			created, err := m.RunOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Error().Err(err).Msg("matchmaking round failed")
				continue
			}
			if len(created) > 0 {
				log.Info().Int("games", len(created)).Int("waiting", m.queue.Len()).Msg("matchmaking round")
			}
		}
	}
}
