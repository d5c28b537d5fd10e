package matchmaker

import "context"

// Created announces a new game to downstream consumers.
type Created struct {
	GameID   string `json:"game_id"`
	Black    string `json:"black_player"`
	White    string `json:"white_player"`
	Position string `json:"position"`
}

type Notifier interface {
	Publish(ctx context.Context, c Created) error
}

// ChannelNotifier delivers announcements on a buffered channel.
type ChannelNotifier struct {
	ch chan Created
}

func NewChannelNotifier(buffer int) *ChannelNotifier {
	return &ChannelNotifier{ch: make(chan Created, buffer)}
}

func (n *ChannelNotifier) Publish(ctx context.Context, c Created) error {
	select {
	case n.ch <- c:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *ChannelNotifier) C() <-chan Created { return n.ch }
