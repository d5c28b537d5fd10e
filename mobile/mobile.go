package mobile

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"checkers/internal/log2"
	"checkers/internal/matchmaker"
	"checkers/internal/server/game"
	httpserver "checkers/internal/server/http"
)

// StartServer starts the local HTTP API.
// port: port to listen on, e.g. "2888"
func StartServer(port string) {
	log2.Configure("info", false)

	games := game.NewManager()
	mm := matchmaker.New(games, nil)
	h := httpserver.NewHandler(games, mm)
	srv := httpserver.NewServer("127.0.0.1:"+port, h)

	// Run in background so it doesn't block the Android UI thread
	go func() {
		_ = mm.Run(context.Background(), 2*time.Second)
	}()
	go func() {
		if err := srv.Run(context.Background()); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()
}
