package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"checkers/internal/checkers"
	"checkers/internal/config"
	"checkers/internal/log2"
	"checkers/internal/matchmaker"
	"checkers/internal/server/game"
	httpserver "checkers/internal/server/http"
)

func main() {
	app := &cli.App{
		Name:  "checkers-server",
		Usage: "checkers move validation service",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "dotenv files to load before reading the environment",
				Value: cli.NewStringSlice(".env"),
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			validateCommand(),
			successorsCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("checkers-server")
	}
}

func loadConfig(cCtx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(cCtx.StringSlice("env-file")...)
	if err != nil {
		return config.Config{}, err
	}
	if cCtx.IsSet("addr") {
		cfg.Addr = cCtx.String("addr")
	}
	if cCtx.IsSet("log-level") {
		cfg.LogLevel = cCtx.String("log-level")
	}
	if cCtx.IsSet("pretty") {
		cfg.LogPretty = cCtx.Bool("pretty")
	}
	if cCtx.IsSet("match-interval") {
		cfg.MatchInterval = cCtx.Duration("match-interval")
	}
	return cfg, cfg.Validate()
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API and the matchmaker",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address"},
			&cli.StringFlag{Name: "log-level", Usage: "zerolog level"},
			&cli.BoolFlag{Name: "pretty", Usage: "human readable logs"},
			&cli.DurationFlag{Name: "match-interval", Usage: "time between matchmaking rounds"},
		},
		Action: func(cCtx *cli.Context) error {
			cfg, err := loadConfig(cCtx)
			if err != nil {
				return err
			}
			log2.Configure(cfg.LogLevel, cfg.LogPretty)

			ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			games := game.NewManager()
			notifier := matchmaker.NewChannelNotifier(64)
			mm := matchmaker.New(games, notifier)
			srv := httpserver.NewServer(cfg.Addr, httpserver.NewHandler(games, mm))

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error { return srv.Run(ctx) })
			g.Go(func() error { return mm.Run(ctx, cfg.MatchInterval) })
			g.Go(func() error { return drainCreated(ctx, notifier.C()) })
			return g.Wait()
		},
	}
}

// drainCreated logs every new game until ctx is done.
func drainCreated(ctx context.Context, created <-chan matchmaker.Created) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-created:
			log.Info().
				Str("game", c.GameID).
				Str("black", c.Black).
				Str("white", c.White).
				Str("position", c.Position).
				Msg("game created")
		}
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "check whether --proposed legally follows --position for --color",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "position", Required: true},
			&cli.StringFlag{Name: "color", Required: true, Usage: "black or white"},
			&cli.StringFlag{Name: "proposed", Required: true},
		},
		Action: func(cCtx *cli.Context) error {
			color, err := checkers.ParseColor(cCtx.String("color"))
			if err != nil {
				return err
			}
			ok, err := checkers.Validate(cCtx.String("position"), color, cCtx.String("proposed"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cCtx.App.Writer, ok)
			return nil
		},
	}
}

func successorsCommand() *cli.Command {
	return &cli.Command{
		Name:  "successors",
		Usage: "print every legal successor of --position",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "position", Required: true},
		},
		Action: func(cCtx *cli.Context) error {
			pos, err := checkers.ParsePosition(cCtx.String("position"))
			if err != nil {
				return err
			}
			for _, s := range pos.LegalSuccessors() {
				fmt.Fprintln(cCtx.App.Writer, s)
			}
			return nil
		},
	}
}
