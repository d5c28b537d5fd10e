package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"checkers/internal/checkers"
	"checkers/internal/log2"
)

type gameResult struct {
	Winner checkers.Color // NoColor when the ply cap was hit
	Plies  int
	Chains int
}

func main() {
	totalGames := flag.Int("games", 100, "number of random games to play")
	maxPlies := flag.Int("maxplies", 400, "ply cap per game")
	workers := flag.Int("workers", 4, "games played in parallel")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	perftDepth := flag.Int("perft", 0, "run perft to this depth instead of selfplay")
	logLevel := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	log2.Configure(*logLevel, true)

	if *perftDepth > 0 {
		runPerft(*perftDepth)
		return
	}

	if *workers < 1 {
		*workers = 1
	}
	results := make([]gameResult, *totalGames)
	var g errgroup.Group
	g.SetLimit(*workers)
	var mu sync.Mutex
	for i := 0; i < *totalGames; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(*seed + int64(i)))
			res := playGame(rng, *maxPlies)
			mu.Lock()
			results[i] = res
			mu.Unlock()
			log.Debug().Int("game", i+1).Str("winner", res.Winner.String()).Int("plies", res.Plies).Msg("game finished")
			return nil
		})
	}
	_ = g.Wait()

	var blackWins, whiteWins, capped, plies, chains int
	for _, r := range results {
		switch r.Winner {
		case checkers.Black:
			blackWins++
		case checkers.White:
			whiteWins++
		default:
			capped++
		}
		plies += r.Plies
		chains += r.Chains
	}
	fmt.Printf("\n=== %d random games (seed %d) ===\n", *totalGames, *seed)
	fmt.Printf("Black: %d\nWhite: %d\nPly cap: %d\n", blackWins, whiteWins, capped)
	if *totalGames > 0 {
		fmt.Printf("Average plies: %.1f, capture chains: %d\n", float64(plies)/float64(*totalGames), chains)
	}
}

// playGame picks uniformly among legal moves until one side is stuck.
func playGame(rng *rand.Rand, maxPlies int) gameResult {
	pos := checkers.NewInitialPosition()
	res := gameResult{Winner: checkers.NoColor}
	for res.Plies < maxPlies {
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			// 无子可动，当前方输
			res.Winner = pos.Turn.Color().Opponent()
			return res
		}
		pos = pos.ApplyMove(moves[rng.Intn(len(moves))])
		res.Plies++
		if pos.Turn.IsContinuation() {
			res.Chains++
		}
	}
	return res
}
